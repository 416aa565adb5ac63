package utils

const REVISION = "0.3.1"
