package wallet

import "fmt"

var (
	ErrInvalidAmount        = fmt.Errorf("amount must be greater than zero")
	ErrInsufficientFunds    = fmt.Errorf("insufficient funds")
	ErrMissingWalletAddress = fmt.Errorf("no wallet address on file")
	ErrProfileNotFound      = fmt.Errorf("profile not found")
)
