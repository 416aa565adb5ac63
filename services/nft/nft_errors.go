package nft

import "fmt"

var (
	ErrItemNotFound      = fmt.Errorf("item not found")
	ErrItemNotAvailable  = fmt.Errorf("item is not available for purchase")
	ErrInsufficientFunds = fmt.Errorf("insufficient funds")
	ErrProfileNotFound   = fmt.Errorf("profile not found")
)
