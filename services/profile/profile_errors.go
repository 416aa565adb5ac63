package profile

import "fmt"

var (
	ErrProfileNotFound      = fmt.Errorf("profile not found")
	ErrPasswordMismatch     = fmt.Errorf("new passwords do not match")
	ErrInvalidWalletAddress = fmt.Errorf("wallet address is not a valid ERC-20 address")
)
