package apistrings

const (
	/// Basic User Related Strings
	UserNotFound    = "user or account does not exist"
	ProfileNotFound = "profile does not exist"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Wallet Related Strings
	InvalidAmountInput   = "check 'amount' key, invalid request"
	InvalidAmount        = "please enter a valid amount greater than 0"
	InsufficientFunds    = "your balance is less than the requested amount"
	MissingWalletAddress = "you need to generate a wallet address in your profile first"

	/// Profile Related Strings
	InvalidNicknameInput = "check 'hidden' key, invalid request"
	InvalidPasswordInput = "check 'new_password' or 'confirm_password' keys, invalid request"
	PasswordMismatch     = "new passwords do not match"
	InvalidWalletAddress = "submitted wallet address is invalid"
	LogoutFailed         = "failed to log out"
	PasswordUpdateFailed = "failed to update password"

	/// NFT Related Strings
	InvalidItemID    = "entered ID is invalid"
	ItemNotFound     = "NFT not found"
	ItemNotAvailable = "this NFT is no longer available for purchase"
)
