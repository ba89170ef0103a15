package transfer

import "errors"

// Service errors
var (
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrRecipientRequired     = errors.New("recipient is required")
	ErrTransferLimitExceeded = errors.New("transfer amount exceeds limit")
)
