package wallet

import "errors"

// Service errors
var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrFundLimitExceeded   = errors.New("funding amount exceeds limit")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
