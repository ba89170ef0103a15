package transfer

import (
	"context"

	"finflow/internal/models"
)

// WalletService defines the wallet operations used by the transfer service.
type WalletService interface {
	ValidateBalance(ctx context.Context, userID string, amount int64) error
}

// BalanceCache is invalidated after every transfer append.
type BalanceCache interface {
	InvalidateBalance(ctx context.Context, userID string) error
}

// Service handles outgoing money transfers.
type Service interface {
	Transfer(ctx context.Context, userID string, req Request) (*models.Transaction, error)
}

// Request is a transfer request. Amount is the positive requested amount in
// minor units; the stored record carries its negation.
type Request struct {
	Amount      int64
	Recipient   string
	Description string
}
