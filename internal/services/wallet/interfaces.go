package wallet

import (
	"context"

	"finflow/internal/models"
)

// Service defines the wallet operations: funding and the derived balance.
type Service interface {
	// Fund validates a deposit request, appends the resulting transaction
	// and returns it.
	Fund(ctx context.Context, userID string, req FundRequest) (*models.Transaction, error)

	// Balance returns the user's balance in minor units: the sum of every
	// transaction amount. It is never stored, only derived.
	Balance(ctx context.Context, userID string) (int64, error)

	// ValidateBalance checks that the user can cover amount.
	ValidateBalance(ctx context.Context, userID string, amount int64) error
}

// BalanceCache caches derived balances. Implementations must tolerate being
// skipped entirely; the cache is an optimization, not a source of truth.
type BalanceCache interface {
	GetBalance(ctx context.Context, userID string) (balance int64, found bool, err error)
	SetBalance(ctx context.Context, userID string, balance int64) error
	InvalidateBalance(ctx context.Context, userID string) error
}
