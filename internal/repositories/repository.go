// Package repositories provides the transaction store implementations.
// The store holds the truth for "what happened": an append-only, per-user
// ordered collection of transaction records.
package repositories

import (
	"context"
	"errors"

	"finflow/internal/models"
)

// Repository errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateID         = errors.New("duplicate transaction id")
)

// TransactionRepository is the store contract. Append serializes writes per
// store; ListAll returns records in insertion order and is safe to call
// concurrently with Append.
type TransactionRepository interface {
	Append(ctx context.Context, userID string, txn *models.Transaction) error
	ListAll(ctx context.Context, userID string) ([]models.Transaction, error)
}
