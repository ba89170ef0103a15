// Package transfer implements the debit operation: a validated, sanitized
// transfer request appended to the ledger as a negative-amount record.
package transfer

import (
	"context"
	"fmt"
	"time"

	"finflow/internal/models"
	"finflow/internal/repositories"
	"finflow/internal/utils"

	"github.com/google/uuid"
)

// MaxTransferAmount is the transfer ceiling, 10000.00 in minor units.
const MaxTransferAmount = 1_000_000

type service struct {
	repo      repositories.TransactionRepository
	walletSvc WalletService
	cache     BalanceCache
}

// NewService creates a new transfer service instance.
func NewService(repo repositories.TransactionRepository, walletSvc WalletService, cache BalanceCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if walletSvc == nil {
		panic("wallet service is required")
	}
	return &service{
		repo:      repo,
		walletSvc: walletSvc,
		cache:     cache,
	}
}

// Transfer validates the request, checks the sender's balance server-side
// and appends the resulting record. The stored amount is the negative of the
// requested amount.
func (s *service) Transfer(ctx context.Context, userID string, req Request) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	recipient := utils.Sanitize(req.Recipient)
	if recipient == "" {
		return nil, ErrRecipientRequired
	}

	if req.Amount > MaxTransferAmount {
		return nil, ErrTransferLimitExceeded
	}

	if err := s.walletSvc.ValidateBalance(ctx, userID, req.Amount); err != nil {
		return nil, err
	}

	description := utils.Sanitize(req.Description)
	if description == "" {
		description = "Transfer"
	}

	txn := &models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionTypeTransfer,
		Amount:      -req.Amount,
		Currency:    models.CurrencyUSD,
		Description: description,
		Recipient:   recipient,
		Status:      models.StatusCompleted,
		Date:        time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("failed to record transfer: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateBalance(ctx, userID)
	}

	return txn, nil
}
