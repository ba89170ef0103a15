package wallet

import (
	"context"
	"fmt"
	"time"

	"finflow/internal/models"
	"finflow/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo    repositories.TransactionRepository
	cache   BalanceCache
	config  Config
	metrics MetricsCollector
}

// NewService creates a new wallet service.
func NewService(repo repositories.TransactionRepository, cache BalanceCache, config Config, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = &NoopBalanceCache{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if config.MaxFundAmount == 0 {
		config.MaxFundAmount = DefaultMaxFundAmount
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

func (s *service) Fund(ctx context.Context, userID string, req FundRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		s.metrics.RecordError("fund", "invalid_amount")
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = s.config.DefaultCurrency
	}
	if !models.ValidCurrency(currency) {
		s.metrics.RecordError("fund", "invalid_currency")
		return nil, ErrInvalidCurrency
	}

	if req.Amount > s.config.MaxFundAmount {
		s.metrics.RecordError("fund", "limit_exceeded")
		return nil, ErrFundLimitExceeded
	}

	source := req.Source
	if source == "" {
		source = MethodDisplayName(req.Method)
	}

	txn := &models.Transaction{
		ID:          uuid.NewString(),
		Type:        models.TransactionTypeFund,
		Amount:      req.Amount,
		Currency:    currency,
		Description: "Fund from " + source,
		Category:    "Deposit",
		Status:      models.StatusCompleted,
		Date:        time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, userID, txn); err != nil {
		s.metrics.RecordError("fund", "append_failed")
		return nil, fmt.Errorf("failed to record funding: %w", err)
	}

	// The balance changed, drop the cached value.
	if err := s.cache.InvalidateBalance(ctx, userID); err != nil {
		s.metrics.RecordError("fund", "cache_invalidate_failed")
	}

	s.metrics.RecordTransaction(models.TransactionTypeFund, req.Amount)
	return txn, nil
}

func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	if balance, found, err := s.cache.GetBalance(ctx, userID); err == nil && found {
		s.metrics.RecordCacheHit("balance")
		return balance, nil
	}
	s.metrics.RecordCacheMiss("balance")

	records, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}

	var balance int64
	for _, t := range records {
		balance += t.Amount
	}

	if err := s.cache.SetBalance(ctx, userID, balance); err != nil {
		s.metrics.RecordError("balance", "cache_set_failed")
	}
	return balance, nil
}

func (s *service) ValidateBalance(ctx context.Context, userID string, amount int64) error {
	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	return nil
}
