package wallet

import (
	"context"
	"testing"

	"finflow/internal/models"
	"finflow/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetBalance(ctx context.Context, userID string) (int64, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetBalance(ctx context.Context, userID string, balance int64) error {
	args := m.Called(ctx, userID, balance)
	return args.Error(0)
}

func (m *MockCache) InvalidateBalance(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestWalletService_Fund(t *testing.T) {
	tests := []struct {
		name    string
		req     FundRequest
		wantErr error
	}{
		{
			name: "successful fund",
			req:  FundRequest{Amount: 50000, Currency: "USD", Method: MethodBank},
		},
		{
			name:    "zero amount",
			req:     FundRequest{Amount: 0},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     FundRequest{Amount: -100},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount above ceiling",
			req:     FundRequest{Amount: DefaultMaxFundAmount + 1},
			wantErr: ErrFundLimitExceeded,
		},
		{
			name:    "unsupported currency",
			req:     FundRequest{Amount: 100, Currency: "JPY"},
			wantErr: ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repositories.NewMemoryRepository()
			svc := NewService(repo, nil, Config{}, nil)

			txn, err := svc.Fund(context.Background(), "user-1", tt.req)

			records, listErr := repo.ListAll(context.Background(), "user-1")
			require.NoError(t, listErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, txn)
				assert.Empty(t, records, "store must be unchanged on rejection")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, txn)
			assert.Equal(t, models.TransactionTypeFund, txn.Type)
			assert.Equal(t, tt.req.Amount, txn.Amount)
			assert.Equal(t, "Deposit", txn.Category)
			assert.Equal(t, models.StatusCompleted, txn.Status)
			assert.NotEmpty(t, txn.ID)
			require.Len(t, records, 1)
			assert.Equal(t, txn.ID, records[0].ID)
		})
	}
}

func TestWalletService_FundDescription(t *testing.T) {
	tests := []struct {
		name     string
		req      FundRequest
		wantDesc string
	}{
		{"explicit source", FundRequest{Amount: 100, Source: "Chase Checking"}, "Fund from Chase Checking"},
		{"bank method fallback", FundRequest{Amount: 100, Method: MethodBank}, "Fund from Bank Transfer"},
		{"card method fallback", FundRequest{Amount: 100, Method: MethodCard}, "Fund from Credit Card"},
		{"crypto method fallback", FundRequest{Amount: 100, Method: MethodCrypto}, "Fund from Crypto Wallet"},
		{"empty method defaults to bank", FundRequest{Amount: 100}, "Fund from Bank Transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(repositories.NewMemoryRepository(), nil, Config{}, nil)

			txn, err := svc.Fund(context.Background(), "user-1", tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, txn.Description)
		})
	}
}

func TestWalletService_FundDefaultsCurrency(t *testing.T) {
	svc := NewService(repositories.NewMemoryRepository(), nil, Config{}, nil)

	txn, err := svc.Fund(context.Background(), "user-1", FundRequest{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyUSD, txn.Currency)
}

func TestWalletService_FundInvalidatesCache(t *testing.T) {
	cache := new(MockCache)
	cache.On("InvalidateBalance", mock.Anything, "user-1").Return(nil)

	svc := NewService(repositories.NewMemoryRepository(), cache, Config{}, nil)

	_, err := svc.Fund(context.Background(), "user-1", FundRequest{Amount: 100})
	require.NoError(t, err)

	cache.AssertExpectations(t)
}

func TestWalletService_Balance(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository()
	svc := NewService(repo, nil, Config{}, nil)

	balance, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance, "empty store sums to zero")

	_, err = svc.Fund(ctx, "user-1", FundRequest{Amount: 50000})
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, "user-1", &models.Transaction{
		ID: "t-1", Type: models.TransactionTypeTransfer, Amount: -15000,
	}))

	balance, err = svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(35000), balance)
}

func TestWalletService_BalanceUsesCache(t *testing.T) {
	cache := new(MockCache)
	cache.On("GetBalance", mock.Anything, "user-1").Return(int64(12345), true, nil)

	svc := NewService(repositories.NewMemoryRepository(), cache, Config{}, nil)

	balance, err := svc.Balance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), balance)

	cache.AssertExpectations(t)
}

func TestWalletService_BalanceCacheMissRecomputes(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository()
	require.NoError(t, repo.Append(ctx, "user-1", &models.Transaction{ID: "t-1", Amount: 700}))

	cache := new(MockCache)
	cache.On("GetBalance", mock.Anything, "user-1").Return(int64(0), false, nil)
	cache.On("SetBalance", mock.Anything, "user-1", int64(700)).Return(nil)

	svc := NewService(repo, cache, Config{}, nil)

	balance, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance)

	cache.AssertExpectations(t)
}

func TestWalletService_ValidateBalance(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository()
	require.NoError(t, repo.Append(ctx, "user-1", &models.Transaction{ID: "t-1", Amount: 1000}))

	svc := NewService(repo, nil, Config{}, nil)

	assert.NoError(t, svc.ValidateBalance(ctx, "user-1", 1000))
	assert.ErrorIs(t, svc.ValidateBalance(ctx, "user-1", 1001), ErrInsufficientBalance)
}

func TestWalletService_FundScenario(t *testing.T) {
	// Empty store, fund 500.00, then list: one completed fund record.
	ctx := context.Background()
	repo := repositories.NewMemoryRepository()
	svc := NewService(repo, nil, Config{}, nil)

	txn, err := svc.Fund(ctx, "user-1", FundRequest{Amount: 50000, Currency: "USD", Method: MethodBank})
	require.NoError(t, err)

	records, err := repo.ListAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, txn.ID, records[0].ID)
	assert.Equal(t, int64(50000), records[0].Amount)
	assert.Equal(t, models.TransactionTypeFund, records[0].Type)
	assert.Equal(t, models.StatusCompleted, records[0].Status)
}
