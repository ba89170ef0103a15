package repositories

import (
	"context"
	"fmt"
	"time"

	"finflow/internal/models"
)

// SeedDemoData loads the demo transaction fixture for a user so the
// dashboard has something to show on first login. Amounts are minor units.
func SeedDemoData(ctx context.Context, repo TransactionRepository, userID string) error {
	now := time.Now().UTC()

	fixture := []models.Transaction{
		{ID: "1", Type: models.TransactionTypeTransfer, Amount: -15000, Description: "Payment to John Doe", Category: "Payment", Recipient: "john.doe@example.com", Date: now.AddDate(0, 0, -1)},
		{ID: "2", Type: models.TransactionTypeFund, Amount: 50000, Description: "Bank Transfer", Category: "Deposit", Date: now.AddDate(0, 0, -2)},
		{ID: "3", Type: models.TransactionTypeTransfer, Amount: -7550, Description: "Grocery Store", Category: "Shopping", Date: now.AddDate(0, 0, -3)},
		{ID: "4", Type: models.TransactionTypeFund, Amount: 100000, Description: "Salary Deposit", Category: "Income", Date: now.AddDate(0, 0, -4)},
		{ID: "5", Type: models.TransactionTypeTransfer, Amount: -2500, Description: "Coffee Shop", Category: "Food & Drink", Date: now.AddDate(0, 0, -5)},
		{ID: "6", Type: models.TransactionTypeTransfer, Amount: -20000, Description: "Rent Payment", Category: "Housing", Date: now.AddDate(0, 0, -6)},
		{ID: "7", Type: models.TransactionTypeFund, Amount: 25000, Description: "Freelance Payment", Category: "Income", Date: now.AddDate(0, 0, -7)},
		{ID: "8", Type: models.TransactionTypeTransfer, Amount: -5000, Description: "Utility Bill", Category: "Bills", Status: models.StatusPending, Date: now.AddDate(0, 0, -8)},
	}

	for i := range fixture {
		txn := fixture[i]
		txn.Currency = models.CurrencyUSD
		if txn.Status == "" {
			txn.Status = models.StatusCompleted
		}
		if err := repo.Append(ctx, userID, &txn); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", txn.ID, err)
		}
	}
	return nil
}
