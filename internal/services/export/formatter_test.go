package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"finflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV_RoundTrip(t *testing.T) {
	date := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	records := []models.Transaction{
		{
			ID:          "txn-1",
			Type:        models.TransactionTypeTransfer,
			Amount:      -15030,
			Description: `Payment, with "quotes" and, commas`,
			Category:    "Payment",
			Status:      models.StatusCompleted,
			Date:        date,
		},
		{
			ID:          "txn-2",
			Type:        models.TransactionTypeFund,
			Amount:      50000,
			Description: "multi\nline\ndescription",
			Category:    "Deposit",
			Status:      models.StatusPending,
			Date:        date.Add(-time.Hour),
		},
	}

	out := ToCSV(records)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err, "a standard CSV parser must accept the output")
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Date", "Description", "Category", "Amount", "Type", "Status"}, rows[0])

	assert.Equal(t, "txn-1", rows[1][0])
	assert.Equal(t, `Payment, with "quotes" and, commas`, rows[1][2])
	assert.Equal(t, "-150.3", rows[1][4])
	assert.Equal(t, "transfer", rows[1][5])

	assert.Equal(t, "multi\nline\ndescription", rows[2][2])
	assert.Equal(t, "500", rows[2][4])
}

func TestToCSV_EveryCellQuoted(t *testing.T) {
	records := []models.Transaction{
		{ID: "1", Type: "fund", Amount: 100, Status: "completed", Date: time.Now()},
	}

	out := ToCSV(records)
	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, 2)

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
		assert.Equal(t, 6, strings.Count(line, `","`), "all seven cells quoted")
	}
}

func TestToCSV_EmptyCategory(t *testing.T) {
	records := []models.Transaction{
		{ID: "1", Type: "transfer", Amount: -100, Status: "completed", Date: time.Now()},
	}

	out := ToCSV(records)
	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, 2)

	// Category cell must be an empty quoted string, never a null literal.
	assert.Contains(t, lines[1], `,"",`)
	assert.NotContains(t, lines[1], "null")
	assert.NotContains(t, lines[1], "undefined")
}

func TestToCSV_PreservesInputOrder(t *testing.T) {
	now := time.Now()
	records := []models.Transaction{
		{ID: "older", Amount: 1, Date: now.Add(-time.Hour)},
		{ID: "newer", Amount: 1, Date: now},
	}

	rows, err := csv.NewReader(strings.NewReader(ToCSV(records))).ReadAll()
	require.NoError(t, err)

	// The formatter never re-sorts; the caller ordered these oldest first.
	assert.Equal(t, "older", rows[1][0])
	assert.Equal(t, "newer", rows[2][0])
}

func TestToCSV_CapsRows(t *testing.T) {
	records := make([]models.Transaction, MaxRows+20)
	for i := range records {
		records[i] = models.Transaction{ID: "x", Amount: 1, Date: time.Now()}
	}

	rows, err := csv.NewReader(strings.NewReader(ToCSV(records))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, MaxRows+1)
}

func TestToCSV_Empty(t *testing.T) {
	out := ToCSV(nil)
	assert.Equal(t, `"ID","Date","Description","Category","Amount","Type","Status"`, out)
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "finflow-transactions-2026-08-30.csv", Filename(ts))
}
