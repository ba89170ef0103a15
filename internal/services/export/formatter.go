// Package export renders transaction lists as downloadable CSV.
package export

import (
	"strings"
	"time"

	"finflow/internal/models"
)

// MaxRows caps how many records a single export may contain.
const MaxRows = 100

var header = []string{"ID", "Date", "Description", "Category", "Amount", "Type", "Status"}

// ToCSV renders records as CSV text. Every cell is double-quoted with
// embedded quotes doubled, rows are CRLF-separated and the column order is
// fixed. Row order follows the input; callers filter and sort first.
//
// encoding/csv is deliberately not used here: it only quotes cells that need
// it, and the download format quotes every cell unconditionally.
func ToCSV(records []models.Transaction) string {
	if len(records) > MaxRows {
		records = records[:MaxRows]
	}

	var b strings.Builder
	writeRow(&b, header)

	for _, t := range records {
		writeRow(&b, []string{
			t.ID,
			t.Date.Format(time.RFC3339),
			t.Description,
			t.Category,
			models.MajorString(t.Amount),
			t.Type,
			t.Status,
		})
	}

	return strings.TrimSuffix(b.String(), "\r\n")
}

// Filename returns the download filename for an export generated at ts,
// e.g. "finflow-transactions-2026-08-30.csv".
func Filename(ts time.Time) string {
	return "finflow-transactions-" + ts.Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
