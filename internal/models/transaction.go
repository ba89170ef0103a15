package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeFund     = "fund"
	TransactionTypeTransfer = "transfer"
)

// Transaction statuses
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Supported currencies. Informational only, no conversion happens.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
)

// Transaction is the single ledger entity. Amounts are stored as integer
// minor units (cents): funds are positive, transfers negative. A record is
// immutable once appended.
type Transaction struct {
	Seq         uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          string    `gorm:"uniqueIndex;not null" json:"id"`
	UserID      string    `gorm:"index;not null" json:"-"`
	Type        string    `gorm:"not null" json:"type"`
	Amount      int64     `gorm:"not null" json:"-"`
	Currency    string    `gorm:"default:'USD'" json:"currency"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Recipient   string    `json:"recipient,omitempty"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	Date        time.Time `gorm:"not null" json:"date"`
}

// ValidCurrency reports whether code is one of the supported currencies.
func ValidCurrency(code string) bool {
	switch code {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}
