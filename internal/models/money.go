package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrFractionalMinorUnits is returned when a major-unit amount cannot be
// represented exactly in minor units (more than two decimal places).
var ErrFractionalMinorUnits = errors.New("amount has more than two decimal places")

// MinorUnits converts a major-unit amount (dollars) to integer minor units
// (cents) without floating-point drift. The conversion goes through a decimal
// so 150.30 becomes 15030, never 15029.
func MinorUnits(major float64) (int64, error) {
	d := decimal.NewFromFloat(major).Shift(2)
	if !d.IsInteger() {
		return 0, ErrFractionalMinorUnits
	}
	return d.IntPart(), nil
}

// MajorUnits converts minor units back to a major-unit float for API
// responses. Exact for any realistic ledger amount.
func MajorUnits(minor int64) float64 {
	f, _ := decimal.New(minor, -2).Float64()
	return f
}

// MajorString renders minor units as a plain decimal string with trailing
// zeros trimmed, e.g. -15000 -> "-150", 7550 -> "75.5".
func MajorString(minor int64) string {
	return decimal.New(minor, -2).String()
}
