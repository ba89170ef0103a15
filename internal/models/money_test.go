package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		major   float64
		want    int64
		wantErr bool
	}{
		{"whole dollars", 500, 50000, false},
		{"cents survive float representation", 150.30, 15030, false},
		{"single decimal", 75.5, 7550, false},
		{"negative", -25.99, -2599, false},
		{"zero", 0, 0, false},
		{"sub-cent precision rejected", 10.001, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorUnits(tt.major)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrFractionalMinorUnits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMajorUnits(t *testing.T) {
	assert.Equal(t, 500.0, MajorUnits(50000))
	assert.Equal(t, -150.3, MajorUnits(-15030))
	assert.Equal(t, 0.0, MajorUnits(0))
}

func TestMajorString(t *testing.T) {
	assert.Equal(t, "-150", MajorString(-15000))
	assert.Equal(t, "75.5", MajorString(7550))
	assert.Equal(t, "500", MajorString(50000))
	assert.Equal(t, "0.01", MajorString(1))
	assert.Equal(t, "0", MajorString(0))
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, ValidCurrency(CurrencyUSD))
	assert.True(t, ValidCurrency(CurrencyEUR))
	assert.True(t, ValidCurrency(CurrencyGBP))
	assert.False(t, ValidCurrency("JPY"))
	assert.False(t, ValidCurrency(""))
}
