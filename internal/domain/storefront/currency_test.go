package storefront

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"known symbol pads to two decimals", 1234.5, "USD", "$1234.50"},
		{"unknown code falls back to code prefix", 5, "XYZ", "XYZ5.00"},
		{"euro", 99.999, "EUR", "€100.00"},
		{"pound", 0, "GBP", "£0.00"},
		{"naira", 1500, "NGN", "₦1500.00"},
		{"kenyan shilling uses multi-rune symbol", 250, "KES", "KSh250.00"},
		{"yen still gets two decimals", 1000, "JPY", "¥1000.00"},
		{"empty code degrades to bare amount", 3.5, "", "3.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(decimal.NewFromFloat(tt.amount), tt.code)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
}
