package storefront

import (
	"github.com/shopspring/decimal"
)

// currencySymbols maps known ISO-like currency codes to display glyphs.
// Codes not listed here fall back to the code itself as the prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
	"GHS": "₵",
	"ZAR": "R",
	"KES": "KSh",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
}

// CurrencySymbol returns the display glyph for a currency code, or the
// code itself if the code is unknown
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// FormatAmount renders a monetary amount as symbol plus the amount
// fixed to two decimals, e.g. "$1234.50" or "XYZ5.00" for an unknown
// code. It never fails. Two decimals with a dot separator are used for
// every currency; there is no locale handling.
func FormatAmount(amount decimal.Decimal, code string) string {
	return CurrencySymbol(code) + amount.StringFixed(2)
}
