package model

import "fmt"

// Currency identifies one of the supported currencies.
type Currency string

const (
	// CurrencyUSD is the US dollar.
	CurrencyUSD Currency = "USD"
	// CurrencyINR is the Indian rupee.
	CurrencyINR Currency = "INR"
)

// Currencies lists every supported currency.
var Currencies = []Currency{CurrencyUSD, CurrencyINR}

// ParseCurrency converts a string into a Currency, rejecting unknown codes.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyINR:
		return CurrencyINR, nil
	default:
		return "", fmt.Errorf("unsupported currency: %q", s)
	}
}

// Valid reports whether the currency is a member of the supported set.
func (c Currency) Valid() bool {
	_, err := ParseCurrency(string(c))
	return err == nil
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == CurrencyINR {
		return "₹"
	}
	return "$"
}
