// Package currency converts and formats monetary amounts between the
// supported currencies using a static rate table.
package currency

import (
	"github.com/verdantfin/fintrack/internal/model"
)

// usdToINR is the static exchange rate; the reverse rate is derived from it
// so the two legs can never drift apart.
const usdToINR = 83.5

var rates = map[model.Currency]map[model.Currency]float64{
	model.CurrencyUSD: {model.CurrencyINR: usdToINR},
	model.CurrencyINR: {model.CurrencyUSD: 1 / usdToINR},
}

// Convert translates an amount from one currency to another. Same-currency
// conversion is the identity, with no rounding. A pair missing from the rate
// table degrades to returning the amount unchanged rather than failing;
// losing the conversion beats losing the number.
func Convert(amount float64, from, to model.Currency) float64 {
	if from == to {
		return amount
	}
	rate, ok := rates[from][to]
	if !ok {
		return amount
	}
	return amount * rate
}

// ToDisplay converts a transaction's recorded amount into the display
// currency.
func ToDisplay(t model.Transaction, display model.Currency) float64 {
	return Convert(t.OriginalAmount, t.OriginalCurrency, display)
}
