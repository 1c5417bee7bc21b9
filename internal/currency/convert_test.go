package currency

import (
	"testing"

	"github.com/verdantfin/fintrack/internal/model"
)

func TestConvert_Identity(t *testing.T) {
	for _, c := range model.Currencies {
		for _, amount := range []float64{0, 1, 99.99, 1234567.89, -50} {
			if got := Convert(amount, c, c); got != amount {
				t.Errorf("Convert(%v, %s, %s) = %v, want identity", amount, c, c, got)
			}
		}
	}
}

func TestConvert_Reciprocal(t *testing.T) {
	const tolerance = 1e-9
	for _, amount := range []float64{1, 83.5, 100, 0.01, 999999.99} {
		roundTrip := Convert(Convert(amount, model.CurrencyUSD, model.CurrencyINR), model.CurrencyINR, model.CurrencyUSD)
		if diff := roundTrip - amount; diff > tolerance || diff < -tolerance {
			t.Errorf("round trip of %v drifted to %v", amount, roundTrip)
		}
	}
}

func TestConvert_KnownRate(t *testing.T) {
	if got := Convert(2, model.CurrencyUSD, model.CurrencyINR); got != 167 {
		t.Errorf("Convert(2, USD, INR) = %v, want 167", got)
	}
}

func TestConvert_MissingRateFallsBack(t *testing.T) {
	// An unknown currency has no table entry; conversion must degrade to the
	// original amount instead of failing.
	unknown := model.Currency("EUR")
	if got := Convert(42, unknown, model.CurrencyUSD); got != 42 {
		t.Errorf("Convert from unknown currency = %v, want passthrough 42", got)
	}
	if got := Convert(42, model.CurrencyUSD, unknown); got != 42 {
		t.Errorf("Convert to unknown currency = %v, want passthrough 42", got)
	}
}

func TestToDisplay(t *testing.T) {
	txn := model.Transaction{
		Amount:           10,
		OriginalAmount:   10,
		OriginalCurrency: model.CurrencyUSD,
		Type:             model.TypeExpense,
	}
	if got := ToDisplay(txn, model.CurrencyINR); got != 835 {
		t.Errorf("ToDisplay = %v, want 835", got)
	}
	if got := ToDisplay(txn, model.CurrencyUSD); got != 10 {
		t.Errorf("ToDisplay same currency = %v, want 10", got)
	}
}
