package report

import (
	"strings"
	"testing"

	"github.com/verdantfin/fintrack/internal/model"
)

func TestCSV(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", Amount: 50, OriginalAmount: 50, OriginalCurrency: model.CurrencyUSD, Description: "Groceries", Category: "Food & Dining", Type: model.TypeExpense, Date: "2024-01-05"},
		{ID: "2", Amount: 835, OriginalAmount: 835, OriginalCurrency: model.CurrencyINR, Description: "Train ticket", Category: "Travel", Type: model.TypeExpense, Date: "2024-01-07"},
	}

	got := CSV(txns, model.CurrencyUSD)
	lines := strings.Split(got, "\n")

	if len(lines) != 3 {
		t.Fatalf("CSV produced %d lines, want header + 2 rows", len(lines))
	}
	wantHeader := `"Date","Description","Category","Type","Amount","Original Amount","Original Currency"`
	if lines[0] != wantHeader {
		t.Errorf("header = %s, want %s", lines[0], wantHeader)
	}
	wantRow1 := `"2024-01-05","Groceries","Food & Dining","expense","$50.00","$50.00","USD"`
	if lines[1] != wantRow1 {
		t.Errorf("row 1 = %s, want %s", lines[1], wantRow1)
	}
	// The INR amount is converted for the Amount column but kept original in
	// the Original Amount column.
	wantRow2 := `"2024-01-07","Train ticket","Travel","expense","$10.00","₹835.00","INR"`
	if lines[2] != wantRow2 {
		t.Errorf("row 2 = %s, want %s", lines[2], wantRow2)
	}
}

func TestCSV_PreservesInputOrder(t *testing.T) {
	txns := []model.Transaction{
		{ID: "b", OriginalAmount: 1, OriginalCurrency: model.CurrencyUSD, Description: "second date first", Type: model.TypeExpense, Date: "2024-03-01"},
		{ID: "a", OriginalAmount: 1, OriginalCurrency: model.CurrencyUSD, Description: "first date second", Type: model.TypeExpense, Date: "2024-01-01"},
	}

	lines := strings.Split(CSV(txns, model.CurrencyUSD), "\n")
	if !strings.Contains(lines[1], "2024-03-01") || !strings.Contains(lines[2], "2024-01-01") {
		t.Error("CSV reordered rows; it must emit input order")
	}
}

func TestCSV_QuotesEveryFieldAndEscapesQuotes(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", OriginalAmount: 5, OriginalCurrency: model.CurrencyUSD, Description: `say "cheese"`, Category: "Other", Type: model.TypeExpense, Date: "2024-01-05"},
	}

	lines := strings.Split(CSV(txns, model.CurrencyUSD), "\n")
	if !strings.Contains(lines[1], `"say ""cheese"""`) {
		t.Errorf("embedded quotes not escaped: %s", lines[1])
	}
	for _, field := range strings.Split(lines[0], ",") {
		if !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
			t.Errorf("field %s not quote-wrapped", field)
		}
	}
}

func TestCSV_EmptyInput(t *testing.T) {
	got := CSV(nil, model.CurrencyUSD)
	if strings.Count(got, "\n") != 0 {
		t.Errorf("empty CSV should be just the header, got %q", got)
	}
}
