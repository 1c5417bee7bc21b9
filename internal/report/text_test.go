package report

import (
	"strings"
	"testing"
	"time"

	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
)

func summaryFixture() []model.Transaction {
	return []model.Transaction{
		{ID: "1", OriginalAmount: 1000, OriginalCurrency: model.CurrencyUSD, Description: "Paycheck", Category: "Salary", Type: model.TypeIncome, Date: "2024-01-10"},
		{ID: "2", OriginalAmount: 50, OriginalCurrency: model.CurrencyUSD, Description: "Groceries", Category: "Food & Dining", Type: model.TypeExpense, Date: "2024-01-05"},
		{ID: "3", OriginalAmount: 30, OriginalCurrency: model.CurrencyUSD, Description: "Cinema", Category: "Entertainment", Type: model.TypeExpense, Date: "2024-01-08"},
	}
}

func TestTextSummary(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	got := TextSummary(summaryFixture(), model.CurrencyUSD, "Current Month", now)

	for _, want := range []string{
		"FINANCE TRACKER REPORT",
		"Period: Current Month",
		"Currency: USD",
		"Generated: 2024-01-15",
		"Total Income: $1,000.00",
		"Total Expenses: $80.00",
		"Net Balance: $920.00",
		"Average Income: $1,000.00",
		"Average Expense: $40.00",
		"1. Food & Dining: $50.00",
		"2. Entertainment: $30.00",
		"2024-01-05 | Groceries | Food & Dining | expense | $50.00",
		"Total Transactions: 3",
		"Income Transactions: 1",
		"Expense Transactions: 2",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q\n---\n%s", want, got)
		}
	}
}

func TestTextSummary_EmptyInput(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	got := TextSummary(nil, model.CurrencyINR, "All Time", now)

	// Averages divide by max(count, 1); an empty report must not blow up.
	for _, want := range []string{
		"Total Income: ₹0.00",
		"Average Income: ₹0.00",
		"Average Expense: ₹0.00",
		"(no expenses)",
		"Total Transactions: 0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("empty summary missing %q\n---\n%s", want, got)
		}
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

	if got := CSVFilename(engine.PeriodCurrentMonth, now); got != "finance_report_current_month_2024-03-09.csv" {
		t.Errorf("CSVFilename = %q", got)
	}
	if got := TextFilename(engine.PeriodThisYear, now); got != "finance_report_this_year_2024-03-09.txt" {
		t.Errorf("TextFilename = %q", got)
	}
	if got := ExportFilename("user@example.com", now); got != "finance_data_user@example.com_2024-03-09.json" {
		t.Errorf("ExportFilename = %q", got)
	}
}
