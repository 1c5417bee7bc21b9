package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
)

// TextSummary renders a fixed-layout report: period, totals and averages,
// the top five spending categories, and a flat transaction listing with
// trailing counts. It is the fallback export when no richer format is
// available.
func TextSummary(txns []model.Transaction, display model.Currency, periodLabel string, now time.Time) string {
	summary := engine.Summarize(txns, display)

	var incomeCount, expenseCount int
	for _, t := range txns {
		if t.Type == model.TypeIncome {
			incomeCount++
		} else {
			expenseCount++
		}
	}

	// max(count, 1) keeps the averages defined for empty sets.
	avgIncome := summary.TotalIncome / float64(max(incomeCount, 1))
	avgExpense := summary.TotalExpenses / float64(max(expenseCount, 1))

	var b strings.Builder
	b.WriteString("FINANCE TRACKER REPORT\n")
	b.WriteString("======================\n\n")
	fmt.Fprintf(&b, "Period: %s\n", periodLabel)
	fmt.Fprintf(&b, "Currency: %s\n", display)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format(model.DateLayout))

	b.WriteString("SUMMARY\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Total Income: %s\n", currency.Format(summary.TotalIncome, display))
	fmt.Fprintf(&b, "Total Expenses: %s\n", currency.Format(summary.TotalExpenses, display))
	fmt.Fprintf(&b, "Net Balance: %s\n", currency.Format(summary.NetBalance, display))
	fmt.Fprintf(&b, "Average Income: %s\n", currency.Format(avgIncome, display))
	fmt.Fprintf(&b, "Average Expense: %s\n\n", currency.Format(avgExpense, display))

	b.WriteString("TOP SPENDING CATEGORIES\n")
	b.WriteString("-----------------------\n")
	top := engine.TopCategories(txns, display, 5)
	if len(top) == 0 {
		b.WriteString("(no expenses)\n")
	}
	for i, c := range top {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Category, currency.Format(c.Amount, display))
	}
	b.WriteString("\n")

	b.WriteString("TRANSACTIONS\n")
	b.WriteString("------------\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s\n",
			t.Date,
			t.Description,
			t.Category,
			t.Type,
			currency.Format(currency.ToDisplay(t, display), display))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total Transactions: %d\n", len(txns))
	fmt.Fprintf(&b, "Income Transactions: %d\n", incomeCount)
	fmt.Fprintf(&b, "Expense Transactions: %d\n", expenseCount)

	return b.String()
}
