package engine

import (
	"sort"

	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/model"
)

// Summary holds the headline totals for a transaction set, in the display
// currency.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	NetBalance    float64
}

// CategoryAmount is one category's summed expense total.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// MonthRow is one YYYY-MM bucket of the monthly trend.
type MonthRow struct {
	Month    string
	Income   float64
	Expenses float64
}

// Summarize computes income, expense, and net totals with every amount
// converted to the display currency first.
func Summarize(txns []model.Transaction, display model.Currency) Summary {
	var s Summary
	for _, t := range txns {
		amount := currency.ToDisplay(t, display)
		if t.Type == model.TypeIncome {
			s.TotalIncome += amount
		} else {
			s.TotalExpenses += amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryBreakdown sums expenses by category in the display currency.
// Income is excluded, and only categories with at least one matching
// transaction appear.
func CategoryBreakdown(txns []model.Transaction, display model.Currency) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		breakdown[t.Category] += currency.ToDisplay(t, display)
	}
	return breakdown
}

// TopCategories ranks expense categories by summed amount, descending,
// truncated to n. Equal amounts are ordered alphabetically by category name
// so rankings are reproducible.
func TopCategories(txns []model.Transaction, display model.Currency, n int) []CategoryAmount {
	breakdown := CategoryBreakdown(txns, display)
	ranked := make([]CategoryAmount, 0, len(breakdown))
	for cat, amount := range breakdown {
		ranked = append(ranked, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MonthlyTrend buckets income and expense sums by calendar month, sorted
// ascending by the YYYY-MM key (lexicographic order is chronological for
// this format).
func MonthlyTrend(txns []model.Transaction, display model.Currency) []MonthRow {
	buckets := make(map[string]*MonthRow)
	for _, t := range txns {
		month := t.Month()
		row, ok := buckets[month]
		if !ok {
			row = &MonthRow{Month: month}
			buckets[month] = row
		}
		amount := currency.ToDisplay(t, display)
		if t.Type == model.TypeIncome {
			row.Income += amount
		} else {
			row.Expenses += amount
		}
	}

	trend := make([]MonthRow, 0, len(buckets))
	for _, row := range buckets {
		trend = append(trend, *row)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}

// Recent returns up to n transactions ordered most-recent-first. Transactions
// sharing a date keep their input order.
func Recent(txns []model.Transaction, n int) []model.Transaction {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
