package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/verdantfin/fintrack/internal/model"
)

func fixtureTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", OriginalAmount: 50, OriginalCurrency: model.CurrencyUSD, Description: "Groceries", Category: "Food & Dining", Type: model.TypeExpense, Date: "2024-01-05"},
		{ID: "2", OriginalAmount: 1000, OriginalCurrency: model.CurrencyUSD, Description: "Paycheck", Category: "Salary", Type: model.TypeIncome, Date: "2024-01-10"},
		{ID: "3", OriginalAmount: 30, OriginalCurrency: model.CurrencyUSD, Description: "Takeout", Category: "Food & Dining", Type: model.TypeExpense, Date: "2024-02-01"},
	}
}

func TestSummarize_CurrentMonthScenario(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	filtered := FilterByPeriod(fixtureTransactions(), PeriodCurrentMonth, now)

	s := Summarize(filtered, model.CurrencyUSD)
	if s.TotalIncome != 1000 {
		t.Errorf("TotalIncome = %v, want 1000", s.TotalIncome)
	}
	if s.TotalExpenses != 50 {
		t.Errorf("TotalExpenses = %v, want 50", s.TotalExpenses)
	}
	if s.NetBalance != 950 {
		t.Errorf("NetBalance = %v, want 950", s.NetBalance)
	}

	breakdown := CategoryBreakdown(filtered, model.CurrencyUSD)
	if len(breakdown) != 1 || breakdown["Food & Dining"] != 50 {
		t.Errorf("CategoryBreakdown = %v, want map[Food & Dining:50]", breakdown)
	}
}

func TestSummarize_NetBalanceInvariant(t *testing.T) {
	txns := fixtureTransactions()
	s := Summarize(txns, model.CurrencyINR)
	if s.NetBalance != s.TotalIncome-s.TotalExpenses {
		t.Errorf("NetBalance %v != TotalIncome %v - TotalExpenses %v", s.NetBalance, s.TotalIncome, s.TotalExpenses)
	}
}

func TestCategoryBreakdown_ExcludesIncomeAndEmptyCategories(t *testing.T) {
	breakdown := CategoryBreakdown(fixtureTransactions(), model.CurrencyUSD)

	if _, ok := breakdown["Salary"]; ok {
		t.Error("income category leaked into the expense breakdown")
	}
	for cat, amount := range breakdown {
		if amount == 0 {
			t.Errorf("category %q has zero total but still appears", cat)
		}
	}
	if breakdown["Food & Dining"] != 80 {
		t.Errorf("Food & Dining total = %v, want 80", breakdown["Food & Dining"])
	}
}

func TestCategoryBreakdown_ConvertsToDisplayCurrency(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", OriginalAmount: 1, OriginalCurrency: model.CurrencyUSD, Category: "Travel", Type: model.TypeExpense, Date: "2024-01-01"},
		{ID: "2", OriginalAmount: 83.5, OriginalCurrency: model.CurrencyINR, Category: "Travel", Type: model.TypeExpense, Date: "2024-01-02"},
	}

	breakdown := CategoryBreakdown(txns, model.CurrencyINR)
	if got := breakdown["Travel"]; got != 167 {
		t.Errorf("Travel in INR = %v, want 167", got)
	}
}

func TestMonthlyTrend_SortedAscending(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", OriginalAmount: 10, OriginalCurrency: model.CurrencyUSD, Type: model.TypeExpense, Date: "2024-03-01"},
		{ID: "2", OriginalAmount: 20, OriginalCurrency: model.CurrencyUSD, Type: model.TypeIncome, Date: "2023-11-15"},
		{ID: "3", OriginalAmount: 5, OriginalCurrency: model.CurrencyUSD, Type: model.TypeExpense, Date: "2024-01-20"},
		{ID: "4", OriginalAmount: 7, OriginalCurrency: model.CurrencyUSD, Type: model.TypeExpense, Date: "2024-01-05"},
	}

	trend := MonthlyTrend(txns, model.CurrencyUSD)

	wantMonths := []string{"2023-11", "2024-01", "2024-03"}
	if len(trend) != len(wantMonths) {
		t.Fatalf("MonthlyTrend rows = %d, want %d", len(trend), len(wantMonths))
	}
	for i, row := range trend {
		if row.Month != wantMonths[i] {
			t.Errorf("row %d month = %q, want %q", i, row.Month, wantMonths[i])
		}
		if i > 0 && trend[i-1].Month >= row.Month {
			t.Errorf("trend not ascending at row %d", i)
		}
	}
	if trend[1].Expenses != 12 {
		t.Errorf("2024-01 expenses = %v, want 12", trend[1].Expenses)
	}
	if trend[0].Income != 20 {
		t.Errorf("2023-11 income = %v, want 20", trend[0].Income)
	}
}

func TestTopCategories(t *testing.T) {
	txns := []model.Transaction{
		{ID: "1", OriginalAmount: 100, OriginalCurrency: model.CurrencyUSD, Category: "Travel", Type: model.TypeExpense, Date: "2024-01-01"},
		{ID: "2", OriginalAmount: 40, OriginalCurrency: model.CurrencyUSD, Category: "Shopping", Type: model.TypeExpense, Date: "2024-01-02"},
		{ID: "3", OriginalAmount: 40, OriginalCurrency: model.CurrencyUSD, Category: "Entertainment", Type: model.TypeExpense, Date: "2024-01-03"},
		{ID: "4", OriginalAmount: 200, OriginalCurrency: model.CurrencyUSD, Category: "Healthcare", Type: model.TypeExpense, Date: "2024-01-04"},
	}

	top := TopCategories(txns, model.CurrencyUSD, 3)

	want := []CategoryAmount{
		{Category: "Healthcare", Amount: 200},
		{Category: "Travel", Amount: 100},
		// Ties resolve alphabetically: Entertainment before Shopping.
		{Category: "Entertainment", Amount: 40},
	}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("TopCategories = %v, want %v", top, want)
	}
}

func TestAggregation_Idempotent(t *testing.T) {
	txns := fixtureTransactions()

	first := Summarize(txns, model.CurrencyINR)
	second := Summarize(txns, model.CurrencyINR)
	if first != second {
		t.Errorf("Summarize drifted between calls: %v vs %v", first, second)
	}

	trendA := MonthlyTrend(txns, model.CurrencyINR)
	trendB := MonthlyTrend(txns, model.CurrencyINR)
	if !reflect.DeepEqual(trendA, trendB) {
		t.Errorf("MonthlyTrend drifted between calls: %v vs %v", trendA, trendB)
	}

	topA := TopCategories(txns, model.CurrencyINR, 5)
	topB := TopCategories(txns, model.CurrencyINR, 5)
	if !reflect.DeepEqual(topA, topB) {
		t.Errorf("TopCategories drifted between calls: %v vs %v", topA, topB)
	}
}

func TestRecent(t *testing.T) {
	txns := []model.Transaction{
		{ID: "old", Date: "2024-01-01"},
		{ID: "newest", Date: "2024-03-05"},
		{ID: "mid-a", Date: "2024-02-10"},
		{ID: "mid-b", Date: "2024-02-10"},
	}

	got := Recent(txns, 3)
	if len(got) != 3 {
		t.Fatalf("Recent(3) returned %d items", len(got))
	}
	if got[0].ID != "newest" {
		t.Errorf("first = %s, want newest", got[0].ID)
	}
	// Same-date transactions keep input order.
	if got[1].ID != "mid-a" || got[2].ID != "mid-b" {
		t.Errorf("tie order = %s, %s; want mid-a, mid-b", got[1].ID, got[2].ID)
	}

	all := Recent(txns, -1)
	if len(all) != len(txns) {
		t.Errorf("Recent(-1) = %d items, want all %d", len(all), len(txns))
	}
}
