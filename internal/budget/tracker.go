// Package budget maintains per-category spending limits and compares them
// against the current month's realized spend.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/service"
)

// Tracker owns the budget list for a user and persists it on every mutation.
type Tracker struct {
	store service.Storage
}

// NewTracker creates a budget tracker backed by the given storage.
func NewTracker(store service.Storage) *Tracker {
	return &Tracker{store: store}
}

// Progress is a budget joined with its live spend figures, all in the
// display currency.
type Progress struct {
	Budget    model.Budget
	Limit     float64
	Spent     float64
	Remaining float64
	Percent   float64
	Status    model.BudgetStatus
}

// Add creates a budget for a category. At most one budget may exist per
// category; the amount must be positive.
func (t *Tracker) Add(ctx context.Context, userID, category string, amount float64, period model.BudgetPeriod, cur model.Currency) (*model.Budget, error) {
	if category == "" {
		return nil, common.ValidationError("category is required")
	}
	if amount <= 0 {
		return nil, common.ValidationError("budget amount must be positive, got %v", amount)
	}
	if _, err := model.ParseBudgetPeriod(string(period)); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	budgets, err := t.store.LoadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, b := range budgets {
		if b.Category == category {
			return nil, fmt.Errorf("%w: a budget for %q already exists", common.ErrDuplicateEntry, category)
		}
	}

	b := model.Budget{
		ID:        uuid.NewString(),
		Category:  category,
		Amount:    amount,
		Currency:  cur,
		Period:    period,
		CreatedAt: time.Now().UTC(),
	}
	budgets = append(budgets, b)

	if err := t.store.SaveBudgets(ctx, userID, budgets); err != nil {
		return nil, err
	}
	return &b, nil
}

// Edit updates a budget's amount and period. The category cannot change.
func (t *Tracker) Edit(ctx context.Context, userID, budgetID string, amount float64, period model.BudgetPeriod) (*model.Budget, error) {
	if amount <= 0 {
		return nil, common.ValidationError("budget amount must be positive, got %v", amount)
	}
	if _, err := model.ParseBudgetPeriod(string(period)); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	budgets, err := t.store.LoadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range budgets {
		if budgets[i].ID != budgetID {
			continue
		}
		budgets[i].Amount = amount
		budgets[i].Period = period
		if err := t.store.SaveBudgets(ctx, userID, budgets); err != nil {
			return nil, err
		}
		return &budgets[i], nil
	}
	return nil, fmt.Errorf("%w: budget %s", common.ErrNotFound, budgetID)
}

// Delete removes a budget unconditionally.
func (t *Tracker) Delete(ctx context.Context, userID, budgetID string) error {
	budgets, err := t.store.LoadBudgets(ctx, userID)
	if err != nil {
		return err
	}

	kept := budgets[:0]
	for _, b := range budgets {
		if b.ID != budgetID {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(budgets) {
		return fmt.Errorf("%w: budget %s", common.ErrNotFound, budgetID)
	}
	return t.store.SaveBudgets(ctx, userID, kept)
}

// List returns every budget joined with live spend, computed fresh from the
// given transaction list. Nothing is cached; each call reflects the latest
// transactions.
func (t *Tracker) List(ctx context.Context, userID string, txns []model.Transaction, display model.Currency, now time.Time) ([]Progress, error) {
	budgets, err := t.store.LoadBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	spent := SpentByCategory(txns, display, now)
	progress := make([]Progress, 0, len(budgets))
	for _, b := range budgets {
		progress = append(progress, progressFor(b, spent[b.Category], display))
	}
	return progress, nil
}

// SpentFor returns the current-month expense total for one category,
// converted to the display currency.
func SpentFor(txns []model.Transaction, category string, display model.Currency, now time.Time) float64 {
	return SpentByCategory(txns, display, now)[category]
}

// SpentByCategory sums the current calendar month's expenses per category in
// the display currency.
func SpentByCategory(txns []model.Transaction, display model.Currency, now time.Time) map[string]float64 {
	monthly := engine.FilterByPeriod(txns, engine.PeriodCurrentMonth, now)
	return engine.CategoryBreakdown(monthly, display)
}

// progressFor joins a budget with its spend. The stored limit is converted
// from the budget's own currency into the display currency so both sides of
// the comparison share units.
func progressFor(b model.Budget, spent float64, display model.Currency) Progress {
	budgetCurrency := b.Currency
	if budgetCurrency == "" {
		// Budgets written before currencies were recorded.
		budgetCurrency = model.CurrencyUSD
	}
	limit := currency.Convert(b.Amount, budgetCurrency, display)

	percent := 0.0
	if limit != 0 {
		percent = spent / limit * 100
	}

	return Progress{
		Budget:    b,
		Limit:     limit,
		Spent:     spent,
		Remaining: limit - spent,
		Percent:   percent,
		Status:    model.BudgetStatusFor(spent, limit),
	}
}
