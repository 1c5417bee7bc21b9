package model

import (
	"fmt"
	"time"
)

// BudgetPeriod labels how often a budget is meant to reset. Only monthly
// spend is compared today; the period is descriptive metadata.
type BudgetPeriod string

const (
	// PeriodMonthly resets each calendar month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodWeekly resets each week.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodYearly resets each calendar year.
	PeriodYearly BudgetPeriod = "yearly"
)

// ParseBudgetPeriod converts a string into a BudgetPeriod.
func ParseBudgetPeriod(s string) (BudgetPeriod, error) {
	switch BudgetPeriod(s) {
	case PeriodMonthly, PeriodWeekly, PeriodYearly:
		return BudgetPeriod(s), nil
	default:
		return "", fmt.Errorf("invalid budget period: %q", s)
	}
}

// BudgetStatus classifies how close spending is to a budget's limit.
type BudgetStatus string

const (
	// StatusOnTrack means less than 75% of the limit is spent.
	StatusOnTrack BudgetStatus = "On Track"
	// StatusNearLimit means 75% to just under 90% is spent.
	StatusNearLimit BudgetStatus = "Near Limit"
	// StatusOverBudget means 90% or more is spent.
	StatusOverBudget BudgetStatus = "Over Budget"
)

// Budget is a per-category spending ceiling. At most one budget exists per
// category; the category is immutable after creation.
//
// Currency records the display currency active when the budget was created,
// so the limit can be converted when amounts are shown in a different
// currency later. Older data files without the field default to USD.
type Budget struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Amount    float64      `json:"amount"`
	Currency  Currency     `json:"currency,omitempty"`
	Period    BudgetPeriod `json:"period"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BudgetStatusFor classifies spending against a limit. A zero limit cannot
// produce a percentage, so any spend at all counts as over budget.
func BudgetStatusFor(spent, limit float64) BudgetStatus {
	if limit == 0 {
		if spent > 0 {
			return StatusOverBudget
		}
		return StatusOnTrack
	}
	ratio := spent / limit
	switch {
	case ratio >= 0.90:
		return StatusOverBudget
	case ratio >= 0.75:
		return StatusNearLimit
	default:
		return StatusOnTrack
	}
}
