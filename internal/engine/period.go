// Package engine turns a raw transaction list into dashboard summaries:
// period filtering, totals, category breakdowns, and monthly trends. All
// functions are pure; the caller supplies the display currency and clock.
package engine

import (
	"time"

	"github.com/verdantfin/fintrack/internal/model"
)

// Period selects a relative date-range filter.
type Period string

const (
	// PeriodCurrentMonth matches the month and year of now.
	PeriodCurrentMonth Period = "current_month"
	// PeriodLastMonth matches the month before now, handling year rollover.
	PeriodLastMonth Period = "last_month"
	// PeriodLast3Months matches dates on or after the first day of the month
	// three months back. No upper bound; future-dated entries pass.
	PeriodLast3Months Period = "last_3_months"
	// PeriodLast6Months is PeriodLast3Months with a six-month window.
	PeriodLast6Months Period = "last_6_months"
	// PeriodThisYear matches the calendar year of now.
	PeriodThisYear Period = "this_year"
	// PeriodAllTime matches everything.
	PeriodAllTime Period = "all_time"
)

// Periods lists the recognized period keys in display order.
var Periods = []Period{
	PeriodCurrentMonth,
	PeriodLastMonth,
	PeriodLast3Months,
	PeriodLast6Months,
	PeriodThisYear,
	PeriodAllTime,
}

// Label returns the human-readable name for the period. Unknown keys read as
// all time, matching the filter's fallback.
func (p Period) Label() string {
	switch p {
	case PeriodCurrentMonth:
		return "Current Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodLast3Months:
		return "Last 3 Months"
	case PeriodLast6Months:
		return "Last 6 Months"
	case PeriodThisYear:
		return "This Year"
	default:
		return "All Time"
	}
}

// FilterByPeriod returns the subset of transactions whose date falls in the
// named window relative to now. Unrecognized periods (and PeriodAllTime)
// return the input unchanged. Result order follows input order; callers sort
// when they need most-recent-first.
func FilterByPeriod(txns []model.Transaction, period Period, now time.Time) []model.Transaction {
	var keep func(time.Time) bool

	switch period {
	case PeriodCurrentMonth:
		keep = func(d time.Time) bool {
			return d.Month() == now.Month() && d.Year() == now.Year()
		}
	case PeriodLastMonth:
		month, year := now.Month()-1, now.Year()
		if now.Month() == time.January {
			month, year = time.December, now.Year()-1
		}
		keep = func(d time.Time) bool {
			return d.Month() == month && d.Year() == year
		}
	case PeriodLast3Months:
		cutoff := monthsBack(now, 3)
		keep = func(d time.Time) bool { return !d.Before(cutoff) }
	case PeriodLast6Months:
		cutoff := monthsBack(now, 6)
		keep = func(d time.Time) bool { return !d.Before(cutoff) }
	case PeriodThisYear:
		keep = func(d time.Time) bool { return d.Year() == now.Year() }
	default:
		return txns
	}

	filtered := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		d, err := t.Time()
		if err != nil {
			// Undated records can't fall in a bounded window.
			continue
		}
		if keep(d) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// monthsBack returns the first day of the month n months before now.
func monthsBack(now time.Time, n int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(n), 1, 0, 0, 0, 0, now.Location())
}
