// Package model defines the core domain types for the finance tracker.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by transactions. Dates carry no
// time component; they record the date of occurrence, not of entry.
const DateLayout = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome marks a transaction that adds to the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks a transaction that subtracts from the balance.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction type: %q", s)
	}
}

// Transaction is a single recorded income or expense. Immutable once created;
// edits replace the record wholesale.
//
// Amount and OriginalAmount both hold the value in OriginalCurrency. Amount is
// kept for import/export compatibility with older data files;
// OriginalAmount+OriginalCurrency are the sole source of truth for all
// computation.
type Transaction struct {
	ID               string          `json:"id"`
	Amount           float64         `json:"amount"`
	OriginalAmount   float64         `json:"originalAmount"`
	OriginalCurrency Currency        `json:"originalCurrency"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Type             TransactionType `json:"type"`
	Date             string          `json:"date"`
}

// Validate checks the fields a transaction must carry to be stored.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.Description == "" {
		return fmt.Errorf("transaction description is required")
	}
	if t.Category == "" {
		return fmt.Errorf("transaction category is required")
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("invalid transaction date %q: %w", t.Date, err)
	}
	return nil
}

// Month returns the YYYY-MM bucket the transaction falls into.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Time parses the transaction date.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// UserData is the persisted document shape for one user: the transaction list
// plus the time of the last write. It doubles as the export file format.
type UserData struct {
	Transactions []Transaction `json:"transactions"`
	LastUpdated  string        `json:"lastUpdated"`
}
