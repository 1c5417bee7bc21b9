// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/verdantfin/fintrack/internal/model"
)

// Setting keys stored alongside user documents. The display currency and the
// logged-in user survive across sessions.
const (
	SettingCurrentUser     = "current_user"
	SettingDisplayCurrency = "selected_currency"
)

// Storage defines the contract for our persistence layer. Each user's
// transactions and budgets are held as whole documents keyed by user id
// (their email); every save overwrites the previous document.
type Storage interface {
	// Transaction documents
	LoadTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	SaveTransactions(ctx context.Context, userID string, txns []model.Transaction) error
	ExportData(ctx context.Context, userID string) (*model.UserData, error)

	// Budget documents
	LoadBudgets(ctx context.Context, userID string) ([]model.Budget, error)
	SaveBudgets(ctx context.Context, userID string, budgets []model.Budget) error

	// ClearUser removes every document belonging to the user.
	ClearUser(ctx context.Context, userID string) error

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	Close() error
}
