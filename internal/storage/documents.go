package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/model"
)

// Document kinds stored per user.
const (
	kindTransactions = "transactions"
	kindBudgets      = "budgets"
)

// LoadTransactions returns the user's transaction list. A user with no saved
// document gets an empty list, not an error.
func (s *SQLiteStorage) LoadTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := s.loadDocument(ctx, userID, kindTransactions, &txns); err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	return txns, nil
}

// SaveTransactions overwrites the user's transaction document.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, userID string, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	return s.saveDocument(ctx, userID, kindTransactions, txns)
}

// ExportData returns the stored transaction document with its last-updated
// stamp, or nil when the user has never saved anything.
func (s *SQLiteStorage) ExportData(ctx context.Context, userID string) (*model.UserData, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT document, last_updated
		FROM user_documents
		WHERE user_id = ? AND kind = ?`

	var doc string
	var lastUpdated time.Time
	err := s.db.QueryRowContext(ctx, query, userID, kindTransactions).Scan(&doc, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query user document: %v", common.ErrPersistence, err)
	}

	var txns []model.Transaction
	if err := json.Unmarshal([]byte(doc), &txns); err != nil {
		return nil, fmt.Errorf("%w: decode user document: %v", common.ErrPersistence, err)
	}

	return &model.UserData{
		Transactions: txns,
		LastUpdated:  lastUpdated.UTC().Format(time.RFC3339),
	}, nil
}

// LoadBudgets returns the user's budget list, empty when none saved.
func (s *SQLiteStorage) LoadBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := s.loadDocument(ctx, userID, kindBudgets, &budgets); err != nil {
		return nil, err
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}
	return budgets, nil
}

// SaveBudgets overwrites the user's budget document.
func (s *SQLiteStorage) SaveBudgets(ctx context.Context, userID string, budgets []model.Budget) error {
	if budgets == nil {
		budgets = []model.Budget{}
	}
	return s.saveDocument(ctx, userID, kindBudgets, budgets)
}

// ClearUser removes every document belonging to the user.
func (s *SQLiteStorage) ClearUser(ctx context.Context, userID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM user_documents WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("%w: clear user data: %v", common.ErrPersistence, err)
	}

	slog.Info("cleared user data", "user", userID)
	return nil
}

func (s *SQLiteStorage) loadDocument(ctx context.Context, userID, kind string, out any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	var doc string
	query := `SELECT document FROM user_documents WHERE user_id = ? AND kind = ?`
	err := s.db.QueryRowContext(ctx, query, userID, kind).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: query %s document: %v", common.ErrPersistence, kind, err)
	}

	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("%w: decode %s document: %v", common.ErrPersistence, kind, err)
	}
	return nil
}

func (s *SQLiteStorage) saveDocument(ctx context.Context, userID, kind string, in any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	doc, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encode %s document: %v", common.ErrPersistence, kind, err)
	}

	query := `
		INSERT INTO user_documents (user_id, kind, document, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, kind) DO UPDATE SET
			document = excluded.document,
			last_updated = excluded.last_updated`

	if _, err := s.db.ExecContext(ctx, query, userID, kind, string(doc), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: save %s document: %v", common.ErrPersistence, kind, err)
	}

	slog.Debug("saved user document", "user", userID, "kind", kind)
	return nil
}
