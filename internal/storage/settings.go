package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/verdantfin/fintrack/internal/common"
)

// GetSetting returns the value stored under key, or empty string when unset.
func (s *SQLiteStorage) GetSetting(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: query setting %s: %v", common.ErrPersistence, key, err)
	}
	return value, nil
}

// SetSetting stores a value under key, replacing any previous value.
func (s *SQLiteStorage) SetSetting(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: save setting %s: %v", common.ErrPersistence, key, err)
	}
	return nil
}

// DeleteSetting removes a setting. Deleting an absent key is a no-op.
func (s *SQLiteStorage) DeleteSetting(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: delete setting %s: %v", common.ErrPersistence, key, err)
	}
	return nil
}
