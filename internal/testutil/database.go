// Package testutil provides shared helpers for package tests: an in-memory
// SQLite database and a map-backed storage fake for pure-logic tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/service"
	"github.com/verdantfin/fintrack/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite storage with automatic
// cleanup.
func SetupTestDB(t *testing.T) service.Storage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// MemoryStorage is a map-backed service.Storage for tests that don't need a
// real database.
type MemoryStorage struct {
	mu       sync.Mutex
	txns     map[string][]model.Transaction
	budgets  map[string][]model.Budget
	settings map[string]string
}

// NewMemoryStorage creates an empty in-memory storage fake.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		txns:     make(map[string][]model.Transaction),
		budgets:  make(map[string][]model.Budget),
		settings: make(map[string]string),
	}
}

// LoadTransactions implements service.Storage.
func (m *MemoryStorage) LoadTransactions(_ context.Context, userID string) ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Transaction{}, m.txns[userID]...), nil
}

// SaveTransactions implements service.Storage.
func (m *MemoryStorage) SaveTransactions(_ context.Context, userID string, txns []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns[userID] = append([]model.Transaction{}, txns...)
	return nil
}

// ExportData implements service.Storage.
func (m *MemoryStorage) ExportData(_ context.Context, userID string) (*model.UserData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	txns, ok := m.txns[userID]
	if !ok {
		return nil, nil
	}
	return &model.UserData{Transactions: append([]model.Transaction{}, txns...)}, nil
}

// LoadBudgets implements service.Storage.
func (m *MemoryStorage) LoadBudgets(_ context.Context, userID string) ([]model.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Budget{}, m.budgets[userID]...), nil
}

// SaveBudgets implements service.Storage.
func (m *MemoryStorage) SaveBudgets(_ context.Context, userID string, budgets []model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.budgets[userID] = append([]model.Budget{}, budgets...)
	return nil
}

// ClearUser implements service.Storage.
func (m *MemoryStorage) ClearUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.txns, userID)
	delete(m.budgets, userID)
	return nil
}

// GetSetting implements service.Storage.
func (m *MemoryStorage) GetSetting(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings[key], nil
}

// SetSetting implements service.Storage.
func (m *MemoryStorage) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

// DeleteSetting implements service.Storage.
func (m *MemoryStorage) DeleteSetting(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.settings, key)
	return nil
}

// Close implements service.Storage.
func (m *MemoryStorage) Close() error { return nil }
