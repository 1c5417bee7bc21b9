package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/service"
)

const testUser = "test@example.com"

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Amount: 50, OriginalAmount: 50, OriginalCurrency: model.CurrencyUSD, Description: "Groceries", Category: "Food & Dining", Type: model.TypeExpense, Date: "2024-01-05"},
		{ID: "2", Amount: 1000, OriginalAmount: 1000, OriginalCurrency: model.CurrencyINR, Description: "Paycheck", Category: "Salary", Type: model.TypeIncome, Date: "2024-01-10"},
	}
}

func TestSQLiteStorage_ImplementsStorage(t *testing.T) {
	var _ service.Storage = setupStorage(t)
}

func TestSQLiteStorage_TransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	// Fresh user reads as empty, not as an error.
	txns, err := store.LoadTransactions(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, txns)

	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()))

	loaded, err := store.LoadTransactions(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, sampleTransactions(), loaded)
}

func TestSQLiteStorage_SaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()))
	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()[:1]))

	loaded, err := store.LoadTransactions(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestSQLiteStorage_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()))

	other, err := store.LoadTransactions(ctx, "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSQLiteStorage_ExportData(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	// Unknown user exports as nil, not as an error.
	data, err := store.ExportData(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()))

	data, err = store.ExportData(ctx, testUser)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, sampleTransactions(), data.Transactions)
	assert.NotEmpty(t, data.LastUpdated)
}

func TestSQLiteStorage_BudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	budgets, err := store.LoadBudgets(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	saved := []model.Budget{
		{ID: "b1", Category: "Food & Dining", Amount: 100, Currency: model.CurrencyUSD, Period: model.PeriodMonthly},
	}
	require.NoError(t, store.SaveBudgets(ctx, testUser, saved))

	loaded, err := store.LoadBudgets(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, saved[0].Amount, loaded[0].Amount)
}

func TestSQLiteStorage_ClearUser(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	require.NoError(t, store.SaveTransactions(ctx, testUser, sampleTransactions()))
	require.NoError(t, store.SaveBudgets(ctx, testUser, []model.Budget{{ID: "b1", Category: "Other", Amount: 10, Period: model.PeriodMonthly}}))

	require.NoError(t, store.ClearUser(ctx, testUser))

	txns, err := store.LoadTransactions(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, txns)

	budgets, err := store.LoadBudgets(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	data, err := store.ExportData(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteStorage_Settings(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	val, err := store.GetSetting(ctx, service.SettingDisplayCurrency)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.SetSetting(ctx, service.SettingDisplayCurrency, "INR"))
	require.NoError(t, store.SetSetting(ctx, service.SettingDisplayCurrency, "USD"))

	val, err = store.GetSetting(ctx, service.SettingDisplayCurrency)
	require.NoError(t, err)
	assert.Equal(t, "USD", val)

	require.NoError(t, store.DeleteSetting(ctx, service.SettingDisplayCurrency))
	val, err = store.GetSetting(ctx, service.SettingDisplayCurrency)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestNewSQLiteStorage_RejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}
