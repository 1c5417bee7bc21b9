package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/service"
	"github.com/verdantfin/fintrack/internal/testutil"
)

func TestCurrent_NotLoggedIn(t *testing.T) {
	store := testutil.NewMemoryStorage()

	_, err := Current(context.Background(), store)
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestLoginLogoutCycle(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStorage()

	sess, err := Login(ctx, store, OpenVerifier{}, "user@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", sess.UserID)
	assert.Equal(t, model.CurrencyUSD, sess.Currency)

	// A fresh lookup sees the same bound user.
	sess, err = Current(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", sess.UserID)

	require.NoError(t, Logout(ctx, store))

	_, err = Current(ctx, store)
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestLogin_EmptyEmail(t *testing.T) {
	store := testutil.NewMemoryStorage()

	_, err := Login(context.Background(), store, OpenVerifier{}, "", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_RejectedCredentialsLeaveNoSession(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStorage()
	verifier := NewStaticVerifier(map[string]string{"user@example.com": "hunter2"})

	_, err := Login(ctx, store, verifier, "user@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = Current(ctx, store)
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestSetCurrency(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStorage()

	require.NoError(t, SetCurrency(ctx, store, model.CurrencyINR))

	sess, err := Login(ctx, store, OpenVerifier{}, "user@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, model.CurrencyINR, sess.Currency)

	err = SetCurrency(ctx, store, model.Currency("EUR"))
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCurrent_GarbageCurrencyFallsBackToUSD(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStorage()

	require.NoError(t, store.SetSetting(ctx, service.SettingCurrentUser, "user@example.com"))
	require.NoError(t, store.SetSetting(ctx, service.SettingDisplayCurrency, "doubloons"))

	sess, err := Current(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, model.CurrencyUSD, sess.Currency)
}

func TestCurrency_LogoutPreservesDisplayCurrency(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStorage()

	require.NoError(t, SetCurrency(ctx, store, model.CurrencyINR))
	_, err := Login(ctx, store, OpenVerifier{}, "user@example.com", "")
	require.NoError(t, err)
	require.NoError(t, Logout(ctx, store))

	sess, err := Login(ctx, store, OpenVerifier{}, "other@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, model.CurrencyINR, sess.Currency)
}
