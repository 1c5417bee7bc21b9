// Package session tracks the active user and their display currency. Both
// are persisted in settings so they survive across invocations, and both are
// passed explicitly into the computation layers rather than read from
// ambient state.
package session

import (
	"context"
	"fmt"

	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/service"
)

// Session identifies whose data is in play and which currency to render in.
type Session struct {
	UserID   string
	Currency model.Currency
}

// Current loads the active session from settings. Returns ErrNotLoggedIn
// when no user is bound. A missing or unrecognized saved currency falls back
// to USD.
func Current(ctx context.Context, store service.Storage) (*Session, error) {
	userID, err := store.GetSetting(ctx, service.SettingCurrentUser)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, common.ErrNotLoggedIn
	}

	cur := model.CurrencyUSD
	if saved, err := store.GetSetting(ctx, service.SettingDisplayCurrency); err == nil {
		if parsed, perr := model.ParseCurrency(saved); perr == nil {
			cur = parsed
		}
	}

	return &Session{UserID: userID, Currency: cur}, nil
}

// Login verifies credentials and binds the user as the active session.
func Login(ctx context.Context, store service.Storage, verifier Verifier, email, password string) (*Session, error) {
	if email == "" {
		return nil, common.ValidationError("email is required")
	}
	if err := verifier.Verify(ctx, email, password); err != nil {
		return nil, err
	}
	if err := store.SetSetting(ctx, service.SettingCurrentUser, email); err != nil {
		return nil, err
	}
	return Current(ctx, store)
}

// Logout unbinds the active user. The display currency stays put.
func Logout(ctx context.Context, store service.Storage) error {
	return store.DeleteSetting(ctx, service.SettingCurrentUser)
}

// SetCurrency persists a new display currency for future sessions.
func SetCurrency(ctx context.Context, store service.Storage, cur model.Currency) error {
	if !cur.Valid() {
		return fmt.Errorf("%w: unsupported currency %q", common.ErrValidation, cur)
	}
	return store.SetSetting(ctx, service.SettingDisplayCurrency, string(cur))
}
