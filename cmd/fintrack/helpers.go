package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/config"
	"github.com/verdantfin/fintrack/internal/service"
	"github.com/verdantfin/fintrack/internal/session"
	"github.com/verdantfin/fintrack/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// requireSession returns the active session or a friendly hint to log in.
func requireSession(ctx context.Context, store service.Storage) (*session.Session, error) {
	sess, err := session.Current(ctx, store)
	if errors.Is(err, common.ErrNotLoggedIn) {
		return nil, common.NewUserError("no user logged in; run 'fintrack login <email>' first", err)
	}
	return sess, err
}

// buildVerifier picks the credential checker: the auth.users config map when
// present, otherwise anyone may log in.
func buildVerifier() session.Verifier {
	users := viper.GetStringMapString("auth.users")
	if len(users) == 0 {
		return session.OpenVerifier{}
	}
	return session.NewStaticVerifier(users)
}

// renderError styles an error for terminal display. Expected user mistakes
// (bad input, duplicates, missing login) render as warnings rather than
// failures; nothing here is fatal to the stored data.
func renderError(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrDuplicateEntry),
		errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrImport),
		errors.Is(err, common.ErrNotLoggedIn),
		errors.Is(err, common.ErrInvalidCredentials):
		return cli.WarningStyle.Render(err.Error())
	default:
		return cli.ErrorStyle.Render("Error: " + err.Error())
	}
}
