package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/session"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Select the user whose data to work with",
		Long: `Bind an email address as the active user. All transactions and budgets
are stored per email. When an auth.users section exists in the config, the
password is checked against it; otherwise any email is accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if password == "" {
				password = viper.GetString("password")
			}

			sess, err := session.Login(ctx, store, buildVerifier(), args[0], password)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Logged in as %s (display currency %s)", sess.UserID, sess.Currency)))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (also FINTRACK_PASSWORD)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Unbind the active user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := session.Logout(ctx, store); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active user and display currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			sess, err := requireSession(ctx, store)
			if err != nil {
				return err
			}

			fmt.Printf("%s (display currency %s)\n", sess.UserID, sess.Currency)
			return nil
		},
	}
}
