package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/model"
	"github.com/verdantfin/fintrack/internal/session"
)

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [USD|INR]",
		Short: "Show or set the display currency",
		Long: `With no argument, print the current display currency. With one, switch
it: every dashboard, budget, and report amount is converted into the display
currency before rendering. The choice persists across sessions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if len(args) == 0 {
				fmt.Printf("%s (%s)\n", sess.Currency, sess.Currency.Symbol())
				return nil
			}

			cur, err := model.ParseCurrency(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrValidation, err)
			}

			if err := session.SetCurrency(ctx, store, cur); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Display currency set to " + string(cur)))
			return nil
		},
	}
}
