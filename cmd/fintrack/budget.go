package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/budget"
	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category spending budgets",
		Long:  `Set, edit, delete, and review per-category spending limits compared against the current month's expenses.`,
	}

	cmd.AddCommand(budgetAddCmd())
	cmd.AddCommand(budgetEditCmd())
	cmd.AddCommand(budgetDeleteCmd())
	cmd.AddCommand(budgetListCmd())

	return cmd
}

func budgetAddCmd() *cobra.Command {
	var (
		category string
		amount   float64
		period   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Set a budget for a category",
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

			tracker := budget.NewTracker(store)
			b, err := tracker.Add(ctx, sess.UserID, category, amount, model.BudgetPeriod(period), sess.Currency)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget of %s set for %s",
				currency.Format(b.Amount, b.Currency), b.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category to cap (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "spending limit in the current display currency (required)")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "monthly, weekly, or yearly")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetEditCmd() *cobra.Command {
	var (
		amount float64
		period string
	)

	cmd := &cobra.Command{
		Use:   "edit <budget-id>",
		Short: "Change a budget's amount or period",
		Long:  `Update the limit or period of an existing budget. The category cannot be changed; delete and re-add instead.`,
		Args:  cobra.ExactArgs(1),
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

			tracker := budget.NewTracker(store)
			b, err := tracker.Edit(ctx, sess.UserID, args[0], amount, model.BudgetPeriod(period))
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %s updated to %s",
				b.Category, currency.Format(b.Amount, b.Currency))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new spending limit (required)")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "monthly, weekly, or yearly")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <budget-id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
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

			tracker := budget.NewTracker(store)
			if err := tracker.Delete(ctx, sess.UserID, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Budget deleted"))
			return nil
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with this month's spend",
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

			txns, err := store.LoadTransactions(ctx, sess.UserID)
			if err != nil {
				return err
			}

			tracker := budget.NewTracker(store)
			progress, err := tracker.List(ctx, sess.UserID, txns, sess.Currency, time.Now())
			if err != nil {
				return err
			}

			if len(progress) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'fintrack budget add' to create one."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Budgets (current month)"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tLIMIT\tSPENT\tREMAINING\tUSED\tSTATUS\tID")
			for _, p := range progress {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\t%s\n",
					p.Budget.Category,
					currency.Format(p.Limit, sess.Currency),
					currency.Format(p.Spent, sess.Currency),
					currency.Format(p.Remaining, sess.Currency),
					p.Percent,
					statusStyle(p.Status).Render(string(p.Status)),
					cli.SubtleStyle.Render(p.Budget.ID))
			}
			return w.Flush()
		},
	}
}

func statusStyle(s model.BudgetStatus) lipgloss.Style {
	switch s {
	case model.StatusOverBudget:
		return cli.ErrorStyle
	case model.StatusNearLimit:
		return cli.WarningStyle
	default:
		return cli.SuccessStyle
	}
}
