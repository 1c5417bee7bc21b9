package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amount      float64
		curCode     string
		description string
		category    string
		txnType     string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction for the active user.
The date is the date of occurrence, not of entry; it defaults to today.

Standard categories: ` + strings.Join(model.Categories, ", "),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if amount <= 0 {
				return common.ValidationError("amount must be positive, got %v", amount)
			}
			if strings.TrimSpace(description) == "" {
				return common.ValidationError("description is required")
			}
			if category == "" {
				return common.ValidationError("category is required")
			}
			cur, err := model.ParseCurrency(curCode)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrValidation, err)
			}
			typ, err := model.ParseTransactionType(txnType)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrValidation, err)
			}
			if date == "" {
				date = time.Now().Format(model.DateLayout)
			}
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				return common.ValidationError("invalid date %q, want YYYY-MM-DD", date)
			}

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

			txn := model.Transaction{
				ID:               uuid.NewString(),
				Amount:           amount,
				OriginalAmount:   amount,
				OriginalCurrency: cur,
				Description:      description,
				Category:         category,
				Type:             typ,
				Date:             date,
			}
			if err := txn.Validate(); err != nil {
				return fmt.Errorf("%w: %v", common.ErrValidation, err)
			}

			if err := store.SaveTransactions(ctx, sess.UserID, append(txns, txn)); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s of %s for %s",
				typ, currency.Format(amount, cur), category)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "transaction amount (required)")
	cmd.Flags().StringVar(&curCode, "currency", "USD", "currency the amount is in (USD or INR)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for (required)")
	cmd.Flags().StringVar(&category, "category", "", "category label (required)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&date, "date", "", "date of occurrence, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listCmd() *cobra.Command {
	var periodKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
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

			period := engine.Period(periodKey)
			filtered := engine.FilterByPeriod(txns, period, time.Now())
			sorted := engine.Recent(filtered, -1)

			if len(sorted) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'fintrack add' to record one."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Transactions (%s)", period.Label())))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tTYPE\tAMOUNT\tID")
			for _, t := range sorted {
				amount := currency.Format(currency.ToDisplay(t, sess.Currency), sess.Currency)
				sign := "-"
				if t.Type == model.TypeIncome {
					sign = "+"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%s\t%s\n",
					t.Date, t.Description, t.Category, t.Type, sign, amount, t.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&periodKey, "period", string(engine.PeriodAllTime),
		"period filter (current_month, last_month, last_3_months, last_6_months, this_year, all_time)")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

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

			kept := txns[:0]
			for _, t := range txns {
				if t.ID != id {
					kept = append(kept, t)
				}
			}
			if len(kept) == len(txns) {
				return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
			}

			if err := store.SaveTransactions(ctx, sess.UserID, kept); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Transaction deleted"))
			return nil
		},
	}
}
