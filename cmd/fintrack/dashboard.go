package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, category breakdown, monthly trend, and recent activity",
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

			summary := engine.Summarize(txns, sess.Currency)

			fmt.Println(cli.TitleStyle.Render("Dashboard for " + sess.UserID))

			balanceStyle := cli.IncomeStyle
			if summary.NetBalance < 0 {
				balanceStyle = cli.ExpenseStyle
			}
			fmt.Printf("%s  %s\n", cli.SubtleStyle.Render("Total Income:  "),
				cli.IncomeStyle.Render(currency.Format(summary.TotalIncome, sess.Currency)))
			fmt.Printf("%s  %s\n", cli.SubtleStyle.Render("Total Expenses:"),
				cli.ExpenseStyle.Render(currency.Format(summary.TotalExpenses, sess.Currency)))
			fmt.Printf("%s  %s\n\n", cli.SubtleStyle.Render("Net Balance:   "),
				balanceStyle.Render(currency.Format(summary.NetBalance, sess.Currency)))

			top := engine.TopCategories(txns, sess.Currency, 5)
			if len(top) > 0 {
				fmt.Println(cli.BoldStyle.Render("Expenses by Category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, c := range top {
					fmt.Fprintf(w, "  %s\t%s\n", c.Category, currency.Format(c.Amount, sess.Currency))
				}
				_ = w.Flush()
				fmt.Println()
			}

			trend := engine.MonthlyTrend(txns, sess.Currency)
			if len(trend) > 0 {
				fmt.Println(cli.BoldStyle.Render("Monthly Trend"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "  MONTH\tINCOME\tEXPENSES")
				for _, row := range trend {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Month,
						currency.Format(row.Income, sess.Currency),
						currency.Format(row.Expenses, sess.Currency))
				}
				_ = w.Flush()
				fmt.Println()
			}

			recent := engine.Recent(txns, 5)
			if len(recent) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet"))
				return nil
			}

			fmt.Println(cli.BoldStyle.Render("Recent Transactions"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, t := range recent {
				sign := "-"
				style := cli.ExpenseStyle
				if t.Type == model.TypeIncome {
					sign = "+"
					style = cli.IncomeStyle
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
					t.Date, t.Description, cli.SubtleStyle.Render(t.Category),
					style.Render(sign+currency.Format(currency.ToDisplay(t, sess.Currency), sess.Currency)))
			}
			return w.Flush()
		},
	}
}
