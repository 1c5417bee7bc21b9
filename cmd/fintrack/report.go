package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		periodKey string
		format    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export transactions as a CSV table or text summary",
		Long: `Filter the active user's transactions to a period and write a report.
CSV output is a flat quoted table with locale-formatted amounts; text output
is a fixed-layout summary with totals and top spending categories. By default
the file lands in the current directory with a dated name; use --output to
choose a path, or "-" for stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

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
			filtered := engine.Recent(engine.FilterByPeriod(txns, period, now), -1)

			var content, filename string
			switch format {
			case "csv":
				content = report.CSV(filtered, sess.Currency)
				filename = report.CSVFilename(period, now)
			case "text":
				content = report.TextSummary(filtered, sess.Currency, period.Label(), now)
				filename = report.TextFilename(period, now)
			default:
				return common.ValidationError("unknown report format %q, want csv or text", format)
			}

			if output == "-" {
				fmt.Println(content)
				return nil
			}
			if output != "" {
				filename = output
			}

			if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
				return fmt.Errorf("%w: writing report: %v", common.ErrPersistence, err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Report written to %s (%d transactions)", filename, len(filtered))))
			return nil
		},
	}

	cmd.Flags().StringVar(&periodKey, "period", string(engine.PeriodAllTime),
		"period filter (current_month, last_month, last_3_months, last_6_months, this_year, all_time)")
	cmd.Flags().StringVar(&format, "format", "csv", "report format (csv or text)")
	cmd.Flags().StringVar(&output, "output", "", "output path, or - for stdout")

	return cmd
}
