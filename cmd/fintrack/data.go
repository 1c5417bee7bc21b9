package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantfin/fintrack/internal/cli"
	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/porter"
	"github.com/verdantfin/fintrack/internal/report"
)

func dataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import, or clear the active user's data",
	}

	cmd.AddCommand(dataExportCmd())
	cmd.AddCommand(dataImportCmd())
	cmd.AddCommand(dataClearCmd())

	return cmd
}

func dataExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all transactions as an indented JSON file",
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

			data, err := store.ExportData(ctx, sess.UserID)
			if err != nil {
				return err
			}
			if data == nil {
				fmt.Println(cli.InfoStyle.Render("Nothing to export yet"))
				return nil
			}

			out, err := porter.Export(data)
			if err != nil {
				return err
			}

			filename := output
			if filename == "" {
				filename = report.ExportFilename(sess.UserID, time.Now())
			}
			if filename == "-" {
				fmt.Println(string(out))
				return nil
			}

			if err := os.WriteFile(filename, out, 0600); err != nil {
				return fmt.Errorf("%w: writing export: %v", common.ErrPersistence, err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported %d transactions to %s", len(data.Transactions), filename)))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output path, or - for stdout")

	return cmd
}

func dataImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import transactions from a JSON export",
		Long: `Read a JSON export and replace the active user's transactions with its
contents. Each record must carry id, amount, description, category, type,
and date; anything else is rejected and reported. A file with no valid
records leaves existing data untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("%w: cannot read %s: %v", common.ErrImport, args[0], err)
			}
			defer func() { _ = f.Close() }()

			result, err := porter.Import(f)
			if err != nil {
				return err
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

			if err := store.SaveTransactions(ctx, sess.UserID, result.Accepted); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%d transactions imported", len(result.Accepted))))
			for _, rej := range result.Rejected {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("  record %d skipped: %s", rej.Index, rej.Reason)))
			}
			return nil
		},
	}
}

func dataClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data for the active user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				return common.ValidationError("refusing to clear without --force; this cannot be undone")
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

			if err := store.ClearUser(ctx, sess.UserID); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("All data cleared for " + sess.UserID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the deletion")

	return cmd
}
