package report

import (
	"fmt"
	"time"

	"github.com/verdantfin/fintrack/internal/engine"
	"github.com/verdantfin/fintrack/internal/model"
)

// CSVFilename names a CSV export: finance_report_<period>_<YYYY-MM-DD>.csv.
func CSVFilename(period engine.Period, now time.Time) string {
	return fmt.Sprintf("finance_report_%s_%s.csv", period, now.Format(model.DateLayout))
}

// TextFilename names a text export with the same pattern as CSVFilename.
func TextFilename(period engine.Period, now time.Time) string {
	return fmt.Sprintf("finance_report_%s_%s.txt", period, now.Format(model.DateLayout))
}

// ExportFilename names a JSON data export for a user.
func ExportFilename(userID string, now time.Time) string {
	return fmt.Sprintf("finance_data_%s_%s.json", userID, now.Format(model.DateLayout))
}
