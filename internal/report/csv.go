// Package report renders a filtered transaction set into exportable text:
// a flat CSV table or a fixed-layout summary.
package report

import (
	"strings"

	"github.com/verdantfin/fintrack/internal/currency"
	"github.com/verdantfin/fintrack/internal/model"
)

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{
	"Date",
	"Description",
	"Category",
	"Type",
	"Amount",
	"Original Amount",
	"Original Currency",
}

// CSV renders transactions as a comma-separated table, one row per
// transaction in input order. Every field is quote-wrapped, and amounts are
// rendered through locale-aware currency formatting. That makes the file
// pleasant to read in a spreadsheet and unsuitable for machine re-import;
// the JSON export exists for round-tripping.
func CSV(txns []model.Transaction, display model.Currency) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for _, t := range txns {
		writeRow(&b, []string{
			t.Date,
			t.Description,
			t.Category,
			string(t.Type),
			currency.Format(currency.ToDisplay(t, display), display),
			currency.Format(t.OriginalAmount, t.OriginalCurrency),
			string(t.OriginalCurrency),
		})
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
