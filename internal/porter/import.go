// Package porter moves user data in and out of the tracker as JSON files.
package porter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/verdantfin/fintrack/internal/common"
	"github.com/verdantfin/fintrack/internal/model"
)

// Rejection explains why one record of an import file was not accepted.
type Rejection struct {
	Index  int
	Reason string
}

// Result is the outcome of an import: the accepted transactions plus an
// audit trail of everything that was dropped. Records are never silently
// filtered.
type Result struct {
	Accepted []model.Transaction
	Rejected []Rejection
}

// Import reads a JSON export file and validates each record. The file must
// carry a "transactions" array, and a record is accepted only with non-empty
// id, amount, description, category, type, and date. Files yielding zero
// accepted records are an error; the caller's existing data stays untouched
// on any failure.
func Import(r io.Reader) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file: %v", common.ErrImport, err)
	}

	var doc struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", common.ErrImport, err)
	}
	if doc.Transactions == nil {
		return nil, fmt.Errorf("%w: file does not contain a transactions array", common.ErrImport)
	}

	result := &Result{}
	for i, rawTxn := range doc.Transactions {
		txn, reason := decodeRecord(rawTxn)
		if reason != "" {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Reason: reason})
			continue
		}
		result.Accepted = append(result.Accepted, txn)
	}

	if len(result.Accepted) == 0 {
		return nil, fmt.Errorf("%w: no valid transactions found in the file", common.ErrImport)
	}
	return result, nil
}

// decodeRecord validates one raw import record, returning a normalized
// transaction or a human-readable rejection reason.
func decodeRecord(raw json.RawMessage) (model.Transaction, string) {
	var t model.Transaction
	if err := json.Unmarshal(raw, &t); err != nil {
		return model.Transaction{}, fmt.Sprintf("not a transaction object: %v", err)
	}

	var missing []string
	if t.ID == "" {
		missing = append(missing, "id")
	}
	if t.Amount == 0 {
		missing = append(missing, "amount")
	}
	if t.Description == "" {
		missing = append(missing, "description")
	}
	if t.Category == "" {
		missing = append(missing, "category")
	}
	if t.Type == "" {
		missing = append(missing, "type")
	}
	if t.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return model.Transaction{}, "missing " + strings.Join(missing, ", ")
	}

	if _, err := model.ParseTransactionType(string(t.Type)); err != nil {
		return model.Transaction{}, err.Error()
	}

	// Older exports carried only amount; backfill the authoritative pair.
	if t.OriginalAmount == 0 {
		t.OriginalAmount = t.Amount
	}
	if t.OriginalCurrency == "" {
		t.OriginalCurrency = model.CurrencyUSD
	}
	return t, ""
}
