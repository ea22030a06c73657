// Package exchange implements the CSV import/export formats for
// transactions, including the spreadsheet formula-injection escaping applied
// on export.
package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// Header is the canonical column set shared by export and import.
var Header = []string{"ID", "Amount", "Category", "Type", "Date", "Notes", "Created At"}

var ErrNotCSV = errors.New("file must be a .csv")

// EscapeCell neutralizes spreadsheet formula injection: a value whose first
// character is one of = + - @ is prefixed with an apostrophe so spreadsheet
// software treats it as text. Stored data is never modified, only the
// exported representation.
func EscapeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// Export writes the transaction set as CSV. Rows keep the order they are
// given in (the caller passes the filtered, date-descending set).
func Export(w io.Writer, transactions []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			EscapeCell(t.Category),
			string(t.Type),
			t.Date,
			EscapeCell(t.Notes),
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFilename suggests a download filename embedding the date range, or
// the given date when no range is set.
func ExportFilename(r core.DateRange, now time.Time) string {
	if r.IsSet() {
		return fmt.Sprintf("transactions_%s_to_%s.csv", r.Start, r.End)
	}
	return fmt.Sprintf("transactions_%s.csv", now.Format(core.DateLayout))
}

// ImportResult accounts for a best-effort import: one bad row never aborts
// the batch.
type ImportResult struct {
	Transactions []core.Transaction
	Skipped      int
}

// Rows reports the total number of data rows inspected.
func (r ImportResult) Rows() int {
	return len(r.Transactions) + r.Skipped
}

// Import parses CSV content keyed by the export header names. Each row is
// validated independently: rows with a missing required field, a non-numeric
// amount, an unknown type, or a malformed date are counted as skipped.
// A file-level parse failure returns an error and no rows.
func Import(r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return ImportResult{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var result ImportResult
	for _, record := range records[1:] {
		amountStr := field(record, "Amount")
		category := field(record, "Category")
		typeStr := field(record, "Type")
		dateStr := field(record, "Date")

		if amountStr == "" || category == "" || typeStr == "" || dateStr == "" {
			result.Skipped++
			continue
		}
		amount, err := core.ParseAmount(amountStr)
		if err != nil {
			result.Skipped++
			continue
		}
		txType, err := core.ParseTransactionType(typeStr)
		if err != nil {
			result.Skipped++
			continue
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			result.Skipped++
			continue
		}

		result.Transactions = append(result.Transactions, core.Transaction{
			Amount:   amount,
			Category: category,
			Type:     txType,
			Date:     date,
			Notes:    field(record, "Notes"),
		})
	}

	return result, nil
}

// ValidateFilename checks the upload carries a .csv extension.
func ValidateFilename(name string) error {
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return ErrNotCSV
	}
	return nil
}
