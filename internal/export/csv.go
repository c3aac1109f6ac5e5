// Package export renders transaction collections for download: CSV, XLSX
// and a paginated PDF report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"ledgerd/internal/core"
)

// Header is the fixed CSV/XLSX column order.
var Header = []string{"ID", "Date", "Description", "Category", "Type", "Amount"}

// Filename returns the date-stamped attachment name for an export.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("transactions_%s.%s", now.Format("20060102"), ext)
}

// WriteCSV streams the collection as CSV: a header row, then one row per
// transaction in the given order.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range txs {
		row := []string{
			tx.ID,
			tx.Date.String(),
			tx.Description,
			tx.Category,
			tx.Type.Label(),
			fmt.Sprintf("%.2f", tx.Amount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
