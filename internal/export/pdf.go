package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"ledgerd/internal/core"
)

const (
	descriptionChars = 30
	categoryChars    = 20
)

// BuildPDF renders the transaction history as a paginated PDF report. The
// summary block is included when summary is non-nil.
func BuildPDF(txs []core.Transaction, summary *core.Summary, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transaction Report", false)
	pdf.SetAuthor("Finance Tracker", false)
	pdf.AddPage()

	// Header section
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Transaction Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+now.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	if summary != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		pdf.SetFillColor(240, 240, 240)
		summaryRow(pdf, "Total Credits:", summary.TotalCredits, true)
		summaryRow(pdf, "Total Debits:", summary.TotalDebits, false)
		summaryRow(pdf, "Net Balance:", summary.NetBalance, true)
		pdf.Ln(12)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Transaction History", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{22, 60, 35, 20, 25}
	header := []string{"Date", "Description", "Category", "Type", "Amount"}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range header {
		pdf.CellFormat(colWidths[i], 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 8)
	fill := false
	for _, tx := range txs {
		if fill {
			pdf.SetFillColor(240, 240, 240)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(colWidths[0], 6, tx.Date.String(), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 6, truncate(tx.Description, descriptionChars), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 6, truncate(tx.Category, categoryChars), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 6, tx.Type.Label(), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%.2f", tx.Amount), "1", 1, "R", fill, 0, "")
		fill = !fill
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 6, "End of report", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func summaryRow(pdf *gofpdf.Fpdf, label string, value float64, fill bool) {
	pdf.CellFormat(60, 8, label, "1", 0, "L", fill, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", value), "1", 1, "R", fill, 0, "")
}

// truncate cuts s to max characters with an ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
