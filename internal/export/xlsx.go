package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ledgerd/internal/core"
)

const sheetName = "Transactions"

// BuildXLSX renders the collection as an Excel workbook with one sheet,
// same column order as the CSV export.
func BuildXLSX(txs []core.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range Header {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for idx, tx := range txs {
		row := idx + 2
		values := []any{
			tx.ID,
			tx.Date.String(),
			tx.Description,
			tx.Category,
			tx.Type.Label(),
			tx.Amount,
		}
		for i, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+i, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 36)
	_ = f.SetColWidth(sheetName, "B", "B", 12)
	_ = f.SetColWidth(sheetName, "C", "C", 30)
	_ = f.SetColWidth(sheetName, "D", "D", 22)
	_ = f.SetColWidth(sheetName, "E", "E", 8)
	_ = f.SetColWidth(sheetName, "F", "F", 12)

	return f, nil
}
