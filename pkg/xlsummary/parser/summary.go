package parser

import (
	"fmt"

	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/xuri/excelize/v2"
)

// Summary sheet column captions written to row 1.
const (
	HeaderSheetName = "Sheet Name"
	HeaderUnitCost  = "Unit Cost"
)

// EnsureSummarySheet makes sure the named sheet exists, creating it as the
// first sheet of the workbook when absent.
func EnsureSummarySheet(f *excelize.File, sheetName string) (created bool, err error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return false, err
	}
	if idx != -1 {
		return false, nil
	}

	existing := f.GetSheetList()
	if _, err := f.NewSheet(sheetName); err != nil {
		return false, fmt.Errorf("create sheet %q: %w", sheetName, err)
	}
	if len(existing) > 0 {
		if err := f.MoveSheet(sheetName, existing[0]); err != nil {
			return false, fmt.Errorf("move sheet %q first: %w", sheetName, err)
		}
	}
	return true, nil
}

// ReadSummary reads the records stored below the header row.
// Reading stops at the first row whose name column is blank.
func ReadSummary(f *excelize.File, sheetName string) (models.Snapshot, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var snapshot models.Snapshot
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 || row[0] == "" {
			break
		}
		var raw string
		if len(row) > 1 {
			raw = row[1]
		}
		snapshot = append(snapshot, models.SheetRecord{
			Name:     row[0],
			UnitCost: cellValue(f, sheetName, 2, rowIdx+1, raw),
		})
	}
	return snapshot, nil
}

// WriteSummary overwrites columns A and B of the sheet with the header and
// one row per record starting at row 2. Leftover rows from a longer previous
// summary are cleared. Other columns are left as they are.
func WriteSummary(f *excelize.File, sheetName string, snapshot models.Snapshot) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	lastRow := len(rows)

	header := []interface{}{HeaderSheetName, HeaderUnitCost}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, rec := range snapshot {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{rec.Name, rec.UnitCost.Interface()}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	for rowNum := len(snapshot) + 2; rowNum <= lastRow; rowNum++ {
		for col := 1; col <= 2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, nil); err != nil {
				return err
			}
		}
	}

	return FitColumns(f, sheetName, snapshot)
}
