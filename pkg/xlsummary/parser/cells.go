// Package parser reads and writes worksheet content through excelize.
package parser

import (
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the occupied area of a sheet as a rectangular grid anchored at A1.
// Trailing empty rows are dropped and every row is padded to the used width.
// A sheet without data yields a nil grid.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return gridFromRows(rows, func(col, row int, raw string) models.Value {
		return cellValue(f, sheetName, col, row, raw)
	}), nil
}

// gridFromRows builds the grid, classifying each raw cell with value (1-based col, row).
func gridFromRows(rows [][]string, value func(col, row int, raw string) models.Value) models.Grid {
	maxRow, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil
	}

	grid := make(models.Grid, maxRow+1)
	for rowIdx := range grid {
		cells := make([]models.Value, maxCol+1)
		if rowIdx < len(rows) {
			for colIdx, raw := range rows[rowIdx] {
				if colIdx > maxCol {
					break
				}
				cells[colIdx] = value(colIdx+1, rowIdx+1, raw)
			}
		}
		grid[rowIdx] = cells
	}
	return grid
}
