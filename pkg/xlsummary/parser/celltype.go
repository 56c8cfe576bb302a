package parser

import (
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/xuri/excelize/v2"
)

// typedValue classifies a raw cell string by the type stored in the cell.
// String, formula-string, date and error cells stay text; only untyped and
// number cells are parsed as numbers.
func typedValue(cellType excelize.CellType, raw string) models.Value {
	if raw == "" {
		return models.Unknown()
	}
	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || raw == "TRUE" || raw == "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate, excelize.CellTypeError:
		return models.Text(raw)
	default:
		return models.ParseValue(raw)
	}
}

// cellValue reads the type of the cell at 1-based (col, row) and classifies raw.
// When the type cannot be read the raw string is parsed as is.
func cellValue(f *excelize.File, sheetName string, col, row int, raw string) models.Value {
	if raw == "" {
		return models.Unknown()
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.ParseValue(raw)
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return models.ParseValue(raw)
	}
	return typedValue(cellType, raw)
}
