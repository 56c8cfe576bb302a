package parser

import (
	"unicode/utf8"

	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/xuri/excelize/v2"
)

// Column width bounds, in characters.
const (
	minColWidth = 8
	maxColWidth = 60
	colPadding  = 2
)

// FitColumns sizes columns A and B to the widest header or value they hold.
func FitColumns(f *excelize.File, sheetName string, snapshot models.Snapshot) error {
	widths := []int{
		utf8.RuneCountInString(HeaderSheetName),
		utf8.RuneCountInString(HeaderUnitCost),
	}
	for _, rec := range snapshot {
		widths[0] = max(widths[0], utf8.RuneCountInString(rec.Name))
		if !rec.UnitCost.IsUnknown() {
			widths[1] = max(widths[1], utf8.RuneCountInString(rec.UnitCost.String()))
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(clampWidth(w+colPadding))); err != nil {
			return err
		}
	}
	return nil
}

func clampWidth(w int) int {
	return min(max(w, minColWidth), maxColWidth)
}
