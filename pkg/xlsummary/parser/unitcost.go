package parser

import (
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/xuri/excelize/v2"
)

// DefaultLabel is the caption that precedes the unit cost on a sheet.
const DefaultLabel = "Unit Cost"

// DefaultFallbackCell is read when no label is found.
const DefaultFallbackCell = "H4"

// ExtractParams controls where the unit cost is looked up.
type ExtractParams struct {
	// Label is matched exactly against text cells.
	Label string
	// FallbackCol and FallbackRow locate the fixed cell (1-based).
	FallbackCol int
	FallbackRow int
}

// DefaultExtractParams returns the "Unit Cost" label with an H4 fallback.
func DefaultExtractParams() ExtractParams {
	return ExtractParams{
		Label:       DefaultLabel,
		FallbackCol: 8,
		FallbackRow: 4,
	}
}

// ExtractUnitCost returns the value right of the first label cell,
// scanning rows top to bottom and cells left to right.
// A label in the last grid column has no neighbour and is skipped.
// Without a usable label the fallback cell is returned; an empty grid is Unknown.
func ExtractUnitCost(grid models.Grid, params ExtractParams) models.Value {
	if len(grid) == 0 {
		return models.Unknown()
	}

	for _, row := range grid {
		for colIdx, cell := range row {
			text, ok := cell.Str()
			if !ok || text != params.Label {
				continue
			}
			if colIdx+1 < len(row) {
				return row[colIdx+1]
			}
		}
	}

	return grid.At(params.FallbackCol, params.FallbackRow)
}

// SheetUnitCost reads a sheet and extracts its unit cost.
// On a read failure the value is Unknown and the error is returned for logging only.
func SheetUnitCost(f *excelize.File, sheetName string, params ExtractParams) (models.Value, error) {
	grid, err := ReadGrid(f, sheetName)
	if err != nil {
		return models.Unknown(), err
	}
	return ExtractUnitCost(grid, params), nil
}
