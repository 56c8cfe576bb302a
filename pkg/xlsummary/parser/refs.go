package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseCellReference parses a single-cell reference into 1-based coordinates.
// Accepted forms: H4, $H$4, Sheet!H4 and 'My Sheet'!$H$4. The sheet part is ignored.
func ParseCellReference(ref string) (col, row int, err error) {
	cell := strings.TrimSpace(ref)
	if idx := strings.LastIndex(cell, "!"); idx >= 0 {
		cell = cell[idx+1:]
	}
	cell = strings.ReplaceAll(cell, "$", "")
	if cell == "" || strings.Contains(cell, ":") {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	col, row, err = excelize.CellNameToCoordinates(cell)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}
	return col, row, nil
}
