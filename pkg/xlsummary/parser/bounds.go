package parser

// findDataBounds finds the last row and column index holding a non-empty cell.
// Both are -1 when no cell holds data.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			maxRow = max(maxRow, rowIdx)
			maxCol = max(maxCol, colIdx)
		}
	}

	return
}
