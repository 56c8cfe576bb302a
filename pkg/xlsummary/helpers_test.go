package xlsummary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetSpec describes a fixture sheet: cell name to value.
type sheetSpec struct {
	name  string
	cells map[string]interface{}
}

// writeWorkbook saves a workbook with the given sheets, in order, and returns its path.
func writeWorkbook(t *testing.T, dir, fileName string, sheets ...sheetSpec) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, spec := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", spec.name))
		} else {
			_, err := f.NewSheet(spec.name)
			require.NoError(t, err)
		}
		for cell, value := range spec.cells {
			require.NoError(t, f.SetCellValue(spec.name, cell, value))
		}
	}

	path := filepath.Join(dir, fileName)
	require.NoError(t, f.SaveAs(path))
	return path
}

// setCell opens path, sets one cell and saves.
func setCell(t *testing.T, path, sheet, cell string, value interface{}) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.SetCellValue(sheet, cell, value))
	require.NoError(t, f.Save())
}

// readSheetRows returns the formatted rows of a sheet in the file at path.
func readSheetRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func sheetList(t *testing.T, path string) []string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	return f.GetSheetList()
}

func writeGarbage(t *testing.T, dir, fileName string) string {
	t.Helper()

	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))
	return path
}
