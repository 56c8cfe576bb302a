package xlsummary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/parser"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/reconcile"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const tempFilePrefix = ".xlsummary-"

// UpdateWorkbook refreshes the Summary sheet of the workbook at path and saves it.
// The workbook is closed on every return path. The file on disk is replaced
// only after the new content has been written completely.
func UpdateWorkbook(path string, opts Options) (*models.WorkbookResult, error) {
	bookName := filepath.Base(path)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewWorkbookError(bookName, StageOpen, err)
	}

	result, err := UpdateBook(f, bookName, opts)
	if err == nil && !opts.DryRun {
		if saveErr := saveAtomic(f, path); saveErr != nil {
			err = NewWorkbookError(bookName, StageSave, saveErr)
		} else {
			result.Saved = true
		}
	}

	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = NewWorkbookError(bookName, StageClose, closeErr)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateBook refreshes the Summary sheet of an open workbook without saving it.
func UpdateBook(f *excelize.File, bookName string, opts Options) (*models.WorkbookResult, error) {
	params, err := opts.ExtractParams()
	if err != nil {
		return nil, err
	}
	log := opts.logger().With(zap.String("book", bookName))

	created, err := parser.EnsureSummarySheet(f, opts.SummarySheet)
	if err != nil {
		return nil, NewWorkbookError(bookName, StageWrite, err)
	}
	if created {
		log.Debug("summary sheet created", zap.String("sheet", opts.SummarySheet))
	}

	previous, err := parser.ReadSummary(f, opts.SummarySheet)
	if err != nil {
		return nil, NewWorkbookError(bookName, StageRead, err)
	}

	current := collectCurrent(f, opts.SummarySheet, params, log)
	changes, snapshot := reconcile.Reconcile(previous, current)

	if err := parser.WriteSummary(f, opts.SummarySheet, snapshot); err != nil {
		return nil, NewWorkbookError(bookName, StageWrite, err)
	}

	log.Debug("summary reconciled",
		zap.Strings("sheets", snapshot.Names()),
		zap.Bool("rewritten", !reconcile.Normalize(previous).Equal(snapshot)),
		zap.Int("updated", len(changes.Updated)),
		zap.Int("added", len(changes.Added)),
		zap.Int("removed", len(changes.Removed)),
	)

	return &models.WorkbookResult{
		BookName: bookName,
		Changes:  changes,
		Summary:  snapshot,
		Created:  created,
	}, nil
}

// collectCurrent extracts the unit cost of every sheet except the summary, in workbook order.
// Sheet names are compared case-insensitively, as Excel does.
func collectCurrent(f *excelize.File, summarySheet string, params parser.ExtractParams, log *zap.Logger) models.Snapshot {
	var current models.Snapshot
	for _, sheetName := range f.GetSheetList() {
		if strings.EqualFold(sheetName, summarySheet) {
			continue
		}
		value, err := parser.SheetUnitCost(f, sheetName, params)
		if err != nil {
			log.Debug("unit cost unavailable", zap.String("sheet", sheetName), zap.Error(err))
		}
		current = append(current, models.SheetRecord{Name: sheetName, UnitCost: value})
	}
	return current
}

// saveAtomic writes the workbook next to path and renames it into place.
func saveAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tempFilePrefix+"*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
			os.Remove(tmpPath)
			return err
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
