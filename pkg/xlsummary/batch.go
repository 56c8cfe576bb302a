package xlsummary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
	"go.uber.org/zap"
)

// lockFilePrefix marks the owner files Office keeps next to open workbooks.
const lockFilePrefix = "~$"

// Reporter receives batch progress for display.
type Reporter interface {
	Found(dir string, files []string)
	Processing(bookName string)
	Updated(result models.WorkbookResult)
	Failed(bookName string, err error)
}

// ExecutableDirectory returns the directory of the running binary.
func ExecutableDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ListWorkbooks returns the names of workbook files directly inside dir, sorted.
func ListWorkbooks(dir string, opts Options) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(name, lockFilePrefix) || strings.HasPrefix(name, tempFilePrefix) {
			continue
		}
		if opts.matchesExtension(name) {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files, nil
}

// ProcessFolder updates every workbook in dir, one after another.
// A failing workbook is reported and logged and the batch moves on.
// Cancelling ctx stops the batch before the next workbook is opened.
func ProcessFolder(ctx context.Context, dir string, opts Options, reporter Reporter) (*models.BatchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	files, err := ListWorkbooks(dir, opts)
	if err != nil {
		return nil, err
	}
	reporter.Found(dir, files)
	log.Info("workbooks found", zap.String("directory", dir), zap.Int("count", len(files)))

	result := &models.BatchResult{Directory: dir, Files: files}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		reporter.Processing(name)
		wb, err := UpdateWorkbook(filepath.Join(dir, name), opts)
		if err != nil {
			log.Error("workbook update failed", zap.String("book", name), zap.Error(err))
			reporter.Failed(name, err)
			result.Failed = append(result.Failed, models.BatchFailure{BookName: name, Err: err})
			continue
		}

		reporter.Updated(*wb)
		result.Succeeded = append(result.Succeeded, *wb)
	}

	return result, nil
}
