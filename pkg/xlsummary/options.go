// Package xlsummary maintains a Summary sheet in spreadsheet workbooks.
package xlsummary

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/parser"
	"go.uber.org/zap"
)

// DefaultSummarySheet is the name of the sheet that aggregates the others.
const DefaultSummarySheet = "Summary"

// DefaultExtensions lists the workbook file extensions processed by default.
var DefaultExtensions = []string{".xlsx", ".xlsm"}

// Options configures Summary maintenance.
type Options struct {
	// SummarySheet is the name of the aggregating sheet.
	SummarySheet string
	// Label is the caption whose right neighbour holds the unit cost.
	Label string
	// FallbackCell is read when no label is found, e.g. "H4".
	FallbackCell string
	// Extensions selects workbook files in a folder (case-insensitive).
	Extensions []string
	// DryRun computes and reports changes without saving.
	DryRun bool
	// Logger receives diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		SummarySheet: DefaultSummarySheet,
		Label:        parser.DefaultLabel,
		FallbackCell: parser.DefaultFallbackCell,
		Extensions:   append([]string(nil), DefaultExtensions...),
	}
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if strings.TrimSpace(o.SummarySheet) == "" {
		return fmt.Errorf("%w: empty summary sheet name", ErrInvalidOptions)
	}
	if o.Label == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidOptions)
	}
	if _, _, err := parser.ParseCellReference(o.FallbackCell); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// ExtractParams converts the options into value extractor parameters.
func (o Options) ExtractParams() (parser.ExtractParams, error) {
	if err := o.Validate(); err != nil {
		return parser.ExtractParams{}, err
	}
	col, row, _ := parser.ParseCellReference(o.FallbackCell)
	return parser.ExtractParams{
		Label:       o.Label,
		FallbackCol: col,
		FallbackRow: row,
	}, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// matchesExtension reports whether name ends with one of the configured extensions.
func (o Options) matchesExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range o.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
