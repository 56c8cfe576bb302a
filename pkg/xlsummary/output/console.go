// Package output renders Summary maintenance progress for humans.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
)

// Console writes a plain-text report, coloured only when w is a terminal.
type Console struct {
	w       io.Writer
	ok      lipgloss.Style
	fail    lipgloss.Style
	heading lipgloss.Style
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		heading: r.NewStyle().Bold(true),
	}
}

// Found prints how many workbooks the folder holds.
func (c *Console) Found(dir string, files []string) {
	fmt.Fprintf(c.w, "Found %d Excel files in '%s'\n", len(files), dir)
}

// Processing announces the workbook about to be updated.
func (c *Console) Processing(bookName string) {
	fmt.Fprintf(c.w, "\nProcessing: %s\n", bookName)
}

// Updated prints the change set, the persisted summary and the success marker.
func (c *Console) Updated(result models.WorkbookResult) {
	WriteChanges(c.w, result.Changes)

	fmt.Fprintf(c.w, "  %s\n", c.heading.Render("[Summary Sheet]"))
	WriteSnapshot(c.w, result.Summary)

	if result.Saved {
		fmt.Fprintf(c.w, "  %s Summary updated.\n\n", c.ok.Render("[OK]"))
		return
	}
	fmt.Fprintf(c.w, "  %s Summary checked, not saved (dry run).\n\n", c.ok.Render("[OK]"))
}

// Failed prints the failure marker with the workbook name and error.
func (c *Console) Failed(bookName string, err error) {
	fmt.Fprintf(c.w, "  %s %s: %v\n", c.fail.Render("[FAIL]"), bookName, err)
}

// WriteChanges prints one line per updated, added and removed sheet.
func WriteChanges(w io.Writer, changes models.ChangeSet) {
	for _, u := range changes.Updated {
		fmt.Fprintf(w, "  Updated: %s | %s → %s\n", u.Name, u.Old, u.New)
	}
	for _, rec := range changes.Added {
		fmt.Fprintf(w, "  Added: %s | %s\n", rec.Name, rec.UnitCost)
	}
	for _, rec := range changes.Removed {
		fmt.Fprintf(w, "  Removed: %s | %s\n", rec.Name, rec.UnitCost)
	}
}

// WriteSnapshot prints the summary table, tab separated.
func WriteSnapshot(w io.Writer, snapshot models.Snapshot) {
	fmt.Fprintf(w, "  Sheet Name\tUnit Cost\n")
	for _, rec := range snapshot {
		fmt.Fprintf(w, "  %s\t%s\n", rec.Name, rec.UnitCost)
	}
}
