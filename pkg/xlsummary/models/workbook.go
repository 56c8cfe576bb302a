package models

// WorkbookResult is the outcome of updating one workbook.
type WorkbookResult struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Changes lists what differs from the previous run.
	Changes ChangeSet
	// Summary is the snapshot now persisted in the Summary sheet.
	Summary Snapshot
	// Created is true when the Summary sheet did not exist before.
	Created bool
	// Saved is false for dry runs.
	Saved bool
}

// BatchFailure records a workbook that could not be processed.
type BatchFailure struct {
	BookName string
	Err      error
}

// BatchResult aggregates one folder run.
type BatchResult struct {
	// Directory is the folder that was scanned.
	Directory string
	// Files lists the matching workbook names in processing order.
	Files     []string
	Succeeded []WorkbookResult
	Failed    []BatchFailure
}

// OK reports whether every workbook was processed.
func (r BatchResult) OK() bool {
	return len(r.Failed) == 0
}
