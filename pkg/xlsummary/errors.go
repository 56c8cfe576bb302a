package xlsummary

import (
	"errors"
	"fmt"
)

// ErrNoDirectory indicates the batch input is missing or not a directory.
var ErrNoDirectory = errors.New("not a directory")

// ErrInvalidOptions indicates the options cannot drive an update.
var ErrInvalidOptions = errors.New("invalid options")

// Stage names the step of a workbook update that failed.
type Stage string

const (
	StageOpen  Stage = "open"
	StageRead  Stage = "read"
	StageWrite Stage = "write"
	StageSave  Stage = "save"
	StageClose Stage = "close"
)

// WorkbookError represents a failure while updating one workbook.
type WorkbookError struct {
	File  string
	Stage Stage
	Err   error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.File, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// NewWorkbookError creates a new WorkbookError.
func NewWorkbookError(file string, stage Stage, err error) *WorkbookError {
	return &WorkbookError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
