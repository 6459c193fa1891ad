package record

import (
	"errors"
	"fmt"
)

// Errors returned by the record loaders.
var (
	// ErrUnsupportedFormat indicates a file extension or format name no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported record format")

	// ErrNotArray indicates the top-level document is not a list of records.
	ErrNotArray = errors.New("records must be a top-level array")

	// ErrNotObject indicates a list element is not a key/value object.
	ErrNotObject = errors.New("record must be an object")

	// ErrNoSheet indicates a workbook without the requested sheet.
	ErrNoSheet = errors.New("sheet not found")
)

// ParseError reports a malformed record source.
type ParseError struct {
	// Source names the input (file path or format name).
	Source string
	// Index is the 0-based record index, or -1 when the error is not tied to one record.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("parse %s: record %d: %v", e.Source, e.Index, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
