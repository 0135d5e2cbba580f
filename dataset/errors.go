// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile indicates a required reference table is absent.
	ErrMissingFile = errors.New("dataset: required file not found")

	// ErrMissingColumn indicates a CSV header lacks a required column.
	ErrMissingColumn = errors.New("dataset: required column missing")

	// ErrBadNumber indicates a numeric cell is unparsable, NaN or infinite.
	ErrBadNumber = errors.New("dataset: bad number")

	// ErrBadPathNodes indicates a malformed path_nodes cell.
	ErrBadPathNodes = errors.New("dataset: malformed path_nodes")

	// ErrBadOfficeID indicates a JSON office id that is neither a string nor a number.
	ErrBadOfficeID = errors.New("dataset: office id must be a string or a number")

	// ErrUnsupportedFormat indicates a solution file with an unknown extension.
	ErrUnsupportedFormat = errors.New("dataset: unsupported solution format")
)

// ParseError locates a failure inside a CSV table. Row is the 1-based data
// row (the header is not counted); Column is empty for row-level failures.
type ParseError struct {
	File   string
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("%s row %d, column %s: %v", e.File, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RowIssue is a flat-path CSV row dropped while reading a solution.
type RowIssue struct {
	Row int
	Err error
}

func (r RowIssue) String() string {
	return fmt.Sprintf("row %d skipped: %v", r.Row, r.Err)
}
