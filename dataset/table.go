// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// table walks a headed CSV stream row by row with cells looked up by
// column name.
type table struct {
	name string
	r    *csv.Reader
	cols map[string]int
	rec  []string
	row  int
}

func newTable(name string, r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w: empty file", name, ErrMissingColumn)
		}
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%s: %w: %s", name, ErrMissingColumn, c)
		}
	}
	return &table{name: name, r: cr, cols: cols}, nil
}

// next advances to the following row. It returns false at end of input.
func (t *table) next() (bool, error) {
	rec, err := t.r.Read()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	t.row++
	if err != nil {
		return false, &ParseError{File: t.name, Row: t.row, Err: err}
	}
	t.rec = rec
	return true, nil
}

func (t *table) has(col string) bool {
	_, ok := t.cols[col]
	return ok
}

// get returns the trimmed cell of col, or "" if the row is short or the
// column absent.
func (t *table) get(col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(t.rec) {
		return ""
	}
	return strings.TrimSpace(t.rec[i])
}

func (t *table) fail(col string, err error) error {
	return &ParseError{File: t.name, Row: t.row, Column: col, Err: err}
}

// float parses a required numeric cell.
func (t *table) float(col string) (float64, error) {
	v, err := parseNumber(t.get(col))
	if err != nil {
		return 0, t.fail(col, err)
	}
	return v, nil
}

// optionalFloat parses a numeric cell that may be empty or absent (0).
func (t *table) optionalFloat(col string) (float64, error) {
	if t.get(col) == "" {
		return 0, nil
	}
	return t.float(col)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
