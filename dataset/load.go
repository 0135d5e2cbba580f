// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mcfscore/mcfscore/flow"
)

// LoadSolution reads a solution file, choosing the format by extension:
// ".json" for a structured document, ".csv" for flat paths. Row issues are
// only produced by the CSV form.
func LoadSolution(path string) (flow.Set, []RowIssue, error) {
	var (
		set    flow.Set
		issues []RowIssue
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err := readFile(path, func(r io.Reader) error {
			doc, err := DecodeDocument(r)
			if err != nil {
				return err
			}
			set, err = doc.Set()
			return err
		})
		return set, nil, err
	case ".csv":
		err := readFile(path, func(r io.Reader) (err error) {
			set, issues, err = ReadPaths(r)
			return err
		})
		return set, issues, err
	default:
		return flow.Set{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
