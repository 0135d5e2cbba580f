// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcfscore/mcfscore/flow"
)

// PathsFile is the flat-path CSV written by WriteCSV.
const PathsFile = "paths.csv"

// ParsePathNodes parses a path_nodes cell such as "[101, 500, 202]" or
// "['Hub B', 101.5]". The surrounding brackets are optional and elements
// are comma separated. An element is either a bare run of letters, digits,
// '_', '-' or '.', or a non-empty string in single or double quotes where a
// backslash escapes the next quote or backslash. At least two elements are
// required. Anything else, expressions included, yields ErrBadPathNodes.
func ParsePathNodes(s string) ([]string, error) {
	body := strings.TrimSpace(s)
	lb, rb := strings.HasPrefix(body, "["), strings.HasSuffix(body, "]")
	if lb != rb {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrBadPathNodes, s)
	}
	if lb {
		body = body[1 : len(body)-1]
	}

	sc := nodeScanner{src: body}
	var nodes []string
	for {
		sc.skipSpace()
		node, err := sc.element()
		if err != nil {
			return nil, fmt.Errorf("%w: %v in %q", ErrBadPathNodes, err, s)
		}
		nodes = append(nodes, node)
		sc.skipSpace()
		if sc.done() {
			break
		}
		if sc.src[sc.pos] != ',' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrBadPathNodes, sc.src[sc.pos], sc.pos, s)
		}
		sc.pos++
	}
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%w: %q has fewer than two nodes", ErrBadPathNodes, s)
	}
	return nodes, nil
}

type nodeScanner struct {
	src string
	pos int
}

func (sc *nodeScanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *nodeScanner) skipSpace() {
	for !sc.done() && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *nodeScanner) element() (string, error) {
	if sc.done() {
		return "", errors.New("missing element")
	}
	if q := sc.src[sc.pos]; q == '\'' || q == '"' {
		return sc.quoted(q)
	}
	start := sc.pos
	for !sc.done() && isTokenByte(sc.src[sc.pos]) {
		sc.pos++
	}
	if sc.pos == start {
		return "", fmt.Errorf("unexpected %q at offset %d", sc.src[sc.pos], sc.pos)
	}
	return sc.src[start:sc.pos], nil
}

func (sc *nodeScanner) quoted(q byte) (string, error) {
	start := sc.pos
	sc.pos++
	var b strings.Builder
	for !sc.done() {
		c := sc.src[sc.pos]
		switch {
		case c == q:
			sc.pos++
			if b.Len() == 0 {
				return "", fmt.Errorf("empty string at offset %d", start)
			}
			return b.String(), nil
		case c == '\\':
			if sc.pos+1 >= len(sc.src) {
				return "", fmt.Errorf("dangling escape at offset %d", sc.pos)
			}
			next := sc.src[sc.pos+1]
			if next != '\\' && next != '\'' && next != '"' {
				return "", fmt.Errorf("bad escape \\%c at offset %d", next, sc.pos)
			}
			b.WriteByte(next)
			sc.pos += 2
		default:
			b.WriteByte(c)
			sc.pos++
		}
	}
	return "", fmt.Errorf("unterminated string at offset %d", start)
}

func isTokenByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.'
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenByte(s[i]) {
			return false
		}
	}
	return true
}

// FormatPathNodes renders a path in the form ParsePathNodes reads. Nodes
// that are not bare tokens are single-quoted with backslash escapes.
func FormatPathNodes(path []string) string {
	parts := make([]string, len(path))
	for i, node := range path {
		if isToken(node) {
			parts[i] = node
			continue
		}
		esc := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(node)
		parts[i] = "'" + esc + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ReadPaths reads a flat-path CSV stream (src,dst,volume,path_nodes).
//
// A row whose volume or path cannot be parsed, or whose path does not fit
// its endpoints, is dropped and reported as a RowIssue; reading continues.
// A missing column or a CSV syntax error fails the whole read.
func ReadPaths(r io.Reader) (flow.Set, []RowIssue, error) {
	t, err := newTable(PathsFile, r, "src", "dst", "volume", "path_nodes")
	if err != nil {
		return flow.Set{}, nil, err
	}
	var (
		flows  []flow.Flow
		issues []RowIssue
	)
	for {
		ok, err := t.next()
		if err != nil {
			return flow.Set{}, issues, err
		}
		if !ok {
			return flow.NewSet(flows...), issues, nil
		}
		f, err := pathRow(t)
		if err != nil {
			issues = append(issues, RowIssue{Row: t.row, Err: err})
			continue
		}
		flows = append(flows, f)
	}
}

func pathRow(t *table) (flow.Flow, error) {
	vol, err := t.float("volume")
	if err != nil {
		return flow.Flow{}, err
	}
	path, err := ParsePathNodes(t.get("path_nodes"))
	if err != nil {
		return flow.Flow{}, t.fail("path_nodes", err)
	}
	return flow.New(t.get("src"), t.get("dst"), vol, path)
}

// WritePaths writes s in flat-path CSV form.
func WritePaths(w io.Writer, s flow.Set) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"src", "dst", "volume", "path_nodes"}); err != nil {
		return err
	}
	for _, f := range s.All() {
		rec := []string{f.Source(), f.Destination(), formatNumber(f.Volume()), FormatPathNodes(f.Path())}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
