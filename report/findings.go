// SPDX-License-Identifier: MIT

package report

import (
	"github.com/mcfscore/mcfscore/dataset"
	"github.com/mcfscore/mcfscore/flow"
	"github.com/mcfscore/mcfscore/solution"
)

// Findings gathers everything a run can complain about.
type Findings struct {
	Omissions  []solution.Omission
	Coverage   []solution.CoverageFinding
	Capacity   []solution.CapacityFinding
	Unexpected []flow.RequestKey
	RowIssues  []dataset.RowIssue

	// Unreachable lists expected requests the reference network cannot
	// route at all. Filled by the caller; see dataset.Reference.
	Unreachable []flow.RequestKey

	// TransfersUnaccounted is set when the reference had no office table,
	// so transfer costs and capacities were not checked.
	TransfersUnaccounted bool
}

// Collect runs every check of s against the expected request table and
// attaches the row issues met while reading the solution.
func Collect(s *solution.Solution, expected map[flow.RequestKey]float64, issues []dataset.RowIssue) Findings {
	return Findings{
		Omissions:  s.Omissions(),
		Coverage:   s.ValidateCoverage(expected),
		Capacity:   s.CapacityViolations(),
		Unexpected: s.UnexpectedRequests(expected),
		RowIssues:  issues,
	}
}

// Count returns the number of findings that make a run unclean. Unexpected
// and unreachable requests are warnings only and do not count.
func (f Findings) Count() int {
	return len(f.Omissions) + len(f.Coverage) + len(f.Capacity) + len(f.RowIssues)
}
