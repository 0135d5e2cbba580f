// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/mcfscore/mcfscore/flow"
)

// CoverageFinding reports a request whose aggregated volume differs from
// the expected volume by more than the tolerance.
type CoverageFinding struct {
	Request  flow.RequestKey
	Expected float64
	Actual   float64
}

// String prints both volumes with two decimals, or in full when two decimals
// would hide the gap.
func (f CoverageFinding) String() string {
	want, got := fmt.Sprintf("%.2f", f.Expected), fmt.Sprintf("%.2f", f.Actual)
	if want == got {
		want = strconv.FormatFloat(f.Expected, 'g', -1, 64)
		got = strconv.FormatFloat(f.Actual, 'g', -1, 64)
	}
	return fmt.Sprintf("request %s: expected %s, got %s", f.Request, want, got)
}

// Direction of throughput through an office.
type Direction int

const (
	Inbound Direction = iota
	Outbound
)

func (d Direction) String() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

// CapacityFinding reports an office whose inbound or outbound transit
// volume exceeds its transfer capacity.
type CapacityFinding struct {
	Office    string
	Direction Direction
	Actual    float64
	Capacity  float64
}

func (f CapacityFinding) String() string {
	return fmt.Sprintf("office %s: %s flow %.2f > %g", f.Office, f.Direction, f.Actual, f.Capacity)
}

// ValidateCoverage compares the aggregated request volumes with an expected
// request table. Every expected entry whose actual volume (0 when the
// solution does not serve the request) differs by more than the coverage
// tolerance yields one finding. Findings are ordered by request key.
//
// Complexity: O(R log R) for R expected requests.
func (s *Solution) ValidateCoverage(expected map[flow.RequestKey]float64) []CoverageFinding {
	var findings []CoverageFinding
	for _, key := range sortedKeys(expected) {
		want := expected[key]
		got := s.requests[key]
		if math.Abs(got-want) > s.opts.CoverageTolerance {
			findings = append(findings, CoverageFinding{Request: key, Expected: want, Actual: got})
		}
	}
	return findings
}

// UnexpectedRequests lists the requests served by the solution that are
// absent from the expected table, ordered by key. Coverage does not flag
// them; reports surface them as warnings.
func (s *Solution) UnexpectedRequests(expected map[flow.RequestKey]float64) []flow.RequestKey {
	var out []flow.RequestKey
	for _, key := range sortedKeys(s.requests) {
		if _, ok := expected[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}

// CapacityViolations checks the transit throughput of every office in the
// node table against its transfer capacity. See CheckThroughput.
func (s *Solution) CapacityViolations() []CapacityFinding {
	return CheckThroughput(s.capacities, s.inbound, s.outbound)
}

// CheckThroughput compares inbound and outbound volume of every office in
// limits against its capacity. The two directions are checked independently
// and each violation is a separate finding; an office absent from a
// throughput map is not checked in that direction. Offices are visited in
// ascending ID order, inbound before outbound.
func CheckThroughput(limits, inbound, outbound map[string]float64) []CapacityFinding {
	offices := make([]string, 0, len(limits))
	for id := range limits {
		offices = append(offices, id)
	}
	sort.Strings(offices)

	var findings []CapacityFinding
	for _, office := range offices {
		limit := limits[office]
		if in, ok := inbound[office]; ok && in > limit {
			findings = append(findings, CapacityFinding{Office: office, Direction: Inbound, Actual: in, Capacity: limit})
		}
		if out, ok := outbound[office]; ok && out > limit {
			findings = append(findings, CapacityFinding{Office: office, Direction: Outbound, Actual: out, Capacity: limit})
		}
	}
	return findings
}

func sortedKeys(m map[flow.RequestKey]float64) []flow.RequestKey {
	keys := make([]flow.RequestKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
