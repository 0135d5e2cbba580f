package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcfscore/mcfscore/core"
	"github.com/mcfscore/mcfscore/flow"
)

// newTriangle builds:
//
//	A→B  10 km, 1h,   2.0/km
//	B→C  20 km, 2h,   1.5/km
//	A→C  25 km, 1.5h, 3.0/km
//
// with a transfer record on B (price 1.0, capacity 100).
func newTriangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge(core.Edge{From: "A", To: "B", Distance: 10000, Time: 3600, PricePerKm: 2.0}))
	require.NoError(t, n.AddEdge(core.Edge{From: "B", To: "C", Distance: 20000, Time: 7200, PricePerKm: 1.5}))
	require.NoError(t, n.AddEdge(core.Edge{From: "A", To: "C", Distance: 25000, Time: 5400, PricePerKm: 3.0}))
	require.NoError(t, n.SetTransfer("B", core.Transfer{Price: 1.0, Capacity: 100}))
	return n
}

// triangleFlows: two paths for A→C (via B and direct) and one A→B flow.
func triangleFlows() flow.Set {
	return flow.NewSet(
		flow.MustNew("A", "C", 50, "A", "B", "C"),
		flow.MustNew("A", "C", 30, "A", "C"),
		flow.MustNew("A", "B", 60, "A", "B"),
	)
}

func key(src, dst string) flow.RequestKey {
	return flow.RequestKey{Source: src, Destination: dst}
}

// nilEdgeNetwork breaks the resolver contract.
type nilEdgeNetwork struct{}

func (nilEdgeNetwork) Edge(string, string) (*core.Edge, error) { return nil, nil }
func (nilEdgeNetwork) Transfer(string) (core.Transfer, bool)   { return core.Transfer{}, false }
func (nilEdgeNetwork) TransferOffices() []string               { return nil }
