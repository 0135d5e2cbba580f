// SPDX-License-Identifier: MIT
// Package core_test verifies core.Network method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for office/edge lifecycle and query APIs.
//   - Validate constraint enforcement (loops, duplicate edges, attributes).

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcfscore/mcfscore/core"
)

func TestNetwork_AddOffice(t *testing.T) {
	n := core.NewNetwork()

	require.ErrorIs(t, n.AddOffice(OfficeEmpty), core.ErrEmptyOfficeID)
	require.NoError(t, n.AddOffice(OfficeA))
	require.NoError(t, n.AddOffice(OfficeA), "AddOffice must be idempotent")
	require.True(t, n.HasOffice(OfficeA))
	require.False(t, n.HasOffice(OfficeEmpty))
	require.Equal(t, 1, n.OfficeCount())

	_, err := n.Office(OfficeB)
	require.ErrorIs(t, err, core.ErrOfficeNotFound)
}

func TestNetwork_Transfer(t *testing.T) {
	n := core.NewNetwork()

	_, ok := n.Transfer(OfficeA)
	require.False(t, ok, "unknown office has no transfer record")

	require.NoError(t, n.AddOffice(OfficeA))
	_, ok = n.Transfer(OfficeA)
	require.False(t, ok, "office without a record reports false")

	require.NoError(t, n.SetTransfer(OfficeB, core.Transfer{Price: 2, Capacity: 10}))
	require.True(t, n.HasOffice(OfficeB), "SetTransfer auto-adds the office")
	tr, ok := n.Transfer(OfficeB)
	require.True(t, ok)
	require.Equal(t, core.Transfer{Price: 2, Capacity: 10}, tr)

	// replacement
	require.NoError(t, n.SetTransfer(OfficeB, core.Transfer{Price: 3, Capacity: 20}))
	tr, _ = n.Transfer(OfficeB)
	require.Equal(t, 3.0, tr.Price)

	require.Equal(t, []string{OfficeB}, n.TransferOffices())
	require.Equal(t, []string{OfficeA, OfficeB}, n.Offices())

	o, err := n.Office(OfficeB)
	require.NoError(t, err)
	o.Transfer.Price = 99
	tr, _ = n.Transfer(OfficeB)
	require.Equal(t, 3.0, tr.Price, "Office must return a detached copy")
}

func TestNetwork_SetTransferRejectsBadValues(t *testing.T) {
	n := core.NewNetwork()

	require.ErrorIs(t, n.SetTransfer(OfficeEmpty, core.Transfer{}), core.ErrEmptyOfficeID)

	err := n.SetTransfer(OfficeA, core.Transfer{Price: -1, Capacity: 10})
	var ae *core.AttributeError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, "transfer price", ae.Name)
	require.ErrorIs(t, err, core.ErrBadAttribute)

	err = n.SetTransfer(OfficeA, core.Transfer{Price: 1, Capacity: math.NaN()})
	require.ErrorIs(t, err, core.ErrBadAttribute)
	require.False(t, n.HasOffice(OfficeA), "rejected record must not create the office")
}

func TestNetwork_AddEdge(t *testing.T) {
	n := core.NewNetwork()

	require.NoError(t, n.AddEdge(edge(OfficeA, OfficeB, 5, 1, 3)))
	require.True(t, n.HasOffice(OfficeA), "AddEdge auto-adds endpoints")
	require.True(t, n.HasOffice(OfficeB))
	require.True(t, n.HasEdge(OfficeA, OfficeB))
	require.False(t, n.HasEdge(OfficeB, OfficeA), "edges are directed")
	require.False(t, n.HasEdge(OfficeEmpty, OfficeB))

	e, err := n.Edge(OfficeA, OfficeB)
	require.NoError(t, err)
	require.Equal(t, 5000.0, e.Distance)
	require.Equal(t, 3600.0, e.Time)
	require.Equal(t, 3.0, e.PricePerKm)

	e.Distance = 1
	again, _ := n.Edge(OfficeA, OfficeB)
	require.Equal(t, 5000.0, again.Distance, "Edge must return a copy")

	_, err = n.Edge(OfficeB, OfficeA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = n.Edge(OfficeEmpty, OfficeA)
	require.ErrorIs(t, err, core.ErrEmptyOfficeID)

	require.ErrorIs(t, n.AddEdge(edge(OfficeA, OfficeB, 1, 1, 1)), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, n.AddEdge(core.Edge{From: OfficeA}), core.ErrEmptyOfficeID)
	require.Equal(t, 1, n.EdgeCount())
}

func TestNetwork_AddEdgeLoops(t *testing.T) {
	n := core.NewNetwork()
	require.False(t, n.Stats().AllowsLoops)
	require.ErrorIs(t, n.AddEdge(edge(OfficeA, OfficeA, 0, 0, 0)), core.ErrLoopNotAllowed)

	looped := core.NewNetwork(core.WithLoops())
	require.True(t, looped.Stats().AllowsLoops)
	require.NoError(t, looped.AddEdge(edge(OfficeA, OfficeA, 0, 0, 0)))
	require.True(t, looped.HasEdge(OfficeA, OfficeA))
}

func TestNetwork_AddEdgeRejectsBadAttributes(t *testing.T) {
	n := core.NewNetwork()

	cases := []struct {
		name string
		e    core.Edge
	}{
		{"distance", core.Edge{From: OfficeA, To: OfficeB, Distance: -1}},
		{"time", core.Edge{From: OfficeA, To: OfficeB, Time: math.Inf(1)}},
		{"price per km", core.Edge{From: OfficeA, To: OfficeB, PricePerKm: math.NaN()}},
		{"price", core.Edge{From: OfficeA, To: OfficeB, Price: -0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := n.AddEdge(tc.e)
			var ae *core.AttributeError
			require.True(t, errors.As(err, &ae))
			require.Equal(t, tc.name, ae.Name)
			require.Contains(t, ae.Error(), `"A"→"B"`)
		})
	}
	require.Zero(t, n.EdgeCount())
}

func TestNetwork_DeterministicOrder(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge(edge(OfficeC, OfficeA, 1, 1, 1)))
	require.NoError(t, n.AddEdge(edge(OfficeA, OfficeC, 1, 1, 1)))
	require.NoError(t, n.AddEdge(edge(OfficeA, OfficeB, 1, 1, 1)))

	var pairs []string
	for _, e := range n.Edges() {
		pairs = append(pairs, e.From+e.To)
	}
	require.Equal(t, []string{"AB", "AC", "CA"}, pairs)

	out, err := n.OutEdges(OfficeA)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, OfficeB, out[0].To)
	require.Equal(t, OfficeC, out[1].To)

	out, err = n.OutEdges(OfficeB)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = n.OutEdges(OfficeD)
	require.ErrorIs(t, err, core.ErrOfficeNotFound)
}

func TestNetwork_Stats(t *testing.T) {
	n := NewChain(t)
	st := n.Stats()
	require.Equal(t, core.NetworkStats{
		AllowsLoops:         false,
		OfficeCount:         4,
		TransferOfficeCount: 2,
		EdgeCount:           3,
	}, *st)
}
