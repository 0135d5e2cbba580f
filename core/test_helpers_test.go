// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.Network.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcfscore/mcfscore/core"
)

// Common office IDs used across core tests.
const (
	OfficeEmpty = ""

	OfficeA = "A"
	OfficeB = "B"
	OfficeC = "C"
	OfficeD = "D"

	OfficeHub = "Hub"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// edge builds an edge with distance in km converted to meters.
func edge(from, to string, km, hours, pricePerKm float64) core.Edge {
	return core.Edge{
		From:       from,
		To:         to,
		Distance:   km * 1000,
		Time:       hours * 3600,
		PricePerKm: pricePerKm,
	}
}

// NewChain builds A→B→C→D with 10 km legs, 1h each, tariff 2.0,
// and a transfer record on B and C.
func NewChain(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.AddEdge(edge(OfficeA, OfficeB, 10, 1, 2)))
	require.NoError(t, n.AddEdge(edge(OfficeB, OfficeC, 10, 1, 2)))
	require.NoError(t, n.AddEdge(edge(OfficeC, OfficeD, 10, 1, 2)))
	require.NoError(t, n.SetTransfer(OfficeB, core.Transfer{Price: 1.5, Capacity: 100}))
	require.NoError(t, n.SetTransfer(OfficeC, core.Transfer{Price: 0.5, Capacity: 50}))

	return n
}
