// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// NetworkStats is a read-only snapshot of configuration flags and catalog sizes.
type NetworkStats struct {
	AllowsLoops         bool
	OfficeCount         int
	TransferOfficeCount int
	EdgeCount           int
}

// Stats produces a deterministic snapshot of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muOffice.RLock, snapshot flags and office counts, then release.
//   - Stage 2: Acquire muEdge.RLock, snapshot the edge count, then release.
//
// Avoids holding both locks simultaneously. Under concurrent mutation the
// snapshot is consistent per phase.
//
// Complexity: O(V) time, O(1) space.
func (n *Network) Stats() *NetworkStats {
	n.muOffice.RLock()
	stats := NetworkStats{
		AllowsLoops: n.allowLoops,
		OfficeCount: len(n.offices),
	}
	for _, o := range n.offices {
		if o.Transfer != nil {
			stats.TransferOfficeCount++
		}
	}
	n.muOffice.RUnlock()

	n.muEdge.RLock()
	stats.EdgeCount = n.edgeCount
	n.muEdge.RUnlock()

	return &stats
}
