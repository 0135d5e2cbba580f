// SPDX-License-Identifier: MIT

// Package core provides the reference transport Network: a thread-safe,
// in-memory directed graph of offices and the edges between them.
//
// The Network N = (V,E) carries everything a solution scorer needs to price
// a route:
//
//   - Offices (vertices), each optionally holding a Transfer record:
//     the per-m³ transfer price charged when cargo transits the office, and
//     the maximum volume the office can handle in either direction.
//   - Edges (directed, at most one per ordered pair), each holding the
//     distance in meters, the travel time in seconds, the tariff per
//     kilometer, and an optional fixed price.
//   - Constant-time edge lookup via nested maps: edges[from][to] = *Edge.
//   - Separate sync.RWMutex for offices (muOffice) and edges (muEdge), so a
//     network loaded once can be shared by concurrent readers.
//
// Why a dedicated type instead of a generic weighted graph?
//
//   - An edge has several independent attributes; a single int64 weight
//     cannot carry distance, time and tariff together.
//   - Lookups are keyed by (from, to), never by edge ID.
//   - Deterministic iteration: Offices() and Edges() return sorted results.
//
// Configuration Options (NetworkOption):
//
//	– WithLoops()
//	    Permits edges from an office to itself; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	    Distance matrices commonly include the diagonal, so loaders enable it.
//
// Core Methods:
//
//	// Office lifecycle
//	AddOffice(id string) error                  // O(1), idempotent
//	HasOffice(id string) bool                   // O(1)
//	SetTransfer(id string, t Transfer) error    // O(1), auto-adds the office
//	Transfer(id string) (Transfer, bool)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(e Edge) error                       // O(1), auto-adds endpoints
//	HasEdge(from, to string) bool               // O(1)
//	Edge(from, to string) (*Edge, error)        // O(1), copy of the stored edge
//
//	// Enumeration (sorted)
//	Offices() []string                          // O(V·log V)
//	TransferOffices() []string                  // O(V·log V)
//	Edges() []Edge                              // O(E·log E)
//	OutEdges(id string) ([]Edge, error)         // O(d·log d)
//
//	// Counts
//	OfficeCount(), EdgeCount() int              // O(1)
//	Stats() *NetworkStats                       // O(V)
//
// Errors:
//
//	ErrEmptyOfficeID        – zero-length office ID
//	ErrOfficeNotFound       – missing office
//	ErrEdgeNotFound         – no edge for the ordered pair
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – second edge for the same ordered pair
//	*AttributeError         – negative or non-finite attribute (wraps ErrBadAttribute)
package core
