// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/OutEdges/EdgeCount.
// Determinism:
//   - Edges() and OutEdges() return edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdge write lock.
//   - Read queries under muEdge read lock.
//   - Returned edges are copies; callers never observe later mutations.

package core

import "sort"

// AddEdge stores a directed edge e.From→e.To.
//
// Steps:
//  1. Validate IDs, loops and attributes.
//  2. Ensure endpoints via AddOffice.
//  3. Lock muEdge, reject a second edge for the same ordered pair.
//  4. Store a private copy in edges[from][to].
//
// Errors:
//   - ErrEmptyOfficeID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, *AttributeError.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
// Concurrency:
//   - Creates offices outside muEdge; edge catalog under muEdge.
func (n *Network) AddEdge(e Edge) error {
	// 1) Input validation
	if e.From == "" || e.To == "" {
		return ErrEmptyOfficeID
	}
	if e.From == e.To && !n.allowLoops {
		return ErrLoopNotAllowed
	}
	for _, attr := range []struct {
		name string
		v    float64
	}{
		{"distance", e.Distance},
		{"time", e.Time},
		{"price per km", e.PricePerKm},
		{"price", e.Price},
	} {
		if !validAttribute(attr.v) {
			return &AttributeError{From: e.From, To: e.To, Name: attr.name, Value: attr.v}
		}
	}

	// 2) Ensure offices exist
	if err := n.AddOffice(e.From); err != nil {
		return err
	}
	if err := n.AddOffice(e.To); err != nil {
		return err
	}

	// 3) Insert edge under lock
	n.muEdge.Lock()
	defer n.muEdge.Unlock()
	inner, ok := n.edges[e.From]
	if !ok {
		inner = make(map[string]*Edge)
		n.edges[e.From] = inner
	}
	if _, dup := inner[e.To]; dup {
		return ErrMultiEdgeNotAllowed
	}
	stored := e
	inner[e.To] = &stored
	n.edgeCount++

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (n *Network) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	n.muEdge.RLock()
	defer n.muEdge.RUnlock()
	_, ok := n.edges[from][to]

	return ok
}

// Edge returns a copy of the edge from→to.
//
// Contract:
//   - Errors are strict sentinels (checked via errors.Is).
//   - The returned *Edge is a fresh copy owned by the caller.
//
// Errors:
//   - ErrEmptyOfficeID: if either endpoint is empty.
//   - ErrEdgeNotFound: if no such edge is present.
//
// Complexity: O(1) average.
func (n *Network) Edge(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyOfficeID
	}
	n.muEdge.RLock()
	defer n.muEdge.RUnlock()
	e, ok := n.edges[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	out := *e

	return &out, nil
}

// Edges returns copies of all edges sorted by (From, To) asc.
// Complexity: O(E log E).
func (n *Network) Edges() []Edge {
	n.muEdge.RLock()
	out := make([]Edge, 0, n.edgeCount)
	for _, inner := range n.edges {
		for _, e := range inner {
			out = append(out, *e)
		}
	}
	n.muEdge.RUnlock()
	sortEdges(out)

	return out
}

// OutEdges returns copies of the edges leaving office id, sorted by To asc.
//
// Errors:
//   - ErrOfficeNotFound: if the office does not exist.
//
// Complexity: O(d log d).
func (n *Network) OutEdges(id string) ([]Edge, error) {
	if !n.HasOffice(id) {
		return nil, ErrOfficeNotFound
	}
	n.muEdge.RLock()
	out := make([]Edge, 0, len(n.edges[id]))
	for _, e := range n.edges[id] {
		out = append(out, *e)
	}
	n.muEdge.RUnlock()
	sortEdges(out)

	return out, nil
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	n.muEdge.RLock()
	defer n.muEdge.RUnlock()

	return n.edgeCount
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}
		return es[i].To < es[j].To
	})
}
