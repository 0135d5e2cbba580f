// SPDX-License-Identifier: MIT

// Package core defines the central Network, Office, Edge and Transfer types,
// and provides thread-safe primitives for building and querying a reference
// transport network.
//
// This file declares the types, NetworkOption, sentinel errors, and the
// NewNetwork constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyOfficeID indicates that the provided office ID is empty.
	ErrEmptyOfficeID = errors.New("core: office ID is empty")

	// ErrOfficeNotFound indicates an operation referenced a non-existent office.
	ErrOfficeNotFound = errors.New("core: office not found")

	// ErrEdgeNotFound indicates that no edge exists for the ordered pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge was added for the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadAttribute indicates a negative, NaN or infinite edge or transfer attribute.
	ErrBadAttribute = errors.New("core: bad attribute value")
)

// AttributeError reports which attribute of which element was rejected.
// It wraps ErrBadAttribute.
type AttributeError struct {
	From, To string // edge endpoints; To is empty for office attributes
	Name     string
	Value    float64
}

func (e *AttributeError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("core: office %q: bad %s %g", e.From, e.Name, e.Value)
	}

	return fmt.Sprintf("core: edge %q→%q: bad %s %g", e.From, e.To, e.Name, e.Value)
}

func (e *AttributeError) Unwrap() error { return ErrBadAttribute }

// Transfer is the transfer record of an office: the price charged per m³ of
// cargo transiting the office, and the throughput limit applied separately to
// inbound and outbound volume.
type Transfer struct {
	Price    float64
	Capacity float64
}

// Office is a node of the network.
//
// Transfer is nil for offices that appear only as edge endpoints.
type Office struct {
	ID       string
	Transfer *Transfer
}

// Edge is a directed connection between two offices.
type Edge struct {
	// From is the source office ID.
	From string

	// To is the destination office ID.
	To string

	// Distance in meters.
	Distance float64

	// Time in seconds needed by one vehicle to drive the edge.
	Time float64

	// PricePerKm is the tariff of one vehicle per kilometer.
	PricePerKm float64

	// Price is an optional fixed price of the edge; it does not take part
	// in cost accounting and is carried for export only.
	Price float64
}

// NetworkOption configures behavior of a Network before creation.
type NetworkOption func(n *Network)

// WithLoops permits self-loops (edges from an office to itself).
func WithLoops() NetworkOption {
	return func(n *Network) { n.allowLoops = true }
}

// Network is the reference transport network.
//
// muOffice protects offices; muEdge protects edges and edgeCount.
// Lock order is muOffice -> muEdge wherever both are held.
type Network struct {
	muOffice sync.RWMutex // guards offices
	muEdge   sync.RWMutex // guards edges, edgeCount

	allowLoops bool

	offices map[string]*Office
	// edges[from][to] = *Edge
	edges     map[string]map[string]*Edge
	edgeCount int
}

// NewNetwork creates an empty Network with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		offices: make(map[string]*Office),
		edges:   make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
