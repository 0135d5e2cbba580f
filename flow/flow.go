package flow

import (
	"math"
)

// Flow is one cargo movement with its assigned path. The zero value is not
// valid; build flows with New.
type Flow struct {
	source      string
	destination string
	volume      float64
	path        []string
}

// New validates the shape of a flow and returns it.
// The path slice is copied; later changes by the caller are not observed.
//
// Errors: *PathError wrapping ErrEmptyNodeID, ErrNegativeVolume,
// ErrShortPath or ErrEndpointMismatch.
//
// Complexity: O(len(path)).
func New(source, destination string, volume float64, path []string) (Flow, error) {
	fail := func(err error) (Flow, error) {
		return Flow{}, &PathError{Source: source, Destination: destination, Path: append([]string(nil), path...), Err: err}
	}

	if source == "" || destination == "" {
		return fail(ErrEmptyNodeID)
	}
	if volume < 0 || math.IsNaN(volume) || math.IsInf(volume, 0) {
		return fail(ErrNegativeVolume)
	}
	if len(path) < 2 {
		return fail(ErrShortPath)
	}
	for _, id := range path {
		if id == "" {
			return fail(ErrEmptyNodeID)
		}
	}
	if path[0] != source || path[len(path)-1] != destination {
		return fail(ErrEndpointMismatch)
	}

	return Flow{
		source:      source,
		destination: destination,
		volume:      volume,
		path:        append([]string(nil), path...),
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(source, destination string, volume float64, path ...string) Flow {
	f, err := New(source, destination, volume, path)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the origin office.
func (f Flow) Source() string { return f.source }

// Destination returns the target office.
func (f Flow) Destination() string { return f.destination }

// Volume returns the cargo volume in cubic meters.
func (f Flow) Volume() float64 { return f.volume }

// Key returns the request this flow contributes to.
func (f Flow) Key() RequestKey { return RequestKey{Source: f.source, Destination: f.destination} }

// Path returns a copy of the node sequence.
func (f Flow) Path() []string { return append([]string(nil), f.path...) }

// Hops returns the consecutive node pairs of the path, in order.
func (f Flow) Hops() []Hop {
	if len(f.path) < 2 {
		return nil
	}
	hops := make([]Hop, 0, len(f.path)-1)
	for i := 0; i+1 < len(f.path); i++ {
		hops = append(hops, Hop{From: f.path[i], To: f.path[i+1]})
	}
	return hops
}

// TransitNodes returns the path nodes strictly between source and destination.
// A direct flow has none.
func (f Flow) TransitNodes() []string {
	if len(f.path) <= 2 {
		return nil
	}
	return append([]string(nil), f.path[1:len(f.path)-1]...)
}

// PathFromHops rebuilds the node sequence described by an ordered list of
// legs: hops[0].From followed by every hop's To.
//
// Only the first leg's From is read; intermediate From values are not
// checked against the previous To, so the endpoints are what New validates.
//
// Errors: ErrShortPath when hops is empty.
func PathFromHops(hops []Hop) ([]string, error) {
	if len(hops) == 0 {
		return nil, ErrShortPath
	}
	path := make([]string, 0, len(hops)+1)
	path = append(path, hops[0].From)
	for _, h := range hops {
		path = append(path, h.To)
	}
	return path, nil
}
