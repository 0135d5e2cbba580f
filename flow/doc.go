// Package flow models the Flow Set of a multi-commodity routing solution:
// cargo movements from a source office to a destination office, each with a
// volume and one fixed path through the network.
//
// A solution may split one request over several paths, so several flows can
// share the same RequestKey. The package never chooses paths; it only checks
// that a supplied path is well formed.
//
// # Types
//
//   - Flow        – immutable {Source, Destination, Volume, Path}.
//   - RequestKey  – the (Source, Destination) identity of a request.
//   - Hop         – one consecutive node pair of a path (a directed edge).
//   - Set         – ordered, immutable collection of flows.
//
// # Shape invariants (checked by New)
//
//	– Source, Destination and every path node are non-empty.
//	– Volume is finite and ≥ 0 (cubic meters).
//	– len(Path) ≥ 2, Path[0] == Source, Path[last] == Destination.
//
// PathFromHops rebuilds a node sequence from an ordered list of legs, the way
// structured solution documents describe routes: the first leg's From followed
// by every leg's To.
//
// # Errors
//
//	ErrEmptyNodeID      - an office ID is empty.
//	ErrNegativeVolume   - volume is negative, NaN or infinite.
//	ErrShortPath        - fewer than two path nodes (or no legs).
//	ErrEndpointMismatch - path does not start at Source or end at Destination.
//	*PathError          - carries the offending flow and wraps one of the above.
package flow
