package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors describing malformed flows.
var (
	ErrEmptyNodeID      = errors.New("flow: empty office ID")
	ErrNegativeVolume   = errors.New("flow: volume must be finite and non-negative")
	ErrShortPath        = errors.New("flow: path needs at least two nodes")
	ErrEndpointMismatch = errors.New("flow: path endpoints do not match source/destination")
)

// PathError is returned when a flow fails shape validation.
type PathError struct {
	Source, Destination string
	Path                []string
	Err                 error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: request %s->%s, path [%s]",
		e.Err, e.Source, e.Destination, strings.Join(e.Path, ", "))
}

func (e *PathError) Unwrap() error { return e.Err }

// RequestKey identifies a request independently of how many flows realize it.
type RequestKey struct {
	Source      string
	Destination string
}

// String renders the key as "src->dst".
func (k RequestKey) String() string { return k.Source + "->" + k.Destination }

// Less orders keys by Source, then Destination.
func (k RequestKey) Less(o RequestKey) bool {
	if k.Source != o.Source {
		return k.Source < o.Source
	}
	return k.Destination < o.Destination
}

// Hop is one directed edge of a path.
type Hop struct {
	From string
	To   string
}

// String renders the hop as "from→to".
func (h Hop) String() string { return h.From + "→" + h.To }
