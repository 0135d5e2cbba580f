package flow

// Set is an ordered, immutable collection of flows. Order is preserved from
// construction and determines the order of leg contributions downstream.
type Set struct {
	flows []Flow
}

// NewSet copies flows into a Set.
func NewSet(flows ...Flow) Set {
	return Set{flows: append([]Flow(nil), flows...)}
}

// Len returns the number of flows.
func (s Set) Len() int { return len(s.flows) }

// At returns the i-th flow. It panics when i is out of range.
func (s Set) At(i int) Flow { return s.flows[i] }

// All returns a copy of the flows in order.
func (s Set) All() []Flow { return append([]Flow(nil), s.flows...) }

// TotalVolume sums the volume of every flow.
func (s Set) TotalVolume() float64 {
	var total float64
	for _, f := range s.flows {
		total += f.volume
	}
	return total
}

// Chunks splits the set into at most n contiguous, order-preserving parts.
// n ≤ 1 yields the whole set as a single part; an empty set yields none.
func (s Set) Chunks(n int) []Set {
	if len(s.flows) == 0 {
		return nil
	}
	if n <= 1 {
		return []Set{s}
	}
	if n > len(s.flows) {
		n = len(s.flows)
	}
	size := (len(s.flows) + n - 1) / n
	parts := make([]Set, 0, n)
	for lo := 0; lo < len(s.flows); lo += size {
		hi := lo + size
		if hi > len(s.flows) {
			hi = len(s.flows)
		}
		parts = append(parts, Set{flows: s.flows[lo:hi:hi]})
	}
	return parts
}
