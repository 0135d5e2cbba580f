// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mcfscore/mcfscore/flow"
)

// aggregate is the mutable working state of the Leg Aggregator for one
// chunk of flows. Legs keep first-use order in order.
type aggregate struct {
	legs      map[flow.Hop]*Leg
	order     []flow.Hop
	requests  map[flow.RequestKey]float64
	omissions []Omission
	transfers transferTotals
}

func newAggregate() *aggregate {
	return &aggregate{
		legs:      make(map[flow.Hop]*Leg),
		requests:  make(map[flow.RequestKey]float64),
		transfers: newTransferTotals(),
	}
}

// aggregateFlows decomposes every flow of the chunk into hops and
// accumulates leg volumes, request volumes and transfer throughput.
//
// Steps:
//  1. Add the flow's volume to its request, whatever happens to its hops.
//  2. For each hop, resolve the edge the first time the hop is seen.
//     A failed resolution is cached: this and every later use of the hop
//     in the chunk yields an Omission and the hop's volume is skipped.
//  3. Add the volume and a contribution to the resolved leg.
//  4. Charge transfers on the flow's transit nodes.
//
// Errors: ErrNilEdge when the resolver breaks its contract.
//
// Complexity: O(Σ len(path)) map operations plus one resolver call per
// distinct hop.
func aggregateFlows(flows flow.Set, net Network) (*aggregate, error) {
	agg := newAggregate()
	failed := make(map[flow.Hop]error)

	for i := 0; i < flows.Len(); i++ {
		f := flows.At(i)
		key, vol := f.Key(), f.Volume()
		agg.requests[key] += vol

		for _, h := range f.Hops() {
			leg, ok := agg.legs[h]
			if !ok {
				if err, seen := failed[h]; seen {
					agg.omissions = append(agg.omissions, Omission{Hop: h, Request: key, Volume: vol, Err: err})
					continue
				}
				e, err := net.Edge(h.From, h.To)
				if err != nil {
					failed[h] = err
					agg.omissions = append(agg.omissions, Omission{Hop: h, Request: key, Volume: vol, Err: err})
					continue
				}
				if e == nil {
					return nil, fmt.Errorf("%w: %s", ErrNilEdge, h)
				}
				leg = &Leg{
					From:       h.From,
					To:         h.To,
					Distance:   e.Distance,
					Time:       e.Time,
					PricePerKm: e.PricePerKm,
				}
				agg.legs[h] = leg
				agg.order = append(agg.order, h)
			}
			leg.Volume += vol
			leg.Contributions = append(leg.Contributions, Contribution{Request: key, Volume: vol})
		}

		agg.transfers.add(f, net)
	}

	return agg, nil
}

// merge folds b into a. Legs new to a are appended after a's legs, and
// contributions of b follow those of a, so merging chunks in order yields
// the same ordering as a sequential pass.
func (a *aggregate) merge(b *aggregate) {
	for _, h := range b.order {
		src := b.legs[h]
		dst, ok := a.legs[h]
		if !ok {
			cp := src.clone()
			a.legs[h] = &cp
			a.order = append(a.order, h)
			continue
		}
		dst.Volume += src.Volume
		dst.Contributions = append(dst.Contributions, src.Contributions...)
	}
	for k, v := range b.requests {
		a.requests[k] += v
	}
	a.omissions = append(a.omissions, b.omissions...)
	a.transfers.merge(b.transfers)
}

// aggregateParallel runs aggregateFlows over n contiguous chunks
// concurrently and merges the partial results in chunk order. The resolver
// must be safe for concurrent use.
func aggregateParallel(flows flow.Set, net Network, n int) (*aggregate, error) {
	chunks := flows.Chunks(n)
	parts := make([]*aggregate, len(chunks))

	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			part, err := aggregateFlows(chunk, net)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := newAggregate()
	for _, p := range parts {
		out.merge(p)
	}
	return out, nil
}
