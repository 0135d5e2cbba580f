// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/mcfscore/mcfscore/flow"
)

// Solution is the immutable analysis of one flow set against one network.
type Solution struct {
	flows flow.Set
	opts  Options

	legs     []Leg // first-use order
	legIndex map[flow.Hop]int
	requests map[flow.RequestKey]float64

	omissions []Omission

	transferCost float64
	inbound      map[string]float64
	outbound     map[string]float64

	// transfer capacity per office of the node table, snapshot at Build time
	capacities map[string]float64

	metrics Metrics
}

// Build analyzes flows against net and returns the immutable result.
//
// Steps:
//  1. Apply options and validate them.
//  2. Aggregate legs, requests and transfers (sequentially or in chunks).
//  3. Price legs (vehicles, cost).
//  4. Snapshot the node table for capacity checks.
//  5. Compute metrics once.
//
// Missing edges never fail Build; they become Omissions. An empty flow set
// is valid and yields zero totals with CostPerCubicMeter = +Inf.
//
// Errors: ErrNilNetwork, ErrBadCapacity, ErrBadThreshold, ErrBadTolerance,
// ErrNilEdge.
func Build(flows flow.Set, net Network, opts ...Option) (*Solution, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		agg *aggregate
		err error
	)
	if o.Parallelism > 1 {
		agg, err = aggregateParallel(flows, net, o.Parallelism)
	} else {
		agg, err = aggregateFlows(flows, net)
	}
	if err != nil {
		return nil, err
	}

	s := &Solution{
		flows:        flows,
		opts:         o,
		legs:         make([]Leg, 0, len(agg.order)),
		legIndex:     make(map[flow.Hop]int, len(agg.order)),
		requests:     agg.requests,
		omissions:    agg.omissions,
		transferCost: agg.transfers.cost,
		inbound:      agg.transfers.inbound,
		outbound:     agg.transfers.outbound,
		capacities:   make(map[string]float64),
	}
	for _, h := range agg.order {
		s.legIndex[h] = len(s.legs)
		s.legs = append(s.legs, *agg.legs[h])
	}
	priceLegs(s.legs, o.VehicleCapacity)

	for _, office := range net.TransferOffices() {
		if rec, ok := net.Transfer(office); ok {
			s.capacities[office] = rec.Capacity
		}
	}

	s.metrics = computeMetrics(flows, s.legs, s.requests, s.transferCost, o)

	for _, om := range s.omissions {
		o.Logger.Warn("edge missing from reference network, leg cost omitted",
			slog.String("from", om.Hop.From),
			slog.String("to", om.Hop.To),
			slog.String("request", om.Request.String()),
			slog.Float64("volume", om.Volume),
			slog.Any("error", om.Err))
	}
	o.Logger.Debug("solution built",
		slog.Int("flows", s.metrics.FlowCount),
		slog.Int("requests", s.metrics.RequestCount),
		slog.Int("legs", s.metrics.LegCount),
		slog.Int("omissions", len(s.omissions)),
		slog.Float64("total_cost", s.metrics.TotalCost))

	return s, nil
}

// Flows returns the analyzed flow set.
func (s *Solution) Flows() flow.Set { return s.flows }

// Options returns the options the solution was built with.
func (s *Solution) Options() Options { return s.opts }

// Metrics returns the KPI snapshot computed at Build time.
func (s *Solution) Metrics() Metrics { return s.metrics }

// Legs returns copies of all legs in first-use order.
func (s *Solution) Legs() []Leg {
	out := make([]Leg, len(s.legs))
	for i, l := range s.legs {
		out[i] = l.clone()
	}
	return out
}

// Leg returns a copy of the leg from→to, if any flow used it and its edge
// was resolved.
func (s *Solution) Leg(from, to string) (Leg, bool) {
	i, ok := s.legIndex[flow.Hop{From: from, To: to}]
	if !ok {
		return Leg{}, false
	}
	return s.legs[i].clone(), true
}

// Requests returns a copy of the aggregated volume per request.
func (s *Solution) Requests() map[flow.RequestKey]float64 { return maps.Clone(s.requests) }

// RequestKeys returns the served requests in ascending order.
func (s *Solution) RequestKeys() []flow.RequestKey { return sortedKeys(s.requests) }

// Omissions returns the flow×hop pairs left out of leg accounting, in flow order.
func (s *Solution) Omissions() []Omission { return append([]Omission(nil), s.omissions...) }

// TransferCost returns the total transfer cost of transit nodes.
func (s *Solution) TransferCost() float64 { return s.transferCost }

// Throughput returns the inbound and outbound transit volume of an office.
func (s *Solution) Throughput(office string) (in, out float64) {
	return s.inbound[office], s.outbound[office]
}

// CountUnderloaded counts legs whose volume is below threshold × vehicle
// capacity, for thresholds other than the one used by Metrics.
func (s *Solution) CountUnderloaded(threshold float64) int {
	return countUnderloaded(s.legs, threshold, s.opts.VehicleCapacity)
}

// String returns a one-line summary.
func (s *Solution) String() string {
	m := s.metrics
	return fmt.Sprintf("Solution - Cost: %.2f, Vehicles: %d, Utilization: %.1f%%",
		m.TotalCost, m.TotalVehicles, m.VehicleUtilization)
}
