// SPDX-License-Identifier: MIT

// Package solution scores a routing solution of a multi-commodity logistics
// flow problem. Given a flow.Set (each flow on a fixed path) and a reference
// network, Build reconstructs the transport legs the flows imply, prices
// them, computes network-wide KPIs and keeps everything needed to validate
// the solution afterwards.
//
// # Pipeline
//
//	flow.Set + Network ─► Leg Aggregator ─► Cost Model ─► Metrics Engine   (Build, eager, once)
//	                                                   └► Validator        (on demand, repeatable)
//
//   - Leg Aggregator: every path is split into consecutive directed hops;
//     each hop's edge is resolved once through the EdgeResolver, and the
//     flow's volume is accumulated on the leg together with a
//     (request, volume) contribution. Request volumes are summed per
//     (source, destination) independently of edge resolution.
//   - Cost Model: Vehicles = ⌈Volume / VehicleCapacity⌉,
//     Cost = Vehicles × PricePerKm × Distance / 1000. Each transit node
//     charges Volume × transfer price when it has a transfer record, and
//     accumulates Volume as inbound and outbound throughput.
//   - Metrics Engine: totals, utilization (clamped to [0,100]), per-request
//     and per-volume delivery times, underloaded legs, cost per m³
//     (+Inf for an empty solution).
//   - Validator: coverage against an expected request table (absolute
//     tolerance, default 1e-3) and transfer-capacity checks per office and
//     direction. Findings are returned, never raised.
//
// # Missing edges
//
// A hop whose edge is absent from the reference is dropped from cost
// accounting for that flow only; the rest of the flow is still priced. Each
// dropped flow×hop is recorded as an Omission, returned by
// Solution.Omissions and logged at WARN. Callers decide whether omissions
// are fatal.
//
// # Concurrency
//
// Build is synchronous. WithParallelism(n) splits the flows into n
// contiguous chunks aggregated concurrently and merged in chunk order, so
// leg contributions keep flow order. A built *Solution is immutable and safe
// for concurrent readers; every accessor returns a copy.
//
// # Errors
//
//	ErrNilNetwork      - Build was given a nil Network.
//	ErrBadCapacity     - vehicle capacity is not a positive finite number.
//	ErrBadThreshold    - underload threshold is negative or not finite.
//	ErrBadTolerance    - coverage tolerance is negative or not finite.
//	ErrNilEdge         - the resolver returned neither an edge nor an error.
package solution
