// Package mcfscore scores and validates routing solutions for a
// multi-commodity logistics network.
//
// A solution is a set of flows: a volume of cargo for one (source,
// destination) request, carried along a fixed path of offices. mcfscore
// never routes anything itself; it takes the paths as given and works out
// what they cost and whether they are admissible.
//
// What it computes:
//
//   - Transport legs: every consecutive office pair used by any path, with
//     the summed volume and the requests contributing to it.
//   - Vehicles and cost: ⌈volume / capacity⌉ vehicles per leg, priced per
//     kilometer of the leg's edge.
//   - Transfers: a fee per m³ at every transit office with a transfer
//     record, and inbound/outbound throughput against its capacity.
//   - KPIs: total cost, utilization, cost per m³, delivery times, paths per
//     request, underloaded legs.
//   - Findings: uncovered requests, capacity violations, legs skipped
//     because the reference network has no such edge.
//
// Packages, leaf to root:
//
//	core/          thread-safe network of offices and priced edges
//	flow/          Flow, RequestKey, Hop and the ordered flow Set
//	solution/      Build: leg aggregation, cost model, metrics, validation
//	dataset/       CSV reference tables, JSON/CSV solutions, export
//	report/        summary line and detailed text report
//	api/           HTTP evaluation against a preloaded reference
//	cmd/mcfscore/  validate, export, serve, version
//
// Quick ASCII example:
//
//	101 ──120 km──▶ 500 ──80 km──▶ 202
//	                 │
//	                 └──50 km──▶ 303
//
// Two requests (101→202, 101→303) share the 101→500 leg and pay one
// transfer each at hub 500.
//
//	go install github.com/mcfscore/mcfscore/cmd/mcfscore@latest
package mcfscore
