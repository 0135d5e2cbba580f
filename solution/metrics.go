// SPDX-License-Identifier: MIT

package solution

import (
	"math"

	"github.com/mcfscore/mcfscore/flow"
)

// Metrics is the KPI snapshot of a solution. Distances are meters, times
// seconds, volumes m³.
type Metrics struct {
	FlowCount    int
	RequestCount int
	LegCount     int

	VehicleCapacity    float64
	UnderloadThreshold float64

	TotalVolume   float64
	TotalVehicles int
	// TotalDistance and TotalTime are vehicle-weighted: Σ leg.Distance × leg.Vehicles.
	TotalDistance float64
	TotalTime     float64

	TransportCost float64
	TransferCost  float64
	TotalCost     float64

	// VehicleUtilization is the realized volume as a percentage of procured
	// vehicle capacity, clamped to [0, 100].
	VehicleUtilization float64

	// CostPerCubicMeter is +Inf when TotalVolume is 0.
	CostPerCubicMeter float64

	AvgDeliveryTimePerRequest float64
	AvgDeliveryTimePerVolume  float64
	PathsPerRequest           float64

	UnderloadedLegs int
}

// computeMetrics aggregates priced legs, request totals and transfer cost
// into a Metrics snapshot. Pure: it reads its inputs only.
func computeMetrics(flows flow.Set, legs []Leg, requests map[flow.RequestKey]float64, transferCost float64, opts Options) Metrics {
	m := Metrics{
		FlowCount:          flows.Len(),
		RequestCount:       len(requests),
		LegCount:           len(legs),
		VehicleCapacity:    opts.VehicleCapacity,
		UnderloadThreshold: opts.UnderloadThreshold,
		TotalVolume:        flows.TotalVolume(),
		TransferCost:       transferCost,
	}

	for _, l := range legs {
		m.TotalVehicles += l.Vehicles
		m.TotalDistance += l.Distance * float64(l.Vehicles)
		m.TotalTime += l.Time * float64(l.Vehicles)
		m.TransportCost += l.Cost
	}
	m.TotalCost = m.TransportCost + m.TransferCost

	if m.RequestCount > 0 {
		m.AvgDeliveryTimePerRequest = m.TotalTime / float64(m.RequestCount)
		m.PathsPerRequest = float64(m.FlowCount) / float64(m.RequestCount)
	}
	if m.TotalVolume > 0 {
		m.AvgDeliveryTimePerVolume = m.TotalTime / m.TotalVolume
		m.CostPerCubicMeter = m.TotalCost / m.TotalVolume
	} else {
		m.CostPerCubicMeter = math.Inf(1)
	}

	m.VehicleUtilization = utilization(m.TotalVolume, m.TotalVehicles, opts.VehicleCapacity)
	m.UnderloadedLegs = countUnderloaded(legs, opts.UnderloadThreshold, opts.VehicleCapacity)

	return m
}

// utilization returns volume / (vehicles × capacity) in percent, clamped to
// [0, 100]; 0 without vehicles.
func utilization(volume float64, vehicles int, capacity float64) float64 {
	total := float64(vehicles) * capacity
	if total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(volume/total*100, 100))
}

// countUnderloaded counts legs with Volume < threshold × capacity.
func countUnderloaded(legs []Leg, threshold, capacity float64) int {
	limit := threshold * capacity
	n := 0
	for _, l := range legs {
		if l.Volume < limit {
			n++
		}
	}
	return n
}
