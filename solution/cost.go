// SPDX-License-Identifier: MIT

package solution

import (
	"math"

	"github.com/mcfscore/mcfscore/flow"
)

// VehicleCount returns ⌈volume / capacity⌉: a partial load still needs a
// whole vehicle. Zero or negative volume needs none.
func VehicleCount(volume, capacity float64) int {
	if volume <= 0 {
		return 0
	}
	return int(math.Ceil(volume / capacity))
}

// LegCost prices a leg: vehicles × pricePerKm × distance / 1000, with
// distance in meters and the tariff per kilometer.
func LegCost(vehicles int, pricePerKm, distance float64) float64 {
	return float64(vehicles) * pricePerKm * distance / 1000.0
}

// priceLegs fills Vehicles and Cost on every leg.
func priceLegs(legs []Leg, capacity float64) {
	for i := range legs {
		legs[i].Vehicles = VehicleCount(legs[i].Volume, capacity)
		legs[i].Cost = LegCost(legs[i].Vehicles, legs[i].PricePerKm, legs[i].Distance)
	}
}

// transferTotals accumulates transfer cost and per-office throughput.
type transferTotals struct {
	cost     float64
	inbound  map[string]float64
	outbound map[string]float64
}

func newTransferTotals() transferTotals {
	return transferTotals{
		inbound:  make(map[string]float64),
		outbound: make(map[string]float64),
	}
}

// add charges every transit node of f. A node with a transfer record costs
// volume × price; every transit node, with or without a record, receives
// the volume inbound and re-emits it outbound.
func (t *transferTotals) add(f flow.Flow, net TransferResolver) {
	vol := f.Volume()
	for _, node := range f.TransitNodes() {
		if rec, ok := net.Transfer(node); ok {
			t.cost += vol * rec.Price
		}
		t.inbound[node] += vol
		t.outbound[node] += vol
	}
}

func (t *transferTotals) merge(o transferTotals) {
	t.cost += o.cost
	for k, v := range o.inbound {
		t.inbound[k] += v
	}
	for k, v := range o.outbound {
		t.outbound[k] += v
	}
}
