package core_test

import (
	"errors"
	"fmt"

	"github.com/mcfscore/mcfscore/core"
)

// ExampleNetwork demonstrates building a reference network and querying it.
func ExampleNetwork() {
	// 1) Create a network; distance matrices often carry a zero diagonal.
	n := core.NewNetwork(core.WithLoops())

	// 2) Add edges (auto-adds offices):
	_ = n.AddEdge(core.Edge{From: "101", To: "202", Distance: 120000, Time: 7200, PricePerKm: 35})
	_ = n.AddEdge(core.Edge{From: "202", To: "303", Distance: 80000, Time: 5400, PricePerKm: 30})

	// 3) Attach a transfer record to the hub:
	_ = n.SetTransfer("202", core.Transfer{Price: 12.5, Capacity: 400})

	e, _ := n.Edge("101", "202")
	fmt.Printf("101→202: %.0f km, %.0f min\n", e.Distance/1000, e.Time/60)

	_, err := n.Edge("303", "101")
	fmt.Println("303→101 missing:", errors.Is(err, core.ErrEdgeNotFound))

	tr, ok := n.Transfer("202")
	fmt.Println("hub transfer:", ok, tr.Price, tr.Capacity)
	fmt.Println("offices:", n.Offices())

	// Output:
	// 101→202: 120 km, 120 min
	// 303→101 missing: true
	// hub transfer: true 12.5 400
	// offices: [101 202 303]
}
