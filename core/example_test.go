// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightnet/core"
)

// ExampleGraph_AddEdge demonstrates insertion and the failure sentinels.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()

	fmt.Println(g.AddEdge("Chicago", "New York", 10))
	err := g.AddEdge("New York", "Chicago", 10)
	fmt.Println(errors.Is(err, core.ErrDuplicateEdge))
	err = g.AddEdge("Chicago", "Phoenix", -40)
	fmt.Println(errors.Is(err, core.ErrNegativeWeight))
	fmt.Println(g.CityCount(), g.FlightCount())

	// Output:
	// <nil>
	// true
	// true
	// 2 1
}

// ExampleGraph_Print shows the diagnostic listing.
func ExampleGraph_Print() {
	g := core.NewGraph()
	_ = g.AddEdge("Chicago", "New York", 10)
	_ = g.AddEdge("Chicago", "Los Angeles", 20)
	g.Print()

	// Output:
	// Chicago
	//   -> New York (10)
	//   -> Los Angeles (20)
	// New York
	//   -> Chicago (10)
	// Los Angeles
	//   -> Chicago (20)
}
