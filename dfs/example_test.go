// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/bitgraph/core"
	"github.com/katalvlaran/bitgraph/dfs"
)

// ExampleNew walks a small tree lazily.
// Graph structure:
//
//	   0
//	  / \
//	 1   4
//	/ \
//	2  3
//
// Neighbours are visited in ascending id order: 0 1 2 3 4.
func ExampleNew() {
	g, _ := core.NewGraph(8, core.WithAllLive())
	for _, e := range [][2]int{{0, 1}, {0, 4}, {1, 2}, {1, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}
	// slots 5..7 are live but isolated
	it, err := dfs.New(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var order []int
	for v := range it.All() {
		order = append(order, v)
	}
	fmt.Println(order, it.Err())
	// Output:
	// [0 1 2 3 4] <nil>
}

// ExampleComponents splits a graph into its connected components.
func ExampleComponents() {
	g, _ := core.NewGraph(6, core.WithAllLive())
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 5)

	comps, _ := dfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[0 3] [1 2 5] [4]]
}
