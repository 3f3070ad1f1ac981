// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// ExampleDijkstra runs the engine on the six-vertex reference graph and
// prints distances and predecessors in insertion order.
func ExampleDijkstra() {
	g := core.NewGraph[string]()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1},
		{"B", "D", 5}, {"C", "D", 8}, {"C", "E", 10},
		{"D", "E", 2}, {"D", "F", 6}, {"E", "F", 3},
	} {
		_ = g.AddEdge(e.u, e.v, e.w)
	}

	dist, prev, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		p, ok := prev[v]
		if !ok {
			p = "-"
		}
		fmt.Printf("%s dist=%g prev=%s\n", v, dist[v], p)
	}

	// Output:
	// A dist=0 prev=-
	// B dist=3 prev=C
	// C dist=2 prev=A
	// D dist=8 prev=B
	// E dist=10 prev=D
	// F dist=13 prev=E
}

// ExampleWithOnVisit observes the finalization order with the heap strategy.
func ExampleWithOnVisit() {
	g := core.NewGraph[int]()
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(3, 2, 1)
	_ = g.AddVertex(4)

	dist, _, _ := dijkstra.Dijkstra(g, 1,
		dijkstra.WithStrategy(dijkstra.Heap),
		dijkstra.WithOnVisit(func(v int, d float64) { fmt.Println("visit", v, d) }),
	)
	fmt.Println("4 unreachable:", math.IsInf(dist[4], 1))

	// Output:
	// visit 1 0
	// visit 3 1
	// visit 2 2
	// 4 unreachable: true
}
