// Package traverse_test provides runnable examples for the frontier
// algorithms. Each example is runnable via "go test -run Example".
package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/core"
	"github.com/katalvlaran/lvlheap/traverse"
)

// ExampleDijkstra demonstrates shortest-path computation and path
// reconstruction on a small weighted graph.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build an undirected weighted graph: the triangle where the
	//    two-hop route A->B->C (1+2) beats the direct A->C edge (5).
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	// 2) Run Dijkstra from source "A".
	res, err := traverse.Dijkstra(g, traverse.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Reconstruct the path to "C" from the predecessor links.
	path, cost, err := res.PathTo("C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range path {
		fmt.Printf("%s->%s(%d) ", e.From, e.To, e.Weight)
	}
	fmt.Printf("cost=%d\n", cost)
	// Output: A->B(1) B->C(2) cost=3
}

// ExamplePrim demonstrates growing a minimum spanning tree from a root
// vertex. Complexity: O((V+E) log V).
func ExamplePrim() {
	// 1) Build an undirected weighted square with one diagonal.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("C", "D", 5)
	_ = g.AddEdge("A", "D", 6)

	// 2) Grow the tree from "A".
	mst, total, err := traverse.Prim(g, traverse.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print edges in attachment order and the total weight.
	for _, e := range mst {
		fmt.Printf("%s-%s(%d) ", e.From, e.To, e.Weight)
	}
	fmt.Printf("total=%d\n", total)
	// Output: A-C(2) A-B(4) B-D(3) total=9
}

// ExampleDijkstra_disconnected shows the partial-result contract:
// unreachable vertices are a normal outcome, not an error.
func ExampleDijkstra_disconnected() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("island")

	res, _ := traverse.Dijkstra(g, traverse.Source("A"))

	fmt.Println("B reachable:", res.Dist["B"] != traverse.Unreachable)
	fmt.Println("island reachable:", res.Dist["island"] != traverse.Unreachable)
	// Output:
	// B reachable: true
	// island reachable: false
}
