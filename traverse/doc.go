// Package traverse implements greedy frontier traversal over weighted
// graphs: Dijkstra's shortest paths and Prim's minimum spanning tree,
// both scheduled by one indexed min-heap with eager decrease-key.
//
// Overview:
//
//	Both algorithms share a single loop shape. The heap is seeded with
//	exactly one entry per vertex, weighted at the Unreachable sentinel
//	except for the source at 0, and settled once with an O(V) Heapify.
//	The loop then repeatedly extracts the globally cheapest frontier
//	vertex, finalizes it, and relaxes its outgoing edges: when a
//	neighbor's weight strictly improves, its heap entry is mutated in
//	place through its stable ID and re-settled with one O(log n) Fix.
//	The only difference between the two algorithms is the relaxation
//	rule:
//
//	  - Dijkstra: candidate = dist(current) + edge weight (cumulative
//	    distance from the source).
//	  - Prim: candidate = edge weight (cost of attaching the neighbor
//	    to the tree).
//
// Termination and disconnection:
//
//	The loop stops when the heap drains or when the remaining minimum
//	carries the Unreachable sentinel, meaning every vertex still in the
//	heap is cut off from the explored component. For Dijkstra that is a
//	normal partial result (unreached vertices keep Dist == Unreachable);
//	for Prim an incomplete tree yields ErrDisconnected unless a visit
//	cap asked for a partial run. The traversal itself has no built-in
//	timeout; WithMaxVisits(n) is the external iteration cap for callers
//	that must bound work.
//
// Heap usage contrast:
//
//	The classic "lazy" formulation pushes a duplicate entry per
//	improvement and skips stale pops, growing the heap to O(E). The
//	eager formulation here keeps the heap at exactly the frontier size
//	(at most V entries) and pays one Fix per improvement instead, which
//	is what the indexed heap's O(1) Access by stable ID exists for.
//
// Error handling (sentinel):
//
//	ErrEmptySource     - no source vertex provided.
//	ErrNilGraph        - nil graph pointer.
//	ErrVertexNotFound  - source or target absent from the graph.
//	ErrNegativeWeight  - Dijkstra's O(E) pre-scan found a negative edge.
//	ErrDirectedGraph   - Prim was given directed edges.
//	ErrDisconnected    - Prim could not span all vertices.
//	ErrNoPath          - PathTo asked for an unreached vertex.
//
// Concurrency:
//
//	Each run owns its heap and state maps exclusively and is strictly
//	single-threaded. The input graph is only read; concurrent runs over
//	the same graph are safe.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	res, err := traverse.Dijkstra(g, traverse.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, cost, _ := res.PathTo("C") // A->B->C, cost 3
//	_ = path
//	_ = cost
package traverse
