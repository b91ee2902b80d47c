// Package core provides the minimal weighted graph the traversal
// algorithms consume: string vertex IDs, int64 edge weights, and a
// read-only "outgoing edges of vertex v" accessor.
//
// Overview:
//
//   - Graph stores adjacency as per-vertex slices of Edge values.
//     Undirected edges (the default) are mirrored into both endpoints'
//     slices, so Neighbors always returns edges with From equal to the
//     queried vertex and callers never walk an edge backwards.
//   - Directedness is a graph-level default (WithDirected) with a
//     per-edge override (WithEdgeDirected), and self-loops are rejected
//     unless WithLoops is set.
//   - Vertices, Neighbors and Edges return sorted copies, so every
//     iteration order in this module is deterministic and results are
//     reproducible across runs.
//
// Thread safety:
//
//	All methods lock an internal RWMutex, so a built graph may be read
//	concurrently (e.g. by several independent traversals). The
//	traversal state itself lives outside the graph and is single-owner.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("A", "C", 2)
//	_ = g.AddEdge("B", "D", 3)
//	_ = g.AddEdge("C", "D", 4)
//	edges, _ := g.Neighbors("A") // A→B(1), A→C(2)
package core
