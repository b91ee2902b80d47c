// Package lvlheap is an indexed priority-queue toolkit for greedy graph
// traversal: a mutable binary min-heap with stable entry IDs, plus the
// Dijkstra and Prim frontier algorithms built on top of it.
//
// 🚀 What is lvlheap?
//
//	A small, focused library that brings together:
//		• indexheap: array-backed min-heap with O(1) access to any entry
//		  by stable ID, O(log n) decrease-key, and a two-phase bulk-load
//		  API (batch Insert, then one O(n) Heapify)
//		• core: a minimal weighted adjacency-list graph with
//		  deterministic iteration order
//		• traverse: shortest paths (Dijkstra) and minimum spanning trees
//		  (Prim) sharing one eager decrease-key frontier loop
//
// ✨ Why choose lvlheap?
//
//   - One heap entry per vertex: the frontier never grows past V, in
//     contrast to lazy formulations that flood the heap with duplicates
//   - Stable IDs survive every sift, so callers can mutate any entry's
//     weight in place and re-settle in O(log n)
//   - Deterministic results: sorted vertex and neighbor iteration makes
//     every run reproducible
//   - Pure Go, explicit errors, no hidden state
//
// Under the hood, everything is organized under three subpackages:
//
//	indexheap/ — the indexed mutable min-heap (the reusable primitive)
//	core/      — Graph and Edge types with thread-safe adjacency queries
//	traverse/  — Dijkstra shortest paths & Prim MST over the heap
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    └──C──┘
//
//	the shortest route A→C runs through B (1+2=3), not the direct edge.
//
//	go get github.com/katalvlaran/lvlheap
package lvlheap
