// Package traverse defines configuration options, sentinel errors and
// the Result type shared by the greedy frontier algorithms.
package traverse

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlheap/core"
)

// Unreachable is the sentinel weight marking a vertex the traversal has
// not reached. It is larger than any achievable sum of edge weights
// along a simple path; the frontier loop never relaxes outwards from a
// sentinel-weight vertex, so sentinel arithmetic (and the overflow it
// would invite) never happens.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for traversal execution.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("traverse: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrVertexNotFound indicates the source or target vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("traverse: vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight, which breaks
	// Dijkstra's correctness guarantee. Detected by an O(E) pre-scan.
	ErrNegativeWeight = errors.New("traverse: negative edge weight encountered")

	// ErrDirectedGraph indicates Prim was given a graph with directed
	// edges; spanning trees are defined over undirected graphs.
	ErrDirectedGraph = errors.New("traverse: MST requires an undirected graph")

	// ErrDisconnected indicates Prim could not attach every vertex:
	// fewer than V-1 tree edges were found.
	ErrDisconnected = errors.New("traverse: graph is disconnected")

	// ErrNoPath indicates PathTo was asked for a vertex the traversal
	// never reached.
	ErrNoPath = errors.New("traverse: no path to vertex")

	// ErrBadMaxVisits indicates a negative visit cap passed to WithMaxVisits.
	ErrBadMaxVisits = errors.New("traverse: MaxVisits must be non-negative")
)

// Options configures a traversal run.
//
// Source    - starting vertex ID (required, must exist in the graph).
// Target    - optional; Dijkstra stops early once this vertex is final.
// MaxVisits - optional cap on finalized vertices; 0 means unlimited.
type Options struct {
	Source    string // the ID of the start vertex
	Target    string // optional early-exit vertex for Dijkstra
	MaxVisits int    // external iteration cap; 0 disables the cap
}

// Option represents a functional option for configuring a traversal.
type Option func(*Options)

// Source sets the starting vertex ID. Must be provided on every run.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget makes Dijkstra stop as soon as the given vertex's distance
// is finalized, instead of settling the whole reachable component.
// Prim ignores the target.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxVisits bounds the work of a run: the loop stops once n
// vertices have been finalized, returning whatever partial result was
// built. n == 0 disables the cap. Negative n panics, signalling
// invalid configuration at the call site.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxVisits.Error())
		}
		o.MaxVisits = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID: no target, no visit cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		Target:    "",
		MaxVisits: 0,
	}
}

// Result holds the outcome of a shortest-path traversal:
//
//   - Dist maps every vertex to its minimum distance from Source, or
//     Unreachable for vertices the run never reached.
//   - Prev maps every vertex to its predecessor on one shortest path,
//     or "" for the source and unreached vertices.
//
// When a run was cut short by WithTarget or WithMaxVisits, weights of
// vertices that were relaxed but never finalized are tentative upper
// bounds, not guaranteed minima.
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// PathTo reconstructs the edge sequence from Source to target by
// walking predecessor links backwards, and returns it together with
// the total cost. Edge weights are recovered from distance deltas.
//
// An unreached target yields ErrNoPath; this is the normal outcome for
// disconnected graphs, not a traversal failure. PathTo(Source) returns
// an empty path with zero cost.
// Complexity: O(path length).
func (r *Result) PathTo(target string) ([]core.Edge, int64, error) {
	total, ok := r.Dist[target]
	if !ok || total == Unreachable {
		return nil, 0, fmt.Errorf("%w: %q", ErrNoPath, target)
	}
	if target == r.Source {
		return []core.Edge{}, 0, nil
	}

	// Walk backwards, then reverse into source -> target order.
	var path []core.Edge
	for v := target; v != r.Source; {
		u := r.Prev[v]
		if u == "" {
			return nil, 0, fmt.Errorf("%w: broken predecessor chain at %q", ErrNoPath, v)
		}
		path = append(path, core.Edge{From: u, To: v, Weight: r.Dist[v] - r.Dist[u]})
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}
