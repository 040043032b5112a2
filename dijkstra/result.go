package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// Result is the immutable outcome of one solve. It keeps a reference to the
// snapshot it was computed on, so names resolve even after the graph changes.
type Result struct {
	snap    *core.Snapshot
	source  core.VertexID
	dist    []float64
	prev    []core.VertexID
	settled []core.VertexID
}

// Source returns the source handle.
func (r *Result) Source() core.VertexID { return r.source }

// Len returns the number of vertices covered by the result.
func (r *Result) Len() int { return len(r.dist) }

// Distance returns the shortest distance to v and true, or (+Inf, false) when
// v was not reached or is not a vertex of the solved graph.
// Every reached vertex has a finite distance: a solve whose result would hold
// an overflowed distance fails with ErrDistanceOverflow instead.
func (r *Result) Distance(v core.VertexID) (float64, bool) {
	if !r.contains(v) || math.IsInf(r.dist[v], 1) {
		return math.Inf(1), false
	}

	return r.dist[v], true
}

// Reached reports whether v has a finite distance.
func (r *Result) Reached(v core.VertexID) bool {
	_, ok := r.Distance(v)

	return ok
}

// Predecessor returns the vertex preceding v on its shortest path. The source,
// unreached vertices and unknown handles yield (NoVertex, false).
func (r *Result) Predecessor(v core.VertexID) (core.VertexID, bool) {
	if !r.contains(v) || r.prev[v] == core.NoVertex {
		return core.NoVertex, false
	}

	return r.prev[v], true
}

// Distances returns a fresh map of every reached vertex to its distance.
func (r *Result) Distances() map[core.VertexID]float64 {
	out := make(map[core.VertexID]float64, len(r.settled))
	for v, d := range r.dist {
		if !math.IsInf(d, 1) {
			out[core.VertexID(v)] = d
		}
	}

	return out
}

// Predecessors returns a fresh map of every vertex that has a predecessor.
func (r *Result) Predecessors() map[core.VertexID]core.VertexID {
	out := make(map[core.VertexID]core.VertexID, len(r.settled))
	for v, p := range r.prev {
		if p != core.NoVertex {
			out[core.VertexID(v)] = p
		}
	}

	return out
}

// Settled returns the vertices in the order their distances became final.
// Distances along this order are non-decreasing.
func (r *Result) Settled() []core.VertexID {
	return append([]core.VertexID(nil), r.settled...)
}

// Snapshot returns the graph view the result was computed on.
func (r *Result) Snapshot() *core.Snapshot { return r.snap }

// Name resolves v against the solved snapshot; "" for an unknown handle.
func (r *Result) Name(v core.VertexID) string { return r.snap.Name(v) }

// PathTo reconstructs the shortest path source → … → target.
//
// Behavior highlights:
//   - PathTo(Source()) is [source].
//   - An unreached target fails fast with ErrNoPath; no walk is attempted.
//   - The backward walk is bounded by Len() steps.
//
// Errors: ErrVertexNotFound, ErrNoPath.
// Complexity: O(path length).
func (r *Result) PathTo(target core.VertexID) ([]core.VertexID, error) {
	if !r.contains(target) {
		return nil, fmt.Errorf("%w: target %s", ErrVertexNotFound, target)
	}
	if !r.Reached(target) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, r.Name(target))
	}

	path := make([]core.VertexID, 0, 8)
	for v, steps := target, 0; v != core.NoVertex; v, steps = r.prev[v], steps+1 {
		if steps >= len(r.prev) {
			// Unreachable for results built by this package.
			return nil, fmt.Errorf("dijkstra: predecessor cycle at %s", v)
		}
		path = append(path, v)
	}

	// Reverse into source → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathNames is PathTo with handles resolved to names.
func (r *Result) PathNames(target core.VertexID) ([]string, error) {
	path, err := r.PathTo(target)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(path))
	for i, v := range path {
		names[i] = r.Name(v)
	}

	return names, nil
}

func (r *Result) contains(v core.VertexID) bool {
	return v >= 0 && int(v) < len(r.dist)
}
