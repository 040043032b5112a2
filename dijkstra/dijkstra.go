// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a directed graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once as "fresh": V finalizations.
//   - Each successful relaxation pushes a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and visited slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - The solver reads a core.Snapshot, never the live graph, so concurrent
//     writers cannot disturb a run in progress.
//   - Heap ties on distance are broken by the smaller VertexID, so the
//     finalization order and the chosen predecessors are deterministic.
//   - Relaxation uses a strict “<”: an equal-cost alternative never replaces
//     the predecessor recorded first.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - A finite distance plus a finite weight can round to +Inf. Such a candidate
//     never settles its target; if the target ends the run with no finite
//     distance, the solve fails with ErrDistanceOverflow instead of reporting
//     a reachable vertex as unreached.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// The graph is captured with g.Snapshot() first; later writes to g do not
// affect the returned Result.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound); an empty graph contains nothing.
//
// A vertex reachable only through paths longer than math.MaxFloat64 fails the
// solve with ErrDistanceOverflow, unless MaxDistance already excludes it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	return run(g.Snapshot(), source, cfg)
}

// DijkstraFrom is Dijkstra with the source given by name.
func DijkstraFrom(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	snap := g.Snapshot()
	id, ok := snap.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	return run(snap, id, cfg)
}

// Solve runs Dijkstra on an existing snapshot. Several solves may share one
// snapshot concurrently.
func Solve(s *core.Snapshot, source core.VertexID, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNilGraph
	}

	return run(s, source, cfg)
}

// buildOptions applies opts over DefaultOptions and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg, cfg.err
}

// run validates the source and executes the main loop.
func run(s *core.Snapshot, source core.VertexID, cfg Options) (*Result, error) {
	if !s.Contains(source) {
		return nil, fmt.Errorf("%w: source %s", ErrVertexNotFound, source)
	}

	n := s.Len()
	r := &runner{
		s:       s,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]core.VertexID, n),
		visited: make([]bool, n),
		settled: make([]core.VertexID, 0, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		snap:    s,
		source:  source,
		dist:    r.dist,
		prev:    r.prev,
		settled: r.settled,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	s       *core.Snapshot  // The input graph; read-only.
	options Options         // Thresholds and hooks.
	dist    []float64       // Vertex → current best distance; +Inf while unreached.
	prev    []core.VertexID // Vertex → predecessor on the shortest path, or NoVertex.
	visited []bool          // Tracks if a vertex's distance is finalized.
	settled []core.VertexID // Finalization order.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.

	overflowed []core.VertexID // Targets of relaxations whose sum rounded to +Inf.
}

// init sets every distance to +Inf and every predecessor to NoVertex, then
// seeds the heap with (source, 0).
func (r *runner) init(source core.VertexID) {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The context is cancelled (ctx.Err() is returned wrapped).
//   - The OnVisit hook returns an error (wrapped in ErrVisitAborted).
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: u was finalized through a cheaper push.
		if r.visited[u] {
			continue
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: solve interrupted at %s: %w", u, err)
		}

		r.visited[u] = true
		r.settled = append(r.settled, u)

		if r.options.OnVisit != nil {
			if err := r.options.OnVisit(u, item.dist); err != nil {
				return fmt.Errorf("%w: at %s: %w", ErrVisitAborted, u, err)
			}
		}

		r.relax(u)
	}

	return r.checkOverflow()
}

// checkOverflow fails the run if a vertex offered only overflowing candidates
// never obtained a finite distance.
func (r *runner) checkOverflow() error {
	for _, v := range r.overflowed {
		if math.IsInf(r.dist[v], 1) {
			return fmt.Errorf("%w: reaching %s", ErrDistanceOverflow, v)
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u core.VertexID) {
	targets := r.s.Targets(u)
	weights := r.s.Weights(u)
	du := r.dist[u]

	for i, v := range targets {
		w := weights[i]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if math.IsInf(newDist, 1) {
			r.overflowed = append(r.overflowed, v)
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist; equal distances fall back to the smaller handle.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
