// Package dijkstra provides a precise, deterministic implementation of Dijkstra's
// single-source shortest-path algorithm on directed graphs with non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Distances and predecessors come back in an immutable *Result that also
//     reconstructs paths.
//
// Key features:
//
//   - Snapshot reads: the solver runs on a core.Snapshot, so a solve can never
//     observe a half-applied write and any number of solves may share one snapshot.
//   - Deterministic ties: heap entries with equal distance pop in VertexID order.
//   - Explicit "unreached": Distance returns (+Inf, false) instead of a magic constant.
//   - Functional options: MaxDistance, InfEdgeThreshold, OnVisit hook, Context.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) worst-case entries in the heap under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        a nil *core.Graph or *core.Snapshot.
//   - ErrVertexNotFound:  unknown source or target (same value as core.ErrVertexNotFound).
//   - ErrOptionViolation: an option was given an invalid value; wraps
//     ErrBadMaxDistance or ErrBadInfThreshold.
//   - ErrVisitAborted:    the OnVisit hook returned an error (wrapped alongside it).
//   - ErrNoPath:          PathTo on a vertex that was never reached.
//   - ErrDistanceOverflow: a reachable vertex has no path length representable
//     as a float64.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error)
//	func DijkstraFrom(g *core.Graph, source string, opts ...Option) (*Result, error)
//	func Solve(s *core.Snapshot, source core.VertexID, opts ...Option) (*Result, error)
//
//	(*Result).Distance(v) (float64, bool)
//	(*Result).Predecessor(v) (core.VertexID, bool)
//	(*Result).PathTo(v) ([]core.VertexID, error)
//	(*Result).PathNames(v) ([]string, error)
//	(*Result).Settled() []core.VertexID
//
// Thread safety:
//
//   - Dijkstra and DijkstraFrom take their own snapshot and are safe to call
//     while other goroutines mutate the graph.
//   - A Result is read-only and safe for concurrent readers.
//
// See also:
//
//   - core.Graph: graph construction and the Snapshot view.
//   - builder: deterministic topologies for tests and demos.
//   - render: text and Graphviz output of a Result.
package dijkstra
