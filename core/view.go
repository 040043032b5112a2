// File: view.go
// Role: Immutable read-only views of a Graph.
// Determinism:
//   - A Snapshot preserves handles, names and adjacency order of its source.
// Concurrency:
//   - Snapshot() holds the source's read lock only while copying; the returned
//     value is never mutated and is safe for any number of concurrent readers.

package core

import "fmt"

// Snapshot is an immutable compact copy of a Graph in CSR form:
// the outgoing arcs of v are targets[offsets[v]:offsets[v+1]] with the
// matching weights at the same positions.
type Snapshot struct {
	names   []string
	index   map[string]VertexID
	offsets []int
	targets []VertexID
	weights []float64
}

// Snapshot captures the current state of g.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy names and index; flatten adjacency into offsets/targets/weights.
//
// Behavior highlights:
//   - Later mutations of g are not visible through the snapshot.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.names)
	s := &Snapshot{
		names:   make([]string, n),
		index:   make(map[string]VertexID, n),
		offsets: make([]int, n+1),
		targets: make([]VertexID, 0, len(g.slot)),
		weights: make([]float64, 0, len(g.slot)),
	}
	copy(s.names, g.names)
	for name, id := range g.index {
		s.index[name] = id
	}
	for v, arcs := range g.out {
		s.offsets[v] = len(s.targets)
		for _, a := range arcs {
			s.targets = append(s.targets, a.to)
			s.weights = append(s.weights, a.weight)
		}
	}
	s.offsets[n] = len(s.targets)

	return s
}

// Len returns the number of vertices.
func (s *Snapshot) Len() int { return len(s.names) }

// EdgeCount returns the number of edges.
func (s *Snapshot) EdgeCount() int { return len(s.targets) }

// Contains reports whether v is a valid handle.
func (s *Snapshot) Contains(v VertexID) bool {
	return v >= 0 && int(v) < len(s.names)
}

// Lookup resolves a name to its handle.
func (s *Snapshot) Lookup(name string) (VertexID, bool) {
	id, ok := s.index[name]

	return id, ok
}

// Name returns the name of v, or "" for an unknown handle.
func (s *Snapshot) Name(v VertexID) string {
	if !s.Contains(v) {
		return ""
	}

	return s.names[v]
}

// Targets returns the destinations of v's outgoing arcs in insertion order.
// The slice aliases snapshot storage and must not be modified.
// An unknown handle yields nil.
func (s *Snapshot) Targets(v VertexID) []VertexID {
	if !s.Contains(v) {
		return nil
	}

	return s.targets[s.offsets[v]:s.offsets[v+1]]
}

// Weights returns the weights matching Targets(v), position by position.
// The slice aliases snapshot storage and must not be modified.
func (s *Snapshot) Weights(v VertexID) []float64 {
	if !s.Contains(v) {
		return nil
	}

	return s.weights[s.offsets[v]:s.offsets[v+1]]
}

// WeightOf returns the weight of from → to.
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(deg(from)).
func (s *Snapshot) WeightOf(from, to VertexID) (float64, error) {
	if !s.Contains(from) || !s.Contains(to) {
		return 0, fmt.Errorf("%w: %s→%s", ErrVertexNotFound, from, to)
	}
	for i, t := range s.Targets(from) {
		if t == to {
			return s.weights[s.offsets[from]+i], nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, s.names[from], s.names[to])
}
