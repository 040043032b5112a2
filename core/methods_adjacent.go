// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() and OutEdges() keep edge insertion order.
// Concurrency:
//   - Read lock only; returned slices are copies.

package core

import "fmt"

// Neighbors returns the destinations of v's outgoing edges in insertion order.
//
// Errors:
//   - ErrVertexNotFound: v is not a handle of this graph.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)).
func (g *Graph) Neighbors(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsLocked(v) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}

	out := make([]VertexID, len(g.out[v]))
	for i, a := range g.out[v] {
		out[i] = a.to
	}

	return out, nil
}

// OutEdges returns v's outgoing edges (with weights) in insertion order.
// Complexity: O(deg(v)).
func (g *Graph) OutEdges(v VertexID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsLocked(v) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}

	out := make([]Edge, len(g.out[v]))
	for i, a := range g.out[v] {
		out[i] = Edge{From: v, To: a.to, Weight: a.weight}
	}

	return out, nil
}

// OutDegree returns the number of outgoing edges of v.
// Complexity: O(1).
func (g *Graph) OutDegree(v VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsLocked(v) {
		return 0, fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}

	return len(g.out[v]), nil
}
