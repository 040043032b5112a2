// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() enumerates sources in insertion order, then each source's
//     outgoing arcs in insertion order.
//
// Concurrency:
//   - Mutations take mu for writing, queries take it for reading.
package core

import (
	"fmt"
	"math"
)

// AddEdge records a directed edge from → to with the given weight.
//
// Implementation:
//   - Stage 1: Validate the weight (ErrBadWeight).
//   - Stage 2: Under the write lock, validate both endpoints (ErrVertexNotFound).
//   - Stage 3: If the pair already has an edge, apply the duplicate policy;
//     otherwise append `to` to from's adjacency list.
//
// Behavior highlights:
//   - Validation happens before any write: a failed call leaves the graph unchanged.
//   - A repeated pair keeps its original adjacency position; only the weight changes.
//   - Self-loops are accepted.
//
// Errors:
//   - ErrBadWeight: weight < 0, NaN or ±Inf.
//   - ErrVertexNotFound: from or to is not a handle of this graph.
//   - ErrDuplicateEdge: pair exists and the policy is DuplicateReject.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(from, to, weight)
}

// Connect is AddEdge by vertex name. It never creates vertices.
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) Connect(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := validateWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	v, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	return g.addEdgeLocked(u, v, weight)
}

// addEdgeLocked expects mu to be held for writing and weight to be valid.
func (g *Graph) addEdgeLocked(from, to VertexID, weight float64) error {
	if !g.containsLocked(from) {
		return fmt.Errorf("%w: edge source %s", ErrVertexNotFound, from)
	}
	if !g.containsLocked(to) {
		return fmt.Errorf("%w: edge destination %s", ErrVertexNotFound, to)
	}

	key := edgeKey{from: from, to: to}
	if i, exists := g.slot[key]; exists {
		switch g.dupPolicy {
		case DuplicateReject:
			return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, g.names[from], g.names[to])
		case DuplicateKeepMin:
			if weight < g.out[from][i].weight {
				g.out[from][i].weight = weight
			}
		default:
			g.out[from][i].weight = weight
		}

		return nil
	}

	g.slot[key] = len(g.out[from])
	g.out[from] = append(g.out[from], arc{to: to, weight: weight})

	return nil
}

// WeightOf returns the weight of the edge from → to.
//
// Errors:
//   - ErrVertexNotFound: from or to is not a handle of this graph.
//   - ErrEdgeNotFound: both exist but no edge connects them in this direction.
//
// Complexity: O(1).
func (g *Graph) WeightOf(from, to VertexID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsLocked(from) || !g.containsLocked(to) {
		return 0, fmt.Errorf("%w: %s→%s", ErrVertexNotFound, from, to)
	}
	i, ok := g.slot[edgeKey{from: from, to: to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, g.names[from], g.names[to])
	}

	return g.out[from][i].weight, nil
}

// HasEdge reports whether an edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.slot[edgeKey{from: from, to: to}]

	return ok
}

// Edges returns a copy of every edge, grouped by source in insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.slot))
	for from, arcs := range g.out {
		for _, a := range arcs {
			out = append(out, Edge{From: VertexID(from), To: a.to, Weight: a.weight})
		}
	}

	return out
}

// EdgeCount returns the number of distinct ordered pairs with an edge.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.slot)
}

// validateWeight rejects weights Dijkstra cannot handle.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}

	return nil
}
