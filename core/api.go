// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction-time policy and a stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount     int
	EdgeCount       int
	MaxOutDegree    int
	SinkCount       int // vertices without outgoing edges
	StrictVertices  bool
	DuplicatePolicy DuplicatePolicy
}

// StrictVertices reports whether repeated AddVertex calls fail.
func (g *Graph) StrictVertices() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strictVertices
}

// DuplicateEdges reports the duplicate-edge policy chosen at construction.
func (g *Graph) DuplicateEdges() DuplicatePolicy {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.dupPolicy
}

// Stats produces a deterministic, read-only snapshot of flags and sizes.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount:     len(g.names),
		EdgeCount:       len(g.slot),
		StrictVertices:  g.strictVertices,
		DuplicatePolicy: g.dupPolicy,
	}
	for _, arcs := range g.out {
		if len(arcs) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(arcs)
		}
		if len(arcs) == 0 {
			stats.SinkCount++
		}
	}

	return stats
}
