// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves handles, names and adjacency order.
// Concurrency:
//   - Read lock on the source for Clone; write lock for Clear.

package core

// Clone returns a deep copy of g with the same options.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		strictVertices: g.strictVertices,
		dupPolicy:      g.dupPolicy,
		names:          make([]string, len(g.names)),
		index:          make(map[string]VertexID, len(g.index)),
		out:            make([][]arc, len(g.out)),
		slot:           make(map[edgeKey]int, len(g.slot)),
	}
	copy(out.names, g.names)
	for name, id := range g.index {
		out.index[name] = id
	}
	for v, arcs := range g.out {
		if len(arcs) == 0 {
			continue
		}
		out.out[v] = append([]arc(nil), arcs...)
	}
	for k, i := range g.slot {
		out.slot[k] = i
	}

	return out
}

// Clear removes every vertex and edge but keeps the options.
// Handles issued before Clear become invalid.
// Complexity: O(1) plus garbage collection.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.names = nil
	g.out = nil
	g.index = make(map[string]VertexID)
	g.slot = make(map[edgeKey]int)
}
