// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexNames() return vertices in insertion order.
//
// Concurrency:
//   - Mutations take mu for writing, queries take it for reading.
package core

import "fmt"

// AddVertex registers a vertex under the given name and returns its handle.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, return the existing handle if the name is
//     known (or ErrDuplicateVertex in strict mode).
//   - Stage 3: Otherwise append to the arena and allocate an empty adjacency list.
//
// Behavior highlights:
//   - Idempotent by default: the existing adjacency is preserved, not reset.
//
// Errors:
//   - ErrEmptyVertexID: if name == "".
//   - ErrDuplicateVertex: strict mode only.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(name string) (VertexID, error) {
	if name == "" {
		return NoVertex, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, exists := g.index[name]; exists {
		if g.strictVertices {
			return id, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
		}

		return id, nil
	}

	id := VertexID(len(g.names))
	g.names = append(g.names, name)
	g.out = append(g.out, nil)
	g.index[name] = id

	return id, nil
}

// Vertex resolves a name to its handle.
// Returns ErrEmptyVertexID or ErrVertexNotFound on failure.
// Complexity: O(1).
func (g *Graph) Vertex(name string) (VertexID, error) {
	if name == "" {
		return NoVertex, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[name]
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return id, nil
}

// HasVertex reports whether the name is registered (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	if name == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// Contains reports whether v is a valid handle of this graph.
// Complexity: O(1).
func (g *Graph) Contains(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.containsLocked(v)
}

// Name returns the name registered for v.
// Complexity: O(1).
func (g *Graph) Name(v VertexID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsLocked(v) {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, v)
	}

	return g.names[v], nil
}

// Vertices returns every handle in insertion order (0..n-1).
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, len(g.names))
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}

// VertexNames returns every vertex name in insertion order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) VertexNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// containsLocked expects mu to be held.
func (g *Graph) containsLocked(v VertexID) bool {
	return v >= 0 && int(v) < len(g.names)
}
