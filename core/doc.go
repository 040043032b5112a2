// Package core provides a thread-safe, in-memory store for directed,
// weighted graphs with a minimal, composable API surface.
//
// The Graph G = (V,E) is organised as:
//
//   - A vertex arena: every vertex gets a dense VertexID handle (0,1,2,...)
//     in insertion order, plus its caller-supplied unique name.
//   - Per-vertex outgoing adjacency in insertion order:
//     out[from] = [{to, weight}, ...]
//   - An ordered-pair index slot[(from,to)] for O(1) duplicate detection
//     and weight lookup.
//   - One sync.RWMutex guarding all of the above.
//
// Why use core.Graph?
//
//   - Explicit handles: algorithms index plain slices, not string maps.
//   - Deterministic iteration: Vertices(), Neighbors() and Edges() follow
//     insertion order.
//   - Fail-fast validation: unknown endpoints and bad weights are rejected
//     before anything is written.
//   - Snapshots: Snapshot() returns an immutable CSR copy for readers that
//     must not be disturbed by concurrent writers.
//
// Configuration Options (GraphOption):
//
//	– WithStrictVertices()
//	    A second AddVertex with the same name fails with ErrDuplicateVertex
//	    instead of returning the existing handle.
//
//	– WithDuplicateEdges(policy)
//	    DuplicateOverwrite (default): last write wins.
//	    DuplicateKeepMin: keep the smaller weight.
//	    DuplicateReject: ErrDuplicateEdge.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(name string) (VertexID, error)   // O(1)
//	Vertex(name string) (VertexID, error)      // O(1)
//	Name(v VertexID) (string, error)           // O(1)
//	Vertices() []VertexID                      // O(V), insertion order
//
//	// Edges
//	AddEdge(from, to VertexID, w float64) error   // O(1)
//	Connect(from, to string, w float64) error     // O(1)
//	AddEdges(specs []EdgeSpec) error              // O(k), all-or-nothing
//	WeightOf(from, to VertexID) (float64, error)  // O(1)
//	Neighbors(v VertexID) ([]VertexID, error)     // O(deg v)
//
//	// Views
//	Snapshot() *Snapshot    // O(V+E), immutable
//	Clone() *Graph          // O(V+E), deep copy
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex name
//	ErrVertexNotFound  – unknown name or handle
//	ErrDuplicateVertex – repeated name in strict mode
//	ErrEdgeNotFound    – no edge for the ordered pair
//	ErrBadWeight       – negative, NaN or infinite weight
//	ErrDuplicateEdge   – repeated pair under DuplicateReject
package core
