// SPDX-License-Identifier: MIT
// Package core defines the Graph store, the VertexID handle and Edge types,
// and the thread-safe primitives for building and querying directed
// weighted graphs.
//
// This file declares VertexID, Edge, Graph, GraphOption, the duplicate-edge
// policies, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex name is the empty string.
//	ErrVertexNotFound  - requested vertex (name or handle) does not exist.
//	ErrDuplicateVertex - vertex name already registered in strict mode.
//	ErrEdgeNotFound    - no edge for the requested ordered pair.
//	ErrBadWeight       - weight is negative, NaN or infinite.
//	ErrDuplicateEdge   - ordered pair already has an edge under DuplicateReject.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-registered vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a second registration of the same name
	// on a graph built WithStrictVertices.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates that no edge exists for the ordered pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrDuplicateEdge indicates a second edge for the same ordered pair
	// on a graph built WithDuplicateEdges(DuplicateReject).
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// VertexID is a dense handle into the graph's vertex arena.
// Handles are assigned in insertion order starting at 0; Clear restarts the count.
type VertexID int

// NoVertex is the "none" handle: no predecessor, no such vertex.
const NoVertex VertexID = -1

// String renders the handle for diagnostics.
func (v VertexID) String() string {
	if v == NoVertex {
		return "none"
	}

	return "v" + strconv.Itoa(int(v))
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// DuplicatePolicy decides what AddEdge does when the ordered pair already
// has an edge.
type DuplicatePolicy int

const (
	// DuplicateOverwrite replaces the stored weight (last write wins).
	DuplicateOverwrite DuplicatePolicy = iota

	// DuplicateKeepMin keeps the smaller of the stored and the new weight.
	DuplicateKeepMin

	// DuplicateReject fails the second insertion with ErrDuplicateEdge.
	DuplicateReject
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateKeepMin:
		return "keep-min"
	case DuplicateReject:
		return "reject"
	default:
		return "unknown(" + strconv.Itoa(int(p)) + ")"
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictVertices makes a repeated AddVertex of the same name fail with
// ErrDuplicateVertex instead of returning the existing handle.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strictVertices = true }
}

// WithDuplicateEdges selects the policy for repeated edges between the same
// ordered pair. Unknown policies fall back to DuplicateOverwrite.
func WithDuplicateEdges(p DuplicatePolicy) GraphOption {
	return func(g *Graph) {
		switch p {
		case DuplicateOverwrite, DuplicateKeepMin, DuplicateReject:
			g.dupPolicy = p
		default:
			g.dupPolicy = DuplicateOverwrite
		}
	}
}

// arc is one outgoing adjacency entry.
type arc struct {
	to     VertexID
	weight float64
}

// edgeKey identifies an ordered pair.
type edgeKey struct {
	from, to VertexID
}

// Graph is the in-memory directed weighted graph store.
//
// Vertices live in an arena indexed by VertexID; names maps the caller's
// string identifiers onto handles. out[v] holds v's outgoing arcs in
// insertion order and slot[(u,v)] is the position of v inside out[u], so
// duplicate detection and weight lookup are O(1).
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph).
	strictVertices bool
	dupPolicy      DuplicatePolicy

	// Storage.
	names []string            // VertexID → name
	index map[string]VertexID // name → VertexID
	out   [][]arc             // VertexID → outgoing arcs, insertion order
	slot  map[edgeKey]int     // (from,to) → index into out[from]
}

// NewGraph creates an empty Graph with the given options.
// By default vertex registration is idempotent and duplicate edges overwrite.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]VertexID),
		slot:  make(map[edgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
