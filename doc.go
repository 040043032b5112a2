// Package shortpath is an in-memory single-source shortest-path engine:
// a thread-safe weighted directed graph store plus a deterministic Dijkstra
// solver over immutable snapshots of it.
//
// What is inside:
//
//	core/      - Graph store: integer vertex handles, validated non-negative
//	             weights, duplicate-edge policies, all-or-nothing batches and
//	             the read-only CSR Snapshot the solver runs on.
//	dijkstra/  - Solver: binary heap with lazy deletion, (dist, handle) tie
//	             order, MaxDistance / InfEdgeThreshold / OnVisit / Context
//	             options, and an immutable Result with path reconstruction.
//	builder/   - Seeded topology constructors (Path, Cycle, Star, Wheel, Grid,
//	             Complete, RandomSparse, Edges) for tests, benchmarks and demos.
//	render/    - Plain-text report and Graphviz DOT of a Result.
//	cmd/sssp/  - Command-line front end.
//
// Quick example (the five-vertex graph, edges inserted in both directions):
//
//	    A ──4── B
//	    │     ╱ │
//	    2   1   5
//	    │ ╱     │
//	    C ──8── D
//	     ╲      │
//	      10    2
//	        ╲   │
//	          E
//
//	sssp --demo --symmetric -s A
//
//	Shortest paths from A:
//	A : 0
//	A -> C -> B : 3
//	A -> C : 2
//	A -> C -> B -> D : 8
//	A -> C -> B -> D -> E : 10
//
//	go get github.com/katalvlaran/shortpath
package shortpath
