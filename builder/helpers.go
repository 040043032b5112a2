// Package builder provides internal helper functions used by Constructor
// implementations to register vertices and emit edges uniformly.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/shortpath/core"
)

// Fixed vertex names and minima shared by several constructors.
const (
	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"

	probMin = 0.0
	probMax = 1.0
)

// addVertices registers idFn(0..n-1) and returns their handles in order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		name := cfg.idFn(i)
		id, err := g.AddVertex(name)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addNamed registers one fixed-name vertex.
func addNamed(g *core.Graph, method, name string) (core.VertexID, error) {
	id, err := g.AddVertex(name)
	if err != nil {
		return core.NoVertex, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
	}

	return id, nil
}

// emit adds u→v with weight w, and v→u too when cfg.bidirectional is set.
// Complexity: O(1) amortized.
func emit(g *core.Graph, cfg builderConfig, method string, u, v core.VertexID, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.bidirectional {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
