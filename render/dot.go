package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// graphName is the identifier written after "digraph".
const graphName = "shortest_paths"

// DOT renders the shortest-path tree of r as a Graphviz digraph.
//
// Every vertex of the solved graph becomes a node named by its quoted vertex
// name. Reached vertices are labelled "name\ndistance"; the source is drawn
// as a double circle. Each reached non-source vertex gets one edge from its
// predecessor labelled with the edge weight. Unreached vertices are dashed
// and have no edges.
func DOT(r *dijkstra.Result) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	for attr, value := range map[string]string{"rankdir": "LR", "nodesep": "0.5"} {
		if err := graph.AddAttr(graphName, attr, value); err != nil {
			return "", fmt.Errorf("render: graph attribute %s: %w", attr, err)
		}
	}

	for v := 0; v < r.Len(); v++ {
		id := core.VertexID(v)
		if err := graph.AddNode(graphName, nodeName(r, id), nodeAttrs(r, id)); err != nil {
			return "", fmt.Errorf("render: node %s: %w", id, err)
		}
	}

	for v := 0; v < r.Len(); v++ {
		id := core.VertexID(v)
		prev, ok := r.Predecessor(id)
		if !ok {
			continue
		}
		w, err := r.Snapshot().WeightOf(prev, id)
		if err != nil {
			return "", fmt.Errorf("render: tree edge %s→%s: %w", prev, id, err)
		}
		attrs := map[string]string{"label": strconv.Quote(FormatDistance(w))}
		if err := graph.AddEdge(nodeName(r, prev), nodeName(r, id), true, attrs); err != nil {
			return "", fmt.Errorf("render: edge %s→%s: %w", prev, id, err)
		}
	}

	return graph.String(), nil
}

func nodeName(r *dijkstra.Result, v core.VertexID) string {
	return strconv.Quote(r.Name(v))
}

func nodeAttrs(r *dijkstra.Result, v core.VertexID) map[string]string {
	d, ok := r.Distance(v)
	if !ok {
		return map[string]string{
			"label": strconv.Quote(r.Name(v) + "\n" + unreached),
			"style": "dashed",
		}
	}

	attrs := map[string]string{
		"label": strconv.Quote(r.Name(v) + "\n" + FormatDistance(d)),
		"shape": "circle",
	}
	if v == r.Source() {
		attrs["shape"] = "doublecircle"
	}

	return attrs
}
