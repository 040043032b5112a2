package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

const (
	pathSeparator = " -> "
	unreached     = "unreached"
)

// FormatDistance renders a distance without trailing zeros: 8, 2.5, 1e+21.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// Line renders the shortest path to v and its length.
// An unknown handle yields an error matching dijkstra.ErrVertexNotFound.
func Line(r *dijkstra.Result, v core.VertexID) (string, error) {
	names, err := r.PathNames(v)
	switch {
	case err == nil:
		d, _ := r.Distance(v)
		return strings.Join(names, pathSeparator) + " : " + FormatDistance(d), nil
	case errors.Is(err, dijkstra.ErrNoPath):
		return r.Name(v) + " : " + unreached, nil
	default:
		return "", err
	}
}

// Text writes the header "Shortest paths from <source>:" followed by one
// Line per vertex in insertion order.
func Text(w io.Writer, r *dijkstra.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Shortest paths from %s:\n", r.Name(r.Source())); err != nil {
		return err
	}
	for v := 0; v < r.Len(); v++ {
		line, err := Line(r, core.VertexID(v))
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
