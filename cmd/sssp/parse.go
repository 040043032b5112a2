package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// ErrBadEdgeSpec is returned for an --edge value that is not FROM:TO:WEIGHT.
var ErrBadEdgeSpec = errors.New("sssp: edge must be FROM:TO:WEIGHT")

// parseEdge splits FROM:TO:WEIGHT. Names are trimmed; the weight is any float
// strconv accepts. Weight validity is left to the graph store.
func parseEdge(s string) (core.EdgeSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return core.EdgeSpec{}, fmt.Errorf("%w: %q", ErrBadEdgeSpec, s)
	}
	from, to := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return core.EdgeSpec{}, fmt.Errorf("%w: %q has an empty endpoint", ErrBadEdgeSpec, s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return core.EdgeSpec{}, fmt.Errorf("%w: %q: %w", ErrBadEdgeSpec, s, err)
	}

	return core.EdgeSpec{From: from, To: to, Weight: w}, nil
}

// parseEdges parses every value, stopping at the first bad one.
func parseEdges(values []string) ([]core.EdgeSpec, error) {
	specs := make([]core.EdgeSpec, 0, len(values))
	for _, v := range values {
		spec, err := parseEdge(v)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}
