// File: batch.go
// Role: All-or-nothing bulk edge insertion by vertex name.
// Concurrency:
//   - Validation and insertion run under one write lock, so readers never
//     observe a partially applied batch.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// EdgeSpec names an edge by its endpoint names.
type EdgeSpec struct {
	From   string
	To     string
	Weight float64
}

// String renders the spec as FROM→TO(weight).
func (s EdgeSpec) String() string {
	return fmt.Sprintf("%s→%s(%v)", s.From, s.To, s.Weight)
}

// AddEdges inserts every spec, or none of them.
//
// Implementation:
//   - Stage 1: Under the write lock, validate each spec: names non-empty and
//     registered, weight valid, and under DuplicateReject no clash with an
//     existing edge or an earlier spec of the same batch.
//   - Stage 2: If any spec failed, return every failure aggregated into a
//     single *multierror.Error; nothing is written.
//   - Stage 3: Otherwise apply the specs in order with the graph's duplicate policy.
//
// Errors:
//   - Aggregated per-spec errors; each one wraps ErrEmptyVertexID,
//     ErrVertexNotFound, ErrBadWeight or ErrDuplicateEdge and can be matched
//     with errors.Is on the returned error.
//
// Complexity:
//   - Time O(len(specs)), Space O(len(specs)).
func (g *Graph) AddEdges(specs []EdgeSpec) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var result *multierror.Error
	resolved := make([]edgeKey, len(specs))
	seen := make(map[edgeKey]struct{}, len(specs))

	for i, s := range specs {
		if s.From == "" || s.To == "" {
			result = multierror.Append(result, fmt.Errorf("edge #%d %s: %w", i, s, ErrEmptyVertexID))
			continue
		}
		if err := validateWeight(s.Weight); err != nil {
			result = multierror.Append(result, fmt.Errorf("edge #%d %s: %w", i, s, err))
			continue
		}
		u, okFrom := g.index[s.From]
		v, okTo := g.index[s.To]
		if !okFrom || !okTo {
			missing := s.From
			if okFrom {
				missing = s.To
			}
			result = multierror.Append(result, fmt.Errorf("edge #%d %s: %w: %q", i, s, ErrVertexNotFound, missing))
			continue
		}

		key := edgeKey{from: u, to: v}
		if g.dupPolicy == DuplicateReject {
			_, stored := g.slot[key]
			_, batched := seen[key]
			if stored || batched {
				result = multierror.Append(result, fmt.Errorf("edge #%d %s: %w", i, s, ErrDuplicateEdge))
				continue
			}
		}
		seen[key] = struct{}{}
		resolved[i] = key
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for i, key := range resolved {
		// Inputs are validated above; addEdgeLocked cannot fail here.
		_ = g.addEdgeLocked(key.from, key.to, specs[i].Weight)
	}

	return nil
}
