// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      vertices farther than this are left unreached (≥ 0).
//	– InfEdgeThreshold: edges with weight ≥ this threshold are impassable (> 0).
//	– OnVisit:          hook invoked when a vertex is finalized.
//	– Context:          cancellation, checked once per finalized vertex.
//
// Invalid option values are recorded while options are applied and surfaced as
// ErrOptionViolation when the solver is invoked; option constructors never panic.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph or *core.Snapshot was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates an unknown source or target handle.
	// It is the store's sentinel, so errors.Is matches either name.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrOptionViolation wraps every invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would make every edge (including zero-weight edges) impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested target was never reached.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrVisitAborted wraps an error returned by the OnVisit hook.
	ErrVisitAborted = errors.New("dijkstra: aborted by visit hook")

	// ErrDistanceOverflow indicates that a vertex is reachable only through
	// paths whose length exceeds the float64 range.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows float64")
)

// VisitFunc is called once per vertex when its distance becomes final.
// Returning a non-nil error stops the solve.
type VisitFunc func(v core.VertexID, dist float64) error

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose shortest distance exceeds this stay unreached.
// InfEdgeThreshold – edges with weight ≥ this threshold are never traversed.
// OnVisit          – finalization hook; nil disables it.
// Ctx              – cancellation; defaults to context.Background().
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	OnVisit          VisitFunc
	Ctx              context.Context

	// first invalid option seen while applying Option values
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not settled and are
// reported as unreached. max must be ≥ 0; otherwise the solver fails with
// ErrOptionViolation wrapping ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.setErr(fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// threshold must be > 0; otherwise the solver fails with ErrOptionViolation
// wrapping ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.setErr(fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnVisit registers a callback run when a vertex is finalized, in
// finalization order. Returning an error aborts the solve.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithContext makes the solve observe ctx cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.setErr(fmt.Errorf("%w: nil context", ErrOptionViolation))
			return
		}
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge is impassable).
//   - OnVisit:          nil.
//   - Ctx:              context.Background().
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Ctx:              context.Background(),
	}
}

// setErr keeps the first recorded option error.
func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
