// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, options and result records for path search.

package traversal

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil adapter.Graph was passed.
	ErrNilGraph = errors.New("traversal: graph is nil")

	// ErrNegativeWeight indicates a negative effective edge weight on a
	// shortest-path relaxation.
	ErrNegativeWeight = errors.New("traversal: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")
)

// Defaults for FindPaths.
const (
	DefaultTau            = 0.05
	DefaultMaxHops        = 3
	DefaultDedupPrecision = 6
	maxDedupPrecision     = 15
)

// Result is one recorded path and its cumulative score.
type Result struct {
	Path  []string `json:"path" yaml:"path"`
	Score float64  `json:"score" yaml:"score"`
}

// Hops returns the number of edges in the path.
func (r Result) Hops() int { return PathLength(r.Path) }

// Options configures FindPaths.
type Options struct {
	// Ctx allows cancellation between expansions.
	Ctx context.Context

	// EndType, if non-empty, restricts results to paths ending on this node type.
	EndType string

	// Tau is the minimum cumulative score a path must keep.
	Tau float64

	// MaxHops caps the number of edges per path.
	MaxHops int

	// CollectAll false stops the search at the first recorded result.
	CollectAll bool

	// DedupPrecision is the number of decimals kept in expansion signatures.
	DedupPrecision int

	// internal error recorded during option parsing
	err error
}

// Option configures FindPaths via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns tau 0.05, three hops, collect-all and 6-decimal
// deduplication with a background context and no end-type filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Tau:            DefaultTau,
		MaxHops:        DefaultMaxHops,
		CollectAll:     true,
		DedupPrecision: DefaultDedupPrecision,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEndType records only paths whose last node has type t.
func WithEndType(t string) Option {
	return func(o *Options) { o.EndType = t }
}

// WithTau sets the pruning threshold.
//
//	x >= 0: valid
//	x < 0 or NaN: ErrOptionViolation
func WithTau(x float64) Option {
	return func(o *Options) {
		if x < 0 || math.IsNaN(x) {
			o.err = fmt.Errorf("%w: Tau must be >= 0 (%v)", ErrOptionViolation, x)
			return
		}
		o.Tau = x
	}
}

// WithMaxHops sets the per-path edge budget. Zero records only the start node.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithCollectAll toggles collecting every qualifying path (true) or stopping
// at the first one (false).
func WithCollectAll(all bool) Option {
	return func(o *Options) { o.CollectAll = all }
}

// WithDedupPrecision sets the decimals kept in expansion signatures (0..15).
func WithDedupPrecision(p int) Option {
	return func(o *Options) {
		if p < 0 || p > maxDedupPrecision {
			o.err = fmt.Errorf("%w: DedupPrecision must be in [0,%d] (%d)", ErrOptionViolation, maxDedupPrecision, p)
			return
		}
		o.DedupPrecision = p
	}
}
