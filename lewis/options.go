package lewis

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults for the search bounds and ranking thresholds.
const (
	// DefaultMatsMax caps how many structures are returned.
	DefaultMatsMax = 10
	// DefaultMatsThresh retains structures scoring within this value of
	// the best one.
	DefaultMatsThresh = 10.0
	// DefaultScorePatience stops a search after this many consecutive
	// moves without a new best score.
	DefaultScorePatience = 1000
	// DefaultMaxMatrices hard-caps the number of discovered structures.
	DefaultMaxMatrices = 10000
	// DefaultTransferRadius bounds non-adjacent charge transfer to
	// atoms within this many bonds.
	DefaultTransferRadius = 3
	// DefaultDepthLimit caps recursion depth per branch. An intentional
	// safety valve for pathological, highly symmetric inputs.
	DefaultDepthLimit = 5000
)

// Option configures a Find call. Use with Find(elements, adj, opts...).
type Option func(*Options)

// Options holds every tunable of the solver. Zero values are filled by
// DefaultOptions; invalid values surface as ErrOptionViolation before
// any work starts.
type Options struct {
	// Charge is the overall net charge of the molecule.
	Charge int

	// Rings optionally supplies pre-computed rings (ordered atom-index
	// cycles). When nil, rings are detected from the adjacency matrix.
	Rings [][]int

	// MatsMax and MatsThresh control result retention: keep structures
	// while score − best < MatsThresh, never more than MatsMax.
	MatsMax    int
	MatsThresh float64

	// Weights are the scoring weights; see DefaultWeights.
	Weights Weights

	// LocalTransfer restricts lone-electron charge transfer to atoms
	// within TransferRadius bonds. Disabling it treats every pair as
	// nearby, which can be expensive.
	LocalTransfer  bool
	TransferRadius int

	// ScorePatience and MaxMatrices bound the search; Window is the
	// score window of the resonance-exploration phase (0 disables the
	// window entirely, accepting every unseen structure).
	ScorePatience int
	MaxMatrices   int
	Window        float64

	// DepthLimit caps recursion depth per branch (0 = unlimited).
	DepthLimit int

	// Logger receives structured search diagnostics; defaults to a nop
	// logger so the solver is silent unless asked.
	Logger *zap.Logger

	// ParallelGuesses evaluates independent initial guesses on separate
	// goroutines with per-guess frontiers, merged in guess order.
	// Off by default so results are bit-identical with the sequential
	// exploration.
	ParallelGuesses bool

	err error // first option violation, surfaced by Find
}

// DefaultOptions returns the solver defaults: neutral charge, automatic
// ring detection, retention 10/10.0, the standard weight set, local
// transfer within 3 bonds, patience 1000, cap 10000, window equal to
// the retention threshold, depth limit 5000, nop logger, sequential.
func DefaultOptions() Options {
	return Options{
		MatsMax:        DefaultMatsMax,
		MatsThresh:     DefaultMatsThresh,
		Weights:        DefaultWeights(),
		LocalTransfer:  true,
		TransferRadius: DefaultTransferRadius,
		ScorePatience:  DefaultScorePatience,
		MaxMatrices:    DefaultMaxMatrices,
		Window:         DefaultMatsThresh,
		DepthLimit:     DefaultDepthLimit,
		Logger:         zap.NewNop(),
	}
}

// WithCharge sets the overall net charge.
func WithCharge(q int) Option {
	return func(o *Options) { o.Charge = q }
}

// WithRings supplies pre-computed rings, skipping detection.
func WithRings(rings [][]int) Option {
	return func(o *Options) { o.Rings = rings }
}

// WithMatsMax caps the number of returned structures.
func WithMatsMax(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("MatsMax", n)

			return
		}
		o.MatsMax = n
	}
}

// WithMatsThresh sets the retention score threshold.
func WithMatsThresh(v float64) Option {
	return func(o *Options) {
		if v <= 0 {
			o.fail("MatsThresh", v)

			return
		}
		o.MatsThresh = v
	}
}

// WithWeights replaces the whole scoring weight set.
func WithWeights(w Weights) Option {
	return func(o *Options) { o.Weights = w }
}

// WithLocalTransfer toggles locality gating of charge transfer.
func WithLocalTransfer(enabled bool) Option {
	return func(o *Options) { o.LocalTransfer = enabled }
}

// WithTransferRadius sets the bond-hop radius for charge transfer.
func WithTransferRadius(r int) Option {
	return func(o *Options) {
		if r < 1 {
			o.fail("TransferRadius", r)

			return
		}
		o.TransferRadius = r
	}
}

// WithScorePatience sets the stagnation bound.
func WithScorePatience(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("ScorePatience", n)

			return
		}
		o.ScorePatience = n
	}
}

// WithMaxMatrices sets the hard cap on discovered structures.
func WithMaxMatrices(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("MaxMatrices", n)

			return
		}
		o.MaxMatrices = n
	}
}

// WithWindow sets the resonance-phase score window; 0 removes the
// window so every unseen structure is explored (bounded only by
// patience and the matrix cap).
func WithWindow(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			o.fail("Window", w)

			return
		}
		o.Window = w
	}
}

// WithDepthLimit caps per-branch recursion depth; 0 means unlimited.
func WithDepthLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("DepthLimit", n)

			return
		}
		o.DepthLimit = n
	}
}

// WithLogger installs a structured logger for search diagnostics.
// Passing nil keeps the nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelGuesses shards independent initial guesses across
// goroutines. The merged result is deterministic, but may differ from
// the sequential exploration (guesses no longer share a frontier).
func WithParallelGuesses() Option {
	return func(o *Options) { o.ParallelGuesses = true }
}

// fail records the first option violation.
func (o *Options) fail(name string, v interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s=%v", ErrOptionViolation, name, v)
	}
}
