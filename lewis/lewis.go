package lewis

import (
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deepprinciple/golewis/bondmat"
	"github.com/deepprinciple/golewis/molgraph"
)

// Result holds the retained bond-electron matrices, best first, with
// their scores. Matrices[0] is the dominant structure.
type Result struct {
	Matrices []*bondmat.Matrix
	Scores   []float64
}

// Find computes the plausible Lewis structures of a molecule given its
// element symbols and a symmetric adjacency matrix of sigma bond
// orders. The returned structures are sorted by score, deduplicated,
// and trimmed to the retention window; metal bonds are classified in a
// final pass.
func Find(elements []string, adj [][]int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	env, err := newEnv(elements, adj, o.Rings)
	if err != nil {
		return nil, err
	}

	initScore := env.scorer(o.Weights.initialPhase(), nil)
	fullScore := env.scorer(o.Weights, nil)

	guesses, err := genInitial(env, o.Charge, initScore)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("initial guesses generated",
		zap.Int("count", len(guesses)), zap.Int("charge", o.Charge))

	depthMax := o.DepthLimit
	if depthMax == 0 {
		depthMax = 1 << 31
	}

	// Phase 1: greedy descent from every guess. Charge transfer is not
	// locality gated here; the aromatic reward is withheld so rings are
	// not prematurely locked into one Kekulé pattern.
	greedyCfg := searchConfig{
		patience: o.ScorePatience,
		maxMats:  o.MaxMatrices,
		depthMax: depthMax,
		greedy:   true,
	}
	zeroSeps := molgraph.ZeroSeparations(env.n)

	var f *frontier
	if o.ParallelGuesses {
		f, err = runGuessesParallel(env, guesses, initScore, zeroSeps, &o, greedyCfg)
		if err != nil {
			return nil, err
		}
	} else {
		f = newFrontier()
		for _, g := range guesses {
			if !f.insert(g.mat, g.score) {
				continue
			}
			f.best = f.scores[0]
			f.stall = 0
			s := &searcher{
				env:      env,
				score:    initScore,
				reactive: g.reactive,
				seps:     zeroSeps,
				radius:   o.TransferRadius,
				cfg:      greedyCfg,
				f:        f,
				log:      o.Logger,
			}
			s.run()
		}
	}
	o.Logger.Debug("greedy phase complete", zap.Int("structures", f.len()))

	// Rescore with the full weight set and restart exploration from the
	// single best structure found so far.
	for at, m := range f.mats {
		f.scores[at] = fullScore(m)
	}
	order := sortedOrder(f.scores)
	seed := f.mats[order[0]]

	reactive := unionReactive(guesses)
	seps := zeroSeps
	if o.LocalTransfer {
		seps, err = molgraph.Separations(adj)
		if err != nil {
			return nil, err
		}
	}

	// Phase 2: windowed exploration collects the resonance structures
	// within Window of the best score.
	f2 := newFrontier()
	f2.insert(seed, fullScore(seed))
	f2.best = f2.scores[0]
	s2 := &searcher{
		env:      env,
		score:    fullScore,
		reactive: reactive,
		seps:     seps,
		radius:   o.TransferRadius,
		cfg: searchConfig{
			patience: o.ScorePatience,
			maxMats:  o.MaxMatrices,
			depthMax: depthMax,
			window:   o.Window,
		},
		f:   f2,
		log: o.Logger,
	}
	s2.run()
	o.Logger.Debug("resonance phase complete", zap.Int("structures", f2.len()))

	// Retention: keep structures within MatsThresh of the best, at most
	// MatsMax of them, in score order.
	order = sortedOrder(f2.scores)
	best := f2.scores[order[0]]
	var mats []*bondmat.Matrix
	var scores []float64
	for _, at := range order {
		if f2.scores[at]-best >= o.MatsThresh || len(mats) >= o.MatsMax {
			break
		}
		mats = append(mats, f2.mats[at])
		scores = append(scores, f2.scores[at])
	}

	// Restore metal bonding and rescore with the radical environment
	// term active, which can reorder near-degenerate structures.
	finalScore := env.scorer(o.Weights, env.radicalEnv())
	for at, m := range mats {
		adjustMetals(m, env)
		scores[at] = finalScore(m)
	}
	order = sortedOrder(scores)
	res := &Result{
		Matrices: make([]*bondmat.Matrix, len(mats)),
		Scores:   make([]float64, len(mats)),
	}
	for to, from := range order {
		res.Matrices[to] = mats[from]
		res.Scores[to] = scores[from]
	}

	return res, nil
}

// runGuessesParallel explores each guess on its own goroutine with a
// private frontier, then merges the frontiers in guess order so the
// outcome does not depend on scheduling.
func runGuessesParallel(env *molEnv, guesses []guess, score scoreFunc,
	seps [][]int, o *Options, cfg searchConfig) (*frontier, error) {
	parts := make([]*frontier, len(guesses))
	var eg errgroup.Group
	for at, g := range guesses {
		at, g := at, g
		eg.Go(func() error {
			pf := newFrontier()
			pf.insert(g.mat, g.score)
			pf.best = g.score
			s := &searcher{
				env:      env,
				score:    score,
				reactive: g.reactive,
				seps:     seps,
				radius:   o.TransferRadius,
				cfg:      cfg,
				f:        pf,
				log:      o.Logger,
			}
			s.run()
			parts[at] = pf

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := newFrontier()
	for _, pf := range parts {
		for at, m := range pf.mats {
			merged.insert(m, pf.scores[at])
		}
	}

	return merged, nil
}

// unionReactive merges the reactive sets of every guess, ascending.
func unionReactive(guesses []guess) []int {
	seen := map[int]struct{}{}
	for _, g := range guesses {
		for _, i := range g.reactive {
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// sortedOrder returns the index permutation that sorts scores
// ascending, ties broken by discovery order.
func sortedOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	return order
}
