package lewis

import (
	"fmt"

	"github.com/deepprinciple/golewis/bondmat"
	"github.com/deepprinciple/golewis/molgraph"
	"github.com/deepprinciple/golewis/ptable"
)

// molEnv bundles the per-molecule constants every stage reads: element
// properties expanded into flat per-atom slices, ring structure, and
// the ring/bridgehead gates of the move generator. It is built once per
// Find call and never mutated afterwards.
type molEnv struct {
	n   int
	adj [][]int

	symbols []string  // canonical element symbols
	neutral []int     // neutral valence electron counts
	eDef    []int     // octet targets (deficiency thresholds)
	eExp    []int     // octet-expansion targets
	canExp  []bool    // octet expansion allowed
	metal   []bool    // metal classification
	en      []float64 // electronegativities
	pol     []float64 // polarizabilities

	rings     [][]int
	ringAtoms map[int]struct{} // atoms in rings smaller than 10
	bridge    map[int]struct{} // Bredt bridgeheads
}

// newEnv validates the inputs and assembles the molecule environment.
// rings may be nil, in which case they are detected.
func newEnv(elements []string, adj [][]int, rings [][]int) (*molEnv, error) {
	if err := molgraph.Validate(adj); err != nil {
		return nil, err
	}
	if len(elements) != len(adj) {
		return nil, fmt.Errorf("%w: %d elements, %d×%d adjacency",
			ErrDimensionMismatch, len(elements), len(adj), len(adj))
	}

	n := len(elements)
	env := &molEnv{
		n:       n,
		adj:     adj,
		symbols: make([]string, n),
		neutral: make([]int, n),
		eDef:    make([]int, n),
		eExp:    make([]int, n),
		canExp:  make([]bool, n),
		metal:   make([]bool, n),
		en:      make([]float64, n),
		pol:     make([]float64, n),
	}
	for i, sym := range elements {
		e, err := ptable.Lookup(sym)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		env.symbols[i] = e.Symbol
		env.neutral[i] = e.Valence
		env.eDef[i] = e.OctetTarget
		env.eExp[i] = e.ExpandTarget
		env.canExp[i] = e.CanExpand
		env.metal[i] = e.Metal
		env.en[i] = e.EN
		env.pol[i] = e.Polarizability
	}

	if rings == nil {
		var err error
		rings, err = molgraph.Rings(adj, molgraph.DefaultMaxRingSize, true)
		if err != nil {
			return nil, err
		}
	}
	env.rings = rings
	env.ringAtoms = molgraph.RingAtoms(rings, molgraph.DefaultMaxRingSize)
	env.bridge = molgraph.Bridgeheads(rings)

	return env, nil
}

// ringSafe reports whether atom i may gain a multiple bond: either it
// sits in no small ring, or it carries no multiple bond yet (no
// in-ring allenes or alkynes).
func (env *molEnv) ringSafe(m *bondmat.Matrix, i int) bool {
	if _, inRing := env.ringAtoms[i]; !inRing {
		return true
	}

	return !m.HasMultiBond(i)
}

// bridgehead reports whether atom i is a Bredt bridgehead.
func (env *molEnv) bridgehead(i int) bool {
	_, ok := env.bridge[i]

	return ok
}

// radicalEnv returns the radical-environment vector used by the final
// scoring pass: each atom is stabilized by the polarizability of its
// sigma-bonded neighbors.
func (env *molEnv) radicalEnv() []float64 {
	re := make([]float64, env.n)
	for i := 0; i < env.n; i++ {
		sum := 0.0
		for j := 0; j < env.n; j++ {
			if env.adj[i][j] > 0 {
				sum += float64(env.adj[i][j]) * (0.1 * env.pol[j] / (100 + env.pol[j]))
			}
		}
		re[i] = -sum
	}

	return re
}
