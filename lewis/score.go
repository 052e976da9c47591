package lewis

import (
	"math"

	"github.com/deepprinciple/golewis/bondmat"
)

// Weights are the coefficients of the structure-scoring objective.
// Lower scores are better; negative weights reward the associated term.
type Weights struct {
	// Def weighs electron deficiencies (scaled by electronegativity).
	Def float64
	// Exp weighs expanded-octet surplus electrons.
	Exp float64
	// Formal weighs formal charges (scaled by electronegativity and an
	// exponential emphasis on repeated charges).
	Formal float64
	// Aro weighs per-ring aromaticity, normalized by ring size.
	Aro float64
	// Rad weighs radicals against their environment stabilization.
	Rad float64
	// Zwitter weighs separated cation/anion pairs.
	Zwitter float64
	// Ionic weighs chemically implausible charge placements.
	Ionic float64
	// Constant is added verbatim, useful for cross-species baselining.
	Constant float64
}

// DefaultWeights returns the hand-tuned production weight set.
func DefaultWeights() Weights {
	return Weights{
		Def:     -2,
		Exp:     0.1,
		Formal:  0.1,
		Aro:     -10,
		Rad:     0.1,
		Zwitter: 0.1,
		Ionic:   5.0,
	}
}

// initialPhase zeroes the aromaticity weight. The greedy descent runs
// with this preset: rewarding aromaticity before a reasonable skeleton
// exists traps the descent in partial ring systems.
func (w Weights) initialPhase() Weights {
	w.Aro = 0

	return w
}

// scoreFunc maps a bond-electron matrix to its penalty score. It is the
// sole interface the search engine depends on.
type scoreFunc func(*bondmat.Matrix) float64

// scorer builds the objective for this molecule with the given weights
// and radical-environment vector (nil disables the radical term).
//
// score = Def·Σ def(i)·EN(i) + Exp·Σ surplus(i)
//   - Formal·Σ fc(i)·EN(i)·e^{0.05(fc(i)−1)}
//   - Aro·Σ_rings arom(r)/|r| + Zwitter·zwitter + Rad·Σ radEnv(i)·odd(i)
//   - Ionic·ionic + Constant
func (env *molEnv) scorer(w Weights, radEnv []float64) scoreFunc {
	return func(m *bondmat.Matrix) float64 {
		deficiency := m.Deficiency(env.eDef)
		surplus := m.Surplus(env.eExp)
		formals := m.FormalCharges(env.neutral)

		score := w.Constant
		for i := 0; i < env.n; i++ {
			score += w.Def * float64(deficiency[i]) * env.en[i]
			score += w.Exp * float64(surplus[i])
			score += w.Formal * float64(formals[i]) * env.en[i] *
				math.Exp(0.05*(float64(formals[i])-1))
		}
		for _, ring := range env.rings {
			score += w.Aro * float64(m.Aromaticity(ring, formals)) / float64(len(ring))
		}
		score += w.Zwitter * env.zwitterPenalty(m, formals)
		if radEnv != nil {
			for i := 0; i < env.n; i++ {
				score += w.Rad * radEnv[i] * float64(m.At(i, i)%2)
			}
		}
		score += w.Ionic * env.ionicPenalty(formals)

		return score
	}
}

// zwitterPenalty charges 0.1 for every unit charge that is half of a
// directly bonded +1/−1 pair (a plausible ylide) and 1.0 for every
// unit charge without such a partner.
func (env *molEnv) zwitterPenalty(m *bondmat.Matrix, formals []int) float64 {
	paired := make(map[int]struct{})
	charged := 0
	for _, f := range formals {
		if f == 1 || f == -1 {
			charged++
		}
	}
	if charged == 0 {
		return 0
	}

	for i, f := range formals {
		if f != 1 {
			continue
		}
		// Negative neighbors of this cation; exactly one makes a pair.
		partner, count := -1, 0
		for _, j := range m.Connections(i, 1, nil) {
			if formals[j] == -1 {
				partner = j
				count++
			}
		}
		if count == 1 {
			paired[i] = struct{}{}
			paired[partner] = struct{}{}
		}
	}

	return float64(charged-len(paired)) + 0.1*float64(len(paired))
}

// ionicPenalty charges 1.0 per cationic oxygen, 1.0 per anionic
// hydrogen, and 1.0 per atom holding more than a unit charge.
func (env *molEnv) ionicPenalty(formals []int) float64 {
	penalty := 0.0
	for i, f := range formals {
		switch {
		case f == 1 && env.symbols[i] == "O":
			penalty++
		case f == -1 && env.symbols[i] == "H":
			penalty++
		}
		if f > 1 || f < -1 {
			penalty++
		}
	}

	return penalty
}
