package lewis

import (
	"github.com/deepprinciple/golewis/bondmat"
	"github.com/deepprinciple/golewis/molgraph"
)

// guess is one structurally valid starting point for the search.
type guess struct {
	score    float64
	mat      *bondmat.Matrix
	reactive []int
}

// genInitial produces every initial guess for the given net charge.
// Neutral species yield exactly one; charged species yield one guess
// per combination (with repetition) of atoms able to host the charge.
// ErrChargeState is returned when the charge cannot be resolved: a
// negative diagonal no donor can repair, or no viable placement at all.
func genInitial(env *molEnv, q int, score scoreFunc) ([]guess, error) {
	m := sigmaSkeleton(env)

	// Resolve negative diagonal entries, first with the net charge
	// itself (anions), then by transferring unbound electrons from
	// donors elsewhere. A remaining negative entry is fatal.
	qeff := q
	for qeff < 0 {
		d := firstNegativeDiagonal(m)
		if d < 0 {
			break
		}
		m.Add(d, d, 1)
		qeff++
	}
	for {
		d := firstNegativeDiagonal(m)
		if d < 0 {
			break
		}
		donor := -1
		for i := 0; i < env.n; i++ {
			if i != d && m.At(i, i) > 0 {
				donor = i

				break
			}
		}
		if donor < 0 {
			return nil, ErrChargeState
		}
		m.Add(d, d, 1)
		m.Add(donor, donor, -1)
	}

	// Expanded octets donate to deficient atoms until no donor/acceptor
	// pair remains.
	for {
		donor, acceptor := -1, -1
		surplus := m.Surplus(env.eExp)
		deficiency := m.Deficiency(env.eDef)
		for i := 0; i < env.n; i++ {
			if donor < 0 && surplus[i] > 0 && m.At(i, i) > 0 {
				donor = i
			}
			if acceptor < 0 && deficiency[i] < 0 {
				acceptor = i
			}
		}
		if donor < 0 || acceptor < 0 {
			break
		}
		m.Add(acceptor, acceptor, 1)
		m.Add(donor, donor, -1)
	}

	var guesses []guess
	switch {
	case qeff < 0:
		// Extra electrons: try every placement over atoms that can
		// still accept charge.
		e := m.Electrons()
		var heavies []int
		for i := 0; i < env.n; i++ {
			if e[i] < env.eDef[i] || env.canExp[i] {
				heavies = append(heavies, i)
			}
		}
		for _, combo := range molgraph.Combinations(heavies, -qeff) {
			tmp := m.Clone()
			for _, a := range combo {
				tmp.Add(a, a, 1)
			}
			guesses = append(guesses, finishGuess(env, tmp, score))
		}

	case qeff > 0:
		// Missing electrons: oxidize atoms that hold unbound electrons,
		// skipping combinations that would overdraw an atom.
		var lonely []int
		for i := 0; i < env.n; i++ {
			if m.At(i, i) > 0 {
				lonely = append(lonely, i)
			}
		}
		for _, combo := range molgraph.Combinations(lonely, qeff) {
			tmp := m.Clone()
			ok := true
			for _, a := range combo {
				if tmp.At(a, a) > 0 {
					tmp.Add(a, a, -1)
				} else {
					ok = false
				}
			}
			if !ok {
				continue
			}
			guesses = append(guesses, finishGuess(env, tmp, score))
		}

	default:
		guesses = append(guesses, finishGuess(env, m, score))
	}

	if len(guesses) == 0 {
		return nil, ErrChargeState
	}

	return guesses, nil
}

// sigmaSkeleton builds the neutral sigma-bonded matrix: adjacency off
// the diagonal, neutral valence minus bonded electrons on it, with
// metal-involved bonds stripped back onto the atoms (their character is
// decided by the CBC post-pass).
func sigmaSkeleton(env *molEnv) *bondmat.Matrix {
	m := bondmat.New(env.n)
	for i := 0; i < env.n; i++ {
		deg := 0
		for j := 0; j < env.n; j++ {
			if j != i {
				m.Add(i, j, env.adj[i][j])
				deg += env.adj[i][j]
			}
		}
		m.Add(i, i, env.neutral[i]-deg)
	}
	for i := 0; i < env.n; i++ {
		for j := i + 1; j < env.n; j++ {
			if env.adj[i][j] > 0 && (env.metal[i] || env.metal[j]) {
				m.Add(i, j, -1)
				m.Add(j, i, -1)
				m.Add(i, i, 1)
				m.Add(j, j, 1)
			}
		}
	}

	return m
}

// finishGuess identifies the reactive atoms of tmp, saturates them by
// repeatedly applying legal bond formations, and scores the result.
func finishGuess(env *molEnv, tmp *bondmat.Matrix, score scoreFunc) guess {
	reactive := reactiveAtoms(env, tmp)
	for _, j := range reactive {
		for {
			mv := validBond(tmp, env, j, reactive)
			if mv == nil {
				break
			}
			tmp.Apply(mv)
		}
	}

	return guess{score: score(tmp), mat: tmp, reactive: reactive}
}

// reactiveAtoms lists the non-metal atoms with unbound electrons, a
// deficiency, or a formal charge – the only atoms moves originate from.
func reactiveAtoms(env *molEnv, m *bondmat.Matrix) []int {
	e := m.Electrons()
	formals := m.FormalCharges(env.neutral)
	var reactive []int
	for i := 0; i < env.n; i++ {
		if env.metal[i] {
			continue
		}
		if m.At(i, i) != 0 || e[i] < env.eDef[i] || formals[i] != 0 {
			reactive = append(reactive, i)
		}
	}

	return reactive
}

// firstNegativeDiagonal returns the smallest index with a negative
// diagonal entry, or -1.
func firstNegativeDiagonal(m *bondmat.Matrix) int {
	for i := 0; i < m.Size(); i++ {
		if m.At(i, i) < 0 {
			return i
		}
	}

	return -1
}

// validBond returns the single legal bond-formation move available to
// atom ind, or nil: both partners need an unbound electron and either
// an incomplete octet or expansion capability, and neither may gain a
// multiple bond inside a small ring.
func validBond(m *bondmat.Matrix, env *molEnv, ind int, reactive []int) bondmat.Move {
	e := m.Electrons()
	if m.At(ind, ind) <= 0 || !(env.canExp[ind] || e[ind] < env.eDef[ind]) {
		return nil
	}
	if !env.ringSafe(m, ind) {
		return nil
	}
	for _, i := range m.Connections(ind, 1, reactive) {
		if m.At(i, i) > 0 && (env.canExp[i] || e[i] < env.eDef[i]) && env.ringSafe(m, i) {
			return bondmat.Move{
				{Value: 1, Row: ind, Col: i},
				{Value: 1, Row: i, Col: ind},
				{Value: -1, Row: ind, Col: ind},
				{Value: -1, Row: i, Col: i},
			}
		}
	}

	return nil
}
