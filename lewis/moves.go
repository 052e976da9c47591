package lewis

import (
	"github.com/deepprinciple/golewis/bondmat"
)

// validMoves enumerates every legal electron rearrangement available
// from m, restricted to the reactive atoms. seps gates long-range
// charge transfer: atoms farther apart than radius never exchange
// unbound electrons directly.
//
// Rules 1-5 originate from an atom i that is neither a bridgehead nor
// about to create a second multiple bond in a small ring; rules 6-8
// relax parts of that gate, and rule 9 rotates alternating bonds around
// a whole ring.
func validMoves(m *bondmat.Matrix, env *molEnv, reactive []int, seps [][]int, radius int) []bondmat.Move {
	var moves []bondmat.Move
	e := m.Electrons()
	formals := m.FormalCharges(env.neutral)

	for _, i := range reactive {
		gated := !env.bridgehead(i) && env.ringSafe(m, i)

		if gated {
			// Rule 1: pull a pi pair toward i through a neighbor.
			if e[i]+2 <= env.eDef[i] || env.canExp[i] {
				for _, j := range m.Connections(i, 1, reactive) {
					for _, k := range m.Connections(j, 2, reactive) {
						if k == i {
							continue
						}
						moves = append(moves, bondmat.Move{
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
							{Value: -1, Row: j, Col: k},
							{Value: -1, Row: k, Col: j},
						})
					}
				}
			}

			// Rule 2: same relay fed by a radical on i, breaking the j-k
			// pi bond homolytically so k keeps one electron.
			if m.At(i, i)%2 == 1 && e[i] < env.eDef[i] {
				for _, j := range m.Connections(i, 1, reactive) {
					for _, k := range m.Connections(j, 2, reactive) {
						if k == i {
							continue
						}
						moves = append(moves, bondmat.Move{
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
							{Value: -1, Row: j, Col: k},
							{Value: -1, Row: k, Col: j},
							{Value: -1, Row: i, Col: i},
							{Value: 1, Row: k, Col: k},
						})
					}
				}
			}

			// Rule 3: same relay fed by a lone pair on i, breaking the
			// j-k pi bond heterolytically into a lone pair on k.
			if m.At(i, i) >= 2 {
				for _, j := range m.Connections(i, 1, reactive) {
					for _, k := range m.Connections(j, 2, reactive) {
						if k == i {
							continue
						}
						moves = append(moves, bondmat.Move{
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
							{Value: -1, Row: j, Col: k},
							{Value: -1, Row: k, Col: j},
							{Value: -2, Row: i, Col: i},
							{Value: 2, Row: k, Col: k},
						})
					}
				}
			}

			// Rule 3b: pair two adjacent radicals into a bond, when the
			// partner still carries a pi bond elsewhere.
			if m.At(i, i)%2 == 1 {
				for _, j := range m.Connections(i, 1, reactive) {
					if m.At(j, j)%2 != 1 {
						continue
					}
					for _, k := range m.Connections(j, 2, reactive) {
						if k == i {
							continue
						}
						moves = append(moves, bondmat.Move{
							{Value: -1, Row: i, Col: i},
							{Value: -1, Row: j, Col: j},
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
						})
					}
				}
			}

			// Rule 4: form a bond from two unbound electrons, optionally
			// relaying the freed electron to a third deficient atom.
			if m.At(i, i)%2 == 1 && (env.canExp[i] || e[i] < env.eDef[i]) {
				for _, j := range m.Connections(i, 1, reactive) {
					if m.At(j, j) <= 0 || !env.ringSafe(m, j) {
						continue
					}
					if env.canExp[j] || e[j] < env.eDef[j] {
						moves = append(moves, bondmat.Move{
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
							{Value: -1, Row: i, Col: i},
							{Value: -1, Row: j, Col: j},
						})
					}
					if m.At(j, j) > 1 {
						for _, k := range reactive {
							if k == i || k == j {
								continue
							}
							if !(env.canExp[k] || e[k] < env.eDef[k]) {
								continue
							}
							moves = append(moves, bondmat.Move{
								{Value: 1, Row: i, Col: j},
								{Value: 1, Row: j, Col: i},
								{Value: -1, Row: i, Col: i},
								{Value: -2, Row: j, Col: j},
								{Value: 1, Row: k, Col: k},
							})
						}
					}
				}
			}

			// Rule 5: donate a lone pair of i into a new bond.
			if m.At(i, i) >= 2 {
				for _, j := range m.Connections(i, 1, reactive) {
					if env.bridgehead(j) || !env.ringSafe(m, j) {
						continue
					}
					if env.canExp[j] || e[j]+2 <= env.eDef[j] {
						moves = append(moves, bondmat.Move{
							{Value: 1, Row: i, Col: j},
							{Value: 1, Row: j, Col: i},
							{Value: -2, Row: i, Col: i},
						})
					}
				}
			}
		}

		// Rule 6: retract a pi bond onto the more electronegative end,
		// or wherever doing so improves ring aromaticity.
		for _, j := range m.Connections(i, 2, reactive) {
			mv := bondmat.Move{
				{Value: -1, Row: i, Col: j},
				{Value: -1, Row: j, Col: i},
				{Value: 2, Row: i, Col: i},
			}
			if env.en[i] > env.en[j] || e[j] > env.eDef[i] || env.deltaAromatic(m, mv, formals) {
				moves = append(moves, mv)
			}
		}

		// Rule 7: strip an electron off a less electronegative neighbor.
		if e[i] < env.eDef[i] {
			for _, j := range m.Connections(i, 1, reactive) {
				if m.At(j, j) > 0 && env.en[i] > env.en[j] {
					moves = append(moves, bondmat.Move{
						{Value: -1, Row: j, Col: j},
						{Value: 1, Row: i, Col: i},
					})
				}
			}
		}

		// Rule 8: long-range electron transfer within the locality
		// radius, from an over-satisfied atom to a needy one.
		if e[i] > env.eDef[i] && m.At(i, i) > 0 {
			for _, j := range reactive {
				if j == i || seps[i][j] >= radius {
					continue
				}
				if env.canExp[j] || e[j] < env.eDef[j] {
					moves = append(moves, bondmat.Move{
						{Value: -1, Row: i, Col: i},
						{Value: 1, Row: j, Col: j},
					})
				}
			}
		}
	}

	// Rule 9: rotate the alternating bond pattern of each (anti)aromatic
	// even-sized ring by one position.
	for _, ring := range env.rings {
		if len(ring)%2 != 0 {
			continue
		}
		if m.Aromaticity(ring, formals) == bondmat.NonAromatic {
			continue
		}
		if mv := rotateRing(m, ring); mv != nil {
			moves = append(moves, mv)
		}
	}

	return moves
}

// rotateRing builds the move shifting every ring pi bond one position
// forward, starting from an atom whose incoming bond is multiple and
// outgoing bond is single. Returns nil when the ring's bond pattern
// does not alternate cleanly.
func rotateRing(m *bondmat.Matrix, ring []int) bondmat.Move {
	size := len(ring)
	start := -1
	for cj, j := range ring {
		prev := ring[(cj-1+size)%size]
		next := ring[(cj+1)%size]
		if m.At(j, prev) > 1 && m.At(j, next) == 1 {
			start = cj

			break
		}
	}
	if start < 0 {
		return nil
	}

	// Reorder the ring to begin at start, then take every second atom:
	// those head the bonds to be shifted.
	loop := make([]int, 0, size)
	for cj := start; cj < size; cj += 2 {
		loop = append(loop, ring[cj])
	}
	first := 0
	if start%2 != 0 {
		first = 1
	}
	for cj := first; cj < start; cj += 2 {
		loop = append(loop, ring[cj])
	}

	var mv bondmat.Move
	for _, j := range loop {
		cj := ringIndex(ring, j)
		prev := ring[(cj-1+size)%size]
		next := ring[(cj+1)%size]
		if m.At(j, prev) <= 1 {
			return nil
		}
		mv = append(mv,
			bondmat.Delta{Value: -1, Row: j, Col: prev},
			bondmat.Delta{Value: -1, Row: prev, Col: j},
			bondmat.Delta{Value: 1, Row: j, Col: next},
			bondmat.Delta{Value: 1, Row: next, Col: j},
		)
	}

	return mv
}

func ringIndex(ring []int, atom int) int {
	for i, a := range ring {
		if a == atom {
			return i
		}
	}

	return -1
}

// deltaAromatic reports whether applying mv raises the aromaticity
// classification of any ring.
func (env *molEnv) deltaAromatic(m *bondmat.Matrix, mv bondmat.Move, formals []int) bool {
	if len(env.rings) == 0 {
		return false
	}
	after := m.Clone()
	after.Apply(mv)
	afterFormals := after.FormalCharges(env.neutral)
	for _, ring := range env.rings {
		if after.Aromaticity(ring, afterFormals) > m.Aromaticity(ring, formals) {
			return true
		}
	}

	return false
}
