// Package lewis finds the best Lewis (resonance) structures of a
// molecular graph: elements, a symmetric adjacency matrix and a net
// charge in, a ranked list of bond-electron matrices and their scores
// out.
//
// Pipeline (Find):
//  1. Initial guesses – a neutral sigma skeleton per charge placement,
//     with metal bonds stripped and the net charge resolved onto the
//     diagonal; an unresolvable charge state aborts with ErrChargeState.
//  2. Greedy descent – from every guess, recursively apply legal
//     electron-shift moves, accepting only score-non-increasing children,
//     de-duplicating by matrix hash (with full-equality verification).
//  3. Windowed exploration – restart from the single best structure and
//     accept children within a score window of the best found, which
//     enumerates near-degenerate resonance alternatives.
//  4. Ranking – rescore with the aromaticity-enabled objective, sort
//     ascending, retain up to MatsMax structures within MatsThresh of
//     the best.
//  5. Metal adjustment – reclassify metal-ligand contacts per the
//     covalent bond classification (dative / one-electron / two-electron)
//     and form metal-metal single bonds up to the 12-electron ceiling.
//
// The scoring function is injected into the search as a strategy; the
// engine itself never sees the formula. All weights, pruning bounds and
// the exploration window are functional Options.
//
// Termination is bounded by ScorePatience (moves since the last
// improvement) and MaxMatrices (total structures discovered); hitting a
// bound is a designed early exit, not an error.
//
// Errors:
//
//   - ErrChargeState        charge incompatible with the connectivity.
//   - ErrDimensionMismatch  elements/adjacency length disagreement.
//   - ErrOptionViolation    nonsensical option values.
//   - ptable.ErrUnknownElement (wrapped) for uncovered symbols.
package lewis
