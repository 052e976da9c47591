// Package bondmat implements the bond-electron matrix, the central data
// structure of the Lewis solver: a dense symmetric integer matrix where
// off-diagonal entry (i,j) is the bond order between atoms i and j and
// diagonal entry (i,i) counts the unbound electrons localized on atom i
// (1 = radical, 2 = lone pair, and so on).
//
// Making the diagonal/off-diagonal convention a type-level invariant is
// the point of this package: callers read electron counts, deficiencies,
// surpluses and formal charges through named accessors instead of raw
// indexing.
//
// Derived quantities:
//   - Electrons:      2×rowsum − diagonal, per atom
//   - TotalElectrons: diagonal sum + 2×upper-triangle sum (conserved by
//     every legal Move)
//   - Deficiency:     electrons − target, clipped to ≤ 0
//   - Surplus:        electrons − expansion target, clipped to ≥ 0
//   - FormalCharges:  neutral valence − rowsum
//   - Aromaticity:    π-electron classification of a ring
//   - Hash:           cheap positional digest for duplicate filtering
//     (Equal is the ground truth; the hash is only a fast filter)
//
// A Move is a balanced list of (delta,row,col) increments; applying one
// preserves symmetry and total electron count by construction.
package bondmat
