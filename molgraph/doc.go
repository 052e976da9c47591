// Package molgraph provides the connectivity-level utilities the Lewis
// solver needs before any electrons are placed: bounded ring detection
// with fused-envelope removal, pairwise graph separations (bond hop
// counts), ring-membership and bridgehead sets, and the small
// combinatorial helper used to enumerate charge placements.
//
// All functions operate on a symmetric integer adjacency matrix indexed
// by atom; entry (i,j) > 0 means a sigma bond exists between atoms i and
// j. The package never mutates its inputs and all outputs are ordered
// deterministically.
//
// Key operations:
//   - Rings(adj, maxSize, removeFused): ordered simple cycles up to
//     maxSize atoms, optionally dropping fused envelopes such as the
//     10-atom perimeter of naphthalene.
//   - Separations(adj): hop-count distance matrix via per-vertex BFS;
//     unreachable pairs are marked with the Unreachable sentinel.
//   - RingAtoms / Bridgeheads: membership sets consumed by the move
//     generator to forbid in-ring allenes and Bredt violations.
//   - Combinations(pool, k): k-combinations with replacement in
//     lexicographic order.
//
// Errors:
//
//   - ErrNotSquare   if the adjacency matrix is ragged or non-square.
//   - ErrAsymmetric  if adj[i][j] != adj[j][i] for some pair.
package molgraph
