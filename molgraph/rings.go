package molgraph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotSquare indicates a ragged or non-square adjacency matrix.
var ErrNotSquare = errors.New("molgraph: adjacency matrix is not square")

// ErrAsymmetric indicates adj[i][j] != adj[j][i] for some pair.
var ErrAsymmetric = errors.New("molgraph: adjacency matrix is not symmetric")

// DefaultMaxRingSize bounds ring detection; larger cycles carry no
// aromaticity or strain information the solver uses.
const DefaultMaxRingSize = 10

// Validate checks that adj is square and symmetric.
func Validate(adj [][]int) error {
	n := len(adj)
	for i := 0; i < n; i++ {
		if len(adj[i]) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(adj[i]), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return fmt.Errorf("%w: (%d,%d)=%d vs (%d,%d)=%d", ErrAsymmetric, i, j, adj[i][j], j, i, adj[j][i])
			}
		}
	}

	return nil
}

// ringFinder owns the mutable state of the bounded cycle enumeration.
type ringFinder struct {
	nbors   [][]int // sorted neighbor lists
	maxSize int
	path    []int  // current walk, path[0] is the cycle anchor
	onPath  []bool // membership flags for path
	rings   [][]int
}

// Rings enumerates all simple cycles of length 3..maxSize in the graph
// described by adj, each returned as an ordered atom-index sequence.
// Every cycle is reported exactly once: it is anchored at its smallest
// atom index and oriented so the second index is smaller than the last.
// If maxSize <= 0, DefaultMaxRingSize is used. With removeFused set,
// rings whose atom sets are fully covered by smaller retained rings
// (fused envelopes) are dropped.
func Rings(adj [][]int, maxSize int, removeFused bool) ([][]int, error) {
	if err := Validate(adj); err != nil {
		return nil, err
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxRingSize
	}

	n := len(adj)
	rf := &ringFinder{
		nbors:   make([][]int, n),
		maxSize: maxSize,
		path:    make([]int, 0, maxSize),
		onPath:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j != i && adj[i][j] > 0 {
				rf.nbors[i] = append(rf.nbors[i], j)
			}
		}
	}

	// Anchor the walk at every vertex in turn; only vertices greater
	// than the anchor may appear mid-path, so each cycle is found from
	// its minimal vertex alone.
	for s := 0; s < n; s++ {
		rf.path = append(rf.path[:0], s)
		rf.onPath[s] = true
		rf.walk(s, s)
		rf.onPath[s] = false
	}

	// Deterministic order: size first, then lexicographic.
	sort.Slice(rf.rings, func(a, b int) bool {
		ra, rb := rf.rings[a], rf.rings[b]
		if len(ra) != len(rb) {
			return len(ra) < len(rb)
		}
		for k := range ra {
			if ra[k] != rb[k] {
				return ra[k] < rb[k]
			}
		}

		return false
	})

	if removeFused {
		rf.rings = dropFused(rf.rings)
	}

	return rf.rings, nil
}

// walk extends the current path from vertex v, closing cycles back to
// the anchor s.
func (rf *ringFinder) walk(s, v int) {
	for _, w := range rf.nbors[v] {
		if w == s {
			// Closing edge: need at least 3 atoms, and keep only one of
			// the two traversal directions.
			if len(rf.path) >= 3 && rf.path[1] < rf.path[len(rf.path)-1] {
				ring := make([]int, len(rf.path))
				copy(ring, rf.path)
				rf.rings = append(rf.rings, ring)
			}

			continue
		}
		if w < s || rf.onPath[w] || len(rf.path) == rf.maxSize {
			continue
		}
		rf.path = append(rf.path, w)
		rf.onPath[w] = true
		rf.walk(s, w)
		rf.onPath[w] = false
		rf.path = rf.path[:len(rf.path)-1]
	}
}

// dropFused removes rings whose atoms are entirely covered by the union
// of smaller rings already retained (e.g. the naphthalene perimeter).
// Input must be sorted smallest-first.
func dropFused(rings [][]int) [][]int {
	covered := make(map[int]struct{})
	kept := rings[:0]
	for _, r := range rings {
		fresh := false
		for _, a := range r {
			if _, ok := covered[a]; !ok {
				fresh = true

				break
			}
		}
		if !fresh {
			continue
		}
		kept = append(kept, r)
		for _, a := range r {
			covered[a] = struct{}{}
		}
	}

	return kept
}

// RingAtoms returns the set of atoms belonging to any ring smaller than
// sizeLimit. The move generator uses it to forbid cumulated double
// bonds and alkynes inside small rings.
func RingAtoms(rings [][]int, sizeLimit int) map[int]struct{} {
	atoms := make(map[int]struct{})
	for _, r := range rings {
		if len(r) >= sizeLimit {
			continue
		}
		for _, a := range r {
			atoms[a] = struct{}{}
		}
	}

	return atoms
}

// bredtRingLimit is the ring size below which a ring counts toward
// bridgehead detection; double bonds at bridgeheads of such systems are
// forbidden (Bredt's rule).
const bredtRingLimit = 8

// Bridgeheads returns the atoms shared by at least three rings smaller
// than the Bredt limit. Fewer than three qualifying rings cannot form a
// bridged polycycle, so the empty set is returned.
func Bridgeheads(rings [][]int) map[int]struct{} {
	var small []map[int]struct{}
	for _, r := range rings {
		if len(r) >= bredtRingLimit {
			continue
		}
		set := make(map[int]struct{}, len(r))
		for _, a := range r {
			set[a] = struct{}{}
		}
		small = append(small, set)
	}

	heads := make(map[int]struct{})
	if len(small) <= 2 {
		return heads
	}
	for i := 0; i < len(small); i++ {
		for j := i + 1; j < len(small); j++ {
			for k := j + 1; k < len(small); k++ {
				for a := range small[i] {
					if _, ok := small[j][a]; !ok {
						continue
					}
					if _, ok := small[k][a]; ok {
						heads[a] = struct{}{}
					}
				}
			}
		}
	}

	return heads
}
