package bondmat

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNotSquare indicates ragged or non-square input rows.
var ErrNotSquare = errors.New("bondmat: rows are not square")

// ErrAsymmetric indicates rows[i][j] != rows[j][i] for some pair.
var ErrAsymmetric = errors.New("bondmat: matrix is not symmetric")

// Matrix is a dense symmetric integer matrix in flat row-major storage:
// off-diagonal entries hold bond orders, diagonal entries hold unbound
// electron counts.
type Matrix struct {
	n    int
	data []int // length n*n, row-major
}

// New returns an n×n zero matrix.
func New(n int) *Matrix {
	return &Matrix{n: n, data: make([]int, n*n)}
}

// FromRows builds a Matrix from explicit rows, validating shape and
// symmetry. Intended for tests and for callers holding a pre-built
// bond-electron layout.
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(rows[i]), n)
		}
	}
	m := New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrAsymmetric, i, j)
			}
			m.data[i*n+j] = rows[i][j]
		}
	}

	return m, nil
}

// Size returns the atom count.
func (m *Matrix) Size() int { return m.n }

// At returns entry (i,j).
func (m *Matrix) At(i, j int) int { return m.data[i*m.n+j] }

// Add adds delta to entry (i,j) only. Symmetric updates are the
// caller's responsibility; Move deltas come in matched pairs.
func (m *Matrix) Add(i, j, delta int) { m.data[i*m.n+j] += delta }

// Clone returns a deep copy. Moves are always applied to a copy so
// stored matrices stay immutable.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, data: make([]int, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Equal reports exact element-wise equality. This is the duplicate
// ground truth backing the Hash fast path.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// RowSum returns the sum of row i including the diagonal entry.
func (m *Matrix) RowSum(i int) int {
	sum := 0
	for j := 0; j < m.n; j++ {
		sum += m.data[i*m.n+j]
	}

	return sum
}

// TotalElectrons returns diagonal sum + 2×upper-triangle sum, the
// quantity every legal move conserves.
func (m *Matrix) TotalElectrons() int {
	total := 0
	for i := 0; i < m.n; i++ {
		total += m.data[i*m.n+i]
		for j := i + 1; j < m.n; j++ {
			total += 2 * m.data[i*m.n+j]
		}
	}

	return total
}

// Electrons returns the valence electrons owned by each atom:
// 2×rowsum − diagonal (half of every bond counts for both partners,
// unbound electrons count once).
func (m *Matrix) Electrons() []int {
	e := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		e[i] = 2*m.RowSum(i) - m.data[i*m.n+i]
	}

	return e
}

// Deficiency returns electrons − target per atom, clipped to ≤ 0.
// Atoms at or above their octet target report 0.
func (m *Matrix) Deficiency(targets []int) []int {
	d := m.Electrons()
	for i := range d {
		d[i] -= targets[i]
		if d[i] > 0 {
			d[i] = 0
		}
	}

	return d
}

// Surplus returns electrons − expansion target per atom, clipped to
// ≥ 0. Deficient atoms report 0.
func (m *Matrix) Surplus(targets []int) []int {
	s := m.Electrons()
	for i := range s {
		s[i] -= targets[i]
		if s[i] < 0 {
			s[i] = 0
		}
	}

	return s
}

// FormalCharges returns neutral valence − rowsum per atom.
func (m *Matrix) FormalCharges(neutral []int) []int {
	f := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		f[i] = neutral[i] - m.RowSum(i)
	}

	return f
}

// Connections returns the atoms bonded to i with bond order of at least
// minOrder. When within is non-nil only those atoms are considered, and
// the result preserves within's order; otherwise all atoms are scanned
// in index order.
func (m *Matrix) Connections(i, minOrder int, within []int) []int {
	var out []int
	if within != nil {
		for _, j := range within {
			if j != i && m.data[i*m.n+j] >= minOrder {
				out = append(out, j)
			}
		}

		return out
	}
	for j := 0; j < m.n; j++ {
		if j != i && m.data[i*m.n+j] >= minOrder {
			out = append(out, j)
		}
	}

	return out
}

// HasMultiBond reports whether atom i already carries a double or
// triple bond. Ring gating uses it to forbid in-ring allenes/alkynes.
func (m *Matrix) HasMultiBond(i int) bool {
	for j := 0; j < m.n; j++ {
		if j != i && m.data[i*m.n+j] > 1 {
			return true
		}
	}

	return false
}

// Hash returns a cheap positional digest: every entry is weighted by
// its ascending row-major position (1..n²), the weighted columns are
// summed, and column c contributes with a 10^(-c/100) scale. Distinct
// matrices collide only pathologically; duplicate detection still
// verifies with Equal on a hash hit.
func (m *Matrix) Hash() float64 {
	hash := 0.0
	for j := 0; j < m.n; j++ {
		col := 0
		for i := 0; i < m.n; i++ {
			col += m.data[i*m.n+j] * (i*m.n + j + 1)
		}
		hash += float64(col) * math.Pow(10, -float64(j)/100.0)
	}

	return hash
}

// String renders the matrix row by row, handy in test failures.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", m.data[i*m.n+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
