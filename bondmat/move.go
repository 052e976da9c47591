package bondmat

// Delta is a single increment of a Move: Value is added to entry
// (Row,Col).
type Delta struct {
	Value int
	Row   int
	Col   int
}

// Move is a balanced list of increments describing one local
// electron-shift operation. Off-diagonal deltas come in matched
// (i,j)/(j,i) pairs and diagonal deltas compensate bond changes, so
// applying a Move preserves both symmetry and the total electron count.
type Move []Delta

// Apply adds every delta of mv to the matrix in place. Callers apply
// moves to a Clone of a stored matrix, never to the stored matrix
// itself.
func (m *Matrix) Apply(mv Move) {
	for _, d := range mv {
		m.data[d.Row*m.n+d.Col] += d.Value
	}
}
