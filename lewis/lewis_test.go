package lewis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepprinciple/golewis/bondmat"
	"github.com/deepprinciple/golewis/ptable"
)

// formaldehyde: C bonded to two H and one O. Atom order C, H, H, O.
func formaldehydeInput() ([]string, [][]int) {
	return []string{"C", "H", "H", "O"}, [][]int{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	}
}

// benzene: six-ring of CH units, atoms 0-5 carbons, 6-11 hydrogens.
func benzeneInput() ([]string, [][]int) {
	elements := make([]string, 12)
	adj := make([][]int, 12)
	for i := range adj {
		adj[i] = make([]int, 12)
	}
	for c := 0; c < 6; c++ {
		elements[c] = "C"
		elements[6+c] = "H"
		next := (c + 1) % 6
		adj[c][next], adj[next][c] = 1, 1
		adj[c][6+c], adj[6+c][c] = 1, 1
	}

	return elements, adj
}

// pyrrole: N-H plus four CH in a five-ring. Atoms 0=N, 1-4=C, 5=H(N),
// 6-9=H(C).
func pyrroleInput() ([]string, [][]int) {
	elements := []string{"N", "C", "C", "C", "C", "H", "H", "H", "H", "H"}
	adj := make([][]int, 10)
	for i := range adj {
		adj[i] = make([]int, 10)
	}
	ring := []int{0, 1, 2, 3, 4}
	for at, a := range ring {
		b := ring[(at+1)%5]
		adj[a][b], adj[b][a] = 1, 1
	}
	for at, h := range []int{5, 6, 7, 8, 9} {
		adj[at][h], adj[h][at] = 1, 1
	}

	return elements, adj
}

// TestFindFormaldehyde checks the single dominant structure: a C=O
// double bond, every atom charge neutral, nothing deficient.
func TestFindFormaldehyde(t *testing.T) {
	elements, adj := formaldehydeInput()
	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.NotEmpty(t, res.Matrices)

	best := res.Matrices[0]
	assert.Equal(t, 2, best.At(0, 3), "C=O double bond expected")
	assert.Equal(t, 0, best.At(0, 0), "carbon holds no unbound electrons")
	assert.Equal(t, 4, best.At(3, 3), "oxygen keeps two lone pairs")
	assert.Equal(t, []int{0, 0, 0, 0}, best.FormalCharges([]int{4, 1, 1, 6}))
	assert.InDelta(t, 0.0, res.Scores[0], 1e-12)
}

// TestFindBenzene expects both Kekulé patterns within the retention
// window, classified aromatic.
func TestFindBenzene(t *testing.T) {
	elements, adj := benzeneInput()
	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Matrices), 2)

	ring := []int{0, 1, 2, 3, 4, 5}
	formals := make([]int, 12)
	assert.Equal(t, bondmat.Aromatic, res.Matrices[0].Aromaticity(ring, formals))

	// The two Kekulé structures differ in the 0-1 bond order.
	orders := map[int]bool{}
	for _, m := range res.Matrices {
		orders[m.At(0, 1)] = true
	}
	assert.True(t, orders[1] && orders[2], "both bond rotations retained")
}

// TestFindPyrrole checks the classic picture: aromatic ring, the
// nitrogen lone pair in the ring plane, no charges anywhere.
func TestFindPyrrole(t *testing.T) {
	elements, adj := pyrroleInput()
	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.NotEmpty(t, res.Matrices)

	best := res.Matrices[0]
	formals := best.FormalCharges([]int{5, 4, 4, 4, 4, 1, 1, 1, 1, 1})
	assert.Equal(t, make([]int, 10), formals)
	assert.Equal(t, 2, best.At(0, 0), "nitrogen keeps its lone pair")
	assert.Equal(t, bondmat.Aromatic,
		best.Aromaticity([]int{0, 1, 2, 3, 4}, formals))
}

// TestFindFormateAnion places the extra electron and finds the two
// equivalent resonance structures; the best one carries one C=O and an
// anionic oxygen.
func TestFindFormateAnion(t *testing.T) {
	elements := []string{"H", "C", "O", "O"}
	adj := [][]int{
		{0, 1, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}
	res, err := Find(elements, adj, WithCharge(-1))
	require.NoError(t, err)
	require.NotEmpty(t, res.Matrices)

	best := res.Matrices[0]
	assert.True(t, best.At(1, 2) == 2 || best.At(1, 3) == 2,
		"one carbonyl bond expected")
	formals := best.FormalCharges([]int{1, 4, 6, 6})
	negative := 0
	for _, f := range formals {
		if f == -1 {
			negative++
		}
	}
	assert.Equal(t, 1, negative, "exactly one anionic oxygen")

	// Total electron count reflects the net charge.
	assert.Equal(t, 1+4+6+6+1, best.TotalElectrons())
}

// TestFindConservation verifies electron count and symmetry over every
// retained structure, not just the best one.
func TestFindConservation(t *testing.T) {
	elements, adj := benzeneInput()
	res, err := Find(elements, adj)
	require.NoError(t, err)

	for _, m := range res.Matrices {
		assert.Equal(t, 6*4+6*1, m.TotalElectrons())
		for i := 0; i < m.Size(); i++ {
			for j := i + 1; j < m.Size(); j++ {
				assert.Equal(t, m.At(i, j), m.At(j, i))
			}
		}
	}
}

// TestFindDeterminism runs the same input twice and compares every
// retained matrix and score.
func TestFindDeterminism(t *testing.T) {
	elements, adj := benzeneInput()
	a, err := Find(elements, adj)
	require.NoError(t, err)
	b, err := Find(elements, adj)
	require.NoError(t, err)

	require.Equal(t, len(a.Matrices), len(b.Matrices))
	assert.Equal(t, a.Scores, b.Scores)
	for at := range a.Matrices {
		assert.True(t, a.Matrices[at].Equal(b.Matrices[at]))
	}
}

// TestFindDativeMetalBond: water on iron. The oxygen is satisfied on
// its own, so the Fe-O bond stays dative (order zero) and iron keeps
// its electrons.
func TestFindDativeMetalBond(t *testing.T) {
	elements := []string{"Fe", "O", "H", "H"}
	adj := [][]int{
		{0, 1, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}
	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.NotEmpty(t, res.Matrices)

	best := res.Matrices[0]
	assert.Equal(t, 0, best.At(0, 1), "dative bond keeps order zero")
	assert.Equal(t, 8, best.At(0, 0), "iron retains its valence electrons")
	assert.Equal(t, 4, best.At(1, 1), "oxygen keeps two lone pairs")
}

// TestFindImpossibleChargeStates: charges no electron bookkeeping can
// realize are rejected up front.
func TestFindImpossibleChargeStates(t *testing.T) {
	// A proton cannot lose five electrons.
	_, err := Find([]string{"H"}, [][]int{{0}}, WithCharge(5))
	assert.ErrorIs(t, err, ErrChargeState)

	// Methane has nowhere to put two extra electrons.
	elements := []string{"C", "H", "H", "H", "H"}
	adj := [][]int{
		{0, 1, 1, 1, 1},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	}
	_, err = Find(elements, adj, WithCharge(-2))
	assert.ErrorIs(t, err, ErrChargeState)
}

// TestFindInputValidation covers the structured input errors.
func TestFindInputValidation(t *testing.T) {
	// Element list and adjacency size must agree.
	_, err := Find([]string{"C", "O"}, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// Unknown element symbols surface the ptable sentinel.
	_, err = Find([]string{"Xx"}, [][]int{{0}})
	assert.ErrorIs(t, err, ptable.ErrUnknownElement)

	// Invalid option values fail before any work starts.
	elements, adj := formaldehydeInput()
	_, err = Find(elements, adj, WithMatsMax(0))
	assert.ErrorIs(t, err, ErrOptionViolation)
	_, err = Find(elements, adj, WithTransferRadius(0))
	assert.ErrorIs(t, err, ErrOptionViolation)
}

// TestFindRetentionCap trims the result list to MatsMax.
func TestFindRetentionCap(t *testing.T) {
	elements, adj := benzeneInput()
	res, err := Find(elements, adj, WithMatsMax(1))
	require.NoError(t, err)
	assert.Len(t, res.Matrices, 1)
	assert.Len(t, res.Scores, 1)
}

// TestFindParallelGuesses checks the sharded exploration returns the
// same dominant structure as the sequential one.
func TestFindParallelGuesses(t *testing.T) {
	elements := []string{"H", "C", "O", "O"}
	adj := [][]int{
		{0, 1, 0, 0},
		{1, 0, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}
	seq, err := Find(elements, adj, WithCharge(-1))
	require.NoError(t, err)
	par, err := Find(elements, adj, WithCharge(-1), WithParallelGuesses())
	require.NoError(t, err)

	require.NotEmpty(t, par.Matrices)
	assert.True(t, seq.Matrices[0].Equal(par.Matrices[0]))
	assert.InDelta(t, seq.Scores[0], par.Scores[0], 1e-12)
}

// TestFindAllylResonance: the windowed phase recovers the mirrored
// resonance structure of the allyl radical, with both placements of the
// double bond retained at the same score.
func TestFindAllylResonance(t *testing.T) {
	// C0-C1-C2 chain; two hydrogens on each terminal carbon, one on the
	// central one.
	elements := []string{"C", "C", "C", "H", "H", "H", "H", "H"}
	adj := make([][]int, 8)
	for i := range adj {
		adj[i] = make([]int, 8)
	}
	adj[0][1], adj[1][0] = 1, 1
	adj[1][2], adj[2][1] = 1, 1
	hooks := [][2]int{{0, 3}, {0, 4}, {1, 5}, {2, 6}, {2, 7}}
	for _, h := range hooks {
		adj[h[0]][h[1]], adj[h[1]][h[0]] = 1, 1
	}

	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.Len(t, res.Matrices, 2, "exactly the two mirrors, nothing else")

	left, right := false, false
	neutral := []int{4, 4, 4, 1, 1, 1, 1, 1}
	for _, m := range res.Matrices {
		if m.At(0, 1) == 2 {
			left = true
		}
		if m.At(1, 2) == 2 {
			right = true
		}
		// Resonance never separates charge here.
		assert.Equal(t, make([]int, 8), m.FormalCharges(neutral))
	}
	assert.True(t, left && right, "both double-bond placements retained")
	assert.InDelta(t, res.Scores[0], res.Scores[1], 1e-9,
		"the two mirror structures are degenerate")
}

// TestFindScoresSorted: scores come back ascending and every retained
// structure sits inside the retention window or under the cap.
func TestFindScoresSorted(t *testing.T) {
	elements, adj := pyrroleInput()
	res, err := Find(elements, adj)
	require.NoError(t, err)
	require.NotEmpty(t, res.Scores)
	require.LessOrEqual(t, len(res.Scores), DefaultMatsMax)
	for at := 1; at < len(res.Scores); at++ {
		assert.LessOrEqual(t, res.Scores[at-1], res.Scores[at])
		assert.Less(t, res.Scores[at]-res.Scores[0], DefaultMatsThresh)
	}
}
