package bondmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepprinciple/golewis/bondmat"
)

// formaldehyde returns the ground-state bond-electron matrix for H2C=O:
// atoms C, H, H, O with a C=O double bond and two lone pairs on oxygen.
func formaldehyde(t *testing.T) *bondmat.Matrix {
	t.Helper()
	m, err := bondmat.FromRows([][]int{
		{0, 1, 1, 2},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 0, 0, 4},
	})
	require.NoError(t, err)

	return m
}

// sixRing builds a benzene-like skeleton: six ring carbons (0..5) each
// bonded to the given number of hydrogens, with ring bond orders taken
// from orders[i] for the bond i→i+1 (mod 6).
func sixRing(t *testing.T, orders [6]int, hPerC [6]int) *bondmat.Matrix {
	t.Helper()
	n := 6
	for _, h := range hPerC {
		n += h
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 0; i < 6; i++ {
		j := (i + 1) % 6
		rows[i][j], rows[j][i] = orders[i], orders[i]
	}
	h := 6
	for i, cnt := range hPerC {
		for k := 0; k < cnt; k++ {
			rows[i][h], rows[h][i] = 1, 1
			h++
		}
	}
	m, err := bondmat.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestFromRows_Asymmetric verifies symmetry validation.
func TestFromRows_Asymmetric(t *testing.T) {
	_, err := bondmat.FromRows([][]int{
		{0, 1},
		{0, 0},
	})
	assert.ErrorIs(t, err, bondmat.ErrAsymmetric)
}

// TestDerivedQuantities pins electron accounting on formaldehyde.
func TestDerivedQuantities(t *testing.T) {
	m := formaldehyde(t)

	assert.Equal(t, []int{8, 2, 2, 8}, m.Electrons())
	assert.Equal(t, 12, m.TotalElectrons()) // 4+1+1+6 valence electrons

	targets := []int{8, 2, 2, 8}
	assert.Equal(t, []int{0, 0, 0, 0}, m.Deficiency(targets))
	assert.Equal(t, []int{0, 0, 0, 0}, m.Surplus(targets))

	neutral := []int{4, 1, 1, 6}
	assert.Equal(t, []int{0, 0, 0, 0}, m.FormalCharges(neutral))
}

// TestDeficiencyClipping verifies the clip directions on a bare carbon
// radical fragment.
func TestDeficiencyClipping(t *testing.T) {
	m, err := bondmat.FromRows([][]int{
		{4, 0},
		{0, 10},
	})
	require.NoError(t, err)

	// Atom 0: 4 electrons against a target of 8 → deficiency −4.
	// Atom 1: 10 electrons against a target of 8 → surplus +2.
	assert.Equal(t, []int{-4, 0}, m.Deficiency([]int{8, 8}))
	assert.Equal(t, []int{0, 2}, m.Surplus([]int{8, 8}))
}

// TestConnections covers ordering, min order, and the within filter.
func TestConnections(t *testing.T) {
	m := formaldehyde(t)

	assert.Equal(t, []int{1, 2, 3}, m.Connections(0, 1, nil))
	assert.Equal(t, []int{3}, m.Connections(0, 2, nil)) // only the C=O
	assert.Equal(t, []int{3}, m.Connections(0, 1, []int{3}))
	assert.Empty(t, m.Connections(1, 2, nil))
}

// TestApply_ConservesElectronsAndSymmetry applies a heterolytic π
// retraction (the C=O π pair collapses onto oxygen) and checks the invariants.
func TestApply_ConservesElectronsAndSymmetry(t *testing.T) {
	m := formaldehyde(t)
	before := m.TotalElectrons()

	c := m.Clone()
	c.Apply(bondmat.Move{{-1, 0, 3}, {-1, 3, 0}, {2, 3, 3}})

	assert.Equal(t, before, c.TotalElectrons())
	assert.Equal(t, 1, c.At(0, 3))
	assert.Equal(t, c.At(0, 3), c.At(3, 0))
	assert.Equal(t, 6, c.At(3, 3))
	// The original is untouched.
	assert.Equal(t, 2, m.At(0, 3))
}

// TestHash_DistinguishesNearbyMatrices verifies the positional digest
// separates matrices with the same entries in different positions, and
// that Equal remains the ground truth.
func TestHash_DistinguishesNearbyMatrices(t *testing.T) {
	a, err := bondmat.FromRows([][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	b, err := bondmat.FromRows([][]int{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
	assert.Equal(t, a.Hash(), a.Clone().Hash())
}

// TestAromaticity_Benzene: alternating double bonds, six π electrons,
// three pairs → aromatic.
func TestAromaticity_Benzene(t *testing.T) {
	m := sixRing(t, [6]int{2, 1, 2, 1, 2, 1}, [6]int{1, 1, 1, 1, 1, 1})
	ring := []int{0, 1, 2, 3, 4, 5}
	assert.Equal(t, bondmat.Aromatic, m.Aromaticity(ring, nil))
}

// TestAromaticity_Cyclohexadiene: two sp³ centers break conjugation →
// non-aromatic.
func TestAromaticity_Cyclohexadiene(t *testing.T) {
	m := sixRing(t, [6]int{2, 1, 2, 1, 1, 1}, [6]int{1, 1, 1, 1, 2, 2})
	ring := []int{0, 1, 2, 3, 4, 5}
	assert.Equal(t, bondmat.NonAromatic, m.Aromaticity(ring, nil))
}

// TestAromaticity_MultiChargeDisqualifies: a doubly charged member
// rules the ring out regardless of bonding.
func TestAromaticity_MultiChargeDisqualifies(t *testing.T) {
	m := sixRing(t, [6]int{2, 1, 2, 1, 2, 1}, [6]int{1, 1, 1, 1, 1, 1})
	ring := []int{0, 1, 2, 3, 4, 5}
	formals := make([]int, m.Size())
	formals[2] = 2
	assert.Equal(t, bondmat.NonAromatic, m.Aromaticity(ring, formals))
}

// TestAromaticity_Cyclobutadiene: four π electrons, two pairs →
// anti-aromatic.
func TestAromaticity_Cyclobutadiene(t *testing.T) {
	rows := make([][]int, 8)
	for i := range rows {
		rows[i] = make([]int, 8)
	}
	orders := []int{2, 1, 2, 1}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		rows[i][j], rows[j][i] = orders[i], orders[i]
		rows[i][4+i], rows[4+i][i] = 1, 1 // one H per carbon
	}
	m, err := bondmat.FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, bondmat.AntiAromatic, m.Aromaticity([]int{0, 1, 2, 3}, nil))
}
