package ptable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepprinciple/golewis/ptable"
)

// TestLookup_CaseInsensitive verifies that symbol case never matters.
func TestLookup_CaseInsensitive(t *testing.T) {
	for _, sym := range []string{"cl", "CL", "Cl", " cl "} {
		e, err := ptable.Lookup(sym)
		require.NoError(t, err, "symbol %q", sym)
		assert.Equal(t, "Cl", e.Symbol)
		assert.Equal(t, 7, e.Valence)
		assert.True(t, e.CanExpand) // period-3 halogen may expand
	}
}

// TestLookup_Unknown verifies the sentinel for uncovered symbols.
func TestLookup_Unknown(t *testing.T) {
	_, err := ptable.Lookup("Xx")
	assert.True(t, errors.Is(err, ptable.ErrUnknownElement))
}

// TestLookup_DuetRule verifies hydrogen's duet target.
func TestLookup_DuetRule(t *testing.T) {
	h, err := ptable.Lookup("H")
	require.NoError(t, err)
	assert.Equal(t, 2, h.OctetTarget)
	assert.False(t, h.CanExpand)
	assert.False(t, h.Metal)
}

// TestLookup_MetalClassification spot-checks metal flags.
func TestLookup_MetalClassification(t *testing.T) {
	for _, sym := range []string{"Fe", "Na", "Zn", "Li"} {
		e, err := ptable.Lookup(sym)
		require.NoError(t, err)
		assert.True(t, e.Metal, "%s should be a metal", sym)
	}
	for _, sym := range []string{"C", "S", "Br", "H"} {
		e, err := ptable.Lookup(sym)
		require.NoError(t, err)
		assert.False(t, e.Metal, "%s should not be a metal", sym)
	}
}

// TestLookup_Electronegativity checks the O > N > C ordering the scorer
// leans on when placing formal charges.
func TestLookup_Electronegativity(t *testing.T) {
	o := ptable.MustLookup("O")
	n := ptable.MustLookup("N")
	c := ptable.MustLookup("C")
	assert.Greater(t, o.EN, n.EN)
	assert.Greater(t, n.EN, c.EN)
}

// TestMustLookup_Panics verifies the panic variant.
func TestMustLookup_Panics(t *testing.T) {
	assert.Panics(t, func() { ptable.MustLookup("Qq") })
}
