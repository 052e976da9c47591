package ptable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownElement is returned when a symbol has no table entry.
var ErrUnknownElement = errors.New("ptable: unknown element symbol")

// Element bundles the per-element constants used by the Lewis solver.
// All fields describe the neutral, isolated atom.
type Element struct {
	// Symbol is the canonical form, e.g. "Cl".
	Symbol string

	// Valence is the neutral valence electron count (group electrons).
	Valence int

	// OctetTarget is the electron count below which the atom is
	// considered deficient (8 for most elements, 2 for H and He).
	OctetTarget int

	// ExpandTarget is the electron count above which the atom is
	// considered to carry an expanded octet.
	ExpandTarget int

	// CanExpand reports whether the atom may host more electrons than
	// OctetTarget without penalty gating (period-3 and heavier p-block).
	CanExpand bool

	// EN is the Pauling electronegativity.
	EN float64

	// Polarizability is the static dipole polarizability in atomic units.
	Polarizability float64

	// Metal reports whether the element is treated as a metal center:
	// excluded from the reactive set and handled by covalent bond
	// classification after the search.
	Metal bool
}

// elements is keyed by canonical symbol. Octet targets follow the duet
// rule for H/He, the octet rule for the p-block, and the neutral valence
// count for metals (a sigma-stripped metal center rests at zero
// deficiency, which is what the CBC post-pass expects).
var elements = map[string]Element{
	"H":  {Symbol: "H", Valence: 1, OctetTarget: 2, ExpandTarget: 2, EN: 2.20, Polarizability: 4.51},
	"He": {Symbol: "He", Valence: 2, OctetTarget: 2, ExpandTarget: 2, EN: 0.00, Polarizability: 1.38},
	"Li": {Symbol: "Li", Valence: 1, OctetTarget: 2, ExpandTarget: 2, EN: 0.98, Polarizability: 164.0, Metal: true},
	"Be": {Symbol: "Be", Valence: 2, OctetTarget: 4, ExpandTarget: 4, EN: 1.57, Polarizability: 37.7, Metal: true},
	"B":  {Symbol: "B", Valence: 3, OctetTarget: 8, ExpandTarget: 8, EN: 2.04, Polarizability: 20.5},
	"C":  {Symbol: "C", Valence: 4, OctetTarget: 8, ExpandTarget: 8, EN: 2.55, Polarizability: 11.3},
	"N":  {Symbol: "N", Valence: 5, OctetTarget: 8, ExpandTarget: 8, EN: 3.04, Polarizability: 7.4},
	"O":  {Symbol: "O", Valence: 6, OctetTarget: 8, ExpandTarget: 8, EN: 3.44, Polarizability: 5.3},
	"F":  {Symbol: "F", Valence: 7, OctetTarget: 8, ExpandTarget: 8, EN: 3.98, Polarizability: 3.74},
	"Ne": {Symbol: "Ne", Valence: 8, OctetTarget: 8, ExpandTarget: 8, EN: 0.00, Polarizability: 2.66},
	"Na": {Symbol: "Na", Valence: 1, OctetTarget: 2, ExpandTarget: 2, EN: 0.93, Polarizability: 163.0, Metal: true},
	"Mg": {Symbol: "Mg", Valence: 2, OctetTarget: 4, ExpandTarget: 4, EN: 1.31, Polarizability: 71.2, Metal: true},
	"Al": {Symbol: "Al", Valence: 3, OctetTarget: 8, ExpandTarget: 8, EN: 1.61, Polarizability: 57.8, Metal: true},
	"Si": {Symbol: "Si", Valence: 4, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 1.90, Polarizability: 37.3},
	"P":  {Symbol: "P", Valence: 5, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 2.19, Polarizability: 25.0},
	"S":  {Symbol: "S", Valence: 6, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 2.58, Polarizability: 19.4},
	"Cl": {Symbol: "Cl", Valence: 7, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 3.16, Polarizability: 14.6},
	"Ar": {Symbol: "Ar", Valence: 8, OctetTarget: 8, ExpandTarget: 8, EN: 0.00, Polarizability: 11.1},
	"K":  {Symbol: "K", Valence: 1, OctetTarget: 2, ExpandTarget: 2, EN: 0.82, Polarizability: 290.0, Metal: true},
	"Ca": {Symbol: "Ca", Valence: 2, OctetTarget: 4, ExpandTarget: 4, EN: 1.00, Polarizability: 160.0, Metal: true},
	"Sc": {Symbol: "Sc", Valence: 3, OctetTarget: 3, ExpandTarget: 3, EN: 1.36, Polarizability: 120.0, Metal: true},
	"Ti": {Symbol: "Ti", Valence: 4, OctetTarget: 4, ExpandTarget: 4, EN: 1.54, Polarizability: 99.0, Metal: true},
	"V":  {Symbol: "V", Valence: 5, OctetTarget: 5, ExpandTarget: 5, EN: 1.63, Polarizability: 84.0, Metal: true},
	"Cr": {Symbol: "Cr", Valence: 6, OctetTarget: 6, ExpandTarget: 6, EN: 1.66, Polarizability: 78.0, Metal: true},
	"Mn": {Symbol: "Mn", Valence: 7, OctetTarget: 7, ExpandTarget: 7, EN: 1.55, Polarizability: 63.0, Metal: true},
	"Fe": {Symbol: "Fe", Valence: 8, OctetTarget: 8, ExpandTarget: 8, EN: 1.83, Polarizability: 62.0, Metal: true},
	"Co": {Symbol: "Co", Valence: 9, OctetTarget: 9, ExpandTarget: 9, EN: 1.88, Polarizability: 55.0, Metal: true},
	"Ni": {Symbol: "Ni", Valence: 10, OctetTarget: 10, ExpandTarget: 10, EN: 1.91, Polarizability: 49.0, Metal: true},
	"Cu": {Symbol: "Cu", Valence: 11, OctetTarget: 11, ExpandTarget: 11, EN: 1.90, Polarizability: 46.5, Metal: true},
	"Zn": {Symbol: "Zn", Valence: 12, OctetTarget: 12, ExpandTarget: 12, EN: 1.65, Polarizability: 38.7, Metal: true},
	"Br": {Symbol: "Br", Valence: 7, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 2.96, Polarizability: 21.0},
	"I":  {Symbol: "I", Valence: 7, OctetTarget: 8, ExpandTarget: 8, CanExpand: true, EN: 2.66, Polarizability: 32.9},
}

// Canonical normalizes an element symbol to its table form:
// first rune upper-case, remainder lower-case ("cl" → "Cl").
func Canonical(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Lookup returns the Element entry for the given symbol, or
// ErrUnknownElement if the symbol is not covered by the table.
func Lookup(symbol string) (Element, error) {
	e, ok := elements[Canonical(symbol)]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}

	return e, nil
}

// MustLookup is the panic variant of Lookup for callers that have
// already validated their element list.
func MustLookup(symbol string) Element {
	e, err := Lookup(symbol)
	if err != nil {
		panic(err)
	}

	return e
}
