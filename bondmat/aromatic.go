package bondmat

// Aromaticity classifies the π system of a ring.
type Aromaticity int

// Ring classifications. The numeric values matter: the scorer sums
// classification/|ring| over all rings, so aromatic rings lower the
// score and anti-aromatic rings raise it under a negative weight.
const (
	AntiAromatic Aromaticity = -1
	NonAromatic  Aromaticity = 0
	Aromatic     Aromaticity = 1
)

// Aromaticity classifies the given ring (an ordered atom-index cycle)
// using a π-electron count around the cycle. formals may be nil when no
// formal-charge screening is wanted.
//
// A ring is non-aromatic outright if any member carries a multiple
// formal charge, if any ring bond is missing, or if any member has no
// qualifying π orbital (no unbound electrons, no multiple bond to a
// ring neighbor, and a full sigma frame). Otherwise the π total decides:
// odd totals and π-pair counts at or above the ring size are
// non-aromatic, an even pair count is anti-aromatic, an odd pair count
// is aromatic.
func (m *Matrix) Aromaticity(ring []int, formals []int) Aromaticity {
	totalPi := 0
	size := len(ring)
	for ci, i := range ring {
		if formals != nil {
			if f := formals[i]; f > 1 || f < -1 {
				return NonAromatic
			}
		}
		prev := ring[(ci+size-1)%size]
		next := ring[(ci+1)%size]

		// A non-covalent contact breaks the cycle's conjugation.
		if m.At(prev, i) == 0 {
			return NonAromatic
		}

		// Qualifying π orbital: unbound electrons, a multiple bond to a
		// ring neighbor, or an empty p orbital (sigma frame below four).
		if m.At(i, i) > 0 || m.At(i, prev) > 1 || m.At(i, next) > 1 || m.RowSum(i) < 4 {
			switch {
			case m.At(i, prev) >= 2:
				// Counted at the other end of the bond; nothing here.
			case m.At(i, next) >= 2:
				totalPi += 2
			case m.At(i, i) == 1:
				totalPi++
			case m.At(i, i) >= 2:
				totalPi += 2
			}
		} else {
			return NonAromatic
		}
	}

	if totalPi%2 != 0 {
		return NonAromatic
	}
	pairs := totalPi / 2
	if pairs >= size {
		// Guards against spurious aromaticity in tiny saturated rings.
		return NonAromatic
	}
	if pairs%2 == 0 {
		return AntiAromatic
	}

	return Aromatic
}
