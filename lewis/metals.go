package lewis

import (
	"github.com/deepprinciple/golewis/bondmat"
)

// metalElectronCeiling caps how many electrons a metal center collects
// through metal-metal bonding.
const metalElectronCeiling = 12

// adjustMetals restores the metal bonds stripped during guess
// generation, classifying each by the ligand's state: a satisfied
// ligand binds datively (order stays zero), a ligand with an odd
// electron forms a one-electron covalent bond, and anything else takes
// both electrons from the metal. Metal-metal single bonds are then
// added while both centers stay under the electron ceiling.
func adjustMetals(m *bondmat.Matrix, env *molEnv) {
	defs := m.Deficiency(env.eDef)
	for i := 0; i < env.n; i++ {
		if !env.metal[i] {
			continue
		}
		for j := 0; j < env.n; j++ {
			if j == i || env.adj[i][j] == 0 || env.metal[j] {
				continue
			}
			switch {
			case defs[j] == 0:
				// Dative: the ligand donates its own pair, the bond
				// order stays zero in the matrix.
			case m.At(j, j)%2 == 1:
				m.Add(i, j, 1)
				m.Add(j, i, 1)
				m.Add(i, i, -1)
				m.Add(j, j, -1)
			default:
				m.Add(i, j, 1)
				m.Add(j, i, 1)
				m.Add(i, i, -2)
			}
		}
	}

	// Metal-metal bonding, capped at four sweeps.
	for count := 0; count < 4; count++ {
		added := false
		e := m.Electrons()
		for i := 0; i < env.n; i++ {
			if !env.metal[i] {
				continue
			}
			for j := i + 1; j < env.n; j++ {
				if !env.metal[j] || env.adj[i][j] == 0 {
					continue
				}
				if m.At(i, i) < 1 || m.At(j, j) < 1 {
					continue
				}
				if e[i]+1 > metalElectronCeiling || e[j]+1 > metalElectronCeiling {
					continue
				}
				m.Add(i, j, 1)
				m.Add(j, i, 1)
				m.Add(i, i, -1)
				m.Add(j, j, -1)
				e = m.Electrons()
				added = true
			}
		}
		if !added {
			break
		}
	}
}
