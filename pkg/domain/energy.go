package domain

// Average bond enthalpies in kJ/mol.
const (
	bondCH          = 413
	bondCC          = 347
	bondCdoubleC    = 611
	bondCtripleC    = 839
	bondCO          = 358
	bondCdoubleO    = 799
	bondOH          = 464
	bondCBr         = 275
	bondCarboxylate = 550 // resonance-averaged C-O in COO-
)

// bondCounts tallies the bonds of a single molecule.
type bondCounts struct {
	ch, cc, cc2, cc3, co, co2, oh, cbr, coo int
}

// BondEnergy returns the summed bond enthalpy of the molecule in kJ/mol.
// It is informational and plays no part in path finding.
func (c Compound) BondEnergy() int {
	if c.IsZero() {
		return 0
	}
	b := countBonds(c.carbons, c.group)
	return b.ch*bondCH +
		b.cc*bondCC +
		b.cc2*bondCdoubleC +
		b.cc3*bondCtripleC +
		b.co*bondCO +
		b.co2*bondCdoubleO +
		b.coo*bondCarboxylate +
		b.oh*bondOH +
		b.cbr*bondCBr
}

func countBonds(n int, group FunctionalGroup) bondCounts {
	switch group {
	case Alkane:
		return bondCounts{ch: 2*n + 2, cc: n - 1}
	case Alkene:
		return bondCounts{ch: 2 * n, cc: n - 2, cc2: 1}
	case Alkyne:
		return bondCounts{ch: 2*n - 2, cc: n - 2, cc3: 1}
	case Alcohol:
		return bondCounts{ch: 2*n + 1, cc: n - 1, co: 1, oh: 1}
	case Aldehyde:
		return bondCounts{ch: 2 * n, cc: n - 1, co2: 1}
	case CarboxylicAcid:
		return bondCounts{ch: 2*n - 1, cc: n - 1, co: 1, oh: 1, co2: 1}
	case CarboxylateSalt:
		return bondCounts{ch: 2*n - 1, cc: n - 1, coo: 2}
	case AlkylBromide:
		return bondCounts{ch: 2*n + 1, cc: n - 1, cbr: 1}
	case DibromoAlkane:
		return bondCounts{ch: 2 * n, cc: n - 1, cbr: 2}
	}
	return bondCounts{}
}
