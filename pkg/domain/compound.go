package domain

import (
	"encoding/json"
	"fmt"
)

// Compound is one chemical species: a carbon count within a functional group.
// Values are immutable; the formula is derived once by NewCompound and serves
// as the identity of the compound inside the reaction graph.
type Compound struct {
	carbons int
	group   FunctionalGroup
	formula string
}

// NewCompound builds a compound, rejecting carbon counts below the group minimum.
func NewCompound(carbons int, group FunctionalGroup) (Compound, error) {
	if !group.Valid() {
		return Compound{}, &ValidationError{
			Field:  "group",
			Group:  group,
			Value:  fmt.Sprint(int(group)),
			Reason: "unknown functional group",
		}
	}
	if carbons < group.MinCarbons() {
		return Compound{}, &ValidationError{
			Field: "carbons",
			Group: group,
			Min:   group.MinCarbons(),
			Value: fmt.Sprint(carbons),
		}
	}
	return Compound{
		carbons: carbons,
		group:   group,
		formula: formulaOf(carbons, group),
	}, nil
}

// MustCompound is like NewCompound but panics on invalid input.
// Rule guards rely on it for products that cannot violate a minimum.
func MustCompound(carbons int, group FunctionalGroup) Compound {
	c, err := NewCompound(carbons, group)
	if err != nil {
		panic(err)
	}
	return c
}

// Carbons returns the carbon count.
func (c Compound) Carbons() int { return c.carbons }

// Group returns the functional group.
func (c Compound) Group() FunctionalGroup { return c.group }

// Formula returns the condensed formula, e.g. "C2H5Br" or "CH3-COOH".
func (c Compound) Formula() string { return c.formula }

// Key is the graph identity of the compound. Two compounds are the same node
// when their formulas are equal.
func (c Compound) Key() string { return c.formula }

// IsZero reports whether c was never constructed.
func (c Compound) IsZero() bool { return c.formula == "" }

// Same reports whether both compounds render to the same formula.
func (c Compound) Same(other Compound) bool { return c.formula == other.formula }

func (c Compound) String() string { return c.formula }

func formulaOf(c int, group FunctionalGroup) string {
	switch group {
	case Alkane:
		if c == 1 {
			return "CH4"
		}
		return fmt.Sprintf("C%dH%d", c, 2*c+2)
	case Alkene:
		return fmt.Sprintf("C%dH%d", c, 2*c)
	case Alkyne:
		return fmt.Sprintf("C%dH%d", c, 2*c-2)
	case Alcohol:
		if c == 1 {
			return "CH3-OH"
		}
		return fmt.Sprintf("C%dH%d-OH", c, 2*c+1)
	case Aldehyde:
		switch c {
		case 1:
			return "H-CHO"
		case 2:
			return "CH3-CHO"
		}
		return fmt.Sprintf("C%dH%d-CHO", c-1, 2*(c-1)+1)
	case CarboxylicAcid:
		switch c {
		case 1:
			return "H-COOH"
		case 2:
			return "CH3-COOH"
		}
		return fmt.Sprintf("C%dH%d-COOH", c-1, 2*(c-1)+1)
	case AlkylBromide:
		if c == 1 {
			return "CH3Br"
		}
		return fmt.Sprintf("C%dH%dBr", c, 2*c+1)
	case CarboxylateSalt:
		switch c {
		case 1:
			return "H-COONa"
		case 2:
			return "CH3-COONa"
		}
		return fmt.Sprintf("C%dH%d-COONa", c-1, 2*(c-1)+1)
	case DibromoAlkane:
		switch c {
		case 2:
			return "CH2Br-CH2Br"
		case 3:
			return "CH3-CHBr-CH2Br"
		}
		return fmt.Sprintf("C%dH%d-CHBr-CH2Br", c-2, 2*(c-2)+1)
	default:
		return fmt.Sprintf("%d-%d", c, int(group))
	}
}

// compoundJSON is the wire shape of a Compound.
type compoundJSON struct {
	Carbons    int             `json:"carbons"`
	Group      FunctionalGroup `json:"group"`
	Formula    string          `json:"formula"`
	BondEnergy int             `json:"bond_energy"`
}

// MarshalJSON exposes the derived attributes next to the inputs.
func (c Compound) MarshalJSON() ([]byte, error) {
	return json.Marshal(compoundJSON{
		Carbons:    c.carbons,
		Group:      c.group,
		Formula:    c.formula,
		BondEnergy: c.BondEnergy(),
	})
}

// UnmarshalJSON rebuilds the compound from carbons and group.
// The formula on the wire is ignored and derived again.
func (c *Compound) UnmarshalJSON(data []byte) error {
	var raw compoundJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewCompound(raw.Carbons, raw.Group)
	if err != nil {
		return err
	}
	*c = built
	return nil
}
