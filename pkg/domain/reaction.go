package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Reaction is one applied rule: the reactant, the product and the
// reagents, conditions and by-products written around them.
type Reaction struct {
	Rule        string   `json:"rule"`
	Reactant    Compound `json:"reactant"`
	Product     Compound `json:"product"`
	Coefficient int      `json:"coefficient,omitempty"` // reactant multiplier, 0 or 1 means none
	Reagents    []string `json:"reagents,omitempty"`
	Byproducts  []string `json:"byproducts,omitempty"`
	Above       string   `json:"above,omitempty"` // catalyst or reagent over the arrow
	Below       string   `json:"below,omitempty"` // condition under the arrow
}

// Description renders the reaction as a single line, e.g.
//
//	2C2H5Br + 2Na -[Dry Ether]-> C4H10 + 2NaBr
//	C2H4 + H2 -[Ni / 180 - 200°C]-> C2H6
func (r Reaction) Description() string {
	var sb strings.Builder

	if r.Coefficient > 1 {
		sb.WriteString(strconv.Itoa(r.Coefficient))
	}
	sb.WriteString(r.Reactant.Formula())
	for _, reagent := range r.Reagents {
		sb.WriteString(" + ")
		sb.WriteString(reagent)
	}

	sb.WriteString(" ")
	sb.WriteString(r.Arrow())
	sb.WriteString(" ")

	sb.WriteString(r.Product.Formula())
	for _, by := range r.Byproducts {
		sb.WriteString(" + ")
		sb.WriteString(by)
	}
	return sb.String()
}

// Arrow renders the reaction arrow with its annotations.
func (r Reaction) Arrow() string {
	var conds []string
	if r.Above != "" {
		conds = append(conds, r.Above)
	}
	if r.Below != "" {
		conds = append(conds, r.Below)
	}
	if len(conds) == 0 {
		return "->"
	}
	return "-[" + strings.Join(conds, " / ") + "]->"
}

func (r Reaction) String() string { return r.Description() }

// MarshalJSON adds the rendered description to the structured fields.
func (r Reaction) MarshalJSON() ([]byte, error) {
	type plain Reaction
	return json.Marshal(struct {
		plain
		Description string `json:"description"`
	}{plain(r), r.Description()})
}

// UnmarshalJSON reads the structured fields and ignores the description.
func (r *Reaction) UnmarshalJSON(data []byte) error {
	type plain Reaction
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Reaction(p)
	return nil
}
