package rules

import "github.com/aretw0/chempath/pkg/domain"

// Info is the serializable summary of a rule, used by the listing surfaces.
type Info struct {
	Name        string                 `json:"name"`
	From        domain.FunctionalGroup `json:"from"`
	To          domain.FunctionalGroup `json:"to"`
	Requirement string                 `json:"requirement,omitempty"`
	Carbons     string                 `json:"carbons"`
	Coefficient int                    `json:"coefficient,omitempty"`
	Reagents    []string               `json:"reagents,omitempty"`
	Byproducts  []string               `json:"byproducts,omitempty"`
	Above       string                 `json:"above,omitempty"`
	Below       string                 `json:"below,omitempty"`
}

// Info summarizes r.
func (r Rule) Info() Info {
	return Info{
		Name:        r.Name,
		From:        r.From,
		To:          r.To,
		Requirement: r.Requirement(),
		Carbons:     r.ProductCarbons(),
		Coefficient: r.coefficient,
		Reagents:    r.Reagents(),
		Byproducts:  r.Byproducts(),
		Above:       r.above,
		Below:       r.below,
	}
}

// Infos summarizes every rule of the set in order.
func (s Set) Infos() []Info {
	out := make([]Info, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Info()
	}
	return out
}
