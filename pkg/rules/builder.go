package rules

import (
	"errors"
	"slices"

	"github.com/aretw0/chempath/pkg/domain"
)

// Builder assembles a Rule step by step.
//
//	rules.Define("neutralization").
//		From(domain.CarboxylicAcid).To(domain.CarboxylateSalt).
//		Reactants("NaOH").Byproducts("H2O").
//		Build()
type Builder struct {
	rule Rule
}

// Define starts a new rule with the given name.
func Define(name string) *Builder {
	return &Builder{rule: Rule{Name: name}}
}

// From sets the functional group the rule consumes.
func (b *Builder) From(g domain.FunctionalGroup) *Builder {
	b.rule.From = g
	return b
}

// To sets the functional group the rule produces.
func (b *Builder) To(g domain.FunctionalGroup) *Builder {
	b.rule.To = g
	return b
}

// When restricts the rule to reactants admitted by the guard.
func (b *Builder) When(g Guard) *Builder {
	b.rule.guard = g
	return b
}

// Carbons sets how the product's carbon count is derived.
func (b *Builder) Carbons(m CarbonMap) *Builder {
	b.rule.carbons = m
	return b
}

// Coefficient sets the stoichiometric multiplier written before the reactant.
func (b *Builder) Coefficient(n int) *Builder {
	b.rule.coefficient = n
	return b
}

// Reactants lists the co-reactants written after the compound.
func (b *Builder) Reactants(reagents ...string) *Builder {
	b.rule.reagents = append(b.rule.reagents, reagents...)
	return b
}

// Byproducts lists the species written after the product.
func (b *Builder) Byproducts(species ...string) *Builder {
	b.rule.byproducts = append(b.rule.byproducts, species...)
	return b
}

// Over sets the catalyst (above the arrow) and condition (below it).
func (b *Builder) Over(above, below string) *Builder {
	b.rule.above = above
	b.rule.below = below
	return b
}

// Build validates and returns the rule.
func (b *Builder) Build() (Rule, error) {
	if b.rule.Name == "" {
		return Rule{}, errors.New("rule name is required")
	}
	if !b.rule.From.Valid() || !b.rule.To.Valid() {
		return Rule{}, errors.New("rule " + b.rule.Name + ": source and product groups must be valid")
	}
	r := b.rule
	r.reagents = slices.Clone(r.reagents)
	r.byproducts = slices.Clone(r.byproducts)
	return r, nil
}

// MustBuild is like Build but panics on error. Intended for static catalogs.
func (b *Builder) MustBuild() Rule {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
