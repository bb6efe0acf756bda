package rules

import (
	"fmt"
	"slices"

	"github.com/aretw0/chempath/pkg/domain"
)

// Guard restricts a rule by the reactant's carbon count.
// The zero Guard admits every count.
type Guard struct {
	Desc  string
	Allow func(carbons int) bool
}

// AtLeast admits carbon counts >= n.
func AtLeast(n int) Guard {
	return Guard{Desc: fmt.Sprintf("c >= %d", n), Allow: func(c int) bool { return c >= n }}
}

// AtMost admits carbon counts <= n.
func AtMost(n int) Guard {
	return Guard{Desc: fmt.Sprintf("c <= %d", n), Allow: func(c int) bool { return c <= n }}
}

// MoreThan admits carbon counts > n.
func MoreThan(n int) Guard {
	return Guard{Desc: fmt.Sprintf("c > %d", n), Allow: func(c int) bool { return c > n }}
}

func (g Guard) admits(c int) bool {
	return g.Allow == nil || g.Allow(c)
}

// CarbonMap computes the product's carbon count from the reactant's.
// The zero CarbonMap keeps the count unchanged.
type CarbonMap struct {
	Desc string
	Fn   func(carbons int) int
}

// Scale multiplies the carbon count by k.
func Scale(k int) CarbonMap {
	return CarbonMap{Desc: fmt.Sprintf("%dc", k), Fn: func(c int) int { return k * c }}
}

// Shift adds d carbons (d may be negative).
func Shift(d int) CarbonMap {
	desc := fmt.Sprintf("c+%d", d)
	if d < 0 {
		desc = fmt.Sprintf("c-%d", -d)
	}
	return CarbonMap{Desc: desc, Fn: func(c int) int { return c + d }}
}

func (m CarbonMap) apply(c int) int {
	if m.Fn == nil {
		return c
	}
	return m.Fn(c)
}

func (m CarbonMap) String() string {
	if m.Desc == "" {
		return "c"
	}
	return m.Desc
}

// Rule is a guarded functional-group transformation.
// Rules are values; Apply is pure and safe for concurrent use.
type Rule struct {
	Name string
	From domain.FunctionalGroup
	To   domain.FunctionalGroup

	guard   Guard
	carbons CarbonMap

	coefficient int
	reagents    []string
	byproducts  []string
	above       string
	below       string
}

// Apply runs the rule against c. It reports false when the compound is not
// in the rule's source group or fails the carbon guard.
func (r Rule) Apply(c domain.Compound) (domain.Reaction, bool) {
	if c.IsZero() || c.Group() != r.From || !r.guard.admits(c.Carbons()) {
		return domain.Reaction{}, false
	}

	product, err := domain.NewCompound(r.carbons.apply(c.Carbons()), r.To)
	if err != nil {
		return domain.Reaction{}, false
	}

	return domain.Reaction{
		Rule:        r.Name,
		Reactant:    c,
		Product:     product,
		Coefficient: r.coefficient,
		Reagents:    slices.Clone(r.reagents),
		Byproducts:  slices.Clone(r.byproducts),
		Above:       r.above,
		Below:       r.below,
	}, true
}

// Requirement describes the carbon guard, or "" when there is none.
func (r Rule) Requirement() string { return r.guard.Desc }

// ProductCarbons describes how the product's carbon count is derived.
func (r Rule) ProductCarbons() string { return r.carbons.String() }

// Conditions returns the annotations written over and under the arrow.
func (r Rule) Conditions() (above, below string) { return r.above, r.below }

// Reagents returns the co-reactants consumed alongside the compound.
func (r Rule) Reagents() []string { return slices.Clone(r.reagents) }

// Byproducts returns the species released next to the product.
func (r Rule) Byproducts() []string { return slices.Clone(r.byproducts) }
