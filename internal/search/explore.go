package search

import (
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
)

// Explore enumerates the neighbourhood of start breadth-first, keeping at
// most limit compounds (limit <= 0 means 1). Every rule application between
// two kept compounds becomes an edge, in discovery order.
func Explore(start domain.Compound, set rules.Set, limit int) domain.Graph {
	if limit <= 0 {
		limit = 1
	}
	all := set.All()

	g := domain.Graph{Nodes: []domain.Compound{start}}
	kept := map[string]bool{start.Key(): true}

	// First pass: discover up to limit nodes.
	for i := 0; i < len(g.Nodes) && len(g.Nodes) < limit; i++ {
		for _, rule := range all {
			rx, ok := rule.Apply(g.Nodes[i])
			if !ok || kept[rx.Product.Key()] {
				continue
			}
			kept[rx.Product.Key()] = true
			g.Nodes = append(g.Nodes, rx.Product)
			if len(g.Nodes) >= limit {
				break
			}
		}
	}

	// Second pass: collect edges among kept nodes.
	for _, c := range g.Nodes {
		for _, rule := range all {
			rx, ok := rule.Apply(c)
			if !ok || !kept[rx.Product.Key()] {
				continue
			}
			g.Edges = append(g.Edges, domain.Edge{From: c.Key(), To: rx.Product.Key(), Rule: rule.Name})
		}
	}
	return g
}
