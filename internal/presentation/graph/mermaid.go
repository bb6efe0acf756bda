package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/chempath/pkg/domain"
)

// GraphOverlay marks a found path on the rendered graph.
type GraphOverlay struct {
	PathNodes []string // formulas, in path order
	Target    string
}

// GenerateMermaid produces a Mermaid flowchart from an explored graph.
// Node shapes:
// - First node (the search start): ((Circle))
// - Salts, which are usually dead ends: [/Parallelogram/]
// - Default: [Rectangle]
// Edges are labelled with the rule name. Overlay styles are applied if provided.
func GenerateMermaid(g domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string, len(g.Nodes))
	for i, node := range g.Nodes {
		id := fmt.Sprintf("n%d", i)
		ids[node.Key()] = id

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case node.Group() == domain.CarboxylateSalt:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s<br/><small>%s</small>\"%s\n", id, opener, escapeLabel(node.Formula()), node.Group(), closer)
	}

	for _, e := range g.Edges {
		from, ok1 := ids[e.From]
		to, ok2 := ids[e.To]
		if !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", from, escapeLabel(e.Rule), to)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high contrast regardless of theme.
		sb.WriteString("    classDef path fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef target fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		for _, f := range overlay.PathNodes {
			id, ok := ids[f]
			if !ok || styled[id] {
				continue
			}
			styled[id] = true
			fmt.Fprintf(&sb, "    class %s path;\n", id)
		}
		if id, ok := ids[overlay.Target]; ok {
			fmt.Fprintf(&sb, "    class %s target;\n", id)
		}
	}

	return sb.String()
}

// PathGraph turns a found path into a linear graph.
func PathGraph(p domain.Path) domain.Graph {
	g := domain.Graph{Nodes: p.Compounds}
	for _, s := range p.Steps {
		g.Edges = append(g.Edges, domain.Edge{From: s.Reactant.Key(), To: s.Product.Key(), Rule: s.Rule})
	}
	return g
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
