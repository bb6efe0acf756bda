package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
)

// NoPathMessage is printed when the target cannot be reached.
const NoPathMessage = "No path found!"

// Options tunes the plain and markdown formatters.
type Options struct {
	// Pretty renders digits in formulas as Unicode subscripts.
	Pretty bool
}

func (o Options) chem(s string) string {
	if o.Pretty {
		return domain.Subscript(s)
	}
	return s
}

// FormatText renders an outcome for a plain terminal:
//
//	C2H5Br -> C2H4 -> C2H6
//	1. C2H5Br + NaOH(alc) -> C2H4 + H2O + NaBr
//	2. C2H4 + H2 -[Ni / 180 - 200°C]-> C2H6
func FormatText(out domain.Outcome, opts Options) string {
	if !out.Found {
		return NoPathMessage + "\n"
	}

	var sb strings.Builder
	formulas := out.Path.Formulas()
	for i, f := range formulas {
		formulas[i] = opts.chem(f)
	}
	sb.WriteString(strings.Join(formulas, " -> "))
	sb.WriteString("\n")

	if out.Path.Len() == 0 {
		sb.WriteString("Start and target are the same compound; no reactions needed.\n")
		return sb.String()
	}
	for i, d := range out.Path.Descriptions() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, opts.chem(d))
	}
	return sb.String()
}

// FormatMarkdown renders an outcome as a markdown document.
func FormatMarkdown(out domain.Outcome, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s → %s\n\n", opts.chem(out.Start.Formula()), opts.chem(out.Target.Formula()))

	if !out.Found {
		fmt.Fprintf(&sb, "**%s** (%d compounds explored)\n", NoPathMessage, out.Visited)
		return sb.String()
	}

	n := out.Path.Len()
	noun := "reactions"
	if n == 1 {
		noun = "reaction"
	}
	fmt.Fprintf(&sb, "**%d %s**, %d compounds explored.\n\n", n, noun, out.Visited)
	if n == 0 {
		return sb.String()
	}

	sb.WriteString("| # | Reaction | Rule | Product |\n")
	sb.WriteString("|---|---|---|---|\n")
	for i, s := range out.Path.Steps {
		fmt.Fprintf(&sb, "| %d | `%s` | %s | %s (%s) |\n",
			i+1, opts.chem(s.Description()), s.Rule, opts.chem(s.Product.Formula()), s.Product.Group())
	}
	return sb.String()
}

// RulesMarkdown renders the catalog as a markdown table.
func RulesMarkdown(set rules.Set) string {
	var sb strings.Builder
	sb.WriteString("# Reaction rules\n\n")
	sb.WriteString("| # | Rule | From | To | Requires | Carbons | Conditions |\n")
	sb.WriteString("|---|---|---|---|---|---|---|\n")
	for i, info := range set.Infos() {
		req := info.Requirement
		if req == "" {
			req = "-"
		}
		conds := strings.Trim(strings.Join([]string{info.Above, info.Below}, " / "), " /")
		if conds == "" {
			conds = "-"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %s | %s |\n",
			i+1, info.Name, info.From, info.To, req, info.Carbons, conds)
	}
	return sb.String()
}

// GroupsText lists every functional group with its minimum carbon count.
func GroupsText() string {
	var sb strings.Builder
	for _, g := range domain.Groups() {
		fmt.Fprintf(&sb, "%-18s min carbons: %d\n", g, g.MinCarbons())
	}
	return sb.String()
}
