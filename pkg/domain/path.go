package domain

// Path is a reaction sequence from a start compound to a target compound.
// Steps[i] converts Compounds[i] into Compounds[i+1].
type Path struct {
	Compounds []Compound `json:"compounds"`
	Steps     []Reaction `json:"steps"`
}

// Len returns the number of reactions in the path.
func (p Path) Len() int { return len(p.Steps) }

// Descriptions returns the rendered reaction lines in order.
func (p Path) Descriptions() []string {
	out := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Description()
	}
	return out
}

// Formulas returns the compound formulas in order.
func (p Path) Formulas() []string {
	out := make([]string, len(p.Compounds))
	for i, c := range p.Compounds {
		out[i] = c.Formula()
	}
	return out
}

// Outcome is the result of one search. Found is false when the target is
// not reachable from the start; that is a normal outcome, not an error.
type Outcome struct {
	Start   Compound `json:"start"`
	Target  Compound `json:"target"`
	Found   bool     `json:"found"`
	Path    Path     `json:"path"`
	Visited int      `json:"visited"` // distinct compounds discovered
}

// Edge is one rule application between two compounds, keyed by formula.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rule string `json:"rule"`
}

// Graph is an explored neighbourhood of the reaction graph.
type Graph struct {
	Nodes []Compound `json:"nodes"`
	Edges []Edge     `json:"edges"`
}
