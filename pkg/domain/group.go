package domain

import (
	"fmt"
	"strings"
)

// FunctionalGroup identifies the family a compound belongs to.
type FunctionalGroup int

// The closed set of functional groups known to the rule catalog.
const (
	Alkane FunctionalGroup = iota
	Alkene
	Alkyne
	AlkylBromide
	CarboxylateSalt
	DibromoAlkane
	Alcohol
	Aldehyde
	CarboxylicAcid
)

var groupNames = [...]string{
	Alkane:          "Alkane",
	Alkene:          "Alkene",
	Alkyne:          "Alkyne",
	AlkylBromide:    "Alkyl Bromide",
	CarboxylateSalt: "Carboxylate Salt",
	DibromoAlkane:   "Dibromo Alkane",
	Alcohol:         "Alcohol",
	Aldehyde:        "Aldehyde",
	CarboxylicAcid:  "Carboxylic Acid",
}

// minCarbons is the smallest carbon count that forms a valid member of each group.
var minCarbons = [...]int{
	Alkane:          1,
	Alkene:          2,
	Alkyne:          2,
	AlkylBromide:    1,
	CarboxylateSalt: 1,
	DibromoAlkane:   2,
	Alcohol:         1,
	Aldehyde:        1,
	CarboxylicAcid:  1,
}

// Groups returns every functional group in declaration order.
func Groups() []FunctionalGroup {
	gs := make([]FunctionalGroup, len(groupNames))
	for i := range groupNames {
		gs[i] = FunctionalGroup(i)
	}
	return gs
}

// Valid reports whether g is one of the declared groups.
func (g FunctionalGroup) Valid() bool {
	return g >= 0 && int(g) < len(groupNames)
}

// String returns the display name ("Alkyl Bromide", "Carboxylic Acid", ...).
func (g FunctionalGroup) String() string {
	if !g.Valid() {
		return fmt.Sprintf("FunctionalGroup(%d)", int(g))
	}
	return groupNames[g]
}

// MinCarbons returns the minimum carbon count accepted for the group.
func (g FunctionalGroup) MinCarbons() int {
	if !g.Valid() {
		return 1
	}
	return minCarbons[g]
}

// MarshalText encodes the group as its display name.
func (g FunctionalGroup) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: unknown functional group %d", ErrInvalidInput, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText accepts any spelling understood by ParseGroup.
func (g *FunctionalGroup) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGroup resolves a group name. Matching ignores case, spaces, underscores
// and hyphens so "Alkyl Bromide", "alkyl_bromide" and "AlkylBromide" are equal.
func ParseGroup(name string) (FunctionalGroup, error) {
	want := normalizeGroupName(name)
	if want != "" {
		for i, n := range groupNames {
			if normalizeGroupName(n) == want {
				return FunctionalGroup(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown functional group %q", ErrInvalidInput, name)
}

func normalizeGroupName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
