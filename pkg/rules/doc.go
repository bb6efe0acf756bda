/*
Package rules holds the reaction catalog used by the path finder.

A Rule is a pure, guarded transformation from one functional group to
another. Rules are assembled with the Define builder and grouped in an
immutable, ordered Set that is passed explicitly to the search.

	set := rules.Default()
	for _, r := range set.All() {
		if rx, ok := r.Apply(compound); ok {
			fmt.Println(rx.Description())
		}
	}
*/
package rules
