/*
Package chempath finds the shortest sequence of textbook organic reactions
that converts one compound into another.

A compound is a carbon count plus a functional group (alkane, alcohol,
carboxylic acid, ...). Reactions are guarded rules that turn a compound of
one group into a compound of another, possibly changing the carbon count.
The Planner runs a breadth-first search over the graph those rules induce,
so the reported path always has the fewest reactions.

# Concept

The graph is never materialised. Every dequeued compound has each rule of
the catalog applied to it in order; products are identified by formula.
Some rules grow the chain (Wurtz coupling doubles it), so the graph is
infinite and an unreachable target may keep a search running. Use
WithMaxVisited to bound it.

# Usage

	planner := chempath.New(chempath.WithMaxVisited(5000))

	res, err := planner.Plan(ctx, chempath.Query{
		StartGroup:    "alkyl bromide",
		StartCarbons:  2,
		TargetGroup:   "alkane",
		TargetCarbons: 2,
	})
	if err != nil {
		log.Fatal(err) // invalid input or search limit
	}
	if !res.Found {
		fmt.Println("No path found!")
		return
	}
	for _, line := range res.Path.Descriptions() {
		fmt.Println(line)
	}

Results can be memoized with WithCache, using the in-memory or Redis
adapters under pkg/adapters.
*/
package chempath
