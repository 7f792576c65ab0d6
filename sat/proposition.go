package sat

// Proposition represents a named boolean variable. Propositions are created
// lazily, once per distinct name, and live in the problem's arena for the
// whole solving session.
type Proposition struct {
	// Name uniquely identifies the proposition.
	Name string

	// Index is the proposition's stable position in the problem's arena. It
	// is assigned when the proposition is first created and never changes.
	Index int

	// Indices of the clauses in which the proposition occurs, split by
	// polarity. Both lists are populated at clause construction time and are
	// never altered afterward. They record one entry per occurrence, which is
	// what makes flip updates proportional to the number of occurrences.
	positive []int
	negative []int
}

func (p *Proposition) String() string {
	return p.Name
}
