package sat

import "fmt"

// Literal represents a literal, which either represents a proposition or its
// negation. Literals are encoded as 2*propIndex for positive literals and
// 2*propIndex+1 for negative ones.
type Literal int

// PropIndex returns the index of the literal's proposition.
func (l Literal) PropIndex() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its proposition (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.PropIndex())
	} else {
		return fmt.Sprintf("!%d", l.PropIndex())
	}
}
