package sat

import (
	"fmt"
	"strings"
)

// Clause represents a disjunction of literals. A clause's disjuncts are fixed
// for the lifetime of the problem: only the assignment changes during search.
type Clause struct {
	// The clause's position in the problem's clause list. This is the index
	// used for the problem-wide true-literal counters.
	index int

	// The clause's literals, in construction order.
	disjuncts []Literal

	// Display text reconstructed from the parsed literals. Rebuilding the
	// text instead of retaining the source verbatim makes parsing mistakes
	// visible: a wrongly parsed clause prints differently from its source.
	text string
}

// Index returns the clause's stable position in the problem's clause list.
func (c *Clause) Index() int {
	return c.index
}

// Len returns the number of disjuncts in the clause.
func (c *Clause) Len() int {
	return len(c.disjuncts)
}

// Literals returns a copy of the clause's disjuncts.
func (c *Clause) Literals() []Literal {
	lits := make([]Literal, len(c.disjuncts))
	copy(lits, c.disjuncts)
	return lits
}

func (c *Clause) String() string {
	return c.text
}

// clauseText reconstructs the display text of a clause from its literals and
// the proposition names.
func clauseText(props []*Proposition, disjuncts []Literal) string {
	sb := strings.Builder{}
	for i, l := range disjuncts {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if !l.IsPositive() {
			sb.WriteByte('!')
		}
		sb.WriteString(props[l.PropIndex()].Name)
	}
	return sb.String()
}

// ParseError reports a malformed clause expression.
type ParseError struct {
	Expr string // the full clause expression
	Part string // the offending disjunct, after trimming
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clause %q: %s", e.Expr, e.Msg)
}

// parseClause parses a clause expression into (name, positive) pairs. The
// expression is split on '|'; each part is trimmed, a leading '!' negates the
// literal, and the remainder is the proposition name. An empty part or an
// empty name is a ParseError.
func parseClause(expr string) ([]string, []bool, error) {
	parts := strings.Split(expr, "|")
	names := make([]string, 0, len(parts))
	positives := make([]bool, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, nil, &ParseError{Expr: expr, Part: part, Msg: "empty disjunct"}
		}
		positive := true
		name := part
		if strings.HasPrefix(part, "!") {
			positive = false
			name = strings.TrimSpace(part[1:])
		}
		if name == "" {
			return nil, nil, &ParseError{Expr: expr, Part: part, Msg: "empty proposition name"}
		}
		names = append(names, name)
		positives = append(positives, positive)
	}
	return names, positives, nil
}
