package sat

// TruthAssignment holds the current candidate truth value of each
// proposition. Values are stored in a dense slice keyed by proposition index.
type TruthAssignment struct {
	values []bool
}

// Value returns the current value of the proposition with the given index.
func (a *TruthAssignment) Value(prop int) bool {
	return a.values[prop]
}

// Flip inverts the stored value of the proposition with the given index. It
// changes nothing else: clause bookkeeping is the caller's responsibility.
func (a *TruthAssignment) Flip(prop int) {
	a.values[prop] = !a.values[prop]
}

// TrueLiteralCount scans the clause's disjuncts and counts the literals that
// are true under the current assignment. This is a full scan of the clause:
// it is only used to initialize the incremental counters and to verify them,
// never on the search's hot path.
func (a *TruthAssignment) TrueLiteralCount(c *Clause) int {
	count := 0
	for _, l := range c.disjuncts {
		if l.IsPositive() == a.values[l.PropIndex()] {
			count++
		}
	}
	return count
}

// expand grows the assignment to hold one more proposition.
func (a *TruthAssignment) expand() {
	a.values = append(a.values, false)
}

// randomize assigns every proposition an independent unbiased random value.
func (a *TruthAssignment) randomize(rng Random) {
	for i := range a.values {
		a.values[i] = rng.Intn(2) == 1
	}
}
