package sat

import "github.com/rhartert/yagh"

// PropositionFlips reports how many times a proposition has been flipped
// since the problem was created.
type PropositionFlips struct {
	Proposition *Proposition
	Flips       int64
}

// TopFlipped returns the n most-flipped propositions, most flipped first.
// Propositions with equal flip counts are returned in an unspecified order.
// The distribution of flips is a useful diagnostic: a few propositions
// absorbing most of the flips usually indicates the search is stuck cycling
// through the same local optimum.
func (p *Problem) TopFlipped(n int) []PropositionFlips {
	if n > len(p.props) {
		n = len(p.props)
	}

	heap := yagh.New[float64](len(p.props))
	for i, count := range p.flipCounts {
		heap.Put(i, -float64(count))
	}

	top := make([]PropositionFlips, 0, n)
	for len(top) < n {
		next, ok := heap.Pop()
		if !ok {
			break
		}
		top = append(top, PropositionFlips{
			Proposition: p.props[next.Elem],
			Flips:       p.flipCounts[next.Elem],
		})
	}
	return top
}
