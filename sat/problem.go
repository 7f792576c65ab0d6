package sat

import (
	"fmt"
	"time"
)

// Problem owns a set of clauses over named propositions and searches for a
// satisfying assignment by stochastic local search (GSAT with noise). The
// problem maintains two structures in lockstep: a per-clause count of
// currently-true literals, and the set of unsatisfied clauses (those whose
// count is zero). Both are computed by a single full scan at initialization
// and then updated incrementally by FlipProposition, in time proportional to
// the number of clauses containing the flipped proposition.
type Problem struct {
	// Proposition arena and name registry. Propositions are created lazily,
	// once per distinct name, and are referenced everywhere else by index.
	props []*Proposition
	names map[string]int

	// Clause database. Fixed once the search starts.
	clauses []*Clause

	// trueLiteralCounts[i] is the number of true literals of clauses[i] under
	// the current assignment. unsatisfied is exactly the set of clause
	// indices whose count is zero. Only FlipProposition mutates these after
	// initialization.
	trueLiteralCounts []int
	unsatisfied       *clauseSet

	// Current candidate assignment.
	solution *TruthAssignment

	// Probability (in percent) of taking a random-walk step instead of a
	// greedy one.
	noiseLevel int

	rng         Random
	initialized bool

	// Per-proposition flip counters, see TopFlipped.
	flipCounts []int64

	// Search statistics.
	TotalFlips  int64
	TotalTries  int64
	TotalGreedy int64
	TotalWalks  int64
	startTime   time.Time

	// Stop conditions.
	hasStopCond bool
	maxFlips    int64
	maxTries    int64
	timeout     time.Duration
}

type Options struct {
	// NoiseLevel is the probability, in percent, of taking a random-walk
	// step. It must be in [0, 100].
	NoiseLevel int

	// MaxFlips is the number of flips allowed per try (-1 = no maximum).
	MaxFlips int64

	// MaxTries is the number of restarts allowed (-1 = no maximum).
	MaxTries int64

	// Timeout bounds the total search time (-1 = no timeout).
	Timeout time.Duration

	// Random is the source of randomness used by the search. If nil, a
	// time-seeded math/rand source is used.
	Random Random
}

var DefaultOptions = Options{
	NoiseLevel: 50,
	MaxFlips:   100000,
	MaxTries:   -1,
	Timeout:    -1,
}

// NewDefaultProblem returns a problem configured with default options. This
// is equivalent to calling NewProblem with DefaultOptions.
func NewDefaultProblem() *Problem {
	p, _ := NewProblem(DefaultOptions)
	return p
}

func NewProblem(ops Options) (*Problem, error) {
	rng := ops.Random
	if rng == nil {
		rng = newTimeSeededRandom()
	}

	p := &Problem{
		names:       map[string]int{},
		unsatisfied: newClauseSet(0),
		solution:    &TruthAssignment{},
		rng:         rng,
		maxFlips:    -1,
		maxTries:    -1,
		timeout:     -1,
	}

	if err := p.SetNoiseLevel(ops.NoiseLevel); err != nil {
		return nil, err
	}

	if ops.MaxFlips >= 0 {
		p.maxFlips = ops.MaxFlips
	}
	if ops.MaxTries >= 0 {
		p.hasStopCond = true
		p.maxTries = ops.MaxTries
	}
	if ops.Timeout >= 0 {
		p.hasStopCond = true
		p.timeout = ops.Timeout
	}

	return p, nil
}

func (p *Problem) shouldStop() bool {
	if !p.hasStopCond {
		return false
	}
	if p.timeout >= 0 && p.timeout <= time.Since(p.startTime) {
		return true
	}
	return false
}

// Literal returns the literal for the given proposition name and polarity,
// registering the proposition if it has not been seen before. Unknown names
// are not an error: first-seen names get the next registry slot.
func (p *Problem) Literal(name string, positive bool) Literal {
	index, ok := p.names[name]
	if !ok {
		index = len(p.props)
		p.names[name] = index
		p.props = append(p.props, &Proposition{Name: name, Index: index})
		p.solution.expand()
		p.flipCounts = append(p.flipCounts, 0)
	}
	if positive {
		return Literal(index * 2)
	}
	return Literal(index*2 + 1)
}

// AddClause adds a disjunction of literals to the problem and registers the
// clause with each of its propositions. Repeated literals are stored once.
// Clauses can only be added before the search starts.
func (p *Problem) AddClause(disjuncts ...Literal) error {
	if p.initialized {
		return fmt.Errorf("can only add clauses before the search starts")
	}
	if len(disjuncts) == 0 {
		return fmt.Errorf("cannot add an empty clause")
	}
	for _, l := range disjuncts {
		if l < 0 || l.PropIndex() >= len(p.props) {
			return fmt.Errorf("unknown proposition for literal %s", l)
		}
	}

	// Drop repeated literals, keeping first-occurrence order. A duplicate
	// would register the clause twice in its proposition's occurrence list,
	// making flip updates move the clause's count by two and delta scoring
	// count the clause twice.
	seen := map[Literal]struct{}{}
	lits := make([]Literal, 0, len(disjuncts))
	for _, l := range disjuncts {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		lits = append(lits, l)
	}

	c := &Clause{
		index:     len(p.clauses),
		disjuncts: lits,
	}
	c.text = clauseText(p.props, c.disjuncts)

	for _, l := range c.disjuncts {
		if _, ok := seen[l.Opposite()]; ok {
			// The clause contains both polarities of this proposition, so
			// exactly one of the two literals is true under every assignment
			// and flipping the proposition never changes the clause's
			// true-literal count. The clause goes in neither occurrence
			// list: flip updates and delta scoring both see no effect, which
			// is exact.
			continue
		}
		prop := p.props[l.PropIndex()]
		if l.IsPositive() {
			prop.positive = append(prop.positive, c.index)
		} else {
			prop.negative = append(prop.negative, c.index)
		}
	}

	p.clauses = append(p.clauses, c)
	p.trueLiteralCounts = append(p.trueLiteralCounts, 0)
	p.unsatisfied.Expand()
	return nil
}

// ParseClause parses a clause expression and adds it to the problem. The
// expression is a '|'-separated list of literals; a leading '!' negates a
// literal and the remainder is the proposition name. Malformed expressions
// are reported as a *ParseError.
func (p *Problem) ParseClause(expr string) error {
	names, positives, err := parseClause(expr)
	if err != nil {
		return err
	}
	disjuncts := make([]Literal, len(names))
	for i := range names {
		disjuncts[i] = p.Literal(names[i], positives[i])
	}
	return p.AddClause(disjuncts...)
}

// Initialize gives every proposition an independent unbiased random value and
// computes the true-literal counts and the unsatisfied set with one full
// scan. This is the only full scan of the search: all later updates go
// through FlipProposition. Initialize can be called again to restart the
// search from a fresh random assignment.
func (p *Problem) Initialize() {
	p.solution.randomize(p.rng)
	p.unsatisfied.Clear()
	for i, c := range p.clauses {
		p.trueLiteralCounts[i] = p.solution.TrueLiteralCount(c)
		if p.trueLiteralCounts[i] == 0 {
			p.unsatisfied.Add(i)
		}
	}
	p.initialized = true
}

// FlipProposition inverts the value of the proposition with the given index
// and updates the true-literal counts and the unsatisfied set of every clause
// containing it. This is the only code path that mutates the counts and the
// unsatisfied set after initialization.
func (p *Problem) FlipProposition(prop int) {
	p.solution.Flip(prop)
	p.flipCounts[prop]++
	p.TotalFlips++

	pr := p.props[prop]
	if p.solution.Value(prop) {
		// Positive occurrences gained a true literal, negative ones lost one.
		for _, c := range pr.positive {
			p.incrementCount(c)
		}
		for _, c := range pr.negative {
			p.decrementCount(c)
		}
	} else {
		for _, c := range pr.positive {
			p.decrementCount(c)
		}
		for _, c := range pr.negative {
			p.incrementCount(c)
		}
	}
}

func (p *Problem) incrementCount(c int) {
	p.trueLiteralCounts[c]++
	if p.trueLiteralCounts[c] == 1 {
		p.unsatisfied.Remove(c)
	}
}

func (p *Problem) decrementCount(c int) {
	p.trueLiteralCounts[c]--
	if p.trueLiteralCounts[c] == 0 {
		p.unsatisfied.Add(c)
	}
}

// SatisfiedClauseDelta returns the net change in the number of satisfied
// clauses that would result from flipping the given proposition, without
// performing the flip. A clause becomes newly unsatisfied if its only true
// literal is the one being flipped away (count == 1), and newly satisfied if
// it currently has none (count == 0) and gains one. The result is computed
// from the current counts in time proportional to the proposition's number of
// occurrences; the flip is never simulated.
func (p *Problem) SatisfiedClauseDelta(prop int) int {
	pr := p.props[prop]
	delta := 0
	if p.solution.Value(prop) {
		// Flipping true -> false: positive occurrences can lose their only
		// true literal, negative occurrences can gain their first.
		for _, c := range pr.positive {
			if p.trueLiteralCounts[c] == 1 {
				delta--
			}
		}
		for _, c := range pr.negative {
			if p.trueLiteralCounts[c] == 0 {
				delta++
			}
		}
	} else {
		for _, c := range pr.positive {
			if p.trueLiteralCounts[c] == 0 {
				delta++
			}
		}
		for _, c := range pr.negative {
			if p.trueLiteralCounts[c] == 1 {
				delta--
			}
		}
	}
	return delta
}

// StepOne performs one search iteration: it picks an unsatisfied clause
// uniformly at random and flips one of its propositions. With probability
// noiseLevel/100 the flipped literal is chosen uniformly at random from the
// clause (random-walk step); otherwise the literal whose flip maximizes the
// number of satisfied clauses is chosen, ties broken by the first literal in
// clause order attaining the maximum (greedy step). StepOne returns true if
// and only if the problem is solved after the flip. Calling StepOne on an
// already-solved problem is a no-op returning true.
func (p *Problem) StepOne() bool {
	if !p.initialized {
		p.Initialize()
	}
	if p.unsatisfied.Empty() {
		return true
	}

	c := p.clauses[p.unsatisfied.Random(p.rng)]

	var flip Literal
	if p.rng.Percent(p.noiseLevel) {
		p.TotalWalks++
		flip = c.disjuncts[p.rng.Intn(len(c.disjuncts))]
	} else {
		p.TotalGreedy++
		flip = c.disjuncts[0]
		bestDelta := p.SatisfiedClauseDelta(flip.PropIndex())
		for _, l := range c.disjuncts[1:] {
			if delta := p.SatisfiedClauseDelta(l.PropIndex()); delta > bestDelta {
				flip = l
				bestDelta = delta
			}
		}
	}

	p.FlipProposition(flip.PropIndex())
	return p.unsatisfied.Empty()
}

// Solve runs the search until a satisfying assignment is found or a stop
// condition is reached. Each try restarts from a fresh random assignment and
// performs at most MaxFlips flips.
func (p *Problem) Solve() Status {
	p.startTime = time.Now()

	p.printSeparator()
	p.printSearchHeader()
	p.printSeparator()

	status := Unknown
	for status == Unknown {
		if p.maxTries >= 0 && p.TotalTries >= p.maxTries {
			break
		}
		p.Initialize()
		p.TotalTries++
		status = p.search()

		if p.shouldStop() {
			break
		}
	}

	p.printSearchStats()
	p.printSeparator()

	return status
}

// search performs one try: up to maxFlips steps from the current assignment.
func (p *Problem) search() Status {
	for flips := int64(0); p.maxFlips < 0 || flips < p.maxFlips; flips++ {
		if p.IsSolved() {
			return Satisfied
		}
		if p.shouldStop() {
			return Unknown
		}
		if p.TotalFlips%10000 == 0 {
			p.printSearchStats()
		}
		p.StepOne()
	}
	if p.IsSolved() {
		return Satisfied
	}
	return Unknown
}

// IsSolved returns true if and only if every clause is satisfied under the
// current assignment.
func (p *Problem) IsSolved() bool {
	return p.initialized && p.unsatisfied.Empty()
}

// SetNoiseLevel sets the probability, in percent, of taking a random-walk
// step. The noise level is read before each step, so callers may change it
// between steps to anneal the greedy/random-walk mix.
func (p *Problem) SetNoiseLevel(n int) error {
	if n < 0 || n > 100 {
		return fmt.Errorf("noise level must be in [0, 100], got %d", n)
	}
	p.noiseLevel = n
	return nil
}

// NoiseLevel returns the current noise level in percent.
func (p *Problem) NoiseLevel() int {
	return p.noiseLevel
}

func (p *Problem) NumPropositions() int {
	return len(p.props)
}

func (p *Problem) NumClauses() int {
	return len(p.clauses)
}

// Propositions returns the problem's propositions in registry order.
func (p *Problem) Propositions() []*Proposition {
	return append([]*Proposition(nil), p.props...)
}

// Clauses returns the problem's clauses in construction order.
func (p *Problem) Clauses() []*Clause {
	return append([]*Clause(nil), p.clauses...)
}

// UnsatisfiedClauses returns the clauses that are unsatisfied under the
// current assignment.
func (p *Problem) UnsatisfiedClauses() []*Clause {
	clauses := make([]*Clause, 0, p.unsatisfied.Size())
	for _, c := range p.unsatisfied.elems {
		clauses = append(clauses, p.clauses[c])
	}
	return clauses
}

// Value returns the current value of the proposition with the given index.
func (p *Problem) Value(prop int) bool {
	return p.solution.Value(prop)
}

// Model returns the current assignment keyed by proposition name.
func (p *Problem) Model() map[string]bool {
	model := make(map[string]bool, len(p.props))
	for _, pr := range p.props {
		model[pr.Name] = p.solution.Value(pr.Index)
	}
	return model
}

// CheckConsistency recomputes every clause's true-literal count from scratch
// and verifies it against the incremental counters, and independently checks
// that the unsatisfied set contains exactly the zero-count clauses. It
// returns an error naming the first offending clause index. This is a
// diagnostic for validating the incremental engine: it scans every literal of
// every clause and must never be called on the search's hot path.
func (p *Problem) CheckConsistency() error {
	for i, c := range p.clauses {
		want := p.solution.TrueLiteralCount(c)
		if got := p.trueLiteralCounts[i]; got != want {
			return fmt.Errorf("clause %d: true-literal count is %d, want %d", i, got, want)
		}
		if got, want := p.unsatisfied.Contains(i), want == 0; got != want {
			return fmt.Errorf("clause %d: unsatisfied-set membership is %t, want %t", i, got, want)
		}
	}
	return nil
}

func (p *Problem) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (p *Problem) printSearchHeader() {
	fmt.Println("c            time          flips          tries    unsatisfied")
}

func (p *Problem) printSearchStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d\n",
		time.Since(p.startTime).Seconds(),
		p.TotalFlips,
		p.TotalTries,
		p.unsatisfied.Size())
}
