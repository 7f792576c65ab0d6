package sat

// clauseSet represents a set of clause indices from 0 to N-1 where N is the
// capacity of the set. It supports constant-time add, remove, and membership
// tests, and constant-time uniform random selection: the elements are kept in
// a dense slice, with a position index mapping each clause back to its slot.
type clauseSet struct {
	elems []int
	pos   []int // pos[c] is c's slot in elems, or -1 if c is not in the set
}

func newClauseSet(capacity int) *clauseSet {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &clauseSet{pos: pos}
}

// Contains returns true if clause index c is in the set.
func (cs *clauseSet) Contains(c int) bool {
	return cs.pos[c] >= 0
}

// Add adds clause index c to the set. Adding an element already in the set is
// a no-op.
func (cs *clauseSet) Add(c int) {
	if cs.pos[c] >= 0 {
		return
	}
	cs.pos[c] = len(cs.elems)
	cs.elems = append(cs.elems, c)
}

// Remove removes clause index c from the set by swapping it with the last
// element. Removing an element not in the set is a no-op.
func (cs *clauseSet) Remove(c int) {
	p := cs.pos[c]
	if p < 0 {
		return
	}
	last := cs.elems[len(cs.elems)-1]
	cs.elems[p] = last
	cs.pos[last] = p
	cs.elems = cs.elems[:len(cs.elems)-1]
	cs.pos[c] = -1
}

// Size returns the number of elements in the set.
func (cs *clauseSet) Size() int {
	return len(cs.elems)
}

// Empty returns true if the set contains no element.
func (cs *clauseSet) Empty() bool {
	return len(cs.elems) == 0
}

// Random returns an element chosen uniformly at random. The set must not be
// empty.
func (cs *clauseSet) Random(rng Random) int {
	return cs.elems[rng.Intn(len(cs.elems))]
}

// Clear removes all the elements from the set.
func (cs *clauseSet) Clear() {
	for _, c := range cs.elems {
		cs.pos[c] = -1
	}
	cs.elems = cs.elems[:0]
}

// Expand increases the capacity of the set.
func (cs *clauseSet) Expand() {
	cs.pos = append(cs.pos, -1)
}
