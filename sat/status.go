package sat

// Status represents the outcome of a search. Local search is incomplete: it
// can find a satisfying assignment but can never prove that none exists, so
// there is no "unsatisfiable" status.
type Status int8

const (
	Unknown   Status = 0
	Satisfied Status = 1
)

func (s Status) String() string {
	switch s {
	case Satisfied:
		return "satisfied"
	default:
		return "unknown"
	}
}
