package sat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/walksat/sat"
)

func TestTopFlipped(t *testing.T) {
	ops := sat.DefaultOptions
	ops.Random = sat.NewRandom(1)
	p := mustProblem(t, ops, "a | b | c")
	p.Initialize()

	flip := func(prop int, times int) {
		for i := 0; i < times; i++ {
			p.FlipProposition(prop)
		}
	}
	flip(0, 4) // a
	flip(2, 7) // c
	flip(1, 1) // b

	top := p.TopFlipped(2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].Proposition.Name)
	assert.Equal(t, int64(7), top[0].Flips)
	assert.Equal(t, "a", top[1].Proposition.Name)
	assert.Equal(t, int64(4), top[1].Flips)

	// Asking for more propositions than exist returns them all.
	assert.Len(t, p.TopFlipped(10), 3)
}
