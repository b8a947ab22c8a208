package sra

import (
	"testing"

	"github.com/henry-nazare/llvm-sra/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSizeClampTrips builds a chain of ten additions on a named (non-folding)
// expression, exceeding the size clamp before the tenth, and checks that
// setState coerces the result to Full rather than keeping the oversized
// expression.
//
// A chain of Const/Binop vertices with literal operands always folds to a
// size-1 big.Int via expr's integer folding (see TestSize in the expr
// package), so it can never itself trip this clamp — the clamp exists for
// symbolic (name-referencing) growth, which setState guards against
// regardless of how the oversized bound was produced.
func TestSizeClampTrips(t *testing.T) {
	chain := expr.OfName("n")
	for i := 0; i < 10; i++ {
		chain = expr.Inc(chain)
	}
	require.Greater(t, chain.Size(), 8)

	g := NewGraph()
	v := &vertex{name: "v", kind: kindConst, value: expr.OfName("v"), state: Bottom}
	g.setState(v, Range{Lower: chain, Upper: chain})

	assert.True(t, v.state.Equal(Full), "oversized bound must be clamped to Full")
}

// TestWithSizeClampOverride checks that a lower WithSizeClamp value trips on
// a bound that the default clamp would have let through.
func TestWithSizeClampOverride(t *testing.T) {
	chain := expr.OfName("n")
	for i := 0; i < 3; i++ {
		chain = expr.Inc(chain)
	}
	size := chain.Size()
	require.Less(t, size, 8, "bound must fit under the default clamp")

	g := NewGraph(WithSizeClamp(size - 1))
	v := &vertex{name: "v", kind: kindConst, value: expr.OfName("v"), state: Bottom}
	g.setState(v, Range{Lower: chain, Upper: chain})

	assert.True(t, v.state.Equal(Full), "bound under the default clamp must still trip a tighter override")
}

// TestPhiArityClamp checks that a Phi past the configured fan-in limit
// collapses to Full rather than folding every predecessor.
func TestPhiArityClamp(t *testing.T) {
	g := NewGraph(WithMaxPhiArity(2))

	c0, err := g.Const("c0", 0)
	require.NoError(t, err)
	c1, err := g.Const("c1", 1)
	require.NoError(t, err)
	c2, err := g.Const("c2", 2)
	require.NoError(t, err)

	p, err := g.Phi("p")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(c0, p))
	require.NoError(t, g.AddEdge(c1, p))
	require.NoError(t, g.AddEdge(c2, p))

	require.NoError(t, g.Solve())
	assert.True(t, g.State(p).Equal(Full), "phi past maxPhiArity must collapse to Full")
}

// TestWideningJumpsToInfinityOnAnyChange checks that widen jumps a bound to
// the corresponding infinity as soon as it moves at all between warm-up
// iterations, not only when it grows in the "expected" direction.
func TestWideningJumpsToInfinityOnAnyChange(t *testing.T) {
	old := r(0, 10)
	moved := r(0, 3) // upper bound moved down, not up
	got := widen(old, moved)
	assert.True(t, expr.IsPosInf(got.Upper), "any observed change widens to infinity, regardless of direction")
	assert.Equal(t, "0", got.Lower.String())
}

// TestSolveIsIdempotent checks that re-running each vertex's last-phase
// evaluation (eval_it, or eval_narrow for the Sigma) after Solve has reached
// a fixed point changes no vertex's state.
func TestSolveIsIdempotent(t *testing.T) {
	g := NewGraph()

	i0, err := g.Const("i0", 0)
	require.NoError(t, err)
	cap_, err := g.Const("cap", 10)
	require.NoError(t, err)
	one, err := g.Const("one", 1)
	require.NoError(t, err)

	p, err := g.Phi("p")
	require.NoError(t, err)
	s, err := g.Sigma("s", Lt)
	require.NoError(t, err)
	inc, err := g.Binop("inc", OpAdd)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(i0, p))
	require.NoError(t, g.AddEdge(s, p))
	require.NoError(t, g.AddEdge(p, s))
	require.NoError(t, g.AddEdge(cap_, s))
	require.NoError(t, g.AddEdge(s, inc))
	require.NoError(t, g.AddEdge(one, inc))
	require.NoError(t, g.AddEdge(inc, p))

	require.NoError(t, g.Solve())

	before := map[VertexId]Range{p: g.State(p), s: g.State(s), inc: g.State(inc)}

	g.evalIt(g.vertexAt(p))
	g.evalNarrow(g.vertexAt(s))
	g.evalIt(g.vertexAt(inc))

	assert.True(t, g.State(p).Equal(before[p]), "p must be stable at the fixed point")
	assert.True(t, g.State(s).Equal(before[s]), "s must be stable at the fixed point")
	assert.True(t, g.State(inc).Equal(before[inc]), "inc must be stable at the fixed point")
}

func TestSolveRejectsEditsAfterFreeze(t *testing.T) {
	g := NewGraph()
	c0, err := g.Const("c0", 0)
	require.NoError(t, err)
	require.NoError(t, g.Solve())

	_, err = g.Const("c1", 1)
	assert.ErrorIs(t, err, ErrFrozen)

	c1 := VertexId(99)
	assert.ErrorIs(t, g.AddEdge(c0, c1), ErrFrozen)
}
