package sra_test

import (
	"strings"
	"testing"

	"github.com/henry-nazare/llvm-sra/sra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceWritesOneLinePerVertexInIdOrder(t *testing.T) {
	g := sra.NewGraph()

	x, err := g.Inf("x")
	require.NoError(t, err)
	lo, err := g.Const("lo", 5)
	require.NoError(t, err)
	s, err := g.Sigma("s", sra.Ge)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(x, s))
	require.NoError(t, g.AddEdge(lo, s))
	require.NoError(t, g.Solve())

	var buf strings.Builder
	g.Trace(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "inf")
	assert.Contains(t, lines[0], "x")
	assert.Contains(t, lines[1], "const")
	assert.Contains(t, lines[1], "lo")
	assert.Contains(t, lines[2], "sigma")
	assert.Contains(t, lines[2], "s")
	assert.Contains(t, lines[2], "≥ lo")
	assert.Contains(t, lines[2], "[5, +∞]")
}

func TestTraceOmitsAssumptionsWhenDisabled(t *testing.T) {
	g := sra.NewGraph(sra.WithAssumptions(false))
	_, err := g.Const("c", 1)
	require.NoError(t, err)
	require.NoError(t, g.Solve())

	var buf strings.Builder
	g.Trace(&buf)
	assert.NotContains(t, buf.String(), "|")
}
