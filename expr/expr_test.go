package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henry-nazare/llvm-sra/expr"
)

func TestArithmeticFolding(t *testing.T) {
	cases := []struct {
		name string
		op   func(a, b expr.Expr) (expr.Expr, error)
		a, b expr.Expr
		want expr.Expr
	}{
		{"add ints", expr.Add, expr.OfInt(2), expr.OfInt(3), expr.OfInt(5)},
		{"sub ints", expr.Sub, expr.OfInt(2), expr.OfInt(3), expr.OfInt(-1)},
		{"mul ints", expr.Mul, expr.OfInt(6), expr.OfInt(7), expr.OfInt(42)},
		{"div ints truncates", expr.Div, expr.OfInt(7), expr.OfInt(2), expr.OfInt(3)},
		{"add posinf absorbs", expr.Add, expr.PosInf, expr.OfInt(3), expr.PosInf},
		{"add neginf absorbs", expr.Add, expr.OfInt(3), expr.NegInf, expr.NegInf},
		{"mul by zero literal", expr.Mul, expr.OfInt(0), expr.OfName("x"), expr.OfInt(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.a, tc.b)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s, want %s", got, tc.want)
		})
	}
}

func TestArithmeticUnsupported(t *testing.T) {
	cases := []struct {
		name string
		op   func(a, b expr.Expr) (expr.Expr, error)
		a, b expr.Expr
	}{
		{"posinf minus posinf", expr.Sub, expr.PosInf, expr.PosInf},
		{"posinf plus neginf", expr.Add, expr.PosInf, expr.NegInf},
		{"posinf times sign-unknown name", expr.Mul, expr.PosInf, expr.OfName("x")},
		{"div by zero", expr.Div, expr.OfName("x"), expr.OfInt(0)},
		{"inf div inf", expr.Div, expr.PosInf, expr.NegInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op(tc.a, tc.b)
			assert.ErrorIs(t, err, expr.ErrUnsupported)
		})
	}
}

func TestMinMaxTotalOrder(t *testing.T) {
	assert.True(t, expr.NegInf.Equal(expr.Min(expr.NegInf, expr.OfInt(5))))
	assert.True(t, expr.PosInf.Equal(expr.Max(expr.PosInf, expr.OfInt(5))))
	five, three := expr.OfInt(5), expr.OfInt(3)
	assert.True(t, three.Equal(expr.Min(five, three)))
	assert.True(t, five.Equal(expr.Max(five, three)))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 1, expr.OfInt(1).Size())
	assert.Equal(t, 1, expr.OfName("x").Size())

	sum, err := expr.Add(expr.OfName("x"), expr.OfName("y"))
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Size())

	chain := expr.OfName("a")
	for i := 0; i < 9; i++ {
		var err error
		chain, err = expr.Add(chain, expr.OfInt(1))
		require.NoError(t, err)
	}
	assert.Greater(t, chain.Size(), 8)
}

func TestConjunction(t *testing.T) {
	x, y := expr.OfName("x"), expr.OfName("y")
	a := expr.And(expr.Lt(x, y), expr.True)
	assert.Len(t, expr.Clauses(a), 1)

	b := expr.And(expr.Lt(x, y), expr.Ge(x, expr.OfInt(0)))
	common := expr.CommonClauses(a, b)
	assert.Len(t, expr.Clauses(common), 1)
	assert.True(t, expr.Clauses(common)[0].Equal(expr.Lt(x, y)))
}

func TestEqualityAndOrdering(t *testing.T) {
	assert.True(t, expr.OfInt(3).Equal(expr.OfInt(3)))
	assert.False(t, expr.OfInt(3).Equal(expr.OfInt(4)))
	assert.False(t, expr.OfInt(3).Equal(expr.OfName("x")))
	assert.True(t, expr.OfInt(3).Less(expr.OfName("x")))
	assert.True(t, expr.NegInf.Less(expr.OfInt(-1000)))
	assert.True(t, expr.OfInt(1000).Less(expr.PosInf))
}
