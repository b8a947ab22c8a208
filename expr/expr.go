// Package expr provides the symbolic expression facade the range solver
// depends on: construction of scalar expressions (integers, named program
// values, and the ±∞ sentinels), comparison sufficient for min/max,
// arithmetic, relational constructors, and a size metric used to clamp
// runaway symbolic growth.
//
// The solver (package sra) never inspects an Expr's internal shape; it only
// calls the functions in this package, which keeps the range lattice
// decoupled from how a scalar value is actually represented.
package expr

import (
	"fmt"
	"math/big"
)

// Expr is an opaque symbolic scalar: a numeric constant, a named program
// value, one of the ±∞ sentinels, the boolean sentinel true, or a compound
// expression built from the constructors below.
type Expr interface {
	fmt.Stringer

	// Equal reports whether two expressions denote the same symbolic value.
	Equal(Expr) bool

	// Less is a total order sufficient for Min/Max. It is not claimed to be
	// a sound numeric comparison across incomparable expression shapes (e.g.
	// a named value against a compound expression) — only deterministic.
	Less(Expr) bool

	// Size is the expression's AST node count (conjunction nodes themselves
	// are not counted, only their clauses), used by the solver to detect
	// runaway symbolic growth and clamp it to Full rather than let it fold
	// indefinitely across loop iterations.
	Size() int
}

type kind int

const (
	kindInt kind = iota
	kindName
	kindPosInf
	kindNegInf
	kindTrue
	kindBottom
	kindBinOp
	kindRel
	kindAnd
)

// node is the single concrete implementation of Expr.
type node struct {
	kind kind
	i    *big.Int // kindInt
	name string   // kindName
	op   Op       // kindBinOp
	rel  Rel      // kindRel
	l, r *node    // kindBinOp, kindRel, kindAnd (l is the left clause, r chains the rest)
}

// Op is an arithmetic operator for compound (symbolic) expressions.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Rel is a relational operator producing a boolean expression.
type Rel int

const (
	RelLt Rel = iota
	RelLe
	RelGt
	RelGe
	RelEq
)

func (r Rel) String() string {
	switch r {
	case RelLt:
		return "<"
	case RelLe:
		return "≤"
	case RelGt:
		return ">"
	case RelGe:
		return "≥"
	case RelEq:
		return "="
	default:
		return "?"
	}
}

// Sentinels. PosInf and NegInf are the ±∞ bounds; True is the identity
// assumption; Bottom is the reserved sentinel distinct from any real value,
// used by package sra to represent an unreachable vertex's range.
var (
	PosInf Expr = &node{kind: kindPosInf}
	NegInf Expr = &node{kind: kindNegInf}
	True   Expr = &node{kind: kindTrue}
	Bottom Expr = &node{kind: kindBottom}
)

// Zero and One are convenience constants used throughout the narrowing and
// binop transfer functions.
var (
	Zero = OfInt(0)
	One  = OfInt(1)
)

// OfInt constructs an expression denoting the integer n.
func OfInt(n int64) Expr {
	return &node{kind: kindInt, i: big.NewInt(n)}
}

// OfBigInt constructs an expression denoting an arbitrary-precision integer.
func OfBigInt(n *big.Int) Expr {
	return &node{kind: kindInt, i: new(big.Int).Set(n)}
}

// OfName constructs an expression denoting the named program value.
func OfName(name string) Expr {
	return &node{kind: kindName, name: name}
}

func asNode(e Expr) *node {
	n, ok := e.(*node)
	if !ok {
		panic(fmt.Sprintf("expr: foreign Expr implementation %T", e))
	}
	return n
}

func (n *node) String() string {
	switch n.kind {
	case kindInt:
		return n.i.String()
	case kindName:
		return n.name
	case kindPosInf:
		return "+∞"
	case kindNegInf:
		return "-∞"
	case kindTrue:
		return "true"
	case kindBottom:
		return "⊥"
	case kindBinOp:
		return fmt.Sprintf("(%s %s %s)", n.l, n.op, n.r)
	case kindRel:
		return fmt.Sprintf("%s %s %s", n.l, n.rel, n.r)
	case kindAnd:
		if n.r == nil {
			return n.l.String()
		}
		return fmt.Sprintf("%s ∧ %s", n.l, n.r)
	default:
		return "?"
	}
}

func (n *node) Equal(other Expr) bool {
	o := asNode(other)
	if n == o {
		return true
	}
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case kindInt:
		return n.i.Cmp(o.i) == 0
	case kindName:
		return n.name == o.name
	case kindPosInf, kindNegInf, kindTrue, kindBottom:
		return true
	case kindBinOp:
		return n.op == o.op && n.l.Equal(o.l) && n.r.Equal(o.r)
	case kindRel:
		return n.rel == o.rel && n.l.Equal(o.l) && n.r.Equal(o.r)
	case kindAnd:
		return clausesEqual(n, o)
	default:
		return false
	}
}

func clausesEqual(a, b *node) bool {
	ac, bc := Clauses(a), Clauses(b)
	if len(ac) != len(bc) {
		return false
	}
	used := make([]bool, len(bc))
	for _, ce := range ac {
		found := false
		for i, be := range bc {
			if !used[i] && ce.Equal(be) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// rank orders kinds for the deterministic total order: -∞ first, then
// integers, then named values, then compound expressions, then +∞.
func (k kind) rank() int {
	switch k {
	case kindNegInf:
		return 0
	case kindInt:
		return 1
	case kindName:
		return 2
	case kindBinOp, kindRel, kindAnd, kindTrue, kindBottom:
		return 3
	case kindPosInf:
		return 4
	default:
		return 5
	}
}

func (n *node) Less(other Expr) bool {
	o := asNode(other)
	if n.kind.rank() != o.kind.rank() {
		return n.kind.rank() < o.kind.rank()
	}
	switch n.kind {
	case kindInt:
		return n.i.Cmp(o.i) < 0
	case kindName:
		return n.name < o.name
	default:
		// Incomparable compound shapes: fall back to a deterministic,
		// if not numerically meaningful, string order.
		return n.String() < o.String()
	}
}

func (n *node) Size() int {
	switch n.kind {
	case kindBinOp, kindRel:
		return 1 + n.l.Size() + n.r.Size()
	case kindAnd:
		if n.r == nil {
			return n.l.Size()
		}
		return n.l.Size() + n.r.Size()
	default:
		return 1
	}
}

// Min returns the lesser of a and b under Less.
func Min(a, b Expr) Expr {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the greater of a and b under Less.
func Max(a, b Expr) Expr {
	if b.Less(a) {
		return a
	}
	return b
}

// Int reports whether e is a concrete integer literal, returning its value.
func Int(e Expr) (*big.Int, bool) {
	n := asNode(e)
	if n.kind == kindInt {
		return n.i, true
	}
	return nil, false
}

// IsPosInf and IsNegInf test for the infinite sentinels.
func IsPosInf(e Expr) bool { return asNode(e).kind == kindPosInf }
func IsNegInf(e Expr) bool { return asNode(e).kind == kindNegInf }
func IsBottom(e Expr) bool { return asNode(e).kind == kindBottom }
