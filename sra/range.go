package sra

import "github.com/henry-nazare/llvm-sra/expr"

// Range is a pair of symbolic bounds. The distinguished value Bottom
// represents an unreachable (not-yet-computed) vertex; outside Bottom, the
// invariant Lower ≤ Upper holds whenever both sides are concretely
// comparable.
type Range struct {
	Lower, Upper expr.Expr
}

// Bottom is the distinguished (⊥, ⊥) range.
var Bottom = Range{Lower: expr.Bottom, Upper: expr.Bottom}

// Full is the unconstrained [-∞, +∞] range every runaway or unsound
// arithmetic condition saturates to.
var Full = Range{Lower: expr.NegInf, Upper: expr.PosInf}

// IsBottom reports whether r is the bottom range.
func (r Range) IsBottom() bool {
	return expr.IsBottom(r.Lower)
}

func (r Range) Equal(o Range) bool {
	return r.Lower.Equal(o.Lower) && r.Upper.Equal(o.Upper)
}

func (r Range) String() string {
	if r.IsBottom() {
		return "[⊥, ⊥]"
	}
	return "[" + r.Lower.String() + ", " + r.Upper.String() + "]"
}

// meet is the interval lattice's least upper bound: the widest range
// containing both operands. meet(x, Bottom) = x; meet is commutative,
// associative, and idempotent.
func meet(a, b Range) Range {
	if a.IsBottom() {
		return b
	}
	if b.IsBottom() {
		return a
	}
	return Range{
		Lower: expr.Min(a.Lower, b.Lower),
		Upper: expr.Max(a.Upper, b.Upper),
	}
}

// Predicate is a sigma node's branch comparison.
type Predicate int

const (
	Lt Predicate = iota
	Le
	Gt
	Ge
)

func (p Predicate) String() string {
	switch p {
	case Lt:
		return "<"
	case Le:
		return "≤"
	case Gt:
		return ">"
	case Ge:
		return "≥"
	default:
		return "?"
	}
}

func (p Predicate) relate(a, b expr.Expr) expr.Expr {
	switch p {
	case Lt:
		return expr.Lt(a, b)
	case Le:
		return expr.Le(a, b)
	case Gt:
		return expr.Gt(a, b)
	case Ge:
		return expr.Ge(a, b)
	default:
		panic("sra: unhandled predicate")
	}
}

// narrowOn tightens lhs using the branch fact "x `op` rhs" recorded by a
// sigma node. Both meet and narrowOn are pure: they never mutate their
// arguments.
func narrowOn(op Predicate, lhs, rhs Range) Range {
	switch op {
	case Lt:
		return Range{Lower: lhs.Lower, Upper: expr.Min(lhs.Upper, expr.Dec(rhs.Upper))}
	case Le:
		return Range{Lower: lhs.Lower, Upper: expr.Min(lhs.Upper, rhs.Upper)}
	case Gt:
		return Range{Lower: expr.Max(lhs.Lower, expr.Inc(rhs.Lower)), Upper: lhs.Upper}
	case Ge:
		return Range{Lower: expr.Max(lhs.Lower, rhs.Lower), Upper: lhs.Upper}
	default:
		panic("sra: unhandled predicate")
	}
}
