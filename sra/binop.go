package sra

import "github.com/henry-nazare/llvm-sra/expr"

// binopRange lifts a scalar arithmetic operator pointwise over two ranges.
// mul and div need the classic four-corner treatment since, unlike
// add/sub, their monotonicity depends on the operands' signs; div
// additionally widens fully whenever the divisor's range may contain zero.
func binopRange(op BinOp, l, r Range) Range {
	if l.IsBottom() || r.IsBottom() {
		return Bottom
	}
	switch op {
	case OpAdd:
		return addRange(l, r)
	case OpSub:
		return subRange(l, r)
	case OpMul:
		return cornersRange(expr.Mul, l, r)
	case OpDiv:
		return divRange(l, r)
	default:
		panic("sra: unhandled binop")
	}
}

func addRange(l, r Range) Range {
	lo, err1 := expr.Add(l.Lower, r.Lower)
	hi, err2 := expr.Add(l.Upper, r.Upper)
	if err1 != nil || err2 != nil {
		return Full
	}
	return Range{Lower: lo, Upper: hi}
}

func subRange(l, r Range) Range {
	lo, err1 := expr.Sub(l.Lower, r.Upper)
	hi, err2 := expr.Sub(l.Upper, r.Lower)
	if err1 != nil || err2 != nil {
		return Full
	}
	return Range{Lower: lo, Upper: hi}
}

// cornersRange evaluates op at all four (lower/upper) combinations of l and
// r and takes the resulting min/max — sound for any monotone-per-orthant
// operator such as multiplication. Any unsound corner (e.g. ∞ times a
// symbolic value of unknown sign) saturates the whole result to Full rather than just the affected corner.
func cornersRange(op func(a, b expr.Expr) (expr.Expr, error), l, r Range) Range {
	corners := [4][2]expr.Expr{
		{l.Lower, r.Lower}, {l.Lower, r.Upper},
		{l.Upper, r.Lower}, {l.Upper, r.Upper},
	}
	var lo, hi expr.Expr
	for i, c := range corners {
		v, err := op(c[0], c[1])
		if err != nil {
			return Full
		}
		if i == 0 {
			lo, hi = v, v
			continue
		}
		lo = expr.Min(lo, v)
		hi = expr.Max(hi, v)
	}
	return Range{Lower: lo, Upper: hi}
}

// divRange widens the entire result to Full when the divisor's range may
// contain zero (division blows up arbitrarily close to it); otherwise it
// uses the same four-corner treatment as multiplication.
func divRange(l, r Range) Range {
	if mayContainZero(r) {
		return Full
	}
	return cornersRange(expr.Div, l, r)
}

func mayContainZero(r Range) bool {
	if n, ok := expr.Int(r.Upper); ok && n.Sign() < 0 {
		return false
	}
	if n, ok := expr.Int(r.Lower); ok && n.Sign() > 0 {
		return false
	}
	return true
}
