package expr

import "math/big"

// binOp builds (or folds) a compound expression for the four arithmetic
// operators. Concrete integer operands are folded immediately; anything
// involving a name or another compound expression is left symbolic.
func binOp(op Op, a, b Expr) (Expr, error) {
	an, bn := asNode(a), asNode(b)

	if res, err, ok := foldInfinite(op, an, bn); ok {
		return res, err
	}

	if an.kind == kindInt && bn.kind == kindInt {
		return foldInt(op, an.i, bn.i)
	}

	// 0 × x = 0 and x × 0 = 0 are sound regardless of what x denotes.
	if op == OpMul {
		if an.kind == kindInt && an.i.Sign() == 0 {
			return Zero, nil
		}
		if bn.kind == kindInt && bn.i.Sign() == 0 {
			return Zero, nil
		}
	}

	// x ÷ 0 has no sound interpretation even when x is symbolic.
	if op == OpDiv && bn.kind == kindInt && bn.i.Sign() == 0 {
		return nil, unsupported()
	}

	return &node{kind: kindBinOp, op: op, l: an, r: bn}, nil
}

// foldInfinite handles any combination involving at least one ±∞ operand.
// ok is false when neither operand is infinite, meaning the caller should
// fall through to integer folding or symbolic construction.
func foldInfinite(op Op, a, b *node) (Expr, error, bool) {
	aInf := a.kind == kindPosInf || a.kind == kindNegInf
	bInf := b.kind == kindPosInf || b.kind == kindNegInf
	if !aInf && !bInf {
		return nil, nil, false
	}

	switch op {
	case OpAdd:
		if aInf && bInf {
			if a.kind == b.kind {
				return a, nil, true
			}
			return nil, unsupported(), true
		}
		if aInf {
			return a, nil, true
		}
		return b, nil, true

	case OpSub:
		if aInf && bInf {
			// (+∞) − (+∞) and (−∞) − (−∞) are unsound; (+∞) − (−∞) = +∞ and
			// (−∞) − (+∞) = −∞ are fine.
			if a.kind == b.kind {
				return nil, unsupported(), true
			}
			return a, nil, true
		}
		if aInf {
			return a, nil, true
		}
		// finite − ∞ flips the sign of b.
		if b.kind == kindPosInf {
			return NegInf, nil, true
		}
		return PosInf, nil, true

	case OpMul:
		if aInf && bInf {
			return signedInf(a.kind != b.kind), nil, true
		}
		// inf × symbolic non-literal: sign unknown, unsound.
		k, lit, ok := literalSign(a, b, aInf)
		if !ok {
			return nil, unsupported(), true
		}
		if lit != nil && lit.Sign() == 0 {
			return Zero, nil, true
		}
		negative := (k == kindNegInf) != (lit != nil && lit.Sign() < 0)
		return signedInf(negative), nil, true

	case OpDiv:
		if aInf && bInf {
			return nil, unsupported(), true
		}
		if bInf {
			// finite / ∞ = 0
			return Zero, nil, true
		}
		// ∞ / finite: sign unknown unless the divisor is a concrete literal.
		if b.kind != kindInt {
			return nil, unsupported(), true
		}
		if b.i.Sign() == 0 {
			return nil, unsupported(), true
		}
		negative := (a.kind == kindNegInf) != (b.i.Sign() < 0)
		return signedInf(negative), nil, true
	}
	return nil, unsupported(), true
}

// literalSign determines which operand is infinite and whether the other is
// a concrete integer literal we can read a sign from.
func literalSign(a, b *node, aInf bool) (kind, *big.Int, bool) {
	inf, other := a, b
	if !aInf {
		inf, other = b, a
	}
	if other.kind != kindInt {
		return 0, nil, false
	}
	return inf.kind, other.i, true
}

func signedInf(negative bool) Expr {
	if negative {
		return NegInf
	}
	return PosInf
}

func foldInt(op Op, a, b *big.Int) (Expr, error) {
	switch op {
	case OpAdd:
		return OfBigInt(new(big.Int).Add(a, b)), nil
	case OpSub:
		return OfBigInt(new(big.Int).Sub(a, b)), nil
	case OpMul:
		return OfBigInt(new(big.Int).Mul(a, b)), nil
	case OpDiv:
		if b.Sign() == 0 {
			return nil, unsupported()
		}
		return OfBigInt(new(big.Int).Quo(a, b)), nil
	default:
		return nil, unsupported()
	}
}

// Add, Sub, Mul, Div implement the four integer-semantics arithmetic
// operators of the expression facade.
func Add(a, b Expr) (Expr, error) { return binOp(OpAdd, a, b) }
func Sub(a, b Expr) (Expr, error) { return binOp(OpSub, a, b) }
func Mul(a, b Expr) (Expr, error) { return binOp(OpMul, a, b) }
func Div(a, b Expr) (Expr, error) { return binOp(OpDiv, a, b) }

// Inc and Dec are the +1/-1 shorthands the narrowing operator uses; they
// saturate rather than fail since ±∞ ± 1 is always sound (±∞ ± 1 = ±∞).
func Inc(e Expr) Expr {
	r, err := Add(e, One)
	if err != nil {
		return PosInf
	}
	return r
}

func Dec(e Expr) Expr {
	r, err := Sub(e, One)
	if err != nil {
		return NegInf
	}
	return r
}
