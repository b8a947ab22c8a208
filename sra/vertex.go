package sra

import "github.com/henry-nazare/llvm-sra/expr"

// clampSize installs [-∞, +∞] if either bound's symbolic complexity exceeds
// the graph's size clamp. Left unchecked, repeated folding of named,
// non-literal operands can grow a bound's expression tree without limit;
// clamping it to Full is always a sound (if imprecise) approximation, so
// this is absorbed silently rather than surfaced as an error.
func (g *Graph) clampSize(r Range) Range {
	if r.IsBottom() {
		return r
	}
	if r.Lower.Size() > g.sizeClamp || r.Upper.Size() > g.sizeClamp {
		return Full
	}
	return r
}

// setState installs new as v's state, recording which bound moved and
// applying the size clamp. This is the one place a vertex's state changes.
func (g *Graph) setState(v *vertex, new Range) {
	new = g.clampSize(new)
	if v.state.IsBottom() || new.IsBottom() {
		v.changedLower = !v.state.IsBottom() || !new.IsBottom()
		v.changedUpper = v.changedLower
	} else {
		v.changedLower = !v.state.Lower.Equal(new.Lower)
		v.changedUpper = !v.state.Upper.Equal(new.Upper)
	}
	v.state = new
}

func (g *Graph) predState(v *vertex, i int) Range {
	return g.vertexAt(v.preds[i]).state
}

func (g *Graph) predAssumption(v *vertex, i int) expr.Expr {
	return g.Assumption(v.preds[i])
}

// transfer computes a vertex's state from its predecessors' current states.
func (g *Graph) transfer(v *vertex) Range {
	switch v.kind {
	case kindConst:
		return v.state
	case kindPhi:
		return g.phiTransfer(v)
	case kindSigma:
		// Identity on the incoming value during iteration; the bound is only
		// consulted by narrow.
		return g.predState(v, 0)
	case kindBinop:
		l, r := g.predState(v, 0), g.predState(v, 1)
		return binopRange(v.binop, l, r)
	default:
		panic("sra: unhandled vertex kind")
	}
}

// phiTransfer folds meet over non-bottom predecessor states, short-circuits
// to Full past the fan-in clamp, and records whether this Phi is dominated
// by a single non-bottom predecessor at its first evaluation — a loop's
// phi usually starts out with exactly one reaching definition (the
// preheader value) until the back edge's predecessor becomes reachable,
// and that initial value is what the monotonicity clause below pins to.
func (g *Graph) phiTransfer(v *vertex) Range {
	if len(v.preds) > g.maxPhiArity {
		return Full
	}

	result := Bottom
	nonBottom := 0
	var only VertexId
	for _, p := range v.preds {
		s := g.vertexAt(p).state
		if s.IsBottom() {
			continue
		}
		nonBottom++
		only = p
		result = meet(result, s)
	}

	if !v.firstEvalDone {
		v.firstEvalDone = true
		if nonBottom == 1 {
			v.hasSingleInitial = true
			v.singleInitial = only
		}
	}

	return result
}

// opAsmp computes a vertex's assumption expression from its predecessors:
// the conjunction of facts that must hold for the vertex's computed range
// to be valid. A Sigma's narrowing step uses opAsmpNarrow, which extends
// this result with the branch predicate.
func (g *Graph) opAsmp(v *vertex) expr.Expr {
	if !g.trackAssumptions {
		return expr.True
	}
	switch v.kind {
	case kindConst:
		return expr.True
	case kindPhi:
		return g.phiAsmp(v)
	case kindSigma:
		incoming, bound := g.predAssumption(v, 0), g.predAssumption(v, 1)
		incomingExpr := g.vertexAt(v.preds[0]).value
		return expr.And(expr.Eq(v.value, incomingExpr), incoming, bound)
	case kindBinop:
		l, r := g.vertexAt(v.preds[0]), g.vertexAt(v.preds[1])
		combined, err := applyBinOp(v.binop, l.value, r.value)
		if err != nil {
			combined = v.value
		}
		return expr.And(expr.Eq(v.value, combined), g.predAssumption(v, 0), g.predAssumption(v, 1))
	default:
		panic("sra: unhandled vertex kind")
	}
}

// opAsmpNarrow is opAsmp for a Sigma vertex during the narrowing pass: it
// additionally asserts the branch predicate itself, since a sigma node
// exists precisely to record that its value satisfied that predicate on
// the path reaching it.
func (g *Graph) opAsmpNarrow(v *vertex) expr.Expr {
	if !g.trackAssumptions {
		return expr.True
	}
	base := g.opAsmp(v)
	bound := g.vertexAt(v.preds[1])
	return expr.And(base, v.predicate.relate(v.value, bound.value))
}

// phiAsmp intersects the clause sets of non-bottom predecessors, then (once
// the Phi is known to have a single dominating initial value) appends the
// monotonicity clause for whichever bound widening left stable: if a loop
// variable's lower bound never moved once the back edge became reachable,
// that bound held for the initial value too, and is worth keeping even
// after widening erases the precise range.
func (g *Graph) phiAsmp(v *vertex) expr.Expr {
	var assumptions []expr.Expr
	for _, p := range v.preds {
		pv := g.vertexAt(p)
		if pv.state.IsBottom() {
			continue
		}
		assumptions = append(assumptions, g.Assumption(p))
	}
	common := expr.CommonClauses(assumptions...)

	if !v.hasSingleInitial {
		return common
	}

	initial := g.vertexAt(v.singleInitial)
	extra := []expr.Expr{common}
	if !v.changedLower {
		extra = append(extra, expr.Ge(v.value, initial.value))
	}
	if !v.changedUpper {
		extra = append(extra, expr.Le(v.value, initial.value))
	}
	return expr.And(extra...)
}

// widen is the jump-to-infinity widening operator: applied once per vertex
// per SCC after the warm-up iterations, it forces convergence by snapping
// any bound that moved at all — in either direction — to the corresponding
// infinity, rather than risk iterating forever on a growing interval.
func widen(old, new Range) Range {
	if old.IsBottom() {
		return new
	}
	if new.IsBottom() {
		return old
	}

	lower := new.Lower
	if !expr.IsNegInf(new.Lower) && !new.Lower.Equal(old.Lower) {
		lower = expr.NegInf
	}
	upper := new.Upper
	if !expr.IsPosInf(new.Upper) && !new.Upper.Equal(old.Upper) {
		upper = expr.PosInf
	}
	return Range{Lower: lower, Upper: upper}
}

// opNarrow computes a Sigma's tightened state against its bound; called
// only for Sigma vertices — every other vertex kind just runs another
// round of transfer during the narrowing pass.
func (g *Graph) opNarrow(v *vertex) Range {
	incoming := g.predState(v, 0)
	bound := g.predState(v, 1)
	if incoming.IsBottom() {
		return incoming
	}
	return narrowOn(v.predicate, incoming, bound)
}

// evalIt is `state ← op(predecessor states); asmp ← op_asmp(predecessors)`.
func (g *Graph) evalIt(v *vertex) {
	g.setState(v, g.transfer(v))
	v.assumption = g.opAsmp(v)
}

// evalItAndWiden is `state ← widen(op(predecessor states)); asmp ←
// op_asmp(...)`.
func (g *Graph) evalItAndWiden(v *vertex) {
	fresh := g.transfer(v)
	g.setState(v, widen(v.state, fresh))
	v.assumption = g.opAsmp(v)
}

// evalNarrow is `state ← op_narrow(predecessor states); asmp ←
// op_asmp_narrow(...)`. Only meaningful for Sigma vertices.
func (g *Graph) evalNarrow(v *vertex) {
	g.setState(v, g.opNarrow(v))
	v.assumption = g.opAsmpNarrow(v)
}

func applyBinOp(op BinOp, a, b expr.Expr) (expr.Expr, error) {
	switch op {
	case OpAdd:
		return expr.Add(a, b)
	case OpSub:
		return expr.Sub(a, b)
	case OpMul:
		return expr.Mul(a, b)
	case OpDiv:
		return expr.Div(a, b)
	default:
		panic("sra: unhandled binop")
	}
}
