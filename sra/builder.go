package sra

import "github.com/henry-nazare/llvm-sra/expr"

// Const creates a new Const vertex with the given unique name and initial
// literal value n. It has no predecessors; its transfer function is the
// identity on that literal state.
func (g *Graph) Const(name string, n int64) (VertexId, error) {
	v := &vertex{
		name:  name,
		kind:  kindConst,
		value: expr.OfName(name),
		state: Range{Lower: expr.OfInt(n), Upper: expr.OfInt(n)},
	}
	return g.insert(v)
}

// Inf creates a new vertex whose state is always [-∞, +∞] — sugar for an
// unconstrained input such as a function parameter.
func (g *Graph) Inf(name string) (VertexId, error) {
	v := &vertex{
		name:  name,
		kind:  kindConst,
		value: expr.OfName(name),
		state: Full,
		isInf: true,
	}
	return g.insert(v)
}

// Phi creates a new Phi vertex. Its predecessors are the reaching
// definitions; order is irrelevant.
func (g *Graph) Phi(name string) (VertexId, error) {
	v := &vertex{
		name:  name,
		kind:  kindPhi,
		value: expr.OfName(name),
		state: Bottom,
	}
	return g.insert(v)
}

// Sigma creates a new Sigma vertex with the given branch predicate. Its two
// predecessors, added via AddEdge, must be (incoming, bound) in that order.
func (g *Graph) Sigma(name string, pred Predicate) (VertexId, error) {
	if pred < Lt || pred > Ge {
		return noVertex, wrapf(ErrUnknownPredicate, "predicate %d", int(pred))
	}
	v := &vertex{
		name:      name,
		kind:      kindSigma,
		value:     expr.OfName(name),
		state:     Bottom,
		predicate: pred,
	}
	return g.insert(v)
}

// Binop creates a new Binop vertex with the given arithmetic operator. Its
// two predecessors, added via AddEdge, must be (lhs, rhs) in that order.
func (g *Graph) Binop(name string, op BinOp) (VertexId, error) {
	if op < OpAdd || op > OpDiv {
		return noVertex, wrapf(ErrUnknownBinOp, "operator %d", int(op))
	}
	v := &vertex{
		name:  name,
		kind:  kindBinop,
		value: expr.OfName(name),
		state: Bottom,
		binop: op,
	}
	return g.insert(v)
}
