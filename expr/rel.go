package expr

// Relate builds the boolean expression "a rel b", e.g. Relate(RelLt, x, y)
// denotes "x < y". Relational constructors never fail: unlike arithmetic,
// a relation between two ±∞-involving operands is always a well-formed
// (if sometimes trivially true or false) proposition.
func Relate(rel Rel, a, b Expr) Expr {
	return &node{kind: kindRel, rel: rel, l: asNode(a), r: asNode(b)}
}

func Lt(a, b Expr) Expr { return Relate(RelLt, a, b) }
func Le(a, b Expr) Expr { return Relate(RelLe, a, b) }
func Gt(a, b Expr) Expr { return Relate(RelGt, a, b) }
func Ge(a, b Expr) Expr { return Relate(RelGe, a, b) }
func Eq(a, b Expr) Expr { return Relate(RelEq, a, b) }

// And builds the conjunction of zero or more boolean expressions. True is
// the identity and is dropped; a bare And() is True. The result is kept as
// a right-leaning chain of kindAnd nodes so Clauses can walk it in order.
func And(clauses ...Expr) Expr {
	flat := make([]*node, 0, len(clauses))
	for _, c := range clauses {
		flat = append(flat, flatten(asNode(c))...)
	}
	flat = dedupe(flat)
	if len(flat) == 0 {
		return True
	}
	result := flat[len(flat)-1]
	for i := len(flat) - 2; i >= 0; i-- {
		result = &node{kind: kindAnd, l: flat[i], r: result}
	}
	return result
}

func flatten(n *node) []*node {
	switch n.kind {
	case kindTrue:
		return nil
	case kindAnd:
		if n.r == nil {
			return flatten(n.l)
		}
		return append(flatten(n.l), flatten(n.r)...)
	default:
		return []*node{n}
	}
}

func dedupe(clauses []*node) []*node {
	out := make([]*node, 0, len(clauses))
	for _, c := range clauses {
		seen := false
		for _, o := range out {
			if c.Equal(o) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, c)
		}
	}
	return out
}

// Clauses splits a (possibly nested) conjunction into its individual
// clauses, in left-to-right order. True yields no clauses.
func Clauses(e Expr) []Expr {
	nodes := flatten(asNode(e))
	out := make([]Expr, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// CommonClauses returns the clauses present (by Equal) in every one of the
// given assumptions, conjoined back together. Used by Phi's assumption
// transfer to intersect the clause sets of its predecessors: a fact only
// holds for the merged value if every reaching definition guaranteed it.
func CommonClauses(assumptions ...Expr) Expr {
	if len(assumptions) == 0 {
		return True
	}
	common := Clauses(assumptions[0])
	for _, a := range assumptions[1:] {
		clauses := Clauses(a)
		kept := common[:0:0]
		for _, c := range common {
			for _, o := range clauses {
				if c.Equal(o) {
					kept = append(kept, c)
					break
				}
			}
		}
		common = kept
	}
	return And(common...)
}
