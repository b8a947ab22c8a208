package sra

import "sort"

// Solve runs the fixed-point algorithm: the graph is frozen, decomposed
// into strongly connected components, and each SCC is iterated in an
// order that visits predecessors before successors — cycles only arise
// from loops, so every acyclic portion of the graph converges in a single
// pass and only the loop-carried vertices need the warm-up/widen/narrow
// treatment below.
//
// Solve never fails on graph *content* — overly complex symbolic results
// are coerced to [-∞, +∞] inside the transfer functions instead. It only
// returns the structural errors recorded at build time (ErrWrongArity) or a
// defect in the SCC decomposition itself.
func (g *Graph) Solve() error {
	if err := g.checkArity(); err != nil {
		return err
	}
	g.frozen = true

	sccs := g.tarjanSCCs()
	sccOf := make([]int, len(g.vertices))
	for i, scc := range sccs {
		for _, id := range scc {
			sccOf[id] = i
		}
	}
	// An edge from a later SCC into an earlier one means the condensation
	// is not an acyclic, predecessors-first sequence.
	for _, v := range g.vertices {
		for _, p := range v.preds {
			if sccOf[p] > sccOf[v.id] {
				return ErrCyclicCondensation
			}
		}
	}
	for _, scc := range sccs {
		if len(scc) == 0 {
			return ErrCyclicCondensation
		}
		g.solveSCC(scc)
	}
	return nil
}

// solveSCC implements the singleton fast path and the warm-up / widen /
// narrow phases for a multi-vertex SCC: a handful of plain iterations to
// let values propagate around the cycle, one widening pass to force
// convergence, and (if the cycle has a loop guard) a narrowing pass that
// tightens the widened bounds back down using the branch facts widening
// discarded.
func (g *Graph) solveSCC(scc []VertexId) {
	if len(scc) == 1 {
		v := g.vertexAt(scc[0])
		g.evalIt(v)
		if v.kind == kindSigma {
			g.evalNarrow(v)
		}
		return
	}

	ordered := append([]VertexId(nil), scc...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	// Warm-up: two full passes of eval_it.
	for i := 0; i < 2; i++ {
		for _, id := range ordered {
			g.evalIt(g.vertexAt(id))
		}
	}

	// Widening: one pass of eval_it_and_widen.
	for _, id := range ordered {
		g.evalItAndWiden(g.vertexAt(id))
	}

	// Narrowing: rotate so the first Sigma leads, then run eval_narrow on
	// Sigma vertices and eval_it on everything else. Skip entirely if no
	// Sigma is present in the SCC.
	narrowStart := -1
	for i, id := range ordered {
		if g.vertexAt(id).kind == kindSigma {
			narrowStart = i
			break
		}
	}
	if narrowStart == -1 {
		return
	}

	rotated := append(append([]VertexId(nil), ordered[narrowStart:]...), ordered[:narrowStart]...)
	for _, id := range rotated {
		v := g.vertexAt(id)
		if v.kind == kindSigma {
			g.evalNarrow(v)
		} else {
			g.evalIt(v)
		}
	}
}
