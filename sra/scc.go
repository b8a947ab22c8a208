package sra

// tarjanSCCs computes the graph's strongly connected components using
// Tarjan's algorithm, returning them in topological order (predecessors'
// SCCs before successors'). A vertex's value can depend on its own SCC's
// other members (a loop), so the solver needs each SCC isolated and
// ordered before it can decide which vertices need widening at all.
func (g *Graph) tarjanSCCs() [][]VertexId {
	n := len(g.vertices)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	var stack []VertexId
	next := 1

	var sccs [][]VertexId
	adj := g.adjacency()

	var strongconnect func(v VertexId)
	strongconnect = func(v VertexId) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true
		visited[v] = true

		for _, successor := range adj[v] {
			if !visited[successor] {
				strongconnect(successor)
				if lowlink[successor] < lowlink[v] {
					lowlink[v] = lowlink[successor]
				}
			} else if onStack[successor] {
				if index[successor] < lowlink[v] {
					lowlink[v] = index[successor]
				}
			}
		}

		if lowlink[v] == index[v] {
			var scc []VertexId
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for id := range g.vertices {
		if !visited[VertexId(id)] {
			strongconnect(VertexId(id))
		}
	}

	// Tarjan emits SCCs in reverse topological order (sinks first in the
	// condensation DAG); reverse to get predecessors-first order, which is
	// what the solver's outer loop wants.
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

// adjacency builds the forward (predecessor → successor) adjacency list
// once, in O(V+E), for Tarjan's algorithm to walk.
func (g *Graph) adjacency() [][]VertexId {
	adj := make([][]VertexId, len(g.vertices))
	for _, w := range g.vertices {
		for _, p := range w.preds {
			adj[p] = append(adj[p], w.id)
		}
	}
	return adj
}
