package sra

import "github.com/henry-nazare/llvm-sra/expr"

// VertexId is a stable, insertion-order identifier used as a deterministic
// tiebreaker inside an SCC. Ids start at 0; noVertex (-1) never denotes a
// real vertex.
type VertexId int

const noVertex VertexId = -1

type vkind int

const (
	kindConst vkind = iota
	kindPhi
	kindSigma
	kindBinop
)

// BinOp is a Binop vertex's arithmetic operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "?"
	}
}

// vertex is the graph's internal representation. The graph owns every
// vertex in a contiguous arena; predecessor lists hold VertexIds rather
// than live pointers, so no ownership cycle exists between a vertex and
// its predecessors.
type vertex struct {
	id    VertexId
	name  string
	kind  vkind
	value expr.Expr // the program variable this vertex denotes ("self.expr")

	state      Range
	assumption expr.Expr

	preds []VertexId

	changedLower bool
	changedUpper bool

	predicate Predicate // kindSigma only
	binop     BinOp     // kindBinop only
	isInf     bool      // kindConst only: unconstrained input (builder's inf())

	// Phi bookkeeping: the single non-bottom predecessor seen at the Phi's
	// first evaluation, if there was exactly one.
	firstEvalDone    bool
	singleInitial    VertexId
	hasSingleInitial bool
}

// Graph is the constraint graph: a frozen-after-solve arena of vertices.
type Graph struct {
	vertices []*vertex
	byName   map[string]VertexId
	frozen   bool

	sizeClamp        int
	maxPhiArity      int
	trackAssumptions bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithSizeClamp overrides the default bound-complexity clamp K, the AST
// node count past which a bound is abandoned in favor of [-∞, +∞] rather
// than left to grow without limit.
func WithSizeClamp(k int) Option {
	return func(g *Graph) { g.sizeClamp = k }
}

// WithMaxPhiArity overrides the default Phi fan-in clamp.
func WithMaxPhiArity(k int) Option {
	return func(g *Graph) { g.maxPhiArity = k }
}

// WithAssumptions toggles the assumption algebra. Disabling it skips all
// op_asmp/op_asmp_narrow bookkeeping for callers that only need ranges and
// don't want to pay for tracking the conditions each range depends on.
func WithAssumptions(enabled bool) Option {
	return func(g *Graph) { g.trackAssumptions = enabled }
}

// NewGraph constructs an empty constraint graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		byName:           map[string]VertexId{},
		sizeClamp:        8,
		maxPhiArity:      8,
		trackAssumptions: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) insert(v *vertex) (VertexId, error) {
	if g.frozen {
		return noVertex, ErrFrozen
	}
	if _, exists := g.byName[v.name]; exists {
		return noVertex, wrapf(ErrDuplicateName, "vertex %q", v.name)
	}
	v.id = VertexId(len(g.vertices))
	if g.trackAssumptions {
		v.assumption = expr.True
	}
	g.vertices = append(g.vertices, v)
	g.byName[v.name] = v.id
	return v.id, nil
}

func (g *Graph) vertexAt(id VertexId) *vertex {
	return g.vertices[id]
}

// Node looks up a vertex by name.
func (g *Graph) Node(name string) (VertexId, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// State returns a vertex's post-solve (or current) range.
func (g *Graph) State(id VertexId) Range {
	return g.vertexAt(id).state
}

// Assumption returns a vertex's post-solve (or current) assumption
// expression.
func (g *Graph) Assumption(id VertexId) expr.Expr {
	a := g.vertexAt(id).assumption
	if a == nil {
		return expr.True
	}
	return a
}

// Name returns a vertex's name.
func (g *Graph) Name(id VertexId) string { return g.vertexAt(id).name }

// ID is the identity function for symmetry with the other accessors; it
// exists so callers holding a VertexId don't need a separate import to
// read it back out.
func (id VertexId) ID() int { return int(id) }

// AddEdge records `from` as a predecessor of `to`. Order matters for Sigma
// (incoming, bound) and Binop (lhs, rhs); Phi's order is irrelevant, since
// meet is commutative. Edges may only be added before Solve runs.
func (g *Graph) AddEdge(from, to VertexId) error {
	if g.frozen {
		return ErrFrozen
	}
	t := g.vertexAt(to)
	maxArity := -1
	switch t.kind {
	case kindSigma, kindBinop:
		maxArity = 2
	}
	if maxArity >= 0 && len(t.preds) >= maxArity {
		return wrapf(ErrWrongArity, "vertex %q already has %d predecessors", t.name, len(t.preds))
	}
	t.preds = append(t.preds, from)
	return nil
}

func (g *Graph) checkArity() error {
	for _, v := range g.vertices {
		switch v.kind {
		case kindSigma:
			if len(v.preds) != 2 {
				return wrapf(ErrWrongArity, "sigma %q needs exactly 2 predecessors, has %d", v.name, len(v.preds))
			}
		case kindBinop:
			if len(v.preds) != 2 {
				return wrapf(ErrWrongArity, "binop %q needs exactly 2 predecessors, has %d", v.name, len(v.preds))
			}
		}
	}
	return nil
}
