package sra

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// kindColor picks a color for a vertex's kind label. fatih/color no-ops to
// plain text automatically when the process's stdout isn't a terminal
// (color.NoColor); that check looks at stdout, not at w.
var kindColor = map[vkind]*color.Color{
	kindConst: color.New(color.FgWhite),
	kindPhi:   color.New(color.FgYellow),
	kindSigma: color.New(color.FgCyan),
	kindBinop: color.New(color.FgMagenta),
}

func (v *vertex) label() string {
	switch v.kind {
	case kindConst:
		if v.isInf {
			return "inf"
		}
		return "const"
	case kindPhi:
		return "phi"
	case kindSigma:
		return "sigma"
	case kindBinop:
		return "binop"
	default:
		return "?"
	}
}

// Trace writes one line per vertex, in id order, naming its kind, current
// state, and assumption. It is purely observational — callers can invoke
// it between Solve phases or after Solve returns — and has no bearing on
// the result.
//
// This is a flat, tool-agnostic line per vertex rather than a format a
// separate graph-visualization program would consume, so it stays
// readable piped straight to a log.
func (g *Graph) Trace(w io.Writer) {
	for _, v := range g.vertices {
		label := kindColor[v.kind].Sprint(v.label())
		extra := ""
		if v.kind == kindSigma {
			bound := g.vertexAt(v.preds[1])
			extra = fmt.Sprintf(" %s %s", v.predicate, bound.name)
		}
		fmt.Fprintf(w, "%3d %-8s %-10s %s%s", int(v.id), label, v.name, v.state, extra)
		if g.trackAssumptions {
			fmt.Fprintf(w, "  | %s", g.Assumption(v.id))
		}
		fmt.Fprintln(w)
	}
}
