package sra

import (
	"errors"
	"fmt"
)

// Sentinel build/shape errors. These are the only conditions the solver
// surfaces to the caller; everything else — runaway symbolic growth,
// unsound arithmetic — is recovered in place and never returned as an
// error.
var (
	// ErrDuplicateName is returned when a builder constructor is given a
	// name already in use by another vertex.
	ErrDuplicateName = errors.New("sra: duplicate vertex name")

	// ErrUnknownPredicate is returned when Sigma is given a predicate
	// outside {lt, le, gt, ge}.
	ErrUnknownPredicate = errors.New("sra: unknown predicate")

	// ErrUnknownBinOp is returned when Binop is given an operator outside
	// {add, sub, mul, div}.
	ErrUnknownBinOp = errors.New("sra: unknown binary operator")

	// ErrWrongArity is returned when a vertex receives the wrong number (or
	// order-sensitive placement) of predecessor edges for its kind: Sigma
	// needs exactly (incoming, bound); Binop needs exactly (lhs, rhs).
	ErrWrongArity = errors.New("sra: wrong predecessor count for vertex kind")

	// ErrFrozen is returned by AddEdge/vertex constructors once Solve has
	// run; the graph is frozen during and after solving, since the solver
	// assumes the vertex set and edge set it decomposed into SCCs don't
	// shift under it mid-iteration.
	ErrFrozen = errors.New("sra: graph is frozen")

	// ErrCyclicCondensation is returned if SCC condensation itself contains
	// a cycle, which would indicate a bug in Tarjan's algorithm rather than
	// a property of the input graph; solving cannot proceed.
	ErrCyclicCondensation = errors.New("sra: cyclic SCC condensation")
)

func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
