package expr

import "errors"

// ErrUnsupported is returned by an arithmetic combination that has no sound
// interpretation: one that mixes ±∞ unsoundly, e.g. (+∞) − (+∞), or a
// division by zero. Relational constructors never return it.
// Callers in package sra recover from it by coercing the result to
// [-∞, +∞] rather than propagating it.
var ErrUnsupported = errors.New("expr: unsupported combination of infinities")

func unsupported() error { return ErrUnsupported }
