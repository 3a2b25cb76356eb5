// Package parser implements parser combinators over an input.Input.
//
// A Parser[E, R] reads from an input and returns a Result[E, R]: a success
// carrying a value of type R, or a failure carrying a value of type E.
// Failures are ordinary values; they are expected to happen while
// alternatives are tried and are handled by the combinators.  The error
// returned alongside the result is different: it reports a fatal condition
// of the input (see the input package) and aborts the whole parse.
//
// Parsers are built from a few primitives (AnyByte, Expect, Character, EOF,
// ...) combined with generic functions (Map, FlatMap, Then, Or, ZeroOrMore,
// Try, ...).  Parsers hold no mutable state, so a parser can be shared
// between goroutines as long as each goroutine parses its own input.
//
// Combinators that backtrack (Or, ZeroOrMore, OneOrMore, Try) place a
// marker on the input before running a sub-parser and rewind to it when
// that sub-parser fails.  The marker is always released before the
// combinator returns.
package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// A Parser consumes bytes from an input and produces a Result.
type Parser[E, R any] interface {

	// Parse runs the parser on in.  tr, if not nil, is called with every
	// parser node visited.  A non-nil error means the parse was aborted
	// because of a fatal input condition.
	Parse(in input.Input, tr Tracer) (Result[E, R], error)

	fmt.Stringer
}

// A Tracer is called with each parser node as it is visited.  It is for
// diagnostics only and cannot influence the outcome of the parse.
type Tracer func(node fmt.Stringer)

func (tr Tracer) visit(node fmt.Stringer) {
	if tr != nil {
		tr(node)
	}
}

// Run runs p on in without tracing.
func Run[E, R any](p Parser[E, R], in input.Input) (Result[E, R], error) {
	return p.Parse(in, nil)
}

// Named gives a name to p.  The name is what p looks like when traced or
// printed, which keeps traces of large grammars readable.
func Named[E, R any](name string, p Parser[E, R]) Parser[E, R] {
	return &named[E, R]{name: name, p: p}
}

type named[E, R any] struct {
	name string
	p    Parser[E, R]
}

func (n *named[E, R]) Parse(in input.Input, tr Tracer) (Result[E, R], error) {
	tr.visit(n)
	return n.p.Parse(in, tr)
}

func (n *named[E, R]) String() string {
	return n.name
}

// abort is returned along with a fatal error.
func abort[E, R any](err error) (Result[E, R], error) {
	return Result[E, R]{}, err
}
