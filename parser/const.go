package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// Const returns a parser that does not read any input and always returns
// result.
func Const[E, R any](result Result[E, R]) Parser[E, R] {
	return &constant[E, R]{result: result}
}

// Pure is the same as Success.
func Pure[E, R any](value R) Parser[E, R] {
	return Success[E](value)
}

// Success returns a parser that always succeeds with value, reading nothing.
func Success[E, R any](value R) Parser[E, R] {
	return Const(Succeeded[E](value))
}

// Error returns a parser that always fails with failure, reading nothing.
func Error[E, R any](failure E) Parser[E, R] {
	return Const(Failed[E, R](failure))
}

// Empty returns a parser that always succeeds with Unit.
func Empty[E any]() Parser[E, Unit] {
	return Success[E](Unit{})
}

type constant[E, R any] struct {
	result Result[E, R]
}

func (c *constant[E, R]) Parse(in input.Input, tr Tracer) (Result[E, R], error) {
	tr.visit(c)
	return c.result, nil
}

func (c *constant[E, R]) String() string {
	if c.result.IsSuccess() {
		return fmt.Sprintf("success(%v)", c.result.Value())
	}
	return fmt.Sprintf("error(%v)", c.result.Failure())
}

// asConst returns the result of p if it is a constant parser.
func asConst[E, R any](p Parser[E, R]) (Result[E, R], bool) {
	if c, ok := p.(*constant[E, R]); ok {
		return c.result, true
	}
	return Result[E, R]{}, false
}
