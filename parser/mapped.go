package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// Map transforms the success value of p with f.
func Map[E, R, S any](p Parser[E, R], f func(R) S) Parser[E, S] {
	return Bimap(p, identity[E], f)
}

// MapErr transforms the failure value of p with f.
func MapErr[E, F, R any](p Parser[E, R], f func(E) F) Parser[F, R] {
	return Bimap(p, f, identity[R])
}

// Bimap transforms the failure value of p with f and its success value
// with g.  f and g must not read from the input.
func Bimap[E, F, R, S any](p Parser[E, R], f func(E) F, g func(R) S) Parser[F, S] {
	if res, ok := asConst(p); ok {
		return Const(MapResult(res, f, g))
	}
	return &mapped[E, F, R, S]{p: p, f: f, g: g}
}

func identity[A any](a A) A {
	return a
}

type mapped[E, F, R, S any] struct {
	p Parser[E, R]
	f func(E) F
	g func(R) S
}

func (m *mapped[E, F, R, S]) Parse(in input.Input, tr Tracer) (Result[F, S], error) {
	tr.visit(m)
	res, err := m.p.Parse(in, tr)
	if err != nil {
		return abort[F, S](err)
	}
	return MapResult(res, m.f, m.g), nil
}

func (m *mapped[E, F, R, S]) String() string {
	return fmt.Sprintf("map(%s)", m.p)
}

// IgnoreErrorDetails replaces any failure of p with Unit.
func IgnoreErrorDetails[E, R any](p Parser[E, R]) Parser[Unit, R] {
	return MapErr(p, func(E) Unit { return Unit{} })
}
