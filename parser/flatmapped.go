package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// BiFlatMap runs p, then runs the parser returned by onFailure or onSuccess
// depending on the outcome of p.  It is the sequencing primitive; the other
// sequencing combinators are built on it.
func BiFlatMap[E, F, R, S any](p Parser[E, R], onFailure func(E) Parser[F, S], onSuccess func(R) Parser[F, S]) Parser[F, S] {
	if res, ok := asConst(p); ok {
		return FoldResult(res, onFailure, onSuccess)
	}
	return &flatMapped[E, F, R, S]{p: p, onFailure: onFailure, onSuccess: onSuccess}
}

// FlatMap runs p and, if it succeeds, runs the parser f returns for its
// value.  A failure of p is passed through unchanged.
func FlatMap[E, R, S any](p Parser[E, R], f func(R) Parser[E, S]) Parser[E, S] {
	return BiFlatMap(p, Error[E, S], f)
}

// FlatMapErr runs p and, if it fails, runs the parser f returns for its
// failure.  A success of p is passed through unchanged.
func FlatMapErr[E, F, R any](p Parser[E, R], f func(E) Parser[F, R]) Parser[F, R] {
	return BiFlatMap(p, f, Success[F, R])
}

// Then runs p and then q, and combines their values with combine.  It fails
// with the failure of whichever of p or q fails first.
func Then[E, R, S, T any](p Parser[E, R], q Parser[E, S], combine func(R, S) T) Parser[E, T] {
	return Named(fmt.Sprintf("%s.then(%s)", p, q), FlatMap(p, func(r R) Parser[E, T] {
		return Map(q, func(s S) T { return combine(r, s) })
	}))
}

// AndThen runs p and then q, and keeps the value of q.
func AndThen[E, R, S any](p Parser[E, R], q Parser[E, S]) Parser[E, S] {
	return Then(p, q, func(_ R, s S) S { return s })
}

// FollowedBy runs p and then q, and keeps the value of p.
func FollowedBy[E, R, S any](p Parser[E, R], q Parser[E, S]) Parser[E, R] {
	return Then(p, q, func(r R, _ S) R { return r })
}

type flatMapped[E, F, R, S any] struct {
	p         Parser[E, R]
	onFailure func(E) Parser[F, S]
	onSuccess func(R) Parser[F, S]
}

func (m *flatMapped[E, F, R, S]) Parse(in input.Input, tr Tracer) (Result[F, S], error) {
	tr.visit(m)
	res, err := m.p.Parse(in, tr)
	if err != nil {
		return abort[F, S](err)
	}
	return FoldResult(res, m.onFailure, m.onSuccess).Parse(in, tr)
}

func (m *flatMapped[E, F, R, S]) String() string {
	return fmt.Sprintf("flatMap(%s)", m.p)
}
