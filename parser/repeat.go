package parser

import (
	"errors"
	"fmt"

	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/input"
)

// ZeroOrMore returns a parser that runs p as many times as it succeeds and
// folds the values with f.  It never fails: when p fails, the input is
// rewound to where that attempt started and the fold is finished.  The
// failure type X is free since it is never produced.
//
// p must read some input when it succeeds, otherwise the repetition never
// ends.
func ZeroOrMore[X, E, R, A, S any](p Parser[E, R], f fold.Fold[R, A, S]) Parser[X, S] {
	return &zeroOrMore[X, E, R, A, S]{p: p, f: f}
}

// OneOrMore is like ZeroOrMore but requires p to succeed at least once.  If
// the first attempt fails, OneOrMore fails in the same way.
func OneOrMore[E, R, A, S any](p Parser[E, R], f fold.Fold[R, A, S]) Parser[E, S] {
	return &oneOrMore[E, R, A, S]{p: p, f: f}
}

// Many collects the values of ZeroOrMore into a slice.
func Many[X, E, R any](p Parser[E, R]) Parser[X, []R] {
	return ZeroOrMore[X](p, fold.Slice[R]())
}

// Many1 collects the values of OneOrMore into a slice.
func Many1[E, R any](p Parser[E, R]) Parser[E, []R] {
	return OneOrMore(p, fold.Slice[R]())
}

type zeroOrMore[X, E, R, A, S any] struct {
	p Parser[E, R]
	f fold.Fold[R, A, S]
}

func (z *zeroOrMore[X, E, R, A, S]) Parse(in input.Input, tr Tracer) (Result[X, S], error) {
	tr.visit(z)
	acc, err := repeat(in, tr, z.p, z.f.Step, z.f.Init())
	if err != nil {
		return abort[X, S](err)
	}
	return Succeeded[X](z.f.Finish(acc)), nil
}

func (z *zeroOrMore[X, E, R, A, S]) String() string {
	return fmt.Sprintf("zeroOrMore(%s)", z.p)
}

type oneOrMore[E, R, A, S any] struct {
	p Parser[E, R]
	f fold.Fold[R, A, S]
}

func (o *oneOrMore[E, R, A, S]) Parse(in input.Input, tr Tracer) (Result[E, S], error) {
	tr.visit(o)
	res, err := o.p.Parse(in, tr)
	if err != nil {
		return abort[E, S](err)
	}
	if res.IsFailure() {
		return Failed[E, S](res.Failure()), nil
	}
	acc, err := repeat(in, tr, o.p, o.f.Step, o.f.Step(o.f.Init(), res.Value()))
	if err != nil {
		return abort[E, S](err)
	}
	return Succeeded[E](o.f.Finish(acc)), nil
}

func (o *oneOrMore[E, R, A, S]) String() string {
	return fmt.Sprintf("oneOrMore(%s)", o.p)
}

// repeat runs p until it fails, stepping acc with each value.  The input is
// left where the failed attempt started.
func repeat[E, R, A any](in input.Input, tr Tracer, p Parser[E, R], step func(A, R) A, acc A) (A, error) {
	for {
		m := in.Mark()
		res, err := p.Parse(in, tr)
		if err != nil {
			return acc, errors.Join(err, m.Close())
		}
		if res.IsFailure() {
			return acc, m.Rewind()
		}
		acc = step(acc, res.Value())
		if err := m.Close(); err != nil {
			return acc, err
		}
	}
}
