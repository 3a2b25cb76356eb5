package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/input"
)

// Or returns a parser that tries each of ps in order, rewinding the input
// after each failure, and succeeds with the first success.  If they all
// fail, it fails with the failure of the last one.
func Or[E, R any](ps ...Parser[E, R]) Parser[E, R] {
	if len(ps) == 0 {
		panic("parser.Or: no alternatives")
	}
	return &or[E, R]{ps: ps}
}

type or[E, R any] struct {
	ps []Parser[E, R]
}

func (o *or[E, R]) Parse(in input.Input, tr Tracer) (Result[E, R], error) {
	tr.visit(o)
	var res Result[E, R]
	for _, p := range o.ps {
		m := in.Mark()
		var err error
		res, err = p.Parse(in, tr)
		if err != nil {
			return abort[E, R](errors.Join(err, m.Close()))
		}
		if res.IsSuccess() {
			return res, m.Close()
		}
		if err := m.Rewind(); err != nil {
			return abort[E, R](err)
		}
	}
	return res, nil
}

func (o *or[E, R]) String() string {
	names := make([]string, len(o.ps))
	for i, p := range o.ps {
		names[i] = p.String()
	}
	return fmt.Sprintf("or(%s)", strings.Join(names, ", "))
}

// Try runs p and never fails.  If p succeeds, Try succeeds with Right of its
// value.  If p fails, the input is rewound to where p started and Try
// succeeds with Left of the failure.
func Try[X, E, R any](p Parser[E, R]) Parser[X, Either[E, R]] {
	return &try[X, E, R]{p: p}
}

// Optional is like Try but discards the failure of p.
func Optional[X, E, R any](p Parser[E, R]) Parser[X, fold.Option[R]] {
	return Map(Try[X](p), func(e Either[E, R]) fold.Option[R] {
		return fold.Option[R]{Value: e.RightValue(), Ok: e.IsRight()}
	})
}

type try[X, E, R any] struct {
	p Parser[E, R]
}

func (t *try[X, E, R]) Parse(in input.Input, tr Tracer) (Result[X, Either[E, R]], error) {
	tr.visit(t)
	m := in.Mark()
	res, err := t.p.Parse(in, tr)
	if err != nil {
		return abort[X, Either[E, R]](errors.Join(err, m.Close()))
	}
	if res.IsFailure() {
		if err := m.Rewind(); err != nil {
			return abort[X, Either[E, R]](err)
		}
		return Succeeded[X](Left[E, R](res.Failure())), nil
	}
	if err := m.Close(); err != nil {
		return abort[X, Either[E, R]](err)
	}
	return Succeeded[X](Right[E](res.Value())), nil
}

func (t *try[X, E, R]) String() string {
	return fmt.Sprintf("try(%s)", t.p)
}
