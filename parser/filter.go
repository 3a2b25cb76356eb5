package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// Filter runs p and keeps its value only if pred accepts it.  The failure
// tells the two ways Filter can fail apart: Left carries the failure of p,
// Right carries the value pred rejected.
func Filter[E, R any](p Parser[E, R], pred func(R) bool) Parser[Either[E, R], R] {
	if res, ok := asConst(p); ok {
		return Const(filterResult(res, pred))
	}
	return &filtered[E, R]{p: p, pred: pred}
}

func filterResult[E, R any](res Result[E, R], pred func(R) bool) Result[Either[E, R], R] {
	if res.IsFailure() {
		return Failed[Either[E, R], R](Left[E, R](res.Failure()))
	}
	if v := res.Value(); !pred(v) {
		return Failed[Either[E, R], R](Right[E](v))
	}
	return Succeeded[Either[E, R]](res.Value())
}

type filtered[E, R any] struct {
	p    Parser[E, R]
	pred func(R) bool
}

func (f *filtered[E, R]) Parse(in input.Input, tr Tracer) (Result[Either[E, R], R], error) {
	tr.visit(f)
	res, err := f.p.Parse(in, tr)
	if err != nil {
		return abort[Either[E, R], R](err)
	}
	return filterResult(res, f.pred), nil
}

func (f *filtered[E, R]) String() string {
	return fmt.Sprintf("filter(%s)", f.p)
}

// Negate returns a parser that succeeds with the failure of p when p fails
// and fails with the value of p when p succeeds.  It reads whatever p reads.
// Negating a negation gives back the original parser.
func Negate[E, R any](p Parser[E, R]) Parser[R, E] {
	if n, ok := p.(*negated[R, E]); ok {
		return n.p
	}
	if res, ok := asConst(p); ok {
		return Const(Swap(res))
	}
	return &negated[E, R]{p: p}
}

// Not is the same as Negate.
func Not[E, R any](p Parser[E, R]) Parser[R, E] {
	return Negate(p)
}

type negated[E, R any] struct {
	p Parser[E, R]
}

func (n *negated[E, R]) Parse(in input.Input, tr Tracer) (Result[R, E], error) {
	tr.visit(n)
	res, err := n.p.Parse(in, tr)
	if err != nil {
		return abort[R, E](err)
	}
	return Swap(res), nil
}

func (n *negated[E, R]) String() string {
	return fmt.Sprintf("not(%s)", n.p)
}
