package parser

import "fmt"

// Unit is the payload of results that carry no information, e.g. the
// failure of AnyByte at the end of input.
type Unit struct{}

func (Unit) String() string {
	return "()"
}

// A Result is the outcome of a parse: either a success value of type R or a
// failure value of type E, never both.
type Result[E, R any] struct {
	failure E
	value   R
	ok      bool
}

// Succeeded returns a successful result.
func Succeeded[E, R any](value R) Result[E, R] {
	return Result[E, R]{value: value, ok: true}
}

// Failed returns a failed result.
func Failed[E, R any](failure E) Result[E, R] {
	return Result[E, R]{failure: failure}
}

func (r Result[E, R]) IsSuccess() bool {
	return r.ok
}

func (r Result[E, R]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value, or the zero value if r is a failure.
func (r Result[E, R]) Value() R {
	return r.value
}

// Failure returns the failure value, or the zero value if r is a success.
func (r Result[E, R]) Failure() E {
	return r.failure
}

// Get returns the success value and true, or the zero value and false.
func (r Result[E, R]) Get() (R, bool) {
	return r.value, r.ok
}

func (r Result[E, R]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}

// FoldResult calls onFailure or onSuccess depending on r.
func FoldResult[E, R, T any](r Result[E, R], onFailure func(E) T, onSuccess func(R) T) T {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}

// MapResult transforms both channels of r.
func MapResult[E, F, R, S any](r Result[E, R], f func(E) F, g func(R) S) Result[F, S] {
	if r.ok {
		return Succeeded[F](g(r.value))
	}
	return Failed[F, S](f(r.failure))
}

// Swap exchanges the success and failure channels.
func Swap[E, R any](r Result[E, R]) Result[R, E] {
	if r.ok {
		return Failed[R, E](r.value)
	}
	return Succeeded[R](r.failure)
}

// Either holds a value of type L or a value of type R.  It is used where a
// parser needs to report one of two outcomes as data, e.g. by Filter and
// Try.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value, or the zero value if e is a Right.
func (e Either[L, R]) LeftValue() L {
	return e.left
}

// RightValue returns the right value, or the zero value if e is a Left.
func (e Either[L, R]) RightValue() R {
	return e.right
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
