// Package fold provides a way to accumulate a sequence of values into a
// result without knowing the shape of the result in advance.
//
// A Fold is made of three functions: Init creates the accumulator, Step
// adds one item to it and Finish turns the accumulator into the final
// result.  Repetition parsers take a Fold to collect the values they parse,
// so the same parser can build a slice, a string, a count, etc.
package fold

import (
	"strings"

	"golang.org/x/text/encoding"
)

// A Fold accumulates items of type T into an accumulator of type A and
// produces a result of type S.
type Fold[T, A, S any] struct {
	Init   func() A
	Step   func(A, T) A
	Finish func(A) S
}

// Run folds all items.
func (f Fold[T, A, S]) Run(items ...T) S {
	acc := f.Init()
	for _, item := range items {
		acc = f.Step(acc, item)
	}
	return f.Finish(acc)
}

func identity[A any](a A) A {
	return a
}

// Slice collects items into a slice.  The empty result is a nil slice.
func Slice[T any]() Fold[T, []T, []T] {
	return Fold[T, []T, []T]{
		Init:   func() []T { return nil },
		Step:   func(acc []T, item T) []T { return append(acc, item) },
		Finish: identity[[]T],
	}
}

// Bytes collects bytes into a slice.
func Bytes() Fold[byte, []byte, []byte] {
	return Slice[byte]()
}

// String collects bytes into a string, with no decoding.
func String() Fold[byte, []byte, string] {
	return Then(Bytes(), func(b []byte) string { return string(b) })
}

// Decode collects bytes and decodes them into a UTF-8 string using enc.
// Invalid bytes are handled as enc's decoder does (usually replaced with
// utf8.RuneError); if decoding fails, what was decoded before the failure
// is returned.
func Decode(enc encoding.Encoding) Fold[byte, []byte, string] {
	return Then(Bytes(), func(b []byte) string {
		s, _ := enc.NewDecoder().Bytes(b)
		return string(s)
	})
}

// Runes collects runes into a string.
func Runes() Fold[rune, *strings.Builder, string] {
	return Fold[rune, *strings.Builder, string]{
		Init: func() *strings.Builder { return new(strings.Builder) },
		Step: func(b *strings.Builder, r rune) *strings.Builder {
			b.WriteRune(r)
			return b
		},
		Finish: (*strings.Builder).String,
	}
}

// Join concatenates strings, separated by sep.
func Join(sep string) Fold[string, []string, string] {
	return Then(Slice[string](), func(ss []string) string {
		return strings.Join(ss, sep)
	})
}

// Count counts items.
func Count[T any]() Fold[T, int, int] {
	return Fold[T, int, int]{
		Init:   func() int { return 0 },
		Step:   func(n int, _ T) int { return n + 1 },
		Finish: identity[int],
	}
}

// Discard ignores all items.
func Discard[T any]() Fold[T, struct{}, struct{}] {
	return Fold[T, struct{}, struct{}]{
		Init:   func() struct{} { return struct{}{} },
		Step:   func(acc struct{}, _ T) struct{} { return acc },
		Finish: identity[struct{}],
	}
}

// Option holds a value that may be absent.
type Option[T any] struct {
	Value T
	Ok    bool
}

// First keeps the first item, if any.
func First[T any]() Fold[T, Option[T], Option[T]] {
	return Fold[T, Option[T], Option[T]]{
		Init: func() Option[T] { return Option[T]{} },
		Step: func(acc Option[T], item T) Option[T] {
			if acc.Ok {
				return acc
			}
			return Option[T]{Value: item, Ok: true}
		},
		Finish: identity[Option[T]],
	}
}

// Last keeps the last item, if any.
func Last[T any]() Fold[T, Option[T], Option[T]] {
	return Fold[T, Option[T], Option[T]]{
		Init:   func() Option[T] { return Option[T]{} },
		Step:   func(_ Option[T], item T) Option[T] { return Option[T]{Value: item, Ok: true} },
		Finish: identity[Option[T]],
	}
}

// Then returns a fold that applies f to the result of fold.
func Then[T, A, S, U any](fold Fold[T, A, S], f func(S) U) Fold[T, A, U] {
	finish := fold.Finish
	return Fold[T, A, U]{
		Init:   fold.Init,
		Step:   fold.Step,
		Finish: func(acc A) U { return f(finish(acc)) },
	}
}
