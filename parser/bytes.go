package parser

import (
	"fmt"

	"github.com/arnodel/parsec/input"
)

// AnyByte returns a parser that reads one byte.  It fails with Unit at the
// end of input.
func AnyByte() Parser[Unit, byte] {
	return anyByte{}
}

type anyByte struct{}

func (p anyByte) Parse(in input.Input, tr Tracer) (Result[Unit, byte], error) {
	tr.visit(p)
	chunk, err := in.Read(1)
	if err != nil {
		return abort[Unit, byte](err)
	}
	if chunk.Len() != 1 {
		return Failed[Unit, byte](Unit{}), nil
	}
	return Succeeded[Unit](chunk.Bytes()[0]), nil
}

func (anyByte) String() string {
	return "anyByte"
}

// MatchesByte returns a parser that reads one byte accepted by pred.  See
// Filter for the failure value.
func MatchesByte(pred func(byte) bool) Parser[Either[Unit, byte], byte] {
	return Filter(AnyByte(), pred)
}

// EOF returns a parser that succeeds, reading nothing, if the input is
// exhausted.
func EOF() Parser[Unit, Unit] {
	return eof{}
}

type eof struct{}

func (p eof) Parse(in input.Input, tr Tracer) (Result[Unit, Unit], error) {
	tr.visit(p)
	chunk, err := in.Read(0)
	if err != nil {
		return abort[Unit, Unit](err)
	}
	if !chunk.IsTail() {
		return Failed[Unit, Unit](Unit{}), nil
	}
	return Succeeded[Unit](Unit{}), nil
}

func (eof) String() string {
	return "eof"
}

// Expect returns a parser that reads exactly the bytes of expected.  It
// succeeds with expected, which must not be modified.  On a mismatch it
// fails with the index of the offending byte within the chunk being
// compared, not within expected.
func Expect(expected []byte) Parser[int, []byte] {
	return &expect{expected: expected}
}

// ExpectString is like Expect but succeeds with s.
func ExpectString(s string) Parser[int, string] {
	return Map(Expect([]byte(s)), func([]byte) string { return s })
}

type expect struct {
	expected []byte
}

func (e *expect) Parse(in input.Input, tr Tracer) (Result[int, []byte], error) {
	tr.visit(e)
	for pos := 0; pos < len(e.expected); {
		chunk, err := in.Read(len(e.expected) - pos)
		if err != nil {
			return abort[int, []byte](err)
		}
		b := chunk.Bytes()
		for i, c := range b {
			if c != e.expected[pos+i] {
				return Failed[int, []byte](i), nil
			}
		}
		if len(b) == 0 && chunk.IsTail() {
			return Failed[int, []byte](0), nil
		}
		pos += len(b)
	}
	return Succeeded[int](e.expected), nil
}

func (e *expect) String() string {
	return fmt.Sprintf("expect(%q)", e.expected)
}
