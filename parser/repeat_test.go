package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/input"
)

func TestZeroOrMore(t *testing.T) {
	in := input.NewArrayString("asdf")
	res := parse(t, ZeroOrMore[Unit](AnyByte(), fold.String()), in)
	assert.Equal(t, Succeeded[Unit]("asdf"), res)
}

func TestZeroOrMoreNeverMatching(t *testing.T) {
	in := input.NewArrayString("asdf")
	p := ZeroOrMore[string](ExpectString("x"), fold.Count[string]())
	assert.Equal(t, Succeeded[string](0), parse(t, p, in))
	assert.Equal(t, "a", readString(t, in, 1))
}

func TestZeroOrMoreRewindsPartialMatch(t *testing.T) {
	in := input.NewArrayString("ababac")
	p := ZeroOrMore[Unit](ExpectString("ab"), fold.Join("+"))
	assert.Equal(t, Succeeded[Unit]("ab+ab"), parse(t, p, in))
	assert.Equal(t, "ac", readString(t, in, 2))
}

func TestOneOrMore(t *testing.T) {
	in := input.NewArrayString("asdf")
	assert.Equal(t, Succeeded[Unit]("asdf"), parse(t, OneOrMore(AnyByte(), fold.String()), in))
}

func TestOneOrMoreMismatch(t *testing.T) {
	in := input.NewArrayString("asdf")
	p := OneOrMore(Error[string, Unit]("err"), fold.Slice[Unit]())
	assert.Equal(t, Failed[string, []Unit]("err"), parse(t, p, in))
}

func TestManyAndMany1(t *testing.T) {
	digit := IgnoreErrorDetails(MatchesByte(func(b byte) bool { return '0' <= b && b <= '9' }))

	assert.Equal(t, Succeeded[string]([]byte("12")), parse(t, Many[string](digit), input.NewArrayString("12a")))
	assert.Equal(t, Succeeded[string, []byte](nil), parse(t, Many[string](digit), input.NewArrayString("a")))
	assert.Equal(t, Succeeded[Unit]([]byte("12")), parse(t, Many1(digit), input.NewArrayString("12a")))
	assert.Equal(t, Failed[Unit, []byte](Unit{}), parse(t, Many1(digit), input.NewArrayString("a")))
}

func TestRepetitionOnStream(t *testing.T) {
	// Every attempt leaves a marker at a window boundary at some point.
	s := newSmallStream(t, "abababababx", 3, 3)
	p := ZeroOrMore[Unit](ExpectString("ab"), fold.Count[string]())
	assert.Equal(t, Succeeded[Unit](5), parse(t, p, s))
	assert.Equal(t, "x", readString(t, s, 1))
	assert.Equal(t, 1, s.OpenWindows())
}

func TestRepetitionReleasesMarkerOnFatalError(t *testing.T) {
	s := newSmallStream(t, "aaaaaaaaaaaa", 4, 2)
	p := ZeroOrMore[Unit](ExpectString("aaaaaaaaa"), fold.Count[string]())
	_, err := Run(p, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrTooManyWindows))
	assert.Equal(t, 1, s.OpenWindows())
}
