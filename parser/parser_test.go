package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/input"
)

func words() Parser[Unit, []string] {
	notSpace := MatchesByte(func(b byte) bool { return b != ' ' })
	word := IgnoreErrorDetails(OneOrMore(notSpace, fold.String()))
	space := IgnoreErrorDetails(ExpectString(" "))
	rest := ZeroOrMore[Unit](AndThen(space, word), fold.Slice[string]())
	return Named("words", Then(word, rest, func(first string, others []string) []string {
		return append([]string{first}, others...)
	}))
}

func TestWords(t *testing.T) {
	expected := Succeeded[Unit]([]string{"Please", "parse", "this"})

	t.Run("array", func(t *testing.T) {
		assert.Equal(t, expected, parse(t, words(), input.NewArrayString("Please parse this")))
	})
	for _, windowSize := range []int{1, 2, 5, 64} {
		t.Run(fmt.Sprintf("stream window %d", windowSize), func(t *testing.T) {
			s := newSmallStream(t, "Please parse this", windowSize, 16)
			assert.Equal(t, expected, parse(t, words(), s))
			assert.True(t, parse(t, EOF(), s).IsSuccess())
		})
	}
}

func TestWordsTrailingSpace(t *testing.T) {
	in := input.NewArrayString("two words ")
	p := FollowedBy(words(), IgnoreErrorDetails(ExpectString(" ")))
	assert.Equal(t, Succeeded[Unit]([]string{"two", "words"}), parse(t, p, in))
}

func TestTraceWords(t *testing.T) {
	var b strings.Builder
	res, err := words().Parse(input.NewArrayString("a b"), func(node fmt.Stringer) {
		fmt.Fprintln(&b, node)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Value())
	assert.True(t, strings.HasPrefix(b.String(), "words\n"))
	assert.Contains(t, b.String(), "zeroOrMore(")
	assert.Contains(t, b.String(), "anyByte\n")
}
