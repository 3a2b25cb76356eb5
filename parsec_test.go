package parsec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/input"
	"github.com/arnodel/parsec/parser"
	"github.com/arnodel/parsec/trace"
)

func words() parser.Parser[parser.Unit, []string] {
	notSpace := parser.MatchesByte(func(b byte) bool { return b != ' ' })
	word := parser.IgnoreErrorDetails(parser.OneOrMore(notSpace, fold.String()))
	space := parser.IgnoreErrorDetails(parser.ExpectString(" "))
	rest := parser.ZeroOrMore[parser.Unit](parser.AndThen(space, word), fold.Slice[string]())
	return parser.Then(word, rest, func(first string, others []string) []string {
		return append([]string{first}, others...)
	})
}

var expectedWords = parser.Succeeded[parser.Unit]([]string{"Please", "parse", "this"})

type closeRecorder struct {
	*strings.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestParseReader(t *testing.T) {
	r := &closeRecorder{Reader: strings.NewReader("Please parse this")}
	res, err := ParseReader(words(), r, WithConfig(input.Config{
		WindowSize:            3,
		InitialMarkerCapacity: 1,
		MaxWindows:            8,
	}))
	require.NoError(t, err)
	assert.Equal(t, expectedWords, res)
	assert.False(t, r.closed)
}

func TestParseReaderTooManyWindows(t *testing.T) {
	p := parser.Try[parser.Unit](parser.ExpectString("Please parse that"))
	_, err := ParseReader(p, strings.NewReader("Please parse this"), WithConfig(input.Config{
		WindowSize:            4,
		InitialMarkerCapacity: 1,
		MaxWindows:            2,
	}))
	assert.ErrorIs(t, err, input.ErrTooManyWindows)
}

func TestParseReaderInvalidConfig(t *testing.T) {
	_, err := ParseReader(words(), strings.NewReader(""), WithConfig(input.Config{}))
	assert.ErrorIs(t, err, input.ErrInvalidConfig)
}

func TestParseStreamInvalidConfigClosesReader(t *testing.T) {
	r := &closeRecorder{Reader: strings.NewReader("Please parse this")}
	_, err := parseStream(&settings{config: input.Config{}}, words(), r)
	assert.ErrorIs(t, err, input.ErrInvalidConfig)
	assert.True(t, r.closed)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Please parse this"), 0o644))
	cfgPath := filepath.Join(dir, "parsec.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("window_size = 2\nmax_windows = 10\n"), 0o644))

	res, err := ParseFile(words(), path, WithConfigFile(cfgPath))
	require.NoError(t, err)
	assert.Equal(t, expectedWords, res)

	_, err = ParseFile(words(), filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseBytesAndString(t *testing.T) {
	res, err := ParseBytes(words(), []byte("Please parse this"))
	require.NoError(t, err)
	assert.Equal(t, expectedWords, res)

	counter := trace.NewCounter()
	res, err = ParseString(words(), "Please parse this", WithTracer(counter.Trace))
	require.NoError(t, err)
	assert.Equal(t, expectedWords, res)
	assert.Positive(t, counter.Total())
}
