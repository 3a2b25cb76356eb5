package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/arnodel/parsec/input"
)

const initialCharacterBufferSize = 8

// Character returns a parser that reads the bytes of one character encoded
// with enc and succeeds with that character.  It reads one byte at a time
// until enc decodes a character.  If the input ends before that, or the
// bytes read are not a valid encoding, it fails with the bytes read so far.
func Character(enc encoding.Encoding) Parser[[]byte, rune] {
	c := &character{enc: enc}
	if b, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError))); err == nil {
		c.replacement = string(b)
	}
	return c
}

// UTF8Character is Character(unicode.UTF8).
func UTF8Character() Parser[[]byte, rune] {
	return Character(unicode.UTF8)
}

// Matches returns a parser that reads one UTF-8 character accepted by pred.
// See Filter for the failure value.
func Matches(pred func(rune) bool) Parser[Either[[]byte, rune], rune] {
	return Filter(UTF8Character(), pred)
}

type character struct {
	enc encoding.Encoding

	// How enc encodes utf8.RuneError, if it can.  Decoders produce
	// utf8.RuneError for invalid input, so it is only accepted as a
	// character when these are the bytes read.
	replacement string
}

func (c *character) Parse(in input.Input, tr Tracer) (Result[[]byte, rune], error) {
	tr.visit(c)
	var (
		dec = c.enc.NewDecoder()
		src = make([]byte, 0, initialCharacterBufferSize)
		dst [2 * utf8.UTFMax]byte
	)
	for {
		chunk, err := in.Read(1)
		if err != nil {
			return abort[[]byte, rune](err)
		}
		if chunk.Len() != 1 {
			return Failed[[]byte, rune](src), nil
		}
		src = append(src, chunk.Bytes()[0])
		dec.Reset()
		n, _, err := dec.Transform(dst[:], src, false)
		if n > 0 {
			r, _ := utf8.DecodeRune(dst[:n])
			if r == utf8.RuneError && string(src) != c.replacement {
				return Failed[[]byte, rune](src), nil
			}
			return Succeeded[[]byte](r), nil
		}
		if err != nil && !errors.Is(err, transform.ErrShortSrc) {
			return Failed[[]byte, rune](src), nil
		}
	}
}

func (c *character) String() string {
	return fmt.Sprintf("character(%v)", c.enc)
}
