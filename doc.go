// Package parsec implements parser combinators over streaming byte input.
//
// The package is organized into several sub-packages:
//
// - input: the Input contract, a windowed Stream over an io.Reader and an
// in-memory Array
// - parser: the Parser interface, its two-channel Result and all the
// combinators
// - fold: accumulators used by the repetition combinators
// - trace: tracers to follow what a parser does
//
// Parsers read from an input.Input and can backtrack: combinators such as
// parser.Or or parser.ZeroOrMore place a marker before trying a parser and
// rewind to it if that parser fails.  A Stream keeps the bytes read since
// the oldest live marker in a chain of fixed-size windows, so backtracking
// never re-reads the source and memory stays bounded by the amount of
// lookahead the grammar needs, not by the size of the input.
//
// A simple way to run a parser is with one of the functions of this
// package:
//
//	notSpace := parser.MatchesByte(func(b byte) bool { return b != ' ' })
//	word := parser.OneOrMore(notSpace, fold.String())
//	res, err := parsec.ParseReader(word, os.Stdin)
//
// err is only non-nil if the input could not be read or buffered; a parse
// that does not match is reported in res.
package parsec
