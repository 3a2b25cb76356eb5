package parsec_test

import (
	"fmt"
	"strings"

	"github.com/arnodel/parsec"
	"github.com/arnodel/parsec/fold"
	"github.com/arnodel/parsec/parser"
)

func Example() {
	digit := parser.MatchesByte(func(b byte) bool { return '0' <= b && b <= '9' })
	number := parser.Map(
		parser.OneOrMore(parser.IgnoreErrorDetails(digit), fold.String()),
		func(s string) string { return "#" + s },
	)
	comma := parser.IgnoreErrorDetails(parser.ExpectString(","))
	list := parser.Then(
		number,
		parser.ZeroOrMore[parser.Unit](parser.AndThen(comma, number), fold.Join(" ")),
		func(first, rest string) string { return strings.TrimSpace(first + " " + rest) },
	)

	res, err := parsec.ParseReader(list, strings.NewReader("12,345,6;"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output: Success(#12 #345 #6)
}

func Example_alternatives() {
	keyword := parser.Or(
		parser.ExpectString("let"),
		parser.ExpectString("letrec"),
		parser.ExpectString("lambda"),
	)
	for _, src := range []string{"let", "lambda", "loop"} {
		res, _ := parsec.ParseString(keyword, src)
		fmt.Println(res)
	}
	// Output:
	// Success(let)
	// Success(lambda)
	// Failure(1)
}
