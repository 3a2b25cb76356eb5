package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	ok := Succeeded[string](42)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 42, ok.Value())
	assert.Equal(t, "", ok.Failure())
	assert.Equal(t, "Success(42)", ok.String())

	v, isOk := ok.Get()
	assert.Equal(t, 42, v)
	assert.True(t, isOk)

	ko := Failed[string, int]("oops")
	assert.True(t, ko.IsFailure())
	assert.Equal(t, "oops", ko.Failure())
	assert.Equal(t, 0, ko.Value())
	assert.Equal(t, "Failure(oops)", ko.String())
}

func TestResultHelpers(t *testing.T) {
	length := func(s string) int { return len(s) }

	assert.Equal(t, 42, FoldResult(Succeeded[string](42), length, func(i int) int { return i }))
	assert.Equal(t, 4, FoldResult(Failed[string, int]("oops"), length, func(i int) int { return i }))

	assert.Equal(t, Succeeded[int]("42"), MapResult(Succeeded[string](42), length, strconv.Itoa))
	assert.Equal(t, Failed[int, string](4), MapResult(Failed[string, int]("oops"), length, strconv.Itoa))

	assert.Equal(t, Failed[int, string](42), Swap(Succeeded[string](42)))
	assert.Equal(t, Succeeded[int]("oops"), Swap(Failed[string, int]("oops")))
}

func TestEither(t *testing.T) {
	l := Left[int, string](1)
	assert.True(t, l.IsLeft())
	assert.Equal(t, 1, l.LeftValue())
	assert.Equal(t, "Left(1)", l.String())

	r := Right[int]("x")
	assert.True(t, r.IsRight())
	assert.Equal(t, "x", r.RightValue())
	assert.Equal(t, "Right(x)", r.String())
	assert.Equal(t, "()", Unit{}.String())
}
