package tests

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/seq"
)

var errZeroDivisor = errors.New("division by zero")

func parse(s string) fallible.Result[float64] {
	return fallible.Call(func() (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// divide keeps the native float64 semantics: x/0 yields +-Inf, 0/0 NaN.
func divide(a, b float64) fallible.Result[float64] {
	return fallible.Success(a / b)
}

func divideStrict(a, b float64) fallible.Result[float64] {
	if b == 0 {
		return fallible.Fail[float64](errZeroDivisor)
	}
	return fallible.Success(a / b)
}

func runDivision(x, y string, div func(a, b float64) fallible.Result[float64],
	obs seq.Observer) fallible.Result[float64] {

	return seq.Run(func(f *seq.Flow) fallible.Result[float64] {
		a := seq.Await(f, parse(x))
		f.Progress("parsed-first", strconv.FormatFloat(a, 'g', -1, 64))
		b := seq.Await(f, parse(y))
		f.Progress("parsed-second", strconv.FormatFloat(b, 'g', -1, 64))
		return div(a, b)
	}, seq.WithObserver(obs))
}

func TestScenarioA_SuccessfulDivision(t *testing.T) {
	var events []string
	obs := func(step, outcome string) { events = append(events, step) }

	out := runDivision("12", "4", divide, obs)

	require.True(t, out.IsSuccess())
	assert.Equal(t, 3.0, out.Result())
	assert.Equal(t, "3", out.String())
	assert.Equal(t, []string{"parsed-first", "parsed-second"}, events)
}

func TestScenarioB_FirstParseFails(t *testing.T) {
	var events []string
	divideRan := false
	obs := func(step, outcome string) { events = append(events, step) }

	out := runDivision("a", "4", func(a, b float64) fallible.Result[float64] {
		divideRan = true
		return divide(a, b)
	}, obs)

	require.True(t, out.IsFailure())
	assert.Empty(t, events, "progress sink must never fire after a failure")
	assert.False(t, divideRan, "divide must never execute")

	var numErr *strconv.NumError
	require.ErrorAs(t, out.Err(), &numErr)
	assert.Equal(t, "a", numErr.Num)
	assert.Contains(t, out.String(), "Error: ")
}

func TestScenarioB_SecondParseFails(t *testing.T) {
	var events []string
	obs := func(step, outcome string) { events = append(events, step) }

	out := runDivision("12", "x", divide, obs)

	require.True(t, out.IsFailure())
	assert.Equal(t, []string{"parsed-first"}, events)
}

func TestScenarioC_DivideByZero_NativeSemantics(t *testing.T) {
	var events []string
	obs := func(step, outcome string) { events = append(events, step) }

	out := runDivision("5", "0", divide, obs)

	require.True(t, out.IsSuccess(), "native float64 division yields +Inf, not a failure")
	assert.True(t, math.IsInf(out.Result(), 1))
	assert.Equal(t, []string{"parsed-first", "parsed-second"}, events)
}

func TestScenarioC_DivideByZero_StrictPolicy(t *testing.T) {
	out := runDivision("5", "0", divideStrict, seq.Nop())

	require.True(t, out.IsFailure())
	assert.Same(t, errZeroDivisor, out.Err())
}

func TestFluentChain_SameScenarios(t *testing.T) {
	// scenario A through the combinator surface instead of the coordinator
	out := seq.Then(
		seq.From(parse("12")),
		func(a float64) fallible.Result[float64] {
			return seq.Then(seq.From(parse("4")), func(b float64) fallible.Result[float64] {
				return divide(a, b)
			}).Result()
		}).Result()

	require.True(t, out.IsSuccess())
	assert.Equal(t, 3.0, out.Result())

	// scenario B: the failure passes through both layers untouched
	bad := seq.Then(
		seq.From(parse("a")),
		func(a float64) fallible.Result[float64] {
			t.Fatal("must not run")
			return fallible.Success(0.0)
		}).Result()

	require.True(t, bad.IsFailure())
	var numErr *strconv.NumError
	require.ErrorAs(t, bad.Err(), &numErr)
}

func TestFinalRenderingShowsOriginalMessage(t *testing.T) {
	cause := errors.New("custom step failure")
	out := seq.Run(func(f *seq.Flow) fallible.Result[int] {
		v := seq.Await(f, fallible.Fail[int](cause))
		return fallible.Success(v)
	})

	assert.Equal(t, "Error: custom step failure", out.String())
	assert.Same(t, cause, out.Err())
}
