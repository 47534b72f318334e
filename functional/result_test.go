package functional_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/authcorp/libs/go/src/typeclass/testutil"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResultBind(t *testing.T) {
	type m = functional.ResultMonad[string, int]

	parse := func(s string) functional.Result[int] {
		return functional.Try(func() (int, error) { return strconv.Atoi(s) })
	}

	require.Equal(t, 42, functional.Bind[m](functional.Ok("42"), parse).Unwrap())
	require.True(t, functional.Bind[m](functional.Ok("x"), parse).IsErr())

	errBoom := errors.New("boom")
	called := false
	got := functional.Bind[m](functional.Err[string](errBoom), func(s string) functional.Result[int] {
		called = true
		return parse(s)
	})
	require.ErrorIs(t, got.UnwrapErr(), errBoom)
	require.False(t, called)
}

func TestResultDerivedInstances(t *testing.T) {
	require.Equal(t, "10", functional.Map[functional.ResultFunctor[int, string]](functional.Ok(1), timesTenString).Unwrap())

	type ap = functional.ResultApplicative[int, int, int]
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	require.Equal(t, 5, functional.Combine[ap](functional.Ok(2), functional.Ok(3), functional.Sum[int]).Unwrap())
	got := functional.Combine[ap](functional.Err[int](errFirst), functional.Err[int](errSecond), functional.Sum[int])
	require.ErrorIs(t, got.UnwrapErr(), errFirst)
	require.Equal(t, 1, functional.Pure[ap](1).Unwrap())
}

func TestResultHelpers(t *testing.T) {
	errBoom := errors.New("boom")

	v, err := functional.Ok(3).Unpack()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = functional.Err[int](errBoom).Unpack()
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 7, functional.Err[int](errBoom).UnwrapOr(7))
	require.Equal(t, functional.Some(3), functional.Ok(3).ToOption())
	require.True(t, functional.Err[int](errBoom).ToOption().IsNone())
	require.Equal(t, 3, functional.FromOption(functional.Some(3), errBoom).Unwrap())
	require.ErrorIs(t, functional.FromOption(functional.None[int](), errBoom).UnwrapErr(), errBoom)
	require.Panics(t, func() { functional.Err[int](errBoom).Unwrap() })
	require.Panics(t, func() { functional.Ok(1).UnwrapErr() })

	var seen []int
	for v := range functional.Ok(9).All() {
		seen = append(seen, v)
	}
	for v := range functional.Err[int](errBoom).All() {
		seen = append(seen, v)
	}
	require.Equal(t, []int{9}, seen)
}

func TestResultNilCause(t *testing.T) {
	r := functional.Err[int](nil)
	require.True(t, r.IsErr())
	require.ErrorIs(t, r.UnwrapErr(), functional.ErrNilCause)
	require.PanicsWithValue(t, "called Unwrap on Err: "+functional.ErrNilCause.Error(), func() { r.Unwrap() })

	_, err := r.Unpack()
	require.ErrorIs(t, err, functional.ErrNilCause)

	var zero functional.Result[int]
	require.PanicsWithValue(t, "called Unwrap on Err: "+functional.ErrNilCause.Error(), func() { zero.Unwrap() })
	_, err = zero.Unpack()
	require.ErrorIs(t, err, functional.ErrNilCause)

	bound := functional.Bind[functional.ResultMonad[int, string]](zero, func(v int) functional.Result[string] {
		return functional.Ok(strconv.Itoa(v))
	})
	require.ErrorIs(t, bound.UnwrapErr(), functional.ErrNilCause)
}

// TestResultFunctorLaws verifies the functor laws for the derived instance.
func TestResultFunctorLaws(t *testing.T) {
	type fn = functional.ResultFunctor[int, int]

	rapid.Check(t, func(t *rapid.T) {
		r := testutil.ResultGen(rapid.IntRange(-1000, 1000), testutil.ErrorGen()).Draw(t, "result")
		f := func(x int) int { return x + 2 }
		g := func(x int) int { return x * 5 }

		require.Equal(t, r, functional.Map[fn](r, functional.Identity[int]))
		require.Equal(t,
			functional.Map[fn](functional.Map[fn](r, f), g),
			functional.Map[fn](r, functional.Compose(f, g)),
		)
	})
}
