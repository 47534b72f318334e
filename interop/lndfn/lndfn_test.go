package lndfn_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/authcorp/libs/go/src/typeclass/interop/lndfn"
	"github.com/lightningnetwork/lnd/fn"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func optionGen() *rapid.Generator[fn.Option[int]] {
	return rapid.Custom(func(t *rapid.T) fn.Option[int] {
		if rapid.Bool().Draw(t, "isSome") {
			return fn.Some(rapid.IntRange(-1000, 1000).Draw(t, "value"))
		}
		return fn.None[int]()
	})
}

func TestOptionInstances(t *testing.T) {
	toString := functional.Map[lndfn.OptionFunctor[int, string]](fn.Some(4), strconv.Itoa)
	require.Equal(t, fn.Some("4"), toString)
	require.True(t, functional.Map[lndfn.OptionFunctor[int, string]](fn.None[int](), strconv.Itoa).IsNone())

	type ap = lndfn.OptionApplicative[int, int, int]
	require.Equal(t, fn.Some(5), functional.Combine[ap](fn.Some(2), fn.Some(3), functional.Sum[int]))
	require.True(t, functional.Combine[ap](fn.Some(2), fn.None[int](), functional.Sum[int]).IsNone())
	require.Equal(t, fn.Some(1), functional.Pure[ap](1))

	half := func(v int) fn.Option[int] {
		if v%2 != 0 {
			return fn.None[int]()
		}
		return fn.Some(v / 2)
	}
	require.Equal(t, fn.Some(3), functional.Bind[lndfn.OptionMonad[int, int]](fn.Some(6), half))
	require.True(t, functional.Bind[lndfn.OptionMonad[int, int]](fn.Some(3), half).IsNone())
}

func TestOptionBindSkipsNone(t *testing.T) {
	called := false
	got := functional.Bind[lndfn.OptionMonad[int, string]](fn.None[int](), func(v int) fn.Option[string] {
		called = true
		return fn.Some(strconv.Itoa(v))
	})
	require.True(t, got.IsNone())
	require.False(t, called)

	got = functional.Bind[lndfn.OptionMonad[int, string]](fn.Some(7), func(v int) fn.Option[string] {
		return fn.Some(strconv.Itoa(v))
	})
	require.Equal(t, fn.Some("7"), got)
}

// TestOptionMonadLaws verifies left identity, right identity and associativity.
func TestOptionMonadLaws(t *testing.T) {
	type m = lndfn.OptionMonad[int, int]

	f := func(x int) fn.Option[int] {
		if x%4 == 0 {
			return fn.None[int]()
		}
		return fn.Some(x - 1)
	}
	g := func(x int) fn.Option[int] { return fn.Some(x * 2) }

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		o := optionGen().Draw(t, "option")

		require.Equal(t, f(a), functional.Bind[m](functional.Wrap[m](a), f))
		require.Equal(t, o, functional.Bind[m](o, functional.Wrap[m, int, fn.Option[int]]))
		require.Equal(t,
			functional.Bind[m](functional.Bind[m](o, f), g),
			functional.Bind[m](o, func(x int) fn.Option[int] { return functional.Bind[m](f(x), g) }),
		)
	})
}

func TestResultInstances(t *testing.T) {
	parse := func(s string) fn.Result[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fn.Err[int](err)
		}
		return fn.Ok(v)
	}

	got := functional.Bind[lndfn.ResultMonad[string, int]](fn.Ok("12"), parse)
	v, err := got.Unpack()
	require.NoError(t, err)
	require.Equal(t, 12, v)

	errBoom := errors.New("boom")
	_, err = functional.Bind[lndfn.ResultMonad[string, int]](fn.Err[string](errBoom), parse).Unpack()
	require.ErrorIs(t, err, errBoom)

	mapped, err := functional.Map[lndfn.ResultFunctor[int, string]](fn.Ok(7), strconv.Itoa).Unpack()
	require.NoError(t, err)
	require.Equal(t, "7", mapped)

	type ap = lndfn.ResultApplicative[int, int, int]
	errFirst := errors.New("first")
	_, err = functional.Combine[ap](fn.Err[int](errFirst), fn.Err[int](errBoom), functional.Sum[int]).Unpack()
	require.ErrorIs(t, err, errFirst)

	sum, err := functional.Combine[ap](fn.Ok(1), fn.Ok(2), functional.Sum[int]).Unpack()
	require.NoError(t, err)
	require.Equal(t, 3, sum)
}

func TestConversions(t *testing.T) {
	require.Equal(t, functional.Some(3), lndfn.FromOption(fn.Some(3)))
	require.True(t, lndfn.FromOption(fn.None[int]()).IsNone())
	require.Equal(t, fn.Some(3), lndfn.ToOption(functional.Some(3)))
	require.True(t, lndfn.ToOption(functional.None[int]()).IsNone())

	require.Equal(t, 4, lndfn.FromResult(fn.Ok(4)).Unwrap())

	errBoom := errors.New("boom")
	require.ErrorIs(t, lndfn.FromResult(fn.Err[int](errBoom)).UnwrapErr(), errBoom)

	v, err := lndfn.ToResult(functional.Ok(5)).Unpack()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = lndfn.ToResult(functional.Err[int](errBoom)).Unpack()
	require.ErrorIs(t, err, errBoom)
}
