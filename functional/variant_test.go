package functional_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/authcorp/libs/go/src/typeclass/testutil"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type variant3 = functional.Variant3[int, string, error]

func variant3Cases() functional.Cases3[int, string, error, functional.Option[int], string, error] {
	return functional.On3(
		func(v int) functional.Option[int] { return functional.Some(v * 10) },
		func(s string) string { return s + "!" },
		func(err error) error { return fmt.Errorf("wrapped: %w", err) },
	)
}

func TestVariant3Multimap(t *testing.T) {
	type mf = functional.Variant3Multifunctor[int, string, error, functional.Option[int], string, error]

	t.Run("first case", func(t *testing.T) {
		got := functional.Multimap[mf](functional.Case1Of3[int, string, error](1), variant3Cases())
		require.Equal(t, 1, got.Index())
		v, ok := got.First()
		require.True(t, ok)
		require.Equal(t, functional.Some(10), v)
	})

	t.Run("second case", func(t *testing.T) {
		got := functional.Multimap[mf](functional.Case2Of3[int, string, error]("hi"), variant3Cases())
		v, ok := got.Second()
		require.True(t, ok)
		require.Equal(t, "hi!", v)
	})

	t.Run("third case", func(t *testing.T) {
		errBoom := errors.New("boom")
		got := functional.Multimap[mf](functional.Case3Of3[int, string](errBoom), variant3Cases())
		v, ok := got.Third()
		require.True(t, ok)
		require.ErrorIs(t, v, errBoom)
		require.EqualError(t, v, "wrapped: boom")
	})

	t.Run("zero value", func(t *testing.T) {
		got := functional.Multimap[mf](variant3{}, variant3Cases())
		require.Zero(t, got.Index())
	})
}

// TestVariant3MultimapKeepsCase verifies only the active case's handler runs
// and the active position never changes.
func TestVariant3MultimapKeepsCase(t *testing.T) {
	type mf = functional.Variant3Multifunctor[int, string, error, int, int, int]

	rapid.Check(t, func(t *rapid.T) {
		v := testutil.Variant3Gen(rapid.Int(), rapid.String(), testutil.ErrorGen()).Draw(t, "variant")

		calls := 0
		h := functional.On3(
			func(int) int { calls++; return 1 },
			func(string) int { calls++; return 2 },
			func(error) int { calls++; return 3 },
		)

		got := functional.Multimap[mf](v, h)
		require.Equal(t, 1, calls)
		require.Equal(t, v.Index(), got.Index())
		switch got.Index() {
		case 1:
			x, _ := got.First()
			require.Equal(t, 1, x)
		case 2:
			x, _ := got.Second()
			require.Equal(t, 2, x)
		case 3:
			x, _ := got.Third()
			require.Equal(t, 3, x)
		}
	})
}

func TestVariant2Multimap(t *testing.T) {
	type mf = functional.Variant2Multifunctor[int, string, string, int]
	h := functional.On2(timesTenString, func(s string) int { return len(s) })

	got := functional.Multimap[mf](functional.Case2Of2[int]("abc"), h)
	v, ok := got.Second()
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = got.First()
	require.False(t, ok)

	first, _ := functional.Multimap[mf](functional.Case1Of2[int, string](4), h).First()
	require.Equal(t, "40", first)
}

func TestVariant4Multimap(t *testing.T) {
	type mf = functional.Variant4Multifunctor[int, int, int, int, string, string, string, string]
	label := func(prefix string) func(int) string {
		return func(v int) string { return fmt.Sprintf("%s%d", prefix, v) }
	}
	h := functional.On4(label("a"), label("b"), label("c"), label("d"))

	cases := []functional.Variant4[int, int, int, int]{
		functional.Case1Of4[int, int, int, int](1),
		functional.Case2Of4[int, int, int, int](2),
		functional.Case3Of4[int, int, int, int](3),
		functional.Case4Of4[int, int, int](4),
	}
	want := []string{"a1", "b2", "c3", "d4"}

	for i, v := range cases {
		got := functional.Multimap[mf](v, h)
		require.Equal(t, i+1, got.Index())

		var s string
		switch got.Index() {
		case 1:
			s, _ = got.First()
		case 2:
			s, _ = got.Second()
		case 3:
			s, _ = got.Third()
		case 4:
			s, _ = got.Fourth()
		}
		require.Equal(t, want[i], s)
	}
}

func TestPairMultimap(t *testing.T) {
	type mf = functional.PairMultifunctor[int, string, string, int]

	got := functional.Multimap[mf](functional.NewPair(3, "four"), functional.On2(timesTenString, func(s string) int {
		return len(s)
	}))
	require.Equal(t, functional.NewPair("30", 4), got)

	a, b := got.Unpack()
	require.Equal(t, "30", a)
	require.Equal(t, 4, b)
	require.Equal(t, functional.NewPair(4, "30"), got.Swap())
}
