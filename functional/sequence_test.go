package functional_test

import (
	"testing"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/authcorp/libs/go/src/typeclass/testutil"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// digits is a named slice type; the sequence instances must preserve it.
type digits []int

func TestSequenceMap(t *testing.T) {
	got := functional.Map[functional.SliceFunctor[int, string]]([]int{1, 2, 3}, timesTenString)
	require.Equal(t, []string{"10", "20", "30"}, got)

	require.Empty(t, functional.Map[functional.SliceFunctor[int, string]](nil, timesTenString))

	named := functional.Map[functional.SequenceFunctor[int, int, digits, digits]](digits{1, 2}, func(v int) int {
		return v + 1
	})
	require.IsType(t, digits{}, named)
	require.Equal(t, digits{2, 3}, named)
}

func TestSequenceCombine(t *testing.T) {
	type ap = functional.SliceApplicative[int, int, int]

	got := functional.Combine[ap]([]int{1, 2}, []int{10, 20}, functional.Sum[int])
	require.Equal(t, []int{11, 21, 12, 22}, got)

	require.Empty(t, functional.Combine[ap]([]int{1, 2}, nil, functional.Sum[int]))
	require.Equal(t, []int{7}, functional.Pure[ap](7))

	pairs := functional.Product[functional.SliceApplicative[int, string, functional.Pair[int, string]]](
		[]int{1, 2}, []string{"a"},
	)
	require.Equal(t, []functional.Pair[int, string]{
		functional.NewPair(1, "a"),
		functional.NewPair(2, "a"),
	}, pairs)
}

func TestSequenceBind(t *testing.T) {
	type m = functional.SliceMonad[int, int]

	got := functional.Bind[m]([]int{1, 2}, func(x int) []int { return []int{x, x * 10} })
	require.Equal(t, []int{1, 10, 2, 20}, got)

	dropped := functional.Bind[m]([]int{1, 2, 3}, func(x int) []int {
		if x == 2 {
			return nil
		}
		return []int{x}
	})
	require.Equal(t, []int{1, 3}, dropped)
	require.Equal(t, []int{5}, functional.Wrap[m](5))
}

func TestSequenceMonoid(t *testing.T) {
	type mo = functional.SequenceMonoid[int, digits]

	require.Equal(t, digits{1, 2, 3}, functional.MappendSum[mo](digits{1}, digits{2, 3}))
	require.Empty(t, functional.Mempty[mo]())
	require.Equal(t, digits{1, 2, 3, 4},
		functional.Mconcat[mo](functional.Sum[int], digits{1}, digits{}, digits{2, 3}, digits{4}),
	)
}

func TestSequenceMappendDoesNotAlias(t *testing.T) {
	x := make([]int, 1, 4)
	x[0] = 1
	out := functional.MappendSum[functional.SliceMonoid[int]](x, []int{2})
	out[0] = 99
	require.Equal(t, 1, x[0])
}

// TestSequenceFunctorLaws verifies the functor laws and that Map keeps length.
func TestSequenceFunctorLaws(t *testing.T) {
	type fn = functional.SliceFunctor[int, int]

	rapid.Check(t, func(t *rapid.T) {
		xs := testutil.SliceGen(rapid.IntRange(-1000, 1000)).Draw(t, "xs")
		f := func(x int) int { return x - 3 }
		g := func(x int) int { return x * 2 }

		mapped := functional.Map[fn](xs, functional.Identity[int])
		require.Equal(t, len(xs), len(mapped))
		for i := range xs {
			require.Equal(t, xs[i], mapped[i])
		}

		require.Equal(t,
			functional.Map[fn](functional.Map[fn](xs, f), g),
			functional.Map[fn](xs, functional.Compose(f, g)),
		)
	})
}

// TestSequenceMonadLaws verifies left identity, right identity and associativity.
func TestSequenceMonadLaws(t *testing.T) {
	type m = functional.SliceMonad[int, int]

	f := func(x int) []int { return []int{x, x + 1} }
	g := func(x int) []int {
		if x%2 == 0 {
			return nil
		}
		return []int{x * 2}
	}

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		xs := testutil.SliceGen(rapid.IntRange(-1000, 1000)).Draw(t, "xs")

		require.Equal(t, f(a), functional.Bind[m](functional.Wrap[m](a), f))
		require.ElementsMatch(t, xs, functional.Bind[m](xs, functional.Wrap[m, int, []int]))

		left := functional.Bind[m](functional.Bind[m](xs, f), g)
		right := functional.Bind[m](xs, func(x int) []int {
			return functional.Bind[m](f(x), g)
		})
		require.Equal(t, left, right)
	})
}

// TestSequenceCombineSize verifies that Combine yields len(a)*len(b) elements.
func TestSequenceCombineSize(t *testing.T) {
	type ap = functional.SliceApplicative[int, int, int]

	rapid.Check(t, func(t *rapid.T) {
		a := testutil.SliceGen(rapid.Int()).Draw(t, "a")
		b := testutil.SliceGen(rapid.Int()).Draw(t, "b")

		got := functional.Combine[ap](a, b, func(x, _ int) int { return x })
		require.Len(t, got, len(a)*len(b))
	})
}
