// Package laws registers the algebraic laws of the functional capabilities
// as gopter properties. The same registrations back the package tests and
// the lawcheck command.
package laws

import (
	"slices"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// Eq reports whether two wrapped values are equivalent.
type Eq[T any] func(x, y T) bool

// Equal compares comparable values with ==.
func Equal[T comparable](x, y T) bool {
	return x == y
}

// SliceEqual compares slices element by element; nil and empty are equal.
func SliceEqual[S ~[]A, A comparable](x, y S) bool {
	return slices.Equal(x, y)
}

// RunEqual compares IO actions by the values they produce when run.
func RunEqual[A comparable](x, y functional.IO[A]) bool {
	return x.Run() == y.Run()
}

// ValidatedEqual compares two Validated values, including their errors.
func ValidatedEqual[E, A comparable](x, y functional.Validated[E, A]) bool {
	if x.IsValid() != y.IsValid() {
		return false
	}
	if x.IsValid() {
		return x.Value() == y.Value()
	}
	return slices.Equal(x.Errors(), y.Errors())
}

// Functor registers identity and composition for the functor instance F.
// fas generates FA values and endos generates func(A) A values.
func Functor[F functional.Functor[A, A, FA, FA], A, FA any](
	props *gopter.Properties, prefix string, fas, endos gopter.Gen, eq Eq[FA],
) {

	props.Property(prefix+": functor identity", prop.ForAll(
		func(fa FA) bool {
			return eq(functional.Map[F, A, A, FA, FA](fa, functional.Identity[A]), fa)
		},
		fas,
	))

	props.Property(prefix+": functor composition", prop.ForAll(
		func(fa FA, f, g func(A) A) bool {
			twoPasses := functional.Map[F, A, A, FA, FA](functional.Map[F, A, A, FA, FA](fa, f), g)
			onePass := functional.Map[F, A, A, FA, FA](fa, functional.Compose(f, g))
			return eq(twoPasses, onePass)
		},
		fas, endos, endos,
	))
}

// Applicative registers the pure law and the two unit laws for the
// applicative instance AP. values generates A, fas generates FA and ops
// generates func(A, A) A.
func Applicative[AP functional.Applicative[A, A, A, FA, FA, FA], A, FA any](
	props *gopter.Properties, prefix string, values, fas, ops gopter.Gen, eq Eq[FA],
) {

	pure := functional.Pure[AP, A, FA]
	combine := functional.Combine[AP, A, A, A, FA, FA, FA]

	props.Property(prefix+": applicative pure", prop.ForAll(
		func(a, b A, op func(A, A) A) bool {
			return eq(combine(pure(a), pure(b), op), pure(op(a, b)))
		},
		values, values, ops,
	))

	props.Property(prefix+": applicative left unit", prop.ForAll(
		func(a A, fa FA) bool {
			return eq(combine(pure(a), fa, func(_, y A) A { return y }), fa)
		},
		values, fas,
	))

	props.Property(prefix+": applicative right unit", prop.ForAll(
		func(fa FA, b A) bool {
			return eq(combine(fa, pure(b), func(x, _ A) A { return x }), fa)
		},
		fas, values,
	))
}

// ApplicativeAssociativity registers the associativity law of Combine.
// Pairing the first two operands and then the third must produce the same
// triples, in the same order, as pairing the last two first. P pairs two FA
// values, LO extends a pair with a third value and RO prefixes a pair with a
// first value.
func ApplicativeAssociativity[
	P functional.Applicative[A, A, functional.Pair[A, A], FA, FA, FP],
	LO functional.Applicative[functional.Pair[A, A], A, functional.Pair[A, functional.Pair[A, A]], FP, FA, FT],
	RO functional.Applicative[A, functional.Pair[A, A], functional.Pair[A, functional.Pair[A, A]], FA, FP, FT],
	A, FA, FP, FT any,
](props *gopter.Properties, prefix string, fas gopter.Gen, eq Eq[FT]) {

	pair := functional.Combine[P, A, A, functional.Pair[A, A], FA, FA, FP]

	props.Property(prefix+": applicative associativity", prop.ForAll(
		func(fa, fb, fc FA) bool {
			left := functional.Combine[LO, functional.Pair[A, A], A, functional.Pair[A, functional.Pair[A, A]], FP, FA, FT](
				pair(fa, fb, functional.NewPair[A, A]), fc,
				func(ab functional.Pair[A, A], c A) functional.Pair[A, functional.Pair[A, A]] {
					return functional.NewPair(ab.First, functional.NewPair(ab.Second, c))
				},
			)
			right := functional.Combine[RO, A, functional.Pair[A, A], functional.Pair[A, functional.Pair[A, A]], FA, FP, FT](
				fa, pair(fb, fc, functional.NewPair[A, A]),
				functional.NewPair[A, functional.Pair[A, A]],
			)
			return eq(left, right)
		},
		fas, fas, fas,
	))
}

// Monad registers left identity, right identity and associativity for the
// monad instance M. kleislis generates func(A) MA values.
func Monad[M functional.Monad[A, A, MA, MA], A, MA any](
	props *gopter.Properties, prefix string, values, mas, kleislis gopter.Gen, eq Eq[MA],
) {

	wrap := functional.Wrap[M, A, MA]
	bind := functional.Bind[M, A, A, MA, MA]

	props.Property(prefix+": monad left identity", prop.ForAll(
		func(a A, f func(A) MA) bool {
			return eq(bind(wrap(a), f), f(a))
		},
		values, kleislis,
	))

	props.Property(prefix+": monad right identity", prop.ForAll(
		func(ma MA) bool {
			return eq(bind(ma, wrap), ma)
		},
		mas,
	))

	props.Property(prefix+": monad associativity", prop.ForAll(
		func(ma MA, f, g func(A) MA) bool {
			left := bind(bind(ma, f), g)
			right := bind(ma, func(a A) MA { return bind(f(a), g) })
			return eq(left, right)
		},
		mas, kleislis, kleislis,
	))
}

// Monoid registers associativity and two-sided identity for the monoid
// instance MO under the element operator op, which must itself be
// associative.
func Monoid[MO functional.Monoid[A, MA], A, MA any](
	props *gopter.Properties, prefix string, mas gopter.Gen, op func(A, A) A, eq Eq[MA],
) {

	mappend := func(x, y MA) MA { return functional.Mappend[MO, A, MA](x, y, op) }
	empty := functional.Mempty[MO, A, MA]()

	props.Property(prefix+": monoid associativity", prop.ForAll(
		func(x, y, z MA) bool {
			return eq(mappend(mappend(x, y), z), mappend(x, mappend(y, z)))
		},
		mas, mas, mas,
	))

	props.Property(prefix+": monoid identity", prop.ForAll(
		func(x MA) bool {
			return eq(mappend(empty, x), x) && eq(mappend(x, empty), x)
		},
		mas,
	))
}
