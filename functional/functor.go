// Package functional provides capability interfaces (Functor, Applicative,
// Monad, Monoid, Multifunctor) over Go wrapper types, together with the
// instances for Option, Either, Result, Validated, sequences, IO, functions
// and open tagged unions.
//
// Go has no higher-kinded types, so a capability is an interface over both
// the content types and the concrete wrapped types. An instance is a
// zero-size struct type implementing it for one wrapper shape. Dispatch
// functions take the instance as their first type argument:
//
//	functional.Map[functional.OptionFunctor[int, string]](functional.Some(1), strconv.Itoa)
//
// The remaining type arguments are inferred from the instance's methods. An
// instance type that does not implement the capability is a compile error.
package functional

// Functor is implemented by instances whose wrapped values can be mapped
// over. FA wraps A and FB wraps B; Map must preserve the wrapper's shape.
//
// Laws:
//
//	Map(fa, Identity) == fa
//	Map(Map(fa, f), g) == Map(fa, Compose(f, g))
type Functor[A, B, FA, FB any] interface {
	Map(fa FA, f func(A) B) FB
}

// Map forwards to the Map of the functor instance F.
func Map[F Functor[A, B, FA, FB], A, B, FA, FB any](fa FA, f func(A) B) FB {
	var inst F
	return inst.Map(fa, f)
}

// Fmap is an alias for Map.
func Fmap[F Functor[A, B, FA, FB], A, B, FA, FB any](fa FA, f func(A) B) FB {
	return Map[F, A, B, FA, FB](fa, f)
}

// Transform is an alias for Map.
func Transform[F Functor[A, B, FA, FB], A, B, FA, FB any](fa FA, f func(A) B) FB {
	return Map[F, A, B, FA, FB](fa, f)
}

// Lift turns f into a reusable function over wrapped values.
//
// Lift : (A -> B) -> F[A] -> F[B].
func Lift[F Functor[A, B, FA, FB], A, B, FA, FB any](f func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return Map[F, A, B, FA, FB](fa, f)
	}
}
