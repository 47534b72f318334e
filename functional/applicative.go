package functional

// Pointed lifts a bare value into the smallest non-absent wrapped value.
type Pointed[A, FA any] interface {
	Pure(a A) FA
}

// Applicative is implemented by instances able to combine two wrapped values
// of the same shape with a binary function.
//
// Laws:
//
//	Combine(Pure(a), Pure(b), f) == Pure(f(a, b))
type Applicative[A, B, C, FA, FB, FC any] interface {
	Pointed[C, FC]
	Combine(fa FA, fb FB, f func(A, B) C) FC
}

// Pure lifts a into the wrapper of the pointed instance P.
func Pure[P Pointed[A, FA], A, FA any](a A) FA {
	var inst P
	return inst.Pure(a)
}

// Combine forwards to the Combine of the applicative instance AP.
func Combine[AP Applicative[A, B, C, FA, FB, FC], A, B, C, FA, FB, FC any](
	fa FA, fb FB, f func(A, B) C) FC {

	var inst AP
	return inst.Combine(fa, fb, f)
}

// LiftA2 turns a binary function into one over two wrapped values.
//
// LiftA2 : ((A, B) -> C) -> (F[A], F[B]) -> F[C].
func LiftA2[AP Applicative[A, B, C, FA, FB, FC], A, B, C, FA, FB, FC any](
	f func(A, B) C) func(FA, FB) FC {

	return func(fa FA, fb FB) FC {
		return Combine[AP, A, B, C, FA, FB, FC](fa, fb, f)
	}
}

// Product pairs the contents of fa and fb.
func Product[AP Applicative[A, B, Pair[A, B], FA, FB, FP], A, B, FA, FB, FP any](
	fa FA, fb FB) FP {

	return Combine[AP, A, B, Pair[A, B], FA, FB, FP](fa, fb, NewPair[A, B])
}
