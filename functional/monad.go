package functional

// Monad is implemented by instances that can sequence a wrapped value into a
// function that itself returns a wrapped value, without double wrapping.
// Wrap lifts into the result shape MB.
//
// Laws:
//
//	Bind(Wrap(a), f) == f(a)
//	Bind(m, Wrap) == m
//	Bind(Bind(m, f), g) == Bind(m, func(x) { return Bind(f(x), g) })
type Monad[A, B, MA, MB any] interface {
	Wrap(b B) MB
	Bind(ma MA, f func(A) MB) MB
}

// Wrap lifts a into the wrapper of the monad instance M.
func Wrap[M Monad[A, A, MA, MA], A, MA any](a A) MA {
	var inst M
	return inst.Wrap(a)
}

// Bind forwards to the Bind of the monad instance M. Absent or empty inputs
// never invoke f.
func Bind[M Monad[A, B, MA, MB], A, B, MA, MB any](ma MA, f func(A) MB) MB {
	var inst M
	return inst.Bind(ma, f)
}

// AndThen is an alias for Bind.
func AndThen[M Monad[A, B, MA, MB], A, B, MA, MB any](ma MA, f func(A) MB) MB {
	return Bind[M, A, B, MA, MB](ma, f)
}

// Kleisli composes two monadic functions left to right: the result of f is
// bound into g through M.
//
// Kleisli : (A -> M[B], B -> M[C]) -> A -> M[C].
func Kleisli[M Monad[B, C, MB, MC], A, B, C, MB, MC any](
	f func(A) MB, g func(B) MC) func(A) MC {

	return func(a A) MC {
		return Bind[M, B, C, MB, MC](f(a), g)
	}
}
