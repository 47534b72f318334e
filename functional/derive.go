package functional

// DerivedFunctor is a functor built from the monad instance M:
//
//	Map(fa, f) = Bind(fa, func(a) { return Wrap(f(a)) })
//
// Instances embed it instead of hand-writing Map.
type DerivedFunctor[M Monad[A, B, FA, FB], A, B, FA, FB any] struct{}

// Map implements Functor.
func (DerivedFunctor[M, A, B, FA, FB]) Map(fa FA, f func(A) B) FB {
	var m M
	return m.Bind(fa, func(a A) FB {
		return m.Wrap(f(a))
	})
}

// DerivedApplicative is an applicative built from two monad instances over
// the same wrapper: MO binds the first operand, MI the second.
//
//	Pure = Wrap
//	Combine(fa, fb, f) = Bind(fa, a -> Bind(fb, b -> Wrap(f(a, b))))
type DerivedApplicative[MO Monad[A, C, FA, FC], MI Monad[B, C, FB, FC], A, B, C, FA, FB, FC any] struct{}

// Pure implements Pointed.
func (DerivedApplicative[MO, MI, A, B, C, FA, FB, FC]) Pure(c C) FC {
	var mo MO
	return mo.Wrap(c)
}

// Combine implements Applicative.
func (DerivedApplicative[MO, MI, A, B, C, FA, FB, FC]) Combine(fa FA, fb FB, f func(A, B) C) FC {
	var (
		mo MO
		mi MI
	)
	return mo.Bind(fa, func(a A) FC {
		return mi.Bind(fb, func(b B) FC {
			return mi.Wrap(f(a, b))
		})
	})
}
