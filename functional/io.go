package functional

// Nothing is the result of an IO that only performs an effect.
type Nothing = struct{}

// IO is a deferred action. Composing IO values never runs them; Run does,
// synchronously, on the calling goroutine.
type IO[A any] struct {
	action func() A
}

// NewIO wraps action without running it.
func NewIO[A any](action func() A) IO[A] {
	return IO[A]{action: action}
}

// Action wraps an effect that produces no value.
func Action(effect func()) IO[Nothing] {
	return IO[Nothing]{action: func() Nothing {
		effect()
		return Nothing{}
	}}
}

// Run executes the action and returns its result. A zero IO returns the
// zero value of A.
func (io IO[A]) Run() A {
	if io.action == nil {
		var zero A
		return zero
	}
	return io.action()
}

// IOMonad is the monad instance for IO. Bind builds a new action that, when
// run, runs ma to completion and feeds its result to f before running the
// action f returns.
type IOMonad[A, B any] struct{}

// Wrap implements Monad.
func (IOMonad[A, B]) Wrap(b B) IO[B] {
	return NewIO(func() B { return b })
}

// Bind implements Monad.
func (IOMonad[A, B]) Bind(ma IO[A], f func(A) IO[B]) IO[B] {
	return NewIO(func() B {
		return f(ma.Run()).Run()
	})
}

// IOFunctor is the functor instance for IO, derived from IOMonad.
type IOFunctor[A, B any] struct {
	DerivedFunctor[IOMonad[A, B], A, B, IO[A], IO[B]]
}

// IOApplicative is the applicative instance for IO, derived from IOMonad.
// The first action runs before the second.
type IOApplicative[A, B, C any] struct {
	DerivedApplicative[IOMonad[A, C], IOMonad[B, C], A, B, C, IO[A], IO[B], IO[C]]
}

var _ Monad[int, string, IO[int], IO[string]] = IOMonad[int, string]{}
var _ Functor[int, string, IO[int], IO[string]] = IOFunctor[int, string]{}
var _ Applicative[int, int, string, IO[int], IO[int], IO[string]] = IOApplicative[int, int, string]{}
