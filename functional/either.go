package functional

// Either represents a value of one of two possible types. Right holds the
// value operations act on; Left is the error case and passes through
// unchanged, so its type stays fixed across a chain.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right value or panics.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("called RightValue on Left")
	}
	return e.right
}

// LeftOr returns the left value or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Match executes one of two functions based on Either state.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
		return
	}
	onLeft(e.left)
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// MatchEither folds an Either into a single value.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// EitherMonad is the monad instance for Either with the left type fixed to L.
type EitherMonad[L, A, B any] struct{}

// Wrap implements Monad.
func (EitherMonad[L, A, B]) Wrap(b B) Either[L, B] {
	return Right[L](b)
}

// Bind implements Monad. A Left input is returned as is and f is not called.
func (EitherMonad[L, A, B]) Bind(ma Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	if !ma.isRight {
		return Left[L, B](ma.left)
	}
	return f(ma.right)
}

// EitherFunctor is the functor instance for Either, derived from EitherMonad.
type EitherFunctor[L, A, B any] struct {
	DerivedFunctor[EitherMonad[L, A, B], A, B, Either[L, A], Either[L, B]]
}

// EitherApplicative is the applicative instance for Either. It is left
// biased: when both operands are Left, the first one wins.
type EitherApplicative[L, A, B, C any] struct{}

// Pure implements Pointed.
func (EitherApplicative[L, A, B, C]) Pure(c C) Either[L, C] {
	return Right[L](c)
}

// Combine implements Applicative.
func (EitherApplicative[L, A, B, C]) Combine(fa Either[L, A], fb Either[L, B], f func(A, B) C) Either[L, C] {
	if fa.isRight && fb.isRight {
		return Right[L](f(fa.right, fb.right))
	}
	if !fa.isRight {
		return Left[L, C](fa.left)
	}
	return Left[L, C](fb.left)
}

// EitherMultifunctor maps both sides of an Either at once, each with its own
// handler.
type EitherMultifunctor[L, R, X, Y any] struct{}

// Multimap implements Multifunctor.
func (EitherMultifunctor[L, R, X, Y]) Multimap(v Either[L, R], h Cases2[L, R, X, Y]) Either[X, Y] {
	if v.isRight {
		return Right[X](h.second(v.right))
	}
	return Left[X, Y](h.first(v.left))
}

// EitherToResult converts Either[error, T] to Result[T].
func EitherToResult[T any](e Either[error, T]) Result[T] {
	if e.isRight {
		return Ok(e.right)
	}
	return Err[T](e.left)
}

// ResultToEither converts Result[T] to Either[error, T].
func ResultToEither[T any](r Result[T]) Either[error, T] {
	if r.ok {
		return Right[error](r.value)
	}
	return Left[error, T](r.err)
}

var _ Monad[int, string, Either[error, int], Either[error, string]] = EitherMonad[error, int, string]{}
var _ Functor[int, string, Either[error, int], Either[error, string]] = EitherFunctor[error, int, string]{}
var _ Applicative[int, int, int, Either[int, int], Either[int, int], Either[int, int]] = EitherApplicative[int, int, int, int]{}
var _ Multifunctor[Either[int, string], Cases2[int, string, bool, int], Either[bool, int]] = EitherMultifunctor[int, string, bool, int]{}
