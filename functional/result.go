package functional

import (
	"errors"
	"iter"
)

// ErrNilCause stands in for the cause of a Result built with Err(nil).
var ErrNilCause = errors.New("functional: Err called with nil error")

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result. A nil err is replaced by ErrNilCause.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilCause
	}
	return Result[T]{err: err}
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.cause().Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.cause()
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Unpack returns the value and error in the customary Go form.
func (r Result[T]) Unpack() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.cause()
}

// cause is the error of a failed Result; the zero Result reports ErrNilCause.
func (r Result[T]) cause() error {
	if r.err == nil {
		return ErrNilCause
	}
	return r.err
}

// ToOption converts Result to Option, discarding error.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// All returns an iterator over the Result (0 or 1 element).
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// FromOption creates a Result from an Option.
func FromOption[T any](o Option[T], err error) Result[T] {
	if o.present {
		return Ok(o.value)
	}
	return Err[T](err)
}

// ResultMonad is the monad instance for Result. An error short circuits the
// chain.
type ResultMonad[A, B any] struct{}

// Wrap implements Monad.
func (ResultMonad[A, B]) Wrap(b B) Result[B] {
	return Ok(b)
}

// Bind implements Monad.
func (ResultMonad[A, B]) Bind(ma Result[A], f func(A) Result[B]) Result[B] {
	if !ma.ok {
		return Err[B](ma.cause())
	}
	return f(ma.value)
}

// ResultFunctor is the functor instance for Result, derived from ResultMonad.
type ResultFunctor[A, B any] struct {
	DerivedFunctor[ResultMonad[A, B], A, B, Result[A], Result[B]]
}

// ResultApplicative is the applicative instance for Result, derived from
// ResultMonad. The first error encountered wins.
type ResultApplicative[A, B, C any] struct {
	DerivedApplicative[ResultMonad[A, C], ResultMonad[B, C], A, B, C, Result[A], Result[B], Result[C]]
}

var _ Monad[int, string, Result[int], Result[string]] = ResultMonad[int, string]{}
var _ Functor[int, string, Result[int], Result[string]] = ResultFunctor[int, string]{}
var _ Applicative[int, int, string, Result[int], Result[int], Result[string]] = ResultApplicative[int, int, string]{}
