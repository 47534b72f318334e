package functional

import "errors"

// Validated is a validation outcome that accumulates errors instead of
// stopping at the first one. It has an applicative instance but no monad:
// Bind could not see the errors of later steps.
type Validated[E, A any] struct {
	value  A
	errors []E
	valid  bool
}

// Valid creates a valid result.
func Valid[E, A any](value A) Validated[E, A] {
	return Validated[E, A]{value: value, valid: true}
}

// Invalid creates an invalid result with errors.
func Invalid[E, A any](errs ...E) Validated[E, A] {
	return Validated[E, A]{errors: errs}
}

// IsValid returns true if the validation passed.
func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

// Value returns the value (panics if invalid).
func (v Validated[E, A]) Value() A {
	if !v.valid {
		panic("cannot get value from invalid Validated")
	}
	return v.value
}

// Errors returns the accumulated errors (empty if valid).
func (v Validated[E, A]) Errors() []E {
	return v.errors
}

// ValidatedToResult converts to a Result, joining all errors if invalid.
func ValidatedToResult[A any](v Validated[error, A]) Result[A] {
	if v.valid {
		return Ok(v.value)
	}
	if len(v.errors) == 0 {
		return Err[A](errors.New("validation failed"))
	}
	return Err[A](errors.Join(v.errors...))
}

// ValidatedFunctor is the functor instance for Validated.
type ValidatedFunctor[E, A, B any] struct{}

// Map implements Functor.
func (ValidatedFunctor[E, A, B]) Map(fa Validated[E, A], f func(A) B) Validated[E, B] {
	if !fa.valid {
		return Validated[E, B]{errors: fa.errors}
	}
	return Valid[E](f(fa.value))
}

// ValidatedApplicative is the applicative instance for Validated. When both
// operands are invalid the errors of the first come before those of the
// second.
type ValidatedApplicative[E, A, B, C any] struct{}

// Pure implements Pointed.
func (ValidatedApplicative[E, A, B, C]) Pure(c C) Validated[E, C] {
	return Valid[E](c)
}

// Combine implements Applicative.
func (ValidatedApplicative[E, A, B, C]) Combine(fa Validated[E, A], fb Validated[E, B], f func(A, B) C) Validated[E, C] {
	if fa.valid && fb.valid {
		return Valid[E](f(fa.value, fb.value))
	}
	errs := make([]E, 0, len(fa.errors)+len(fb.errors))
	errs = append(errs, fa.errors...)
	errs = append(errs, fb.errors...)
	return Invalid[E, C](errs...)
}

var _ Functor[int, string, Validated[error, int], Validated[error, string]] = ValidatedFunctor[error, int, string]{}
var _ Applicative[int, int, int, Validated[string, int], Validated[string, int], Validated[string, int]] = ValidatedApplicative[string, int, int, int]{}
