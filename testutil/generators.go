// Package testutil provides rapid generators for the wrapper types of the
// functional package.
package testutil

import (
	"errors"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// ErrorGen generates errors with short alphanumeric messages.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "msg"))
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// ResultGen generates Result[T] values.
func ResultGen[T any](valueGen *rapid.Generator[T], errGen *rapid.Generator[error]) *rapid.Generator[functional.Result[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Result[T] {
		if rapid.Bool().Draw(t, "isOk") {
			return functional.Ok(valueGen.Draw(t, "value"))
		}
		return functional.Err[T](errGen.Draw(t, "error"))
	})
}

// ValidatedGen generates Validated[E, A] values; invalid ones carry one to
// three errors.
func ValidatedGen[E, A any](errGen *rapid.Generator[E], valueGen *rapid.Generator[A]) *rapid.Generator[functional.Validated[E, A]] {
	return rapid.Custom(func(t *rapid.T) functional.Validated[E, A] {
		if rapid.Bool().Draw(t, "isValid") {
			return functional.Valid[E](valueGen.Draw(t, "value"))
		}
		errs := rapid.SliceOfN(errGen, 1, 3).Draw(t, "errors")
		return functional.Invalid[E, A](errs...)
	})
}

// SliceGen generates slices of up to eight elements.
func SliceGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[[]T] {
	return rapid.SliceOfN(valueGen, 0, 8)
}

// IOGen generates IO actions that return a drawn value.
func IOGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.IO[T]] {
	return rapid.Custom(func(t *rapid.T) functional.IO[T] {
		v := valueGen.Draw(t, "value")
		return functional.NewIO(func() T { return v })
	})
}

// Variant3Gen generates Variant3 values with each case equally likely.
func Variant3Gen[A, B, C any](
	aGen *rapid.Generator[A], bGen *rapid.Generator[B], cGen *rapid.Generator[C],
) *rapid.Generator[functional.Variant3[A, B, C]] {

	return rapid.Custom(func(t *rapid.T) functional.Variant3[A, B, C] {
		switch rapid.IntRange(1, 3).Draw(t, "case") {
		case 1:
			return functional.Case1Of3[A, B, C](aGen.Draw(t, "first"))
		case 2:
			return functional.Case2Of3[A, B, C](bGen.Draw(t, "second"))
		default:
			return functional.Case3Of3[A, B](cGen.Draw(t, "third"))
		}
	})
}
