// Package lndfn provides functional instances for the Option and Result
// types of github.com/lightningnetwork/lnd/fn, so values produced by code
// built on that package can go through the same Map, Combine and Bind as the
// wrappers of the functional package.
package lndfn

import (
	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/lightningnetwork/lnd/fn"
)

// OptionMonad is the monad instance for fn.Option.
type OptionMonad[A, B any] struct{}

// Wrap implements functional.Monad.
func (OptionMonad[A, B]) Wrap(b B) fn.Option[B] {
	return fn.Some(b)
}

// Bind implements functional.Monad.
func (OptionMonad[A, B]) Bind(ma fn.Option[A], f func(A) fn.Option[B]) fn.Option[B] {
	return fn.ElimOption(ma, fn.None[B], f)
}

// OptionFunctor is the functor instance for fn.Option.
type OptionFunctor[A, B any] struct{}

// Map implements functional.Functor.
func (OptionFunctor[A, B]) Map(fa fn.Option[A], f func(A) B) fn.Option[B] {
	return fn.MapOption(f)(fa)
}

// OptionApplicative is the applicative instance for fn.Option.
type OptionApplicative[A, B, C any] struct{}

// Pure implements functional.Pointed.
func (OptionApplicative[A, B, C]) Pure(c C) fn.Option[C] {
	return fn.Some(c)
}

// Combine implements functional.Applicative.
func (OptionApplicative[A, B, C]) Combine(fa fn.Option[A], fb fn.Option[B], f func(A, B) C) fn.Option[C] {
	return fn.LiftA2Option(f)(fa, fb)
}

// ResultMonad is the monad instance for fn.Result.
type ResultMonad[A, B any] struct{}

// Wrap implements functional.Monad.
func (ResultMonad[A, B]) Wrap(b B) fn.Result[B] {
	return fn.Ok(b)
}

// Bind implements functional.Monad.
func (ResultMonad[A, B]) Bind(ma fn.Result[A], f func(A) fn.Result[B]) fn.Result[B] {
	return fn.FlatMap(ma, f)
}

// ResultFunctor is the functor instance for fn.Result, derived from
// ResultMonad.
type ResultFunctor[A, B any] struct {
	functional.DerivedFunctor[ResultMonad[A, B], A, B, fn.Result[A], fn.Result[B]]
}

// ResultApplicative is the applicative instance for fn.Result, derived from
// ResultMonad. The first error wins.
type ResultApplicative[A, B, C any] struct {
	functional.DerivedApplicative[ResultMonad[A, C], ResultMonad[B, C], A, B, C, fn.Result[A], fn.Result[B], fn.Result[C]]
}

// FromOption converts an fn.Option to a functional.Option.
func FromOption[A any](o fn.Option[A]) functional.Option[A] {
	return fn.ElimOption(o, functional.None[A], functional.Some[A])
}

// ToOption converts a functional.Option to an fn.Option.
func ToOption[A any](o functional.Option[A]) fn.Option[A] {
	return functional.MatchOption(o, fn.Some[A], fn.None[A])
}

// FromResult converts an fn.Result to a functional.Result.
func FromResult[A any](r fn.Result[A]) functional.Result[A] {
	return functional.Try(r.Unpack)
}

// ToResult converts a functional.Result to an fn.Result.
func ToResult[A any](r functional.Result[A]) fn.Result[A] {
	v, err := r.Unpack()
	if r.IsErr() {
		return fn.Err[A](err)
	}
	return fn.Ok(v)
}

var _ functional.Monad[int, string, fn.Option[int], fn.Option[string]] = OptionMonad[int, string]{}
var _ functional.Functor[int, string, fn.Option[int], fn.Option[string]] = OptionFunctor[int, string]{}
var _ functional.Applicative[int, int, int, fn.Option[int], fn.Option[int], fn.Option[int]] = OptionApplicative[int, int, int]{}
var _ functional.Monad[int, string, fn.Result[int], fn.Result[string]] = ResultMonad[int, string]{}
var _ functional.Functor[int, string, fn.Result[int], fn.Result[string]] = ResultFunctor[int, string]{}
var _ functional.Applicative[int, int, int, fn.Result[int], fn.Result[int], fn.Result[int]] = ResultApplicative[int, int, int]{}
