package functional

// Option represents an optional value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
		return
	}
	onNone()
}

// Filter returns None if predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr converts Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// MatchOption folds an Option into a single value.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// OptionMonad is the hand-written monad instance for Option. None short
// circuits: f is never called and None propagates.
type OptionMonad[A, B any] struct{}

// Wrap implements Monad.
func (OptionMonad[A, B]) Wrap(b B) Option[B] {
	return Some(b)
}

// Bind implements Monad.
func (OptionMonad[A, B]) Bind(ma Option[A], f func(A) Option[B]) Option[B] {
	if !ma.present {
		return None[B]()
	}
	return f(ma.value)
}

// OptionFunctor is the functor instance for Option, derived from OptionMonad.
type OptionFunctor[A, B any] struct {
	DerivedFunctor[OptionMonad[A, B], A, B, Option[A], Option[B]]
}

// OptionApplicative is the applicative instance for Option, derived from
// OptionMonad. The result is None unless both operands are present.
type OptionApplicative[A, B, C any] struct {
	DerivedApplicative[OptionMonad[A, C], OptionMonad[B, C], A, B, C, Option[A], Option[B], Option[C]]
}

// OptionMonoid appends two Options: None is the identity and two present
// values are combined with the operator.
type OptionMonoid[A any] struct{}

// Mempty implements Monoid.
func (OptionMonoid[A]) Mempty() Option[A] {
	return None[A]()
}

// Mappend implements Monoid.
func (OptionMonoid[A]) Mappend(x, y Option[A], op func(A, A) A) Option[A] {
	switch {
	case x.present && y.present:
		return Some(op(x.value, y.value))
	case x.present:
		return x
	default:
		return y
	}
}

var _ Monad[int, string, Option[int], Option[string]] = OptionMonad[int, string]{}
var _ Functor[int, string, Option[int], Option[string]] = OptionFunctor[int, string]{}
var _ Applicative[int, bool, string, Option[int], Option[bool], Option[string]] = OptionApplicative[int, bool, string]{}
var _ Monoid[int, Option[int]] = OptionMonoid[int]{}
