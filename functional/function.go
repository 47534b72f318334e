package functional

// Fn is a unary function treated as a wrapper of its result.
type Fn[X, A any] func(X) A

// Fn2 is a binary function treated as a wrapper of its result.
type Fn2[X, Y, A any] func(X, Y) A

// FnFunctor maps a function by composition: Map(first, second) runs first and
// feeds its result to second.
type FnFunctor[X, A, B any] struct{}

// Map implements Functor.
func (FnFunctor[X, A, B]) Map(fa Fn[X, A], f func(A) B) Fn[X, B] {
	return func(x X) B {
		return f(fa(x))
	}
}

// Fn2Functor is FnFunctor for binary functions.
type Fn2Functor[X, Y, A, B any] struct{}

// Map implements Functor.
func (Fn2Functor[X, Y, A, B]) Map(fa Fn2[X, Y, A], f func(A) B) Fn2[X, Y, B] {
	return func(x X, y Y) B {
		return f(fa(x, y))
	}
}

// Identity returns its input unchanged.
func Identity[T any](value T) T {
	return value
}

// Compose runs f and then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe passes value through fns in order.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Const returns a function that always returns the given value.
func Const[T, U any](value T) func(U) T {
	return func(U) T {
		return value
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}

// Curry converts a two-argument function to curried form.
func Curry[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry converts a curried function to two-argument form.
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

var _ Functor[float64, int, Fn[string, float64], Fn[string, int]] = FnFunctor[string, float64, int]{}
var _ Functor[int, bool, Fn2[int, int, int], Fn2[int, int, bool]] = Fn2Functor[int, int, int, bool]{}
