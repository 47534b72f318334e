package laws

import (
	"fmt"

	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/lightningnetwork/lnd/fn"
)

// Ints generates the int contents used by the builtin suites. The range is
// small enough that generated affine functions do not overflow.
func Ints() gopter.Gen {
	return gen.IntRange(-1000, 1000)
}

// Endos generates affine functions x -> k*x + c.
func Endos() gopter.Gen {
	return gopter.CombineGens(gen.IntRange(-5, 5), gen.IntRange(-100, 100)).
		Map(func(v []interface{}) func(int) int {
			k, c := v[0].(int), v[1].(int)
			return func(x int) int { return k*x + c }
		})
}

// Ops generates binary operators x, y -> a*x + b*y.
func Ops() gopter.Gen {
	return gopter.CombineGens(gen.IntRange(-3, 3), gen.IntRange(-3, 3)).
		Map(func(v []interface{}) func(int, int) int {
			a, b := v[0].(int), v[1].(int)
			return func(x, y int) int { return a*x + b*y }
		})
}

// partial describes a generated function that fails on multiples of
// modulus and otherwise returns k*x + c.
type partial struct {
	modulus int
	k, c    int
}

func (p partial) fails(x int) bool {
	return x%p.modulus == 0
}

func (p partial) apply(x int) int {
	return p.k*x + p.c
}

func partials() gopter.Gen {
	return gopter.CombineGens(gen.IntRange(2, 5), gen.IntRange(-5, 5), gen.IntRange(-100, 100)).
		Map(func(v []interface{}) partial {
			return partial{modulus: v[0].(int), k: v[1].(int), c: v[2].(int)}
		})
}

// Options generates Option[int] values, None about half the time.
func Options() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), Ints()).
		Map(func(v []interface{}) functional.Option[int] {
			if v[0].(bool) {
				return functional.Some(v[1].(int))
			}
			return functional.None[int]()
		})
}

// OptionKleislis generates functions int -> Option[int] that return None on
// some inputs.
func OptionKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) functional.Option[int] {
		return func(x int) functional.Option[int] {
			if p.fails(x) {
				return functional.None[int]()
			}
			return functional.Some(p.apply(x))
		}
	})
}

// Eithers generates Either[string, int] values.
func Eithers() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), Ints(), gen.AlphaString()).
		Map(func(v []interface{}) functional.Either[string, int] {
			if v[0].(bool) {
				return functional.Right[string](v[1].(int))
			}
			return functional.Left[string, int](v[2].(string))
		})
}

// EitherKleislis generates functions int -> Either[string, int] that return
// Left on some inputs.
func EitherKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) functional.Either[string, int] {
		return func(x int) functional.Either[string, int] {
			if p.fails(x) {
				return functional.Left[string, int](fmt.Sprintf("divisible by %d", p.modulus))
			}
			return functional.Right[string](p.apply(x))
		}
	})
}

// Results generates Result[int] values.
func Results() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), Ints(), gen.AlphaString()).
		Map(func(v []interface{}) functional.Result[int] {
			if v[0].(bool) {
				return functional.Ok(v[1].(int))
			}
			return functional.Err[int](fmt.Errorf("generated %q", v[2].(string)))
		})
}

// ResultKleislis generates functions int -> Result[int]. Each function
// returns one shared error value so results stay comparable with ==.
func ResultKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) functional.Result[int] {
		errDivisible := fmt.Errorf("divisible by %d", p.modulus)
		return func(x int) functional.Result[int] {
			if p.fails(x) {
				return functional.Err[int](errDivisible)
			}
			return functional.Ok(p.apply(x))
		}
	})
}

// Validateds generates Validated[string, int] values with up to three
// errors.
func Validateds() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), Ints(), gen.SliceOfN(2, gen.AlphaString()), gen.IntRange(1, 2)).
		Map(func(v []interface{}) functional.Validated[string, int] {
			if v[0].(bool) {
				return functional.Valid[string](v[1].(int))
			}
			errs := v[2].([]string)
			return functional.Invalid[string, int](errs[:v[3].(int)]...)
		})
}

// Slices generates []int values; gopter's MaxSize bounds their length.
func Slices() gopter.Gen {
	return gen.SliceOf(Ints())
}

// SliceKleislis generates functions int -> []int that return zero, one or
// two elements.
func SliceKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) []int {
		return func(x int) []int {
			if p.fails(x) {
				return nil
			}
			return []int{x, p.apply(x)}
		}
	})
}

// IOs generates IO actions returning an int.
func IOs() gopter.Gen {
	return Ints().Map(func(v int) functional.IO[int] {
		return functional.NewIO(func() int { return v })
	})
}

// IOKleislis generates functions int -> IO[int].
func IOKleislis() gopter.Gen {
	return Endos().Map(func(f func(int) int) func(int) functional.IO[int] {
		return func(x int) functional.IO[int] {
			return functional.NewIO(func() int { return f(x) })
		}
	})
}

// Fns generates functions wrapped as Fn[int, int].
func Fns() gopter.Gen {
	return Endos().Map(func(f func(int) int) functional.Fn[int, int] {
		return f
	})
}

// FnEqual compares two functions on a fixed set of sample inputs.
func FnEqual(x, y functional.Fn[int, int]) bool {
	for in := -10; in <= 10; in++ {
		if x(in) != y(in) {
			return false
		}
	}
	return true
}

// LndOptions generates fn.Option[int] values.
func LndOptions() gopter.Gen {
	return Options().Map(func(o functional.Option[int]) fn.Option[int] {
		return functional.MatchOption(o, fn.Some[int], fn.None[int])
	})
}

// LndOptionKleislis generates functions int -> fn.Option[int].
func LndOptionKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) fn.Option[int] {
		return func(x int) fn.Option[int] {
			if p.fails(x) {
				return fn.None[int]()
			}
			return fn.Some(p.apply(x))
		}
	})
}

// LndResults generates fn.Result[int] values.
func LndResults() gopter.Gen {
	return Results().Map(func(r functional.Result[int]) fn.Result[int] {
		v, err := r.Unpack()
		if r.IsErr() {
			return fn.Err[int](err)
		}
		return fn.Ok(v)
	})
}

// LndResultKleislis generates functions int -> fn.Result[int] sharing one
// error value each.
func LndResultKleislis() gopter.Gen {
	return partials().Map(func(p partial) func(int) fn.Result[int] {
		errDivisible := fmt.Errorf("divisible by %d", p.modulus)
		return func(x int) fn.Result[int] {
			if p.fails(x) {
				return fn.Err[int](errDivisible)
			}
			return fn.Ok(p.apply(x))
		}
	})
}
