package functional

// Sequence is the container-kind constraint for ordered sequences: any slice
// type, named or not, whose elements are A.
type Sequence[A any] interface {
	~[]A
}

// appendAll copies every element of srcs, in order, to the end of dst.
func appendAll[S Sequence[A], A any](dst S, srcs ...S) S {
	for _, src := range srcs {
		dst = append(dst, src...)
	}
	return dst
}

// SequenceMonad is the monad instance for sequences. Bind applies f to every
// element and concatenates the results in element order.
type SequenceMonad[A, B any, SA Sequence[A], SB Sequence[B]] struct{}

// Wrap implements Monad.
func (SequenceMonad[A, B, SA, SB]) Wrap(b B) SB {
	return SB{b}
}

// Bind implements Monad.
func (SequenceMonad[A, B, SA, SB]) Bind(ma SA, f func(A) SB) SB {
	var out SB
	for _, a := range ma {
		out = appendAll[SB, B](out, f(a))
	}
	return out
}

// SequenceFunctor is the functor instance for sequences, derived from
// SequenceMonad. Length and order are preserved.
type SequenceFunctor[A, B any, SA Sequence[A], SB Sequence[B]] struct {
	DerivedFunctor[SequenceMonad[A, B, SA, SB], A, B, SA, SB]
}

// SequenceApplicative is the applicative instance for sequences. Combine
// applies f to the cartesian product of its operands with the first operand
// as the outer loop:
//
//	Combine([a1, a2], [b1, b2], f) == [f(a1, b1), f(a1, b2), f(a2, b1), f(a2, b2)]
type SequenceApplicative[A, B, C any, SA Sequence[A], SB Sequence[B], SC Sequence[C]] struct{}

// Pure implements Pointed.
func (SequenceApplicative[A, B, C, SA, SB, SC]) Pure(c C) SC {
	return SC{c}
}

// Combine implements Applicative.
func (SequenceApplicative[A, B, C, SA, SB, SC]) Combine(fa SA, fb SB, f func(A, B) C) SC {
	out := make(SC, 0, len(fa)*len(fb))
	for _, a := range fa {
		for _, b := range fb {
			out = append(out, f(a, b))
		}
	}
	return out
}

// SequenceMonoid concatenates sequences; the empty sequence is the identity.
// The element operator is not used.
type SequenceMonoid[A any, SA Sequence[A]] struct{}

// Mempty implements Monoid.
func (SequenceMonoid[A, SA]) Mempty() SA {
	return SA{}
}

// Mappend implements Monoid.
func (SequenceMonoid[A, SA]) Mappend(x, y SA, _ func(A, A) A) SA {
	return appendAll[SA, A](make(SA, 0, len(x)+len(y)), x, y)
}

// SliceMonad is SequenceMonad for plain slices.
type SliceMonad[A, B any] struct {
	SequenceMonad[A, B, []A, []B]
}

// SliceFunctor is SequenceFunctor for plain slices.
type SliceFunctor[A, B any] struct {
	SequenceFunctor[A, B, []A, []B]
}

// SliceApplicative is SequenceApplicative for plain slices.
type SliceApplicative[A, B, C any] struct {
	SequenceApplicative[A, B, C, []A, []B, []C]
}

// SliceMonoid is SequenceMonoid for plain slices.
type SliceMonoid[A any] struct {
	SequenceMonoid[A, []A]
}

var _ Monad[int, string, []int, []string] = SliceMonad[int, string]{}
var _ Functor[int, string, []int, []string] = SliceFunctor[int, string]{}
var _ Applicative[int, int, string, []int, []int, []string] = SliceApplicative[int, int, string]{}
var _ Monoid[int, []int] = SliceMonoid[int]{}
