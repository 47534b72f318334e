package functional

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// PairMultifunctor maps both components of a Pair, each with its own handler.
type PairMultifunctor[A, B, X, Y any] struct{}

// Multimap implements Multifunctor.
func (PairMultifunctor[A, B, X, Y]) Multimap(p Pair[A, B], h Cases2[A, B, X, Y]) Pair[X, Y] {
	return Pair[X, Y]{First: h.first(p.First), Second: h.second(p.Second)}
}

var _ Multifunctor[Pair[int, string], Cases2[int, string, string, int], Pair[string, int]] = PairMultifunctor[int, string, string, int]{}
