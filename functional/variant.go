package functional

// Cases2 holds one handler per case of a two-case union. Build it with On2,
// which requires every handler.
type Cases2[A, B, X, Y any] struct {
	first  func(A) X
	second func(B) Y
}

// On2 builds the handler set for a two-case union.
func On2[A, B, X, Y any](first func(A) X, second func(B) Y) Cases2[A, B, X, Y] {
	return Cases2[A, B, X, Y]{first: first, second: second}
}

// Cases3 holds one handler per case of a three-case union.
type Cases3[A, B, C, X, Y, Z any] struct {
	first  func(A) X
	second func(B) Y
	third  func(C) Z
}

// On3 builds the handler set for a three-case union.
func On3[A, B, C, X, Y, Z any](first func(A) X, second func(B) Y, third func(C) Z) Cases3[A, B, C, X, Y, Z] {
	return Cases3[A, B, C, X, Y, Z]{first: first, second: second, third: third}
}

// Cases4 holds one handler per case of a four-case union.
type Cases4[A, B, C, D, W, X, Y, Z any] struct {
	first  func(A) W
	second func(B) X
	third  func(C) Y
	fourth func(D) Z
}

// On4 builds the handler set for a four-case union.
func On4[A, B, C, D, W, X, Y, Z any](
	first func(A) W, second func(B) X, third func(C) Y, fourth func(D) Z,
) Cases4[A, B, C, D, W, X, Y, Z] {

	return Cases4[A, B, C, D, W, X, Y, Z]{
		first:  first,
		second: second,
		third:  third,
		fourth: fourth,
	}
}

// Variant2 holds exactly one of A or B. Unlike Either neither case is
// privileged.
type Variant2[A, B any] struct {
	a     A
	b     B
	index int
}

// Case1Of2 creates a Variant2 holding its first case.
func Case1Of2[A, B any](a A) Variant2[A, B] {
	return Variant2[A, B]{a: a, index: 1}
}

// Case2Of2 creates a Variant2 holding its second case.
func Case2Of2[A, B any](b B) Variant2[A, B] {
	return Variant2[A, B]{b: b, index: 2}
}

// Index returns the 1-based position of the active case.
func (v Variant2[A, B]) Index() int {
	return v.index
}

// First returns the first case and whether it is active.
func (v Variant2[A, B]) First() (A, bool) {
	return v.a, v.index == 1
}

// Second returns the second case and whether it is active.
func (v Variant2[A, B]) Second() (B, bool) {
	return v.b, v.index == 2
}

// Variant3 holds exactly one of A, B or C.
type Variant3[A, B, C any] struct {
	a     A
	b     B
	c     C
	index int
}

// Case1Of3 creates a Variant3 holding its first case.
func Case1Of3[A, B, C any](a A) Variant3[A, B, C] {
	return Variant3[A, B, C]{a: a, index: 1}
}

// Case2Of3 creates a Variant3 holding its second case.
func Case2Of3[A, B, C any](b B) Variant3[A, B, C] {
	return Variant3[A, B, C]{b: b, index: 2}
}

// Case3Of3 creates a Variant3 holding its third case.
func Case3Of3[A, B, C any](c C) Variant3[A, B, C] {
	return Variant3[A, B, C]{c: c, index: 3}
}

// Index returns the 1-based position of the active case.
func (v Variant3[A, B, C]) Index() int {
	return v.index
}

// First returns the first case and whether it is active.
func (v Variant3[A, B, C]) First() (A, bool) {
	return v.a, v.index == 1
}

// Second returns the second case and whether it is active.
func (v Variant3[A, B, C]) Second() (B, bool) {
	return v.b, v.index == 2
}

// Third returns the third case and whether it is active.
func (v Variant3[A, B, C]) Third() (C, bool) {
	return v.c, v.index == 3
}

// Variant4 holds exactly one of A, B, C or D.
type Variant4[A, B, C, D any] struct {
	a     A
	b     B
	c     C
	d     D
	index int
}

// Case1Of4 creates a Variant4 holding its first case.
func Case1Of4[A, B, C, D any](a A) Variant4[A, B, C, D] {
	return Variant4[A, B, C, D]{a: a, index: 1}
}

// Case2Of4 creates a Variant4 holding its second case.
func Case2Of4[A, B, C, D any](b B) Variant4[A, B, C, D] {
	return Variant4[A, B, C, D]{b: b, index: 2}
}

// Case3Of4 creates a Variant4 holding its third case.
func Case3Of4[A, B, C, D any](c C) Variant4[A, B, C, D] {
	return Variant4[A, B, C, D]{c: c, index: 3}
}

// Case4Of4 creates a Variant4 holding its fourth case.
func Case4Of4[A, B, C, D any](d D) Variant4[A, B, C, D] {
	return Variant4[A, B, C, D]{d: d, index: 4}
}

// Index returns the 1-based position of the active case.
func (v Variant4[A, B, C, D]) Index() int {
	return v.index
}

// First returns the first case and whether it is active.
func (v Variant4[A, B, C, D]) First() (A, bool) {
	return v.a, v.index == 1
}

// Second returns the second case and whether it is active.
func (v Variant4[A, B, C, D]) Second() (B, bool) {
	return v.b, v.index == 2
}

// Third returns the third case and whether it is active.
func (v Variant4[A, B, C, D]) Third() (C, bool) {
	return v.c, v.index == 3
}

// Fourth returns the fourth case and whether it is active.
func (v Variant4[A, B, C, D]) Fourth() (D, bool) {
	return v.d, v.index == 4
}

// Variant2Multifunctor is the multifunctor instance for Variant2.
type Variant2Multifunctor[A, B, X, Y any] struct{}

// Multimap implements Multifunctor. The zero Variant2 has no active case and
// maps to the zero Variant2.
func (Variant2Multifunctor[A, B, X, Y]) Multimap(v Variant2[A, B], h Cases2[A, B, X, Y]) Variant2[X, Y] {
	switch v.index {
	case 1:
		return Case1Of2[X, Y](h.first(v.a))
	case 2:
		return Case2Of2[X](h.second(v.b))
	default:
		return Variant2[X, Y]{}
	}
}

// Variant3Multifunctor is the multifunctor instance for Variant3.
type Variant3Multifunctor[A, B, C, X, Y, Z any] struct{}

// Multimap implements Multifunctor.
func (Variant3Multifunctor[A, B, C, X, Y, Z]) Multimap(v Variant3[A, B, C], h Cases3[A, B, C, X, Y, Z]) Variant3[X, Y, Z] {
	switch v.index {
	case 1:
		return Case1Of3[X, Y, Z](h.first(v.a))
	case 2:
		return Case2Of3[X, Y, Z](h.second(v.b))
	case 3:
		return Case3Of3[X, Y](h.third(v.c))
	default:
		return Variant3[X, Y, Z]{}
	}
}

// Variant4Multifunctor is the multifunctor instance for Variant4.
type Variant4Multifunctor[A, B, C, D, W, X, Y, Z any] struct{}

// Multimap implements Multifunctor.
func (Variant4Multifunctor[A, B, C, D, W, X, Y, Z]) Multimap(
	v Variant4[A, B, C, D], h Cases4[A, B, C, D, W, X, Y, Z],
) Variant4[W, X, Y, Z] {

	switch v.index {
	case 1:
		return Case1Of4[W, X, Y, Z](h.first(v.a))
	case 2:
		return Case2Of4[W, X, Y, Z](h.second(v.b))
	case 3:
		return Case3Of4[W, X, Y, Z](h.third(v.c))
	case 4:
		return Case4Of4[W, X, Y](h.fourth(v.d))
	default:
		return Variant4[W, X, Y, Z]{}
	}
}

var _ Multifunctor[Variant2[int, string], Cases2[int, string, string, int], Variant2[string, int]] = Variant2Multifunctor[int, string, string, int]{}
var _ Multifunctor[Variant3[int, string, error], Cases3[int, string, error, Option[int], string, error], Variant3[Option[int], string, error]] = Variant3Multifunctor[int, string, error, Option[int], string, error]{}
var _ Multifunctor[Variant4[int, int, int, int], Cases4[int, int, int, int, bool, bool, bool, bool], Variant4[bool, bool, bool, bool]] = Variant4Multifunctor[int, int, int, int, bool, bool, bool, bool]{}
