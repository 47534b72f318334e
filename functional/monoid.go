package functional

import "golang.org/x/exp/constraints"

// Monoid is implemented by instances that can append two wrapped values with
// an associative operator and that provide an identity element.
//
// Laws:
//
//	Mappend(Mappend(a, b, op), c, op) == Mappend(a, Mappend(b, c, op), op)
//	Mappend(Mempty(), a, op) == a == Mappend(a, Mempty(), op)
type Monoid[A, MA any] interface {
	Mempty() MA
	Mappend(x, y MA, op func(A, A) A) MA
}

// Addable is the set of content types the default operator Sum supports.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Sum is the default monoid operator.
func Sum[A Addable](x, y A) A {
	return x + y
}

// Mempty returns the identity element of the monoid instance M.
func Mempty[M Monoid[A, MA], A, MA any]() MA {
	var inst M
	return inst.Mempty()
}

// Mappend forwards to the Mappend of the monoid instance M.
func Mappend[M Monoid[A, MA], A, MA any](x, y MA, op func(A, A) A) MA {
	var inst M
	return inst.Mappend(x, y, op)
}

// MappendSum appends x and y using addition on the content.
func MappendSum[M Monoid[A, MA], A Addable, MA any](x, y MA) MA {
	return Mappend[M, A, MA](x, y, Sum[A])
}

// Mconcat folds xs from the left, starting from Mempty.
func Mconcat[M Monoid[A, MA], A, MA any](op func(A, A) A, xs ...MA) MA {
	acc := Mempty[M, A, MA]()
	for _, x := range xs {
		acc = Mappend[M, A, MA](acc, x, op)
	}
	return acc
}
