package functional

// Multifunctor is implemented by instances over values that hold exactly one
// of several unrelated cases. H is a handler set with one function per case;
// each case may map to a different result type, so W is usually a different
// instantiation of the same union than V.
type Multifunctor[V, H, W any] interface {
	Multimap(v V, h H) W
}

// Multimap applies the handler in h that matches the active case of v.
func Multimap[MF Multifunctor[V, H, W], V, H, W any](v V, h H) W {
	var inst MF
	return inst.Multimap(v, h)
}
