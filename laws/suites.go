package laws

import (
	"sort"

	"github.com/authcorp/libs/go/src/typeclass/errors"
	"github.com/authcorp/libs/go/src/typeclass/functional"
	"github.com/authcorp/libs/go/src/typeclass/interop/lndfn"
	"github.com/leanovate/gopter"
	"github.com/lightningnetwork/lnd/fn"
)

type (
	pair   = functional.Pair[int, int]
	triple = functional.Pair[int, pair]
)

// Suite is a named group of law properties for one wrapper.
type Suite struct {
	Name        string
	Description string
	register    func(props *gopter.Properties)
}

// Register adds the suite's properties to props.
func (s Suite) Register(props *gopter.Properties) {
	s.register(props)
}

var builtin = []Suite{
	{
		Name:        "option",
		Description: "Option functor, applicative, monad and monoid",
		register: func(props *gopter.Properties) {
			eq := Equal[functional.Option[int]]
			Functor[functional.OptionFunctor[int, int]](props, "option", Options(), Endos(), eq)
			Applicative[functional.OptionApplicative[int, int, int]](props, "option", Ints(), Options(), Ops(), eq)
			ApplicativeAssociativity[functional.OptionApplicative[int, int, pair], functional.OptionApplicative[pair, int, triple], functional.OptionApplicative[int, pair, triple]](
				props, "option", Options(), Equal[functional.Option[triple]])
			Monad[functional.OptionMonad[int, int]](props, "option", Ints(), Options(), OptionKleislis(), eq)
			Monoid[functional.OptionMonoid[int]](props, "option", Options(), functional.Sum[int], eq)
		},
	},
	{
		Name:        "either",
		Description: "Either functor, left-biased applicative and monad",
		register: func(props *gopter.Properties) {
			eq := Equal[functional.Either[string, int]]
			Functor[functional.EitherFunctor[string, int, int]](props, "either", Eithers(), Endos(), eq)
			Applicative[functional.EitherApplicative[string, int, int, int]](props, "either", Ints(), Eithers(), Ops(), eq)
			ApplicativeAssociativity[functional.EitherApplicative[string, int, int, pair], functional.EitherApplicative[string, pair, int, triple], functional.EitherApplicative[string, int, pair, triple]](
				props, "either", Eithers(), Equal[functional.Either[string, triple]])
			Monad[functional.EitherMonad[string, int, int]](props, "either", Ints(), Eithers(), EitherKleislis(), eq)
		},
	},
	{
		Name:        "result",
		Description: "Result functor, applicative and monad",
		register: func(props *gopter.Properties) {
			eq := Equal[functional.Result[int]]
			Functor[functional.ResultFunctor[int, int]](props, "result", Results(), Endos(), eq)
			Applicative[functional.ResultApplicative[int, int, int]](props, "result", Ints(), Results(), Ops(), eq)
			ApplicativeAssociativity[functional.ResultApplicative[int, int, pair], functional.ResultApplicative[pair, int, triple], functional.ResultApplicative[int, pair, triple]](
				props, "result", Results(), Equal[functional.Result[triple]])
			Monad[functional.ResultMonad[int, int]](props, "result", Ints(), Results(), ResultKleislis(), eq)
		},
	},
	{
		Name:        "validated",
		Description: "Validated functor and error-accumulating applicative",
		register: func(props *gopter.Properties) {
			eq := ValidatedEqual[string, int]
			Functor[functional.ValidatedFunctor[string, int, int]](props, "validated", Validateds(), Endos(), eq)
			Applicative[functional.ValidatedApplicative[string, int, int, int]](props, "validated", Ints(), Validateds(), Ops(), eq)
			ApplicativeAssociativity[functional.ValidatedApplicative[string, int, int, pair], functional.ValidatedApplicative[string, pair, int, triple], functional.ValidatedApplicative[string, int, pair, triple]](
				props, "validated", Validateds(), ValidatedEqual[string, triple])
		},
	},
	{
		Name:        "sequence",
		Description: "Slice functor, cartesian applicative, flattening monad and concatenation monoid",
		register: func(props *gopter.Properties) {
			eq := SliceEqual[[]int]
			Functor[functional.SliceFunctor[int, int]](props, "sequence", Slices(), Endos(), eq)
			Applicative[functional.SliceApplicative[int, int, int]](props, "sequence", Ints(), Slices(), Ops(), eq)
			ApplicativeAssociativity[functional.SliceApplicative[int, int, pair], functional.SliceApplicative[pair, int, triple], functional.SliceApplicative[int, pair, triple]](
				props, "sequence", Slices(), SliceEqual[[]triple])
			Monad[functional.SliceMonad[int, int]](props, "sequence", Ints(), Slices(), SliceKleislis(), eq)
			Monoid[functional.SliceMonoid[int]](props, "sequence", Slices(), functional.Sum[int], eq)
		},
	},
	{
		Name:        "io",
		Description: "IO functor, applicative and monad, compared by running",
		register: func(props *gopter.Properties) {
			eq := RunEqual[int]
			Functor[functional.IOFunctor[int, int]](props, "io", IOs(), Endos(), eq)
			Applicative[functional.IOApplicative[int, int, int]](props, "io", Ints(), IOs(), Ops(), eq)
			ApplicativeAssociativity[functional.IOApplicative[int, int, pair], functional.IOApplicative[pair, int, triple], functional.IOApplicative[int, pair, triple]](
				props, "io", IOs(), RunEqual[triple])
			Monad[functional.IOMonad[int, int]](props, "io", Ints(), IOs(), IOKleislis(), eq)
		},
	},
	{
		Name:        "function",
		Description: "Function functor (composition), compared on sample inputs",
		register: func(props *gopter.Properties) {
			Functor[functional.FnFunctor[int, int, int]](props, "function", Fns(), Endos(), FnEqual)
		},
	},
	{
		Name:        "lndfn-option",
		Description: "Instances for lnd fn.Option",
		register: func(props *gopter.Properties) {
			eq := Equal[fn.Option[int]]
			Functor[lndfn.OptionFunctor[int, int]](props, "lndfn-option", LndOptions(), Endos(), eq)
			Applicative[lndfn.OptionApplicative[int, int, int]](props, "lndfn-option", Ints(), LndOptions(), Ops(), eq)
			ApplicativeAssociativity[lndfn.OptionApplicative[int, int, pair], lndfn.OptionApplicative[pair, int, triple], lndfn.OptionApplicative[int, pair, triple]](
				props, "lndfn-option", LndOptions(), Equal[fn.Option[triple]])
			Monad[lndfn.OptionMonad[int, int]](props, "lndfn-option", Ints(), LndOptions(), LndOptionKleislis(), eq)
		},
	},
	{
		Name:        "lndfn-result",
		Description: "Instances for lnd fn.Result",
		register: func(props *gopter.Properties) {
			eq := Equal[fn.Result[int]]
			Functor[lndfn.ResultFunctor[int, int]](props, "lndfn-result", LndResults(), Endos(), eq)
			Applicative[lndfn.ResultApplicative[int, int, int]](props, "lndfn-result", Ints(), LndResults(), Ops(), eq)
			ApplicativeAssociativity[lndfn.ResultApplicative[int, int, pair], lndfn.ResultApplicative[pair, int, triple], lndfn.ResultApplicative[int, pair, triple]](
				props, "lndfn-result", LndResults(), Equal[fn.Result[triple]])
			Monad[lndfn.ResultMonad[int, int]](props, "lndfn-result", Ints(), LndResults(), LndResultKleislis(), eq)
		},
	},
}

// Builtin returns the suites for every instance in this module, sorted by
// name.
func Builtin() []Suite {
	suites := make([]Suite, len(builtin))
	copy(suites, builtin)
	sort.Slice(suites, func(i, j int) bool { return suites[i].Name < suites[j].Name })
	return suites
}

// Lookup returns the builtin suite called name.
func Lookup(name string) (Suite, error) {
	for _, s := range builtin {
		if s.Name == name {
			return s, nil
		}
	}
	return Suite{}, errors.UnknownSuite(name)
}

// Select returns the named suites in the given order, or every builtin suite
// when names is empty.
func Select(names []string) ([]Suite, error) {
	if len(names) == 0 {
		return Builtin(), nil
	}
	suites := make([]Suite, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// NewParameters builds gopter parameters for a run. A zero seed keeps
// gopter's time based seed.
func NewParameters(minSuccessful, maxSize int, seed int64) *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	if seed != 0 {
		params = gopter.DefaultTestParametersWithSeed(seed)
	}
	params.MinSuccessfulTests = minSuccessful
	params.MaxSize = maxSize
	return params
}

// Properties registers suites on a fresh property set.
func Properties(params *gopter.TestParameters, suites ...Suite) *gopter.Properties {
	props := gopter.NewProperties(params)
	for _, s := range suites {
		s.Register(props)
	}
	return props
}
