// Package shapes provides membership-function shapes as named transforms of a
// sampled universe of discourse into membership degrees.
//
// A dialect vocabulary refers to shapes by catalog id (for example "trimf" or
// "gaussmf"); the Registry resolves an id to a Shape. Default returns the
// built-in catalog, which covers the IEEE 1855 shapes plus the fuzzylite and
// jFuzzyLogic variants.
package shapes

import (
	"fmt"
	"sort"
)

// Func computes membership degrees for the sample points x given the shape
// parameters p. The length of p has already been checked against the arity.
type Func func(x []float64, p []float64) []float64

// Variadic marks a shape that takes an arbitrary, even-length point list.
const Variadic = -1

// Shape is a named membership-function transform.
type Shape struct {
	// ID is the catalog id vocabularies refer to.
	ID string
	// Arity is the number of numeric parameters, or Variadic.
	Arity int
	// Split reports whether a dialect writes the parameters as separate
	// values rather than a single bracketed list.
	Split bool

	fn Func
}

// New constructs a shape. It is exported so callers can register shapes the
// built-in catalog lacks.
func New(id string, arity int, split bool, fn Func) Shape {
	return Shape{ID: id, Arity: arity, Split: split, fn: fn}
}

// Eval samples the shape over x.
func (s Shape) Eval(x []float64, params ...float64) ([]float64, error) {
	if s.fn == nil {
		return nil, fmt.Errorf("shape %q has no transform", s.ID)
	}
	switch {
	case s.Arity == Variadic:
		if len(params) == 0 || len(params)%2 != 0 {
			return nil, fmt.Errorf("shape %q: expected a non-empty list of (x, y) points, got %d values", s.ID, len(params))
		}
	case len(params) != s.Arity:
		return nil, fmt.Errorf("shape %q: expected %d parameters, got %d", s.ID, s.Arity, len(params))
	}
	if len(x) == 0 {
		return []float64{}, nil
	}
	return s.fn(x, params), nil
}

// Registry resolves shape ids.
type Registry interface {
	Lookup(id string) (Shape, bool)
}

// Catalog is a map-backed Registry.
type Catalog map[string]Shape

// Lookup implements Registry.
func (c Catalog) Lookup(id string) (Shape, bool) {
	s, ok := c[id]
	return s, ok
}

// Register adds or replaces a shape.
func (c Catalog) Register(s Shape) {
	c[s.ID] = s
}

// IDs returns the registered ids in sorted order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default returns a fresh copy of the built-in catalog.
func Default() Catalog {
	c := make(Catalog, len(builtin))
	for _, s := range builtin {
		c.Register(s)
	}
	return c
}

var builtin = []Shape{
	New("trimf", 3, false, trimf),
	New("trapmf", 4, false, trapmf),
	New("gaussmf", 2, true, gaussmf),
	New("gauss2mf", 4, true, gauss2mf),
	New("gbellmf", 3, true, gbellmf),
	New("sigmf", 2, true, sigmf),
	New("dsigmf", 4, true, dsigmf),
	New("psigmf", 4, true, psigmf),
	New("smf", 2, true, smf),
	New("zmf", 2, true, zmf),
	New("pimf", 4, true, pimf),
	New("leftlinear", 2, true, leftLinear),
	New("rightlinear", 2, true, rightLinear),
	New("leftgauss", 2, true, leftGauss),
	New("rightgauss", 2, true, rightGauss),
	New("rectangle", 2, true, rectangle),
	New("singleton", 1, true, singleton),
	New("pointset", Variadic, false, pointSet),
	New("ramp", 2, true, ramp),
	New("cosine", 2, true, cosine),
	New("concave", 2, true, concave),
	New("spike", 2, true, spike),
	New("jfl_sigmf", 2, true, jflSigmf),
	New("fl_bell", 3, true, flBell),
	New("gaussprod", 4, true, gaussProd),
}
