// Package norms implements the canonical t-norm / t-conorm families used to
// evaluate AND and OR over fuzzy membership degrees.
//
// Every family is exposed as a single shared *Pair. The definitions follow
// Annex A of IEEE 1855-2016 (A.14-A.26), with the Hamacher product corrected
// (the standard's numerator is wrong) and explicit guards on the 0/0 forms
// of the Hamacher pair.
//
// Inputs are expected in [0,1]. Values outside that range are not validated.
package norms

import (
	"fmt"
	"math"
	"strings"
)

// Op is a binary operator over membership degrees.
type Op func(a, b float64) float64

// Family identifies one of the canonical dual (AND, OR) pairs.
type Family int

const (
	MinMax Family = iota
	ProductSum
	Bounded
	Drastic
	Einstein
	Hamacher
	Nilpotent

	numFamilies
)

var familyNames = [numFamilies]string{
	MinMax:     "min_max",
	ProductSum: "product_sum",
	Bounded:    "bounded",
	Drastic:    "drastic",
	Einstein:   "einstein",
	Hamacher:   "hamacher",
	Nilpotent:  "nilpotent",
}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Valid reports whether f is one of the canonical families.
func (f Family) Valid() bool {
	return f >= 0 && f < numFamilies
}

// ParseFamily maps a family name to its Family. "lukasiewicz" is accepted as
// a synonym for the bounded family.
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "lukasiewicz" {
		return Bounded, nil
	}
	for f, s := range familyNames {
		if s == n {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("unknown norm family %q", name)
}

// Families returns all canonical families in declaration order.
func Families() []Family {
	out := make([]Family, 0, numFamilies)
	for f := Family(0); f < numFamilies; f++ {
		out = append(out, f)
	}
	return out
}

// Pair is an immutable (AND, OR) operator pair. Pairs obtained from Get are
// shared; callers hold references and must not attempt to modify them.
type Pair struct {
	andFamily Family
	orFamily  Family
	and       Op
	or        Op
}

// And applies the pair's t-norm.
func (p *Pair) And(a, b float64) float64 { return p.and(a, b) }

// Or applies the pair's t-conorm.
func (p *Pair) Or(a, b float64) float64 { return p.or(a, b) }

// AndOp returns the t-norm as a plain function value.
func (p *Pair) AndOp() Op { return p.and }

// OrOp returns the t-conorm as a plain function value.
func (p *Pair) OrOp() Op { return p.or }

// AndSlice applies the t-norm elementwise. See Broadcast.
func (p *Pair) AndSlice(a, b []float64) []float64 { return Broadcast(p.and, a, b) }

// OrSlice applies the t-conorm elementwise. See Broadcast.
func (p *Pair) OrSlice(a, b []float64) []float64 { return Broadcast(p.or, a, b) }

// AndFamily is the family the t-norm was taken from.
func (p *Pair) AndFamily() Family { return p.andFamily }

// OrFamily is the family the t-conorm was taken from.
func (p *Pair) OrFamily() Family { return p.orFamily }

// IsDual reports whether both operators come from the same family.
func (p *Pair) IsDual() bool { return p.andFamily == p.orFamily }

func (p *Pair) String() string {
	if p.IsDual() {
		return p.andFamily.String()
	}
	return p.andFamily.String() + "/" + p.orFamily.String()
}

var pairs = [numFamilies]*Pair{
	MinMax:     {MinMax, MinMax, math.Min, math.Max},
	ProductSum: {ProductSum, ProductSum, productAnd, probabilisticOr},
	Bounded:    {Bounded, Bounded, boundedAnd, boundedOr},
	Drastic:    {Drastic, Drastic, drasticAnd, drasticOr},
	Einstein:   {Einstein, Einstein, einsteinAnd, einsteinOr},
	Hamacher:   {Hamacher, Hamacher, hamacherAnd, hamacherOr},
	Nilpotent:  {Nilpotent, Nilpotent, nilpotentAnd, nilpotentOr},
}

// Get returns the shared pair for f. It panics if f is not a canonical family.
func Get(f Family) *Pair {
	if !f.Valid() {
		panic(fmt.Sprintf("norms: invalid family %d", int(f)))
	}
	return pairs[f]
}

// Default returns the min-max pair used when no operator is named.
func Default() *Pair { return pairs[MinMax] }

// Combine builds a pair from the t-norm of andFrom and the t-conorm of
// orFrom. The result is generally not dual; choosing it is the caller's call.
func Combine(andFrom, orFrom *Pair) *Pair {
	if andFrom == orFrom {
		return andFrom
	}
	return &Pair{
		andFamily: andFrom.andFamily,
		orFamily:  orFrom.orFamily,
		and:       andFrom.and,
		or:        orFrom.or,
	}
}

// Broadcast applies op elementwise over a and b. Operands of equal length
// are paired index by index; an operand of length one is paired with every
// element of the other. Any other length combination panics.
func Broadcast(op Op, a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		out := make([]float64, len(a))
		for i := range a {
			out[i] = op(a[i], b[i])
		}
		return out
	case len(a) == 1:
		out := make([]float64, len(b))
		for i := range b {
			out[i] = op(a[0], b[i])
		}
		return out
	case len(b) == 1:
		out := make([]float64, len(a))
		for i := range a {
			out[i] = op(a[i], b[0])
		}
		return out
	default:
		panic(fmt.Sprintf("norms: cannot broadcast operands of length %d and %d", len(a), len(b)))
	}
}

// A.15 product, A.21 probabilistic sum
func productAnd(a, b float64) float64      { return a * b }
func probabilisticOr(a, b float64) float64 { return a + b - a*b }

// A.16 bounded difference, A.22 bounded sum
func boundedAnd(a, b float64) float64 { return math.Max(0, a+b-1) }
func boundedOr(a, b float64) float64  { return math.Min(1, a+b) }

// A.17 drastic product, A.23 drastic sum
func drasticAnd(a, b float64) float64 {
	switch {
	case a == 1:
		return b
	case b == 1:
		return a
	}
	return 0
}

func drasticOr(a, b float64) float64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}
	return 1
}

// A.18 Einstein product, A.24 Einstein sum
func einsteinAnd(a, b float64) float64 { return (a * b) / (2 - (a + b - a*b)) }
func einsteinOr(a, b float64) float64  { return (a + b) / (1 + a*b) }

// A.19 Hamacher product, A.25 Hamacher sum
func hamacherAnd(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return (a * b) / (a + b - a*b)
}

// hamacherOr is (a+b-2ab)/(1-ab), evaluated as 1 - hamacherAnd(1-a, 1-b)
// so that inputs close to (1,1) do not cancel.
func hamacherOr(a, b float64) float64 {
	if a == 1 && b == 1 {
		return 1
	}
	return 1 - hamacherAnd(1-a, 1-b)
}

// A.20 nilpotent minimum, A.26 nilpotent maximum
func nilpotentAnd(a, b float64) float64 {
	if a+b > 1 {
		return math.Min(a, b)
	}
	return 0
}

func nilpotentOr(a, b float64) float64 {
	if a+b < 1 {
		return math.Max(a, b)
	}
	return 1
}
