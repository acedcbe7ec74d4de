// Package hedges implements the linguistic hedges of IEEE 1855-2016 Annex A
// (A.1-A.13). A hedge maps a sampled membership function to a modified one
// of the same length; above and below also need the sample points.
package hedges

import (
	"fmt"
	"math"
	"sort"
)

// Func transforms membership degrees mf sampled over x.
type Func func(x, mf []float64) []float64

// Hedge is a named membership modifier.
type Hedge struct {
	Name string
	// TakesX reports whether the hedge reads the sample points.
	TakesX bool

	fn Func
}

// Apply runs the hedge. x may be nil for hedges that do not take it.
func (h Hedge) Apply(x, mf []float64) ([]float64, error) {
	if h.TakesX && len(x) != len(mf) {
		return nil, fmt.Errorf("hedge %q: %d sample points for %d degrees", h.Name, len(x), len(mf))
	}
	return h.fn(x, mf), nil
}

var all = map[string]Hedge{
	"above":        {"above", true, above},
	"any":          {"any", false, anyOf},
	"below":        {"below", true, below},
	"extremely":    {"extremely", false, power(3)},
	"intensify":    {"intensify", false, intensify},
	"more_or_less": {"more_or_less", false, power(1.0 / 3)},
	"norm":         {"norm", false, norm},
	"not":          {"not", false, not},
	"plus":         {"plus", false, power(1.25)},
	"seldom":       {"seldom", false, seldom},
	"slightly":     {"slightly", false, slightly},
	"somewhat":     {"somewhat", false, power(0.5)},
	"very":         {"very", false, power(2)},
}

// Lookup returns the hedge registered under name.
func Lookup(name string) (Hedge, bool) {
	h, ok := all[name]
	return h, ok
}

// Names lists the hedge names in sorted order.
func Names() []string {
	names := make([]string, 0, len(all))
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func each(mf []float64, f func(v float64) float64) []float64 {
	out := make([]float64, len(mf))
	for i, v := range mf {
		out[i] = f(v)
	}
	return out
}

func power(k float64) Func {
	return func(_, mf []float64) []float64 {
		return each(mf, func(v float64) float64 { return math.Pow(v, k) })
	}
}

// peak is the sample point where mf is largest.
func peak(x, mf []float64) float64 {
	best := 0
	for i := range mf {
		if mf[i] > mf[best] {
			best = i
		}
	}
	return x[best]
}

// A.1
func above(x, mf []float64) []float64 {
	if len(mf) == 0 {
		return []float64{}
	}
	xMax := peak(x, mf)
	out := make([]float64, len(mf))
	for i := range mf {
		if x[i] >= xMax {
			out[i] = 1 - mf[i]
		}
	}
	return out
}

// A.3
func below(x, mf []float64) []float64 {
	if len(mf) == 0 {
		return []float64{}
	}
	xMax := peak(x, mf)
	out := make([]float64, len(mf))
	for i := range mf {
		if x[i] <= xMax {
			out[i] = 1 - mf[i]
		}
	}
	return out
}

// A.2
func anyOf(_, mf []float64) []float64 {
	return each(mf, func(float64) float64 { return 1 })
}

// A.5
func intensify(_, mf []float64) []float64 {
	return each(mf, func(v float64) float64 {
		if v <= 0.5 {
			return 2 * v * v
		}
		return 1 - 2*(1-v)*(1-v)
	})
}

// A.7; an all-zero function stays all zero.
func norm(_, mf []float64) []float64 {
	var hi float64
	for _, v := range mf {
		hi = math.Max(hi, v)
	}
	if hi == 0 {
		return make([]float64, len(mf))
	}
	return each(mf, func(v float64) float64 { return v / hi })
}

// A.8
func not(_, mf []float64) []float64 {
	return each(mf, func(v float64) float64 { return 1 - v })
}

// A.10
func seldom(_, mf []float64) []float64 {
	return each(mf, func(v float64) float64 {
		if v <= 0.5 {
			return math.Sqrt(v / 2)
		}
		return 1 - math.Sqrt((1-v)/2)
	})
}

// A.11: intensify(norm(plus(mf) AND not(very(mf)))), AND as minimum.
func slightly(x, mf []float64) []float64 {
	p := power(1.25)(x, mf)
	nv := not(x, power(2)(x, mf))
	both := make([]float64, len(mf))
	for i := range mf {
		both[i] = math.Min(p[i], nv[i])
	}
	return intensify(x, norm(x, both))
}
