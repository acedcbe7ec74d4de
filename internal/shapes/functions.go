package shapes

import (
	"math"
	"sort"
)

func mapX(x []float64, f func(v float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
	}
	return out
}

// trimf: p = [a, b, c], a <= b <= c.
func trimf(x, p []float64) []float64 {
	a, b, c := p[0], p[1], p[2]
	return mapX(x, func(v float64) float64 {
		switch {
		case v == b:
			return 1
		case a < v && v < b:
			return (v - a) / (b - a)
		case b < v && v < c:
			return (c - v) / (c - b)
		}
		return 0
	})
}

// trapmf: p = [a, b, c, d], a <= b <= c <= d.
func trapmf(x, p []float64) []float64 {
	a, b, c, d := p[0], p[1], p[2], p[3]
	return mapX(x, func(v float64) float64 {
		switch {
		case b <= v && v <= c:
			return 1
		case a < v && v < b:
			return (v - a) / (b - a)
		case c < v && v < d:
			return (d - v) / (d - c)
		}
		return 0
	})
}

func gauss(v, mean, sigma float64) float64 {
	d := v - mean
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

// gaussmf: p = [mean, sigma].
func gaussmf(x, p []float64) []float64 {
	mean, sigma := p[0], p[1]
	return mapX(x, func(v float64) float64 { return gauss(v, mean, sigma) })
}

// gauss2mf: p = [mean1, sigma1, mean2, sigma2]; left curve below mean1,
// right curve above mean2, plateau of one in between.
func gauss2mf(x, p []float64) []float64 {
	m1, s1, m2, s2 := p[0], p[1], p[2], p[3]
	return mapX(x, func(v float64) float64 {
		y := 1.0
		if v < m1 {
			y *= gauss(v, m1, s1)
		}
		if v > m2 {
			y *= gauss(v, m2, s2)
		}
		return y
	})
}

// gbellmf: p = [width, slope, center].
func gbellmf(x, p []float64) []float64 {
	a, b, c := p[0], p[1], p[2]
	return mapX(x, func(v float64) float64 {
		return 1 / (1 + math.Pow(math.Abs((v-c)/a), 2*b))
	})
}

func sigmoid(v, center, gain float64) float64 {
	return 1 / (1 + math.Exp(-gain*(v-center)))
}

// sigmf: p = [center, gain].
func sigmf(x, p []float64) []float64 {
	c, g := p[0], p[1]
	return mapX(x, func(v float64) float64 { return sigmoid(v, c, g) })
}

// dsigmf: difference of two sigmoids, p = [c1, g1, c2, g2].
func dsigmf(x, p []float64) []float64 {
	return mapX(x, func(v float64) float64 {
		return sigmoid(v, p[0], p[1]) - sigmoid(v, p[2], p[3])
	})
}

// psigmf: product of two sigmoids, p = [c1, g1, c2, g2].
func psigmf(x, p []float64) []float64 {
	return mapX(x, func(v float64) float64 {
		return sigmoid(v, p[0], p[1]) * sigmoid(v, p[2], p[3])
	})
}

func sCurve(v, a, b float64) float64 {
	switch {
	case v <= a:
		return 0
	case v >= b:
		return 1
	case v <= (a+b)/2:
		t := (v - a) / (b - a)
		return 2 * t * t
	}
	t := (v - b) / (b - a)
	return 1 - 2*t*t
}

// smf: p = [foot, ceiling].
func smf(x, p []float64) []float64 {
	return mapX(x, func(v float64) float64 { return sCurve(v, p[0], p[1]) })
}

// zmf: p = [shoulder, foot].
func zmf(x, p []float64) []float64 {
	return mapX(x, func(v float64) float64 { return 1 - sCurve(v, p[0], p[1]) })
}

// pimf: p = [a, b, c, d], an S rising over [a,b] and a Z falling over [c,d].
func pimf(x, p []float64) []float64 {
	return mapX(x, func(v float64) float64 {
		return sCurve(v, p[0], p[1]) * (1 - sCurve(v, p[2], p[3]))
	})
}

// leftLinear: one up to a, falling to zero at b.
func leftLinear(x, p []float64) []float64 {
	a, b := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		switch {
		case v <= a:
			return 1
		case v >= b:
			return 0
		}
		return (b - v) / (b - a)
	})
}

// rightLinear: zero up to a, rising to one at b.
func rightLinear(x, p []float64) []float64 {
	a, b := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		switch {
		case v <= a:
			return 0
		case v >= b:
			return 1
		}
		return 1 - (b-v)/(b-a)
	})
}

// leftGauss: one at or below the mean, gaussian fall-off above.
func leftGauss(x, p []float64) []float64 {
	mean, sigma := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		if v <= mean {
			return 1
		}
		return gauss(v, mean, sigma)
	})
}

// rightGauss: one at or above the mean, gaussian rise below.
func rightGauss(x, p []float64) []float64 {
	mean, sigma := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		if v >= mean {
			return 1
		}
		return gauss(v, mean, sigma)
	})
}

func rectangle(x, p []float64) []float64 {
	a, b := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		if v < a || v > b {
			return 0
		}
		return 1
	})
}

// singleton sets the sample nearest the point to one.
func singleton(x, p []float64) []float64 {
	out := make([]float64, len(x))
	best := 0
	for i, v := range x {
		if math.Abs(v-p[0]) < math.Abs(x[best]-p[0]) {
			best = i
		}
	}
	out[best] = 1
	return out
}

type point struct{ x, y float64 }

// pointSet interpolates linearly between (x, y) points given as a flat list.
// Left of the first point the curve rises from zero; right of the last it
// holds the last y. Results are clipped to [0,1].
func pointSet(x, p []float64) []float64 {
	pts := make([]point, 0, len(p)/2+2)
	for i := 0; i+1 < len(p); i += 2 {
		pts = append(pts, point{p[i], p[i+1]})
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	lo, hi := x[0], x[len(x)-1]
	if pts[0].x > lo {
		pts = append([]point{{lo, 0}}, pts...)
	}
	if last := pts[len(pts)-1]; last.x < hi {
		pts = append(pts, point{hi, last.y})
	}

	return mapX(x, func(v float64) float64 {
		if v <= pts[0].x {
			return clip(pts[0].y)
		}
		for i := 1; i < len(pts); i++ {
			if v <= pts[i].x {
				l, r := pts[i-1], pts[i]
				if r.x == l.x {
					return clip(r.y)
				}
				return clip(l.y + (v-l.x)*(r.y-l.y)/(r.x-l.x))
			}
		}
		return clip(pts[len(pts)-1].y)
	})
}

func clip(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ramp rises from a to b, or falls when b < a.
func ramp(x, p []float64) []float64 {
	a, b := p[0], p[1]
	switch {
	case a < b:
		return rightLinear(x, []float64{a, b})
	case a > b:
		return leftLinear(x, []float64{b, a})
	}
	return make([]float64, len(x))
}

// cosine: p = [center, width].
func cosine(x, p []float64) []float64 {
	center, width := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		if v < center-width/2 || v > center+width/2 {
			return 0
		}
		return 0.5 * (1 + math.Cos(2*math.Pi/width*(v-center)))
	})
}

// concave: p = [inflection, end]; increasing when inflection <= end.
func concave(x, p []float64) []float64 {
	infl, end := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		if infl <= end {
			if v < end {
				return (end - infl) / (2*end - infl - v)
			}
			return 1
		}
		if v > end {
			return (infl - end) / (infl - 2*end + v)
		}
		return 1
	})
}

// spike: p = [center, width].
func spike(x, p []float64) []float64 {
	center, width := p[0], p[1]
	return mapX(x, func(v float64) float64 {
		return math.Exp(-math.Abs(10 / width * (v - center)))
	})
}

// jflSigmf is sigmf with jFuzzyLogic's parameter order [gain, center].
func jflSigmf(x, p []float64) []float64 {
	return sigmf(x, []float64{p[1], p[0]})
}

// flBell is gbellmf with fuzzylite's parameter order [center, width, slope].
func flBell(x, p []float64) []float64 {
	return gbellmf(x, []float64{p[1], p[2], p[0]})
}

// gaussProd orders the two means before delegating to gauss2mf.
func gaussProd(x, p []float64) []float64 {
	m1, s1, m2, s2 := p[0], p[1], p[2], p[3]
	if m1 > m2 {
		m1, s1, m2, s2 = m2, s2, m1, s1
	}
	return gauss2mf(x, []float64{m1, s1, m2, s2})
}
