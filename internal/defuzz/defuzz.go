// Package defuzz turns an aggregated output membership function into a
// single crisp value.
package defuzz

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Strategy identifies a defuzzification method.
type Strategy string

const (
	Centroid Strategy = "centroid" // centre of gravity
	Bisector Strategy = "bisector" // centre of area
	MOM      Strategy = "mom"      // mean of maxima
	SOM      Strategy = "som"      // smallest (leftmost) of maxima
	LOM      Strategy = "lom"      // largest (rightmost) of maxima
)

var strategies = []Strategy{Centroid, Bisector, MOM, SOM, LOM}

// ErrZeroArea is returned when the membership function is zero everywhere.
var ErrZeroArea = errors.New("total membership area is zero")

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	n := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range strategies {
		if s == n {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown defuzzification strategy %q", name)
}

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// Defuzzify computes the crisp value of mf sampled over x. x must be
// ascending and the same length as mf.
func Defuzzify(x, mf []float64, s Strategy) (float64, error) {
	if len(x) != len(mf) {
		return 0, fmt.Errorf("defuzzify: %d sample points for %d degrees", len(x), len(mf))
	}
	if len(x) == 0 {
		return 0, ErrZeroArea
	}
	switch s {
	case Centroid:
		return centroid(x, mf)
	case Bisector:
		return bisector(x, mf)
	case MOM, SOM, LOM:
		return maxima(x, mf, s)
	}
	return 0, fmt.Errorf("defuzzify: unknown strategy %q", s)
}

// centroid integrates the piecewise-linear function segment by segment.
func centroid(x, mf []float64) (float64, error) {
	if len(x) == 1 {
		if mf[0] == 0 {
			return 0, ErrZeroArea
		}
		return x[0], nil
	}
	var moment, area float64
	for i := 1; i < len(x); i++ {
		x1, x2 := x[i-1], x[i]
		y1, y2 := mf[i-1], mf[i]
		w := x2 - x1
		if w == 0 || (y1 == 0 && y2 == 0) {
			continue
		}
		a := w * (y1 + y2) / 2
		// centroid of a trapezoid measured from x1
		c := x1 + w*(y1+2*y2)/(3*(y1+y2))
		moment += a * c
		area += a
	}
	if area == 0 {
		return 0, ErrZeroArea
	}
	return moment / area, nil
}

// bisector finds the point that splits the area into two equal halves.
func bisector(x, mf []float64) (float64, error) {
	if len(x) == 1 {
		if mf[0] == 0 {
			return 0, ErrZeroArea
		}
		return x[0], nil
	}
	areas := make([]float64, len(x)-1)
	var total float64
	for i := 1; i < len(x); i++ {
		areas[i-1] = (x[i] - x[i-1]) * (mf[i-1] + mf[i]) / 2
		total += areas[i-1]
	}
	if total == 0 {
		return 0, ErrZeroArea
	}
	half := total / 2
	var acc float64
	for i, a := range areas {
		if acc+a >= half {
			if a == 0 {
				return x[i], nil
			}
			frac := (half - acc) / a
			return x[i] + frac*(x[i+1]-x[i]), nil
		}
		acc += a
	}
	return x[len(x)-1], nil
}

func maxima(x, mf []float64, s Strategy) (float64, error) {
	hi := math.Inf(-1)
	for _, v := range mf {
		hi = math.Max(hi, v)
	}
	if hi <= 0 {
		return 0, ErrZeroArea
	}
	var sum float64
	var n int
	first, last := math.NaN(), math.NaN()
	for i, v := range mf {
		if v != hi {
			continue
		}
		if n == 0 {
			first = x[i]
		}
		last = x[i]
		sum += x[i]
		n++
	}
	switch s {
	case SOM:
		return first, nil
	case LOM:
		return last, nil
	}
	return sum / float64(n), nil
}
