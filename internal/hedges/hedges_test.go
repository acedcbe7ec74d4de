package hedges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, name string, x, mf []float64) []float64 {
	t.Helper()
	h, ok := Lookup(name)
	require.True(t, ok, "hedge %s", name)
	out, err := h.Apply(x, mf)
	require.NoError(t, err)
	require.Len(t, out, len(mf))
	return out
}

func TestPowerHedges(t *testing.T) {
	mf := []float64{0, 0.25, 0.5, 1}
	tests := []struct {
		name string
		want []float64
	}{
		{"very", []float64{0, 0.0625, 0.25, 1}},
		{"extremely", []float64{0, 0.015625, 0.125, 1}},
		{"somewhat", []float64{0, 0.5, 0.7071067811865476, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(t, tt.name, nil, mf)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestComplementHedges(t *testing.T) {
	mf := []float64{0, 0.25, 1}
	assert.Equal(t, []float64{1, 0.75, 0}, apply(t, "not", nil, mf))
	assert.Equal(t, []float64{1, 1, 1}, apply(t, "any", nil, mf))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, apply(t, "norm", nil, []float64{0, 0.25, 0.5}))
	assert.Equal(t, []float64{0, 0}, apply(t, "norm", nil, []float64{0, 0}))
}

func TestIntensifyAndSeldomAreInverse(t *testing.T) {
	mf := []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1}
	round := apply(t, "intensify", nil, apply(t, "seldom", nil, mf))
	assert.InDeltaSlice(t, mf, round, 1e-12)
}

func TestAboveBelow(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	mf := []float64{0, 0.5, 1, 0.5, 0}
	assert.Equal(t, []float64{0, 0, 0, 0.5, 1}, apply(t, "above", x, mf))
	assert.Equal(t, []float64{1, 0.5, 0, 0, 0}, apply(t, "below", x, mf))

	h, _ := Lookup("above")
	_, err := h.Apply(x[:2], mf)
	assert.Error(t, err)
}

func TestSlightlyStaysInRange(t *testing.T) {
	mf := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	for _, v := range apply(t, "slightly", nil, mf) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 13)
	assert.Equal(t, "above", names[0])
	assert.Equal(t, "very", names[len(names)-1])
}
