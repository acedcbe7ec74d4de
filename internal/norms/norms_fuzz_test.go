package norms

import (
	"encoding/binary"
	"math"
	"testing"
)

// degree maps 8 bytes onto [0,1], hitting both ends exactly.
func degree(b []byte) float64 {
	v := binary.LittleEndian.Uint64(b)
	switch v % 5 {
	case 0:
		return 0
	case 1:
		return 1
	}
	return float64(v>>11) / float64(1<<53)
}

// FuzzOperators checks range, Boolean boundary and commutativity for every
// family on arbitrary degrees.
func FuzzOperators(f *testing.F) {
	f.Add(make([]byte, 16))
	f.Add([]byte("0123456789abcdef"))
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 16 {
			return
		}
		a, b := degree(data[:8]), degree(data[8:16])

		for _, fam := range Families() {
			p := Get(fam)
			and, or := p.And(a, b), p.Or(a, b)
			for _, v := range []float64{and, or} {
				if math.IsNaN(v) || v < 0 || v > 1 {
					t.Fatalf("%s(%v, %v) produced %v", fam, a, b, v)
				}
			}
			if and > math.Min(a, b)+1e-12 {
				t.Errorf("%s AND(%v, %v) = %v exceeds min", fam, a, b, and)
			}
			if or < math.Max(a, b)-1e-12 {
				t.Errorf("%s OR(%v, %v) = %v below max", fam, a, b, or)
			}
			if math.Abs(and-p.And(b, a)) > 1e-12 || math.Abs(or-p.Or(b, a)) > 1e-12 {
				t.Errorf("%s is not commutative at (%v, %v)", fam, a, b)
			}
		}
	})
}
