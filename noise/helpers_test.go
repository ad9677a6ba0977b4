package noise

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/bigzano/noisekit/vecmath"
)

// samples is the Monte Carlo sample count used by statistical tests.
const samples = 20000

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func coord(r *rand.Rand, span float64) float64 {
	return (r.Float64()*2 - 1) * span
}

func points2(n int, seed uint64, span float64) []vecmath.Vec2[float64] {
	r := newRand(seed)
	pts := make([]vecmath.Vec2[float64], n)
	for i := range pts {
		pts[i] = vecmath.V2(coord(r, span), coord(r, span))
	}
	return pts
}

func points3(n int, seed uint64, span float64) []vecmath.Vec3[float64] {
	r := newRand(seed)
	pts := make([]vecmath.Vec3[float64], n)
	for i := range pts {
		pts[i] = vecmath.V3(coord(r, span), coord(r, span), coord(r, span))
	}
	return pts
}

func points4(n int, seed uint64, span float64) []vecmath.Vec4[float64] {
	r := newRand(seed)
	pts := make([]vecmath.Vec4[float64], n)
	for i := range pts {
		pts[i] = vecmath.V4(coord(r, span), coord(r, span), coord(r, span), coord(r, span))
	}
	return pts
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// checkRange fails when any value leaves [-bound, bound] or is not finite.
func checkRange(t *testing.T, name string, values []float64, bound float64) {
	t.Helper()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s produced non-finite value %v", name, v)
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo < -bound || hi > bound {
		t.Errorf("%s range [%.4f, %.4f] exceeds ±%.1f", name, lo, hi, bound)
	}
	// A constant or degenerate field would pass the bound trivially.
	if hi-lo < 0.5 {
		t.Errorf("%s range [%.4f, %.4f] is suspiciously narrow", name, lo, hi)
	}
}

// gradTolerance is the allowed gap between an analytic gradient component
// and its central difference estimate.
func gradTolerance(g float64) float64 {
	return 1e-3 * (1 + math.Abs(g))
}

const fdStep = 1e-5
