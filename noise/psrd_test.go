package noise

import (
	"math"
	"testing"

	"github.com/bigzano/noisekit/vecmath"
)

func TestPSRDTiles(t *testing.T) {
	tests := []struct {
		name   string
		period vecmath.Vec2[float64]
		rot    float64
	}{
		{"square", vecmath.V2(4.0, 4.0), 0},
		{"wide", vecmath.V2(5.0, 6.0), 0.7},
		{"unit x", vecmath.V2(1.0, 2.0), -2.5},
		{"large", vecmath.V2(31.0, 64.0), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range points2(500, 40, 20) {
				want, _ := PSRD2(p, tt.period, tt.rot)
				for _, k := range []float64{-2, -1, 1, 3} {
					for _, q := range []vecmath.Vec2[float64]{
						p.Add(vecmath.V2(k*tt.period.X, 0)),
						p.Add(vecmath.V2(0, k*tt.period.Y)),
						p.Add(tt.period.Scale(k)),
					} {
						if got, _ := PSRD2(q, tt.period, tt.rot); !near(got, want, 1e-9) {
							t.Fatalf("PSRD2(%v) = %v, PSRD2(%v) = %v", q, got, p, want)
						}
					}
				}
			}
		})
	}
}

func TestPSRDDerivative(t *testing.T) {
	per := vecmath.V2(6.0, 8.0)
	dx := vecmath.V2(fdStep, 0)
	dy := vecmath.V2(0, fdStep)
	for _, rot := range []float64{0, 1.1, -4} {
		for _, p := range points2(1000, 41, 30) {
			_, g := PSRD2(p, per, rot)
			fx := (PSR2(p.Add(dx), per, rot) - PSR2(p.Sub(dx), per, rot)) / (2 * fdStep)
			fy := (PSR2(p.Add(dy), per, rot) - PSR2(p.Sub(dy), per, rot)) / (2 * fdStep)
			if !near(fx, g.X, gradTolerance(g.X)) || !near(fy, g.Y, gradTolerance(g.Y)) {
				t.Fatalf("PSRD2 gradient at %v rot %v: analytic %v, numeric (%v, %v)", p, rot, g, fx, fy)
			}

			_, sg := SRD2(p, rot)
			fx = (SR2(p.Add(dx), rot) - SR2(p.Sub(dx), rot)) / (2 * fdStep)
			fy = (SR2(p.Add(dy), rot) - SR2(p.Sub(dy), rot)) / (2 * fdStep)
			if !near(fx, sg.X, gradTolerance(sg.X)) || !near(fy, sg.Y, gradTolerance(sg.Y)) {
				t.Fatalf("SRD2 gradient at %v rot %v: analytic %v, numeric (%v, %v)", p, rot, sg, fx, fy)
			}
		}
	}
}

func TestPSRDEntryPointsAgree(t *testing.T) {
	per := vecmath.V2(7.0, 4.0)
	const rot = 0.3
	for _, p := range points2(500, 42, 50) {
		n, _ := PSRD2(p, per, rot)
		if v := PSR2(p, per, rot); !sameBits(v, n) {
			t.Fatalf("PSR2(%v) = %v, PSRD2 = %v", p, v, n)
		}

		n0, g0 := PSRD2(p, per, 0)
		if v, vg := PSD2(p, per); !sameBits(v, n0) || vg != g0 {
			t.Fatalf("PSD2(%v) = %v %v, PSRD2 rot 0 = %v %v", p, v, vg, n0, g0)
		}
		if v := PS2(p, per); !sameBits(v, n0) {
			t.Fatalf("PS2(%v) = %v, PSRD2 rot 0 = %v", p, v, n0)
		}

		s, _ := SRD2(p, rot)
		if v := SR2(p, rot); !sameBits(v, s) {
			t.Fatalf("SR2(%v) = %v, SRD2 = %v", p, v, s)
		}
		s0, sg0 := SRD2(p, 0)
		if v, vg := SD2(p); !sameBits(v, s0) || vg != sg0 {
			t.Fatalf("SD2(%v) = %v %v, SRD2 rot 0 = %v %v", p, v, vg, s0, sg0)
		}
		if v := S2(p); !sameBits(v, s0) {
			t.Fatalf("S2(%v) = %v, SRD2 rot 0 = %v", p, v, s0)
		}
	}
}

func TestPSRDFullTurn(t *testing.T) {
	per := vecmath.V2(3.0, 2.0)
	for _, p := range points2(500, 43, 20) {
		a, ga := PSRD2(p, per, 0.4)
		b, gb := PSRD2(p, per, 0.4+2*math.Pi)
		if !near(a, b, 1e-9) || !near(ga.X, gb.X, 1e-8) || !near(ga.Y, gb.Y, 1e-8) {
			t.Fatalf("PSRD2(%v) changes after a full turn: %v %v vs %v %v", p, a, ga, b, gb)
		}
	}
}

func TestPSRDRotationMovesField(t *testing.T) {
	var moved int
	pts := points2(200, 44, 20)
	for _, p := range pts {
		if !near(SR2(p, 0), SR2(p, 1.5), 1e-6) {
			moved++
		}
	}
	if moved < len(pts)/2 {
		t.Errorf("rotation changed only %d of %d samples", moved, len(pts))
	}
}

func TestPSRDRingPeriodMatchesNonTiling(t *testing.T) {
	// Wrapping by the hash ring itself is a no-op; an even y period keeps
	// the skewed rows aligned.
	ring := vecmath.V2(289.0, 578.0)
	for _, p := range points2(500, 45, 100) {
		a, ga := PSRD2(p, ring, 0.9)
		b, gb := SRD2(p, 0.9)
		if !near(a, b, 1e-12) || ga != gb {
			t.Fatalf("PSRD2(%v, ring) = %v %v, SRD2 = %v %v", p, a, ga, b, gb)
		}
	}
}

func TestPSRDRange(t *testing.T) {
	pts := points2(samples, 46, 100)
	tiled := make([]float64, len(pts))
	free := make([]float64, len(pts))
	for i, p := range pts {
		tiled[i] = PSR2(p, vecmath.V2(5.0, 6.0), 0.7)
		free[i] = SR2(p, 1.3)
	}
	checkRange(t, "PSR2", tiled, 1.2)
	checkRange(t, "SR2", free, 1.2)
}

func TestPSRDFloat32(t *testing.T) {
	per := vecmath.V2[float32](4, 4)
	for _, p := range points2(1000, 47, 20) {
		q := vecmath.V2(float32(p.X), float32(p.Y))
		v, g := PSRD2(q, per, 0.5)
		if v != v || g.X != g.X || v < -1.2 || v > 1.2 {
			t.Fatalf("PSRD2[float32](%v) = %v %v", q, v, g)
		}
	}
}

func BenchmarkPSRD2(b *testing.B) {
	p := vecmath.V2(12.34, -56.78)
	per := vecmath.V2(8.0, 8.0)
	for i := 0; i < b.N; i++ {
		_, _ = PSRD2(p, per, 0.5)
	}
}

func BenchmarkS2(b *testing.B) {
	p := vecmath.V2(12.34, -56.78)
	for i := 0; i < b.N; i++ {
		_ = S2(p)
	}
}
