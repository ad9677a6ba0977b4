package noise

import (
	"golang.org/x/exp/constraints"

	"github.com/bigzano/noisekit/vecmath"
)

const (
	psrdScale  = 11.0
	psrdRadius = 0.8 // (2/sqrt(5))^2, corner to nearest simplex edge
	twoPi      = 6.28318530718
)

// PSRD2 is tiling 2D simplex noise with rotating gradients. It returns the
// noise value and its gradient with respect to pos.
//
// The field repeats with period: PSRD2(pos + k*period) == PSRD2(pos) for
// integer k. period.X must be a positive integer and period.Y a positive
// even integer; the skewed lattice only lines up with itself every second
// row. rot is in radians and turns every gradient by the same amount, which
// animates the field smoothly without moving the lattice.
func PSRD2[T constraints.Float](pos, period vecmath.Vec2[T], rot T) (T, vecmath.Vec2[T]) {
	return psrd(pos, &period, rot)
}

// PSR2 is PSRD2 without the derivative.
func PSR2[T constraints.Float](pos, period vecmath.Vec2[T], rot T) T {
	n, _ := psrd(pos, &period, rot)
	return n
}

// PSD2 is PSRD2 with unrotated gradients.
func PSD2[T constraints.Float](pos, period vecmath.Vec2[T]) (T, vecmath.Vec2[T]) {
	return psrd(pos, &period, 0)
}

// PS2 is PSR2 with unrotated gradients.
func PS2[T constraints.Float](pos, period vecmath.Vec2[T]) T {
	n, _ := psrd(pos, &period, 0)
	return n
}

// SRD2 is the non-tiling form of PSRD2: the lattice only repeats at the
// 289 hash ring.
func SRD2[T constraints.Float](pos vecmath.Vec2[T], rot T) (T, vecmath.Vec2[T]) {
	return psrd(pos, nil, rot)
}

// SR2 is SRD2 without the derivative.
func SR2[T constraints.Float](pos vecmath.Vec2[T], rot T) T {
	n, _ := psrd(pos, nil, rot)
	return n
}

// SD2 is SRD2 with unrotated gradients.
func SD2[T constraints.Float](pos vecmath.Vec2[T]) (T, vecmath.Vec2[T]) {
	return psrd(pos, nil, 0)
}

// S2 is SR2 with unrotated gradients.
func S2[T constraints.Float](pos vecmath.Vec2[T]) T {
	n, _ := psrd(pos, nil, 0)
	return n
}

// psrd evaluates the three corners of the simplex containing pos. A nil
// period skips the wrap and hashes the lattice indices directly.
func psrd[T constraints.Float](pos vecmath.Vec2[T], period *vecmath.Vec2[T], rot T) (T, vecmath.Vec2[T]) {
	// Nudging y hides rare artifacts along the row boundaries.
	pos.Y += 0.01

	uv := vecmath.V2(pos.X+pos.Y*0.5, pos.Y)
	i0 := uv.Floor()
	f0 := uv.Fract()

	i1 := vecmath.V2[T](0, 1)
	if f0.X > f0.Y {
		i1 = vecmath.V2[T](1, 0)
	}

	// Corners in unskewed (x, y) space.
	p0 := vecmath.V2(i0.X-i0.Y*0.5, i0.Y)
	corners := [3]vecmath.Vec2[T]{
		p0,
		vecmath.V2(p0.X+i1.X-i1.Y*0.5, p0.Y+i1.Y),
		vecmath.V2(p0.X+0.5, p0.Y+1),
	}

	var (
		n    T
		grad vecmath.Vec2[T]
	)
	for _, c := range corners {
		d := pos.Sub(c)

		// Wrap in (x, y) where the period is rectangular, then map back to
		// (u, v) lattice indices for hashing.
		w := c
		if period != nil {
			w = c.Mod(*period)
		}
		g := rotatedGradient(w.X+0.5*w.Y, w.Y, rot)

		dot := g.Dot(d)
		t := psrdRadius - d.Dot(d)
		dtdx, dtdy := -2*d.X, -2*d.Y
		if t < 0 {
			t, dtdx, dtdy = 0, 0, 0
		}
		t2 := t * t
		t4 := t2 * t2
		t3 := t2 * t

		n += t4 * dot
		// d/dpos of t^4 (g.d) = 4t^3 (dt/dpos) (g.d) + t^4 g
		dt := vecmath.V2(dtdx*4*t3, dtdy*4*t3)
		grad = grad.Add(g.Scale(t4).Add(dt.Scale(dot)))
	}
	return psrdScale * n, grad.Scale(psrdScale)
}

// rotatedGradient hashes the lattice point (u, v) to an angle, turns it by
// rot and returns the unit vector at that angle.
func rotatedGradient[T constraints.Float](u, v, rot T) vecmath.Vec2[T] {
	h := permute(permute(mod289(u)) + mod289(v))
	a := vecmath.Fract(h*0.0243902439)*twoPi + rot
	return vecmath.V2(vecmath.Cos(a), vecmath.Sin(a))
}
