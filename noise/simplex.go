package noise

import (
	"golang.org/x/exp/constraints"

	"github.com/bigzano/noisekit/vecmath"
)

// Skew and unskew factors for the simplex grids.
const (
	skew2   = 0.366025403784439  // (sqrt(3)-1)/2
	unskew2 = 0.211324865405187  // (3-sqrt(3))/6
	last2   = -0.577350269189626 // -1 + 2*unskew2

	skew4   = 0.309016994374947451 // (sqrt(5)-1)/4
	unskew4 = 0.138196601125011    // (5-sqrt(5))/20
	second4 = 0.276393202250021    // 2*unskew4
	third4  = 0.414589803375032    // 3*unskew4
	last4   = -0.447213595499958   // -1 + 4*unskew4
)

// Simplex2 is 2D simplex noise.
func Simplex2[T constraints.Float](v vecmath.Vec2[T]) T {
	i := v.AddScalar(v.X*skew2 + v.Y*skew2).Floor()
	x0 := v.Sub(i).AddScalar(i.X*unskew2 + i.Y*unskew2)

	// The larger fractional component decides which triangle we are in.
	i1 := vecmath.V2[T](0, 1)
	if x0.X > x0.Y {
		i1 = vecmath.V2[T](1, 0)
	}

	i = vecmath.V2(mod289(i.X), mod289(i.Y))
	offsets := [3]vecmath.Vec2[T]{{}, i1, {X: 1, Y: 1}}
	corners := [3]vecmath.Vec2[T]{
		x0,
		x0.AddScalar(unskew2).Sub(i1),
		x0.AddScalar(last2),
	}

	var sum T
	for k, x := range corners {
		o := offsets[k]
		p := permute(permute(i.Y+o.Y) + i.X + o.X)

		m := max(0.5-x.Dot(x), 0)
		m *= m
		m *= m

		// Gradients sit on a diamond; the Taylor factor folds their
		// normalisation into the falloff.
		gx := 2*vecmath.Fract(p*(1.0/41)) - 1
		h := vecmath.Abs(gx) - 0.5
		a0 := gx - vecmath.Floor(gx+0.5)
		m *= taylorInvSqrt(a0*a0 + h*h)

		sum += m * (a0*x.X + h*x.Y)
	}
	return 130 * sum
}

// Simplex3 is 3D simplex noise without the gradient.
func Simplex3[T constraints.Float](v vecmath.Vec3[T]) T {
	n, _ := Simplex3Grad(v)
	return n
}

// Simplex3Grad is 3D simplex noise together with its analytic gradient with
// respect to v.
func Simplex3Grad[T constraints.Float](v vecmath.Vec3[T]) (T, vecmath.Vec3[T]) {
	const (
		cx = 1.0 / 6
		cy = 1.0 / 3
	)
	i := v.AddScalar(v.X*cy + v.Y*cy + v.Z*cy).Floor()
	x0 := v.Sub(i).AddScalar(i.X*cx + i.Y*cx + i.Z*cx)

	// Rank the components to pick the middle two corners.
	g := vecmath.V3(vecmath.Step(x0.Y, x0.X), vecmath.Step(x0.Z, x0.Y), vecmath.Step(x0.X, x0.Z))
	l := vecmath.V3(1-g.X, 1-g.Y, 1-g.Z)
	i1 := g.Min(vecmath.V3(l.Z, l.X, l.Y))
	i2 := g.Max(vecmath.V3(l.Z, l.X, l.Y))

	i = wrap3(i)
	offsets := [4]vecmath.Vec3[T]{{}, i1, i2, {X: 1, Y: 1, Z: 1}}
	corners := [4]vecmath.Vec3[T]{
		x0,
		x0.Sub(i1).AddScalar(cx),
		x0.Sub(i2).AddScalar(cy),
		x0.AddScalar(-0.5),
	}

	var (
		value T
		down  vecmath.Vec3[T] // sum of m^3 (p.x) x
		along vecmath.Vec3[T] // sum of m^4 p
	)
	for k, x := range corners {
		o := offsets[k]
		h := permute(i.Z + o.Z)
		h = permute(h + i.Y + o.Y)
		h = permute(h + i.X + o.X)
		p := gradSimplex3(h)

		m := max(0.5-x.Dot(x), 0)
		m2 := m * m
		m4 := m2 * m2
		pdotx := p.Dot(x)

		value += m4 * pdotx
		down = down.Add(x.Scale(m2 * m * pdotx))
		along = along.Add(p.Scale(m4))
	}

	grad := down.Scale(-8).Add(along).Scale(105)
	return 105 * value, grad
}

// gradSimplex3 spreads a hash over a 7x7 grid folded onto an octahedron.
func gradSimplex3[T constraints.Float](p T) vecmath.Vec3[T] {
	const (
		nsx = 2.0 / 7
		nsy = 0.5/7 - 1
		nsz = 1.0 / 7
	)
	j := p - 49*vecmath.Floor(p*nsz*nsz)
	xq := vecmath.Floor(j * nsz)
	yq := vecmath.Floor(j - 7*xq)
	x := xq*nsx + nsy
	y := yq*nsx + nsy
	h := 1 - vecmath.Abs(x) - vecmath.Abs(y)
	sh := -vecmath.Step(h, 0)

	g := vecmath.V3(
		x+(vecmath.Floor(x)*2+1)*sh,
		y+(vecmath.Floor(y)*2+1)*sh,
		h,
	)
	return g.Scale(taylorInvSqrt(g.Dot(g)))
}

// Simplex4 is 4D simplex noise.
func Simplex4[T constraints.Float](v vecmath.Vec4[T]) T {
	i := v.AddScalar(v.X*skew4 + v.Y*skew4 + v.Z*skew4 + v.W*skew4).Floor()
	x0 := v.Sub(i).AddScalar(i.X*unskew4 + i.Y*unskew4 + i.Z*unskew4 + i.W*unskew4)

	// Rank sort: count, per axis, how many components it beats. The corner
	// walk then steps the highest-ranked axes first.
	isX := vecmath.V3(vecmath.Step(x0.Y, x0.X), vecmath.Step(x0.Z, x0.X), vecmath.Step(x0.W, x0.X))
	isYZ := vecmath.V3(vecmath.Step(x0.Z, x0.Y), vecmath.Step(x0.W, x0.Y), vecmath.Step(x0.W, x0.Z))
	rank := vecmath.V4(
		isX.X+isX.Y+isX.Z,
		1-isX.X+isYZ.X+isYZ.Y,
		1-isX.Y+1-isYZ.X+isYZ.Z,
		1-isX.Z+1-isYZ.Y+1-isYZ.Z,
	)
	i3 := rank.Clamp(0, 1)
	i2 := rank.AddScalar(-1).Clamp(0, 1)
	i1 := rank.AddScalar(-2).Clamp(0, 1)

	i = wrap4(i)
	offsets := [5]vecmath.Vec4[T]{{}, i1, i2, i3, {X: 1, Y: 1, Z: 1, W: 1}}
	corners := [5]vecmath.Vec4[T]{
		x0,
		x0.Sub(i1).AddScalar(unskew4),
		x0.Sub(i2).AddScalar(second4),
		x0.Sub(i3).AddScalar(third4),
		x0.AddScalar(last4),
	}

	var inner, outer T
	for k, x := range corners {
		o := offsets[k]
		h := permute(i.W + o.W)
		h = permute(h + i.Z + o.Z)
		h = permute(h + i.Y + o.Y)
		h = permute(h + i.X + o.X)

		p := gradSimplex4(h)
		p = p.Scale(taylorInvSqrt(p.Dot(p)))

		m := max(0.57-x.Dot(x), 0)
		m *= m
		c := m * m * p.Dot(x)
		if k < 3 {
			inner += c
		} else {
			outer += c
		}
	}
	return 60.1 * (inner + outer)
}

// gradSimplex4 places a hash on the surface of a 4D cross-polytope.
func gradSimplex4[T constraints.Float](j T) vecmath.Vec4[T] {
	const (
		ipx = 1.0 / 294
		ipy = 1.0 / 49
		ipz = 1.0 / 7
	)
	p := vecmath.V4(
		vecmath.Floor(vecmath.Fract(j*ipx)*7)*ipz-1,
		vecmath.Floor(vecmath.Fract(j*ipy)*7)*ipz-1,
		vecmath.Floor(vecmath.Fract(j*ipz)*7)*ipz-1,
		0,
	)
	p.W = 1.5 - (vecmath.Abs(p.X) + vecmath.Abs(p.Y) + vecmath.Abs(p.Z))

	if p.W < 0 {
		p.X += signFlip(p.X)
		p.Y += signFlip(p.Y)
		p.Z += signFlip(p.Z)
	}
	return p
}

// signFlip is (s*2 - 1) for s = (x < 0).
func signFlip[T constraints.Float](x T) T {
	if x < 0 {
		return 1
	}
	return -1
}
