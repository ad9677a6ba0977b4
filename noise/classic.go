package noise

import (
	"golang.org/x/exp/constraints"

	"github.com/bigzano/noisekit/vecmath"
)

// Output scales that bring classic noise to roughly [-1, 1].
const (
	classic2Scale = 2.3
	classic3Scale = 2.2
	classic4Scale = 2.2
)

// Classic2 is 2D classic Perlin noise.
func Classic2[T constraints.Float](p vecmath.Vec2[T]) T {
	i0 := p.Floor()
	i1 := i0.AddScalar(1)
	return classic2(p.Fract(),
		vecmath.V2(mod289(i0.X), mod289(i0.Y)),
		vecmath.V2(mod289(i1.X), mod289(i1.Y)))
}

// Periodic2 is Classic2 repeating with the given period:
// Periodic2(p, per) == Periodic2(p + k*per, per) for integer k.
// Period components must be positive integers; nothing else is checked.
func Periodic2[T constraints.Float](p, period vecmath.Vec2[T]) T {
	i0 := p.Floor().Mod(period)
	i1 := p.Floor().AddScalar(1).Mod(period)
	return classic2(p.Fract(),
		vecmath.V2(mod289(i0.X), mod289(i0.Y)),
		vecmath.V2(mod289(i1.X), mod289(i1.Y)))
}

// classic2 evaluates the four corners of the cell whose wrapped lattice
// indices are lo and hi, with f the position inside the cell.
func classic2[T constraints.Float](f, lo, hi vecmath.Vec2[T]) T {
	f1 := f.AddScalar(-1)

	var n [4]T
	for c := range n {
		bx, by := c&1, c>>1&1
		h := permute(permute(pick(bx, lo.X, hi.X)) + pick(by, lo.Y, hi.Y))

		gx := vecmath.Fract(h*(1.0/41))*2 - 1
		gy := vecmath.Abs(gx) - 0.5
		gx -= vecmath.Floor(gx + 0.5)
		norm := taylorInvSqrt(gx*gx + gy*gy)

		n[c] = gx*norm*pick(bx, f.X, f1.X) + gy*norm*pick(by, f.Y, f1.Y)
	}

	fx, fy := fade(f.X), fade(f.Y)
	nx0 := vecmath.Lerp(n[0], n[1], fx)
	nx1 := vecmath.Lerp(n[2], n[3], fx)
	return classic2Scale * vecmath.Lerp(nx0, nx1, fy)
}

// Classic3 is 3D classic Perlin noise.
func Classic3[T constraints.Float](p vecmath.Vec3[T]) T {
	i0 := p.Floor()
	i1 := i0.AddScalar(1)
	return classic3(p.Fract(), wrap3(i0), wrap3(i1))
}

// Periodic3 is Classic3 repeating with the given positive integer period.
func Periodic3[T constraints.Float](p, period vecmath.Vec3[T]) T {
	i0 := p.Floor().Mod(period)
	i1 := i0.AddScalar(1).Mod(period)
	return classic3(p.Fract(), wrap3(i0), wrap3(i1))
}

func classic3[T constraints.Float](f, lo, hi vecmath.Vec3[T]) T {
	f1 := f.AddScalar(-1)

	var n [8]T
	for c := range n {
		bx, by, bz := c&1, c>>1&1, c>>2&1
		h := permute(pick(bx, lo.X, hi.X))
		h = permute(h + pick(by, lo.Y, hi.Y))
		h = permute(h + pick(bz, lo.Z, hi.Z))

		g := gradClassic3(h)
		g = g.Scale(taylorInvSqrt(g.Dot(g)))
		n[c] = g.Dot(vecmath.V3(pick(bx, f.X, f1.X), pick(by, f.Y, f1.Y), pick(bz, f.Z, f1.Z)))
	}

	fd := [3]T{fade(f.X), fade(f.Y), fade(f.Z)}
	return classic3Scale * blend(n[:], fd[:])
}

// gradClassic3 maps a hash onto the surface of an octahedron, folding the
// lower half back up so that gradients do not cluster on the axes.
func gradClassic3[T constraints.Float](h T) vecmath.Vec3[T] {
	gx := h * (1.0 / 7)
	gy := vecmath.Fract(vecmath.Floor(gx)*(1.0/7)) - 0.5
	gx = vecmath.Fract(gx)
	gz := 0.5 - vecmath.Abs(gx) - vecmath.Abs(gy)
	sz := vecmath.Step(gz, 0)
	gx -= sz * (vecmath.Step(0, gx) - 0.5)
	gy -= sz * (vecmath.Step(0, gy) - 0.5)
	return vecmath.V3(gx, gy, gz)
}

// Classic4 is 4D classic Perlin noise.
func Classic4[T constraints.Float](p vecmath.Vec4[T]) T {
	i0 := p.Floor()
	i1 := i0.AddScalar(1)
	return classic4(p.Fract(), wrap4(i0), wrap4(i1))
}

// Periodic4 is Classic4 repeating with the given positive integer period.
func Periodic4[T constraints.Float](p, period vecmath.Vec4[T]) T {
	i0 := p.Floor().Mod(period)
	i1 := i0.AddScalar(1).Mod(period)
	return classic4(p.Fract(), wrap4(i0), wrap4(i1))
}

func classic4[T constraints.Float](f, lo, hi vecmath.Vec4[T]) T {
	f1 := f.AddScalar(-1)

	var n [16]T
	for c := range n {
		bx, by, bz, bw := c&1, c>>1&1, c>>2&1, c>>3&1
		h := permute(pick(bx, lo.X, hi.X))
		h = permute(h + pick(by, lo.Y, hi.Y))
		h = permute(h + pick(bz, lo.Z, hi.Z))
		h = permute(h + pick(bw, lo.W, hi.W))

		g := gradClassic4(h)
		g = g.Scale(taylorInvSqrt(g.Dot(g)))
		n[c] = g.Dot(vecmath.V4(
			pick(bx, f.X, f1.X), pick(by, f.Y, f1.Y),
			pick(bz, f.Z, f1.Z), pick(bw, f.W, f1.W)))
	}

	fd := [4]T{fade(f.X), fade(f.Y), fade(f.Z), fade(f.W)}
	return classic4Scale * blend(n[:], fd[:])
}

func gradClassic4[T constraints.Float](h T) vecmath.Vec4[T] {
	gx := h * (1.0 / 7)
	gy := vecmath.Floor(gx) * (1.0 / 7)
	gz := vecmath.Floor(gy) * (1.0 / 6)
	gx = vecmath.Fract(gx) - 0.5
	gy = vecmath.Fract(gy) - 0.5
	gz = vecmath.Fract(gz) - 0.5
	gw := 0.75 - vecmath.Abs(gx) - vecmath.Abs(gy) - vecmath.Abs(gz)
	sw := vecmath.Step(gw, 0)
	gx -= sw * (vecmath.Step(0, gx) - 0.5)
	gy -= sw * (vecmath.Step(0, gy) - 0.5)
	return vecmath.V4(gx, gy, gz, gw)
}

// blend collapses 2^N corner values, indexed with the x offset in bit 0,
// into one value by lerping along the highest axis first.
func blend[T constraints.Float](n, f []T) T {
	for k := len(f) - 1; k >= 0; k-- {
		m := 1 << k
		for j := 0; j < m; j++ {
			n[j] = vecmath.Lerp(n[j], n[j+m], f[k])
		}
	}
	return n[0]
}

func wrap3[T constraints.Float](v vecmath.Vec3[T]) vecmath.Vec3[T] {
	return vecmath.V3(mod289(v.X), mod289(v.Y), mod289(v.Z))
}

func wrap4[T constraints.Float](v vecmath.Vec4[T]) vecmath.Vec4[T] {
	return vecmath.V4(mod289(v.X), mod289(v.Y), mod289(v.Z), mod289(v.W))
}
