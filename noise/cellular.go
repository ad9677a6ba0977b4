package noise

import (
	"golang.org/x/exp/constraints"

	"github.com/bigzano/noisekit/vecmath"
)

// Feature point placement constants.
const (
	cellK   = 0.142857142857    // 1/7
	cellKo  = 0.428571428571    // 1/2 - K/2
	cellK2  = 0.0714285714285   // K/2
	cellKK  = 0.020408163265306 // 1/(7*7)
	cellKz  = 0.166666666667    // 1/6
	cellKzo = 0.416666666667    // 1/2 - 1/6*2
)

// window describes which neighbouring cells a cellular variant searches.
// Both slices are indexed by the cell position along one axis; the same
// offsets apply to every axis.
type window struct {
	hash   []float64 // lattice offset added before hashing
	delta  []float64 // offset from the fractional coordinate to the cell
	jitter float64
}

var (
	window3x3   = window{hash: []float64{-1, 0, 1}, delta: []float64{0.5, -0.5, -1.5}, jitter: 1.0}
	window2x2   = window{hash: []float64{0, 1}, delta: []float64{-0.5, -1.5}, jitter: 0.8}
	window3x3x3 = window{hash: []float64{-1, 0, 1}, delta: []float64{1, 0, -1}, jitter: 1.0}
	window2x2x2 = window{hash: []float64{0, 1}, delta: []float64{0, -1}, jitter: 0.8}
)

// cells2 writes the squared distance from f to the feature point of every cell
// in w. d is indexed x-fastest: d[b*n + a] for x cell a and y cell b.
func cells2[T constraints.Float](d []T, pi, f vecmath.Vec2[T], w window, jitter func(h T) (T, T)) {
	n := len(w.hash)
	j := T(w.jitter)
	for a := 0; a < n; a++ {
		px := permute(pi.X + T(w.hash[a]))
		for b := 0; b < n; b++ {
			h := permute(px + pi.Y + T(w.hash[b]))
			ox, oy := jitter(h)
			dx := f.X + T(w.delta[a]) + j*ox
			dy := f.Y + T(w.delta[b]) + j*oy
			d[b*n+a] = dx*dx + dy*dy
		}
	}
}

// centered2 jitters a feature point around the middle of its cell.
func centered2[T constraints.Float](h T) (T, T) {
	return vecmath.Fract(h*cellK) - cellKo,
		mod7(vecmath.Floor(h*cellK))*cellK - cellKo
}

// biased2 jitters a feature point towards one corner of its cell, which keeps
// most nearest neighbours inside a 2x2 search.
func biased2[T constraints.Float](h T) (T, T) {
	return mod7(h)*cellK + cellK2,
		mod7(vecmath.Floor(h*cellK))*cellK + cellK2
}

// Cellular2 is 2D Worley noise searching the 3x3 neighbourhood. It returns
// the distances to the nearest and second nearest feature points (F1, F2).
func Cellular2[T constraints.Float](p vecmath.Vec2[T]) vecmath.Vec2[T] {
	var d [9]T
	cells2(d[:], vecmath.V2(mod289(vecmath.Floor(p.X)), mod289(vecmath.Floor(p.Y))), p.Fract(), window3x3, centered2[T])

	col := func(a int) [3]T { return [3]T{d[a], d[3+a], d[6+a]} }
	d1, d2, d3 := col(0), col(1), col(2)

	d1a := min3(d1, d2)
	d2 = max3(d1, d2)
	d2 = min3(d2, d3) // neither F1 nor F2 is left in d3
	d1 = min3(d1a, d2)
	d2 = max3(d1a, d2)
	if d1[0] >= d1[1] {
		d1[0], d1[1] = d1[1], d1[0]
	}
	if d1[0] >= d1[2] {
		d1[0], d1[2] = d1[2], d1[0]
	}
	// F1 is in d1[0]
	d1[1] = min(d1[1], d2[1])
	d1[2] = min(d1[2], d2[2])
	d1[1] = min(d1[1], d1[2])
	d1[1] = min(d1[1], d2[0])
	return vecmath.V2(vecmath.Sqrt(d1[0]), vecmath.Sqrt(d1[1]))
}

// Cellular2x2 is a cheaper Worley variant searching only the 2x2 cells
// closest to p. F2 is often wrong and F1 occasionally is; Cellular2 is the
// exact version.
func Cellular2x2[T constraints.Float](p vecmath.Vec2[T]) vecmath.Vec2[T] {
	var d [4]T
	cells2(d[:], vecmath.V2(mod289(vecmath.Floor(p.X)), mod289(vecmath.Floor(p.Y))), p.Fract(), window2x2, biased2[T])
	f2 := nearestTwo4(&d)
	return vecmath.V2(vecmath.Sqrt(d[0]), vecmath.Sqrt(f2))
}

// cells3 is the 3D counterpart of cells2. d is indexed x-fastest then y:
// d[(c*n + b)*n + a].
func cells3[T constraints.Float](d []T, pi, f vecmath.Vec3[T], w window) {
	n := len(w.hash)
	j := T(w.jitter)
	for a := 0; a < n; a++ {
		px := permute(pi.X + T(w.hash[a]))
		for b := 0; b < n; b++ {
			py := permute(px + pi.Y + T(w.hash[b]))
			for c := 0; c < n; c++ {
				h := permute(py + pi.Z + T(w.hash[c]))
				ox := vecmath.Fract(h*cellK) - cellKo
				oy := mod7(vecmath.Floor(h*cellK))*cellK - cellKo
				oz := vecmath.Floor(h*cellKK)*cellKz - cellKzo // h < 289

				dx := f.X + T(w.delta[a]) + j*ox
				dy := f.Y + T(w.delta[b]) + j*oy
				dz := f.Z + T(w.delta[c]) + j*oz
				d[(c*n+b)*n+a] = dx*dx + dy*dy + dz*dz
			}
		}
	}
}

// Cellular3 is 3D Worley noise searching the full 3x3x3 neighbourhood.
func Cellular3[T constraints.Float](p vecmath.Vec3[T]) vecmath.Vec2[T] {
	var d [27]T
	cells3(d[:], wrap3(p.Floor()), p.Fract().AddScalar(-0.5), window3x3x3)

	// row(y, z) holds the three x candidates of one row.
	row := func(y, z int) [3]T {
		k := (z*3 + y) * 3
		return [3]T{d[k], d[k+1], d[k+2]}
	}
	d11, d12, d13 := row(0, 0), row(0, 1), row(0, 2)
	d21, d22, d23 := row(1, 0), row(1, 1), row(1, 2)
	d31, d32, d33 := row(2, 0), row(2, 1), row(2, 2)

	// Reduce each y slab to its smallest lane-wise pair.
	d11, d12 = slab3(d11, d12, d13)
	d21, d22 = slab3(d21, d22, d23)
	d31, d32 = slab3(d31, d32, d33)

	da := min3(d11, d21)
	d21 = max3(d11, d21)
	d11 = min3(da, d31) // smallest now in d11
	d31 = max3(da, d31)
	if d11[0] >= d11[1] {
		d11[0], d11[1] = d11[1], d11[0]
	}
	if d11[0] >= d11[2] {
		d11[0], d11[2] = d11[2], d11[0]
	}
	d12 = min3(d12, d21)
	d12 = min3(d12, d22)
	d12 = min3(d12, d31)
	d12 = min3(d12, d32)
	d11[1] = min(d11[1], d12[0])
	d11[2] = min(d11[2], d12[1])
	d11[1] = min(d11[1], d12[2])
	d11[1] = min(d11[1], d11[2])
	return vecmath.V2(vecmath.Sqrt(d11[0]), vecmath.Sqrt(d11[1]))
}

// slab3 returns, lane-wise, the smallest of a, b, c and a value no larger
// than the second smallest.
func slab3[T constraints.Float](a, b, c [3]T) (first, second [3]T) {
	lo := min3(a, b)
	b = max3(a, b)
	a = min3(lo, c)
	c = max3(lo, c)
	b = min3(b, c)
	return a, b
}

// Cellular2x2x2 is a cheaper 3D Worley variant searching only the 2x2x2
// cells closest to p. F2 is often wrong and F1 occasionally is.
func Cellular2x2x2[T constraints.Float](p vecmath.Vec3[T]) vecmath.Vec2[T] {
	var d [8]T
	cells3(d[:], wrap3(p.Floor()), p.Fract(), window2x2x2)

	lo := [4]T{min(d[0], d[4]), min(d[1], d[5]), min(d[2], d[6]), min(d[3], d[7])}
	hi := [4]T{max(d[0], d[4]), max(d[1], d[5]), max(d[2], d[6]), max(d[3], d[7])}
	for k := 1; k < 4; k++ {
		if lo[0] >= lo[k] {
			lo[0], lo[k] = lo[k], lo[0]
		}
	}
	// F1 is in lo[0]; F2 is among lo[1:], hi[1:] and hi[0].
	for k := 1; k < 4; k++ {
		lo[k] = min(lo[k], hi[k])
	}
	f2 := min(lo[1], lo[2], lo[3], hi[0])
	return vecmath.V2(vecmath.Sqrt(lo[0]), vecmath.Sqrt(f2))
}

// nearestTwo4 moves the smallest of d into d[0] and returns the second
// smallest.
func nearestTwo4[T constraints.Float](d *[4]T) T {
	for k := 1; k < 4; k++ {
		if d[0] >= d[k] {
			d[0], d[k] = d[k], d[0]
		}
	}
	return min(d[1], d[2], d[3])
}

func min3[T constraints.Float](a, b [3]T) [3]T {
	return [3]T{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func max3[T constraints.Float](a, b [3]T) [3]T {
	return [3]T{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
