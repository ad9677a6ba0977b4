// Package vecmath holds the small fixed-size vector types and scalar helpers
// the noise kernel is written against. Everything is generic over float32 and
// float64 so callers pick the precision once per call.
package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Floor rounds x down to the nearest integer value.
func Floor[T constraints.Float](x T) T {
	return T(math.Floor(float64(x)))
}

// Fract returns x - floor(x), always in [0, 1) for finite x.
func Fract[T constraints.Float](x T) T {
	return x - Floor(x)
}

func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Sqrt[T constraints.Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func Sin[T constraints.Float](x T) T {
	return T(math.Sin(float64(x)))
}

func Cos[T constraints.Float](x T) T {
	return T(math.Cos(float64(x)))
}

// Step is 0 when x < edge and 1 otherwise.
func Step[T constraints.Float](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

func Clamp[T constraints.Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Lerp blends a and b as a*(1-t) + b*t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Mod is the floored modulo x - y*floor(x/y); the result has the sign of y.
func Mod[T constraints.Float](x, y T) T {
	return x - y*Floor(x/y)
}
