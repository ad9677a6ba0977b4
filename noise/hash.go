package noise

import (
	"golang.org/x/exp/constraints"

	"github.com/bigzano/noisekit/vecmath"
)

// ringSize is the permutation ring every family hashes lattice points into.
// Integer coordinates that differ by a multiple of it along every axis alias.
const ringSize = 289

// mod289 wraps x into [0, 289).
func mod289[T constraints.Float](x T) T {
	return x - vecmath.Floor(x/ringSize)*ringSize
}

// permute scrambles an integer-valued x in [0, 289) with the polynomial
// (34x+10)x mod 289. The intermediate stays below 2^24 so float32 is exact.
func permute[T constraints.Float](x T) T {
	return mod289((x*34 + 10) * x)
}

// mod7 picks one of seven gradient buckets.
func mod7[T constraints.Float](x T) T {
	return x - vecmath.Floor(x/7)*7
}

// taylorInvSqrt approximates 1/sqrt(r) for r close to 1. The output scale of
// every family is tuned against this exact approximation.
func taylorInvSqrt[T constraints.Float](r T) T {
	return 1.79284291400159 - 0.85373472095314*r
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade[T constraints.Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}

// pick returns hi when the bit is set, lo otherwise.
func pick[T constraints.Float](bit int, lo, hi T) T {
	if bit != 0 {
		return hi
	}
	return lo
}
