// Package noise evaluates procedural noise: classic and periodic gradient
// noise, simplex noise, cellular (Worley) distances and the tiling
// rotating-gradient PSRD family.
//
// Every kernel function is pure and generic over float32 and float64.
// Lattice points are hashed through a permutation polynomial on the ring of
// 289 integers, so coordinates that differ by a multiple of 289 on every
// axis give the same value. Outputs are scaled to roughly [-1, 1]; the
// bound is statistical, not guaranteed. Non-finite coordinates propagate to
// the result.
//
// The Source2 and Source3 adapters, fractal sums and Family helpers wrap the
// kernels in float64 for the raster sampler and the previewer.
package noise
