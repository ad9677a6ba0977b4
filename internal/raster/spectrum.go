package raster

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spectrum returns the power spectrum of g averaged over its rows. Bin k
// holds the power at k cycles per row, for k in [0, Width/2]. Each row has
// its mean removed and a Hann window applied before the transform. Rows
// narrower than two samples have no spectrum and give nil.
func Spectrum(g *Grid) []float64 {
	if g.Width < 2 || g.Height == 0 {
		return nil
	}
	fft := fourier.NewFFT(g.Width)
	hann := make([]float64, g.Width)
	floats.AddConst(1, hann)
	window.Hann(hann)

	power := make([]float64, g.Width/2+1)
	row := make([]float64, g.Width)
	var coeffs []complex128
	for r := 0; r < g.Height; r++ {
		copy(row, g.Row(r))
		floats.AddConst(-stat.Mean(row, nil), row)
		floats.Mul(row, hann)

		coeffs = fft.Coefficients(coeffs, row)
		for k, c := range coeffs {
			m := cmplx.Abs(c)
			power[k] += m * m
		}
	}
	floats.Scale(1/float64(g.Height), power)
	return power
}

// HighBandFraction returns the share of spectral power above cutoff, given
// as a fraction of the Nyquist bin. DC is excluded from the total.
func HighBandFraction(power []float64, cutoff float64) float64 {
	if len(power) < 2 {
		return 0
	}
	ac := power[1:]
	total := floats.Sum(ac)
	if total == 0 {
		return 0
	}
	from := min(max(int(cutoff*float64(len(ac))), 0), len(ac))
	return floats.Sum(ac[from:]) / total
}
