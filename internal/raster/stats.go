package raster

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a sampled field.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	// InUnit is the fraction of samples inside [-1, 1].
	InUnit float64
}

// Summarize computes distribution statistics over every sample in g.
// Non-finite samples are skipped.
func Summarize(g *Grid) Summary {
	vals := make([]float64, 0, len(g.Data))
	for _, v := range g.Data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) == 1 {
		std = 0
	}

	var inUnit int
	for _, v := range vals {
		if v >= -1 && v <= 1 {
			inUnit++
		}
	}

	slices.Sort(vals)
	return Summary{
		Count:  len(vals),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
		InUnit: float64(inUnit) / float64(len(vals)),
	}
}
