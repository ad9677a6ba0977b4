package noise

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOctaves is returned by Octaves.Validate.
var ErrInvalidOctaves = errors.New("invalid octave settings")

// Octaves controls fractal summation: Count layers, each Lacunarity times
// the frequency and Gain times the amplitude of the one before.
type Octaves struct {
	Count      int
	Lacunarity float64
	Gain       float64
}

func DefaultOctaves() Octaves {
	return Octaves{Count: 5, Lacunarity: 2, Gain: 0.5}
}

// ChaosOctaves maps a level in [0, 1] to octave settings: more layers and a
// slower amplitude falloff as the level rises. Levels outside [0, 1] are
// clamped.
func ChaosOctaves(level float64) Octaves {
	level = min(max(level, 0), 1)
	return Octaves{
		Count:      2 + int(level*6),
		Lacunarity: 2,
		Gain:       0.3 + level*0.5,
	}
}

func (o Octaves) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("%w: count %d, need at least 1", ErrInvalidOctaves, o.Count)
	}
	if !(o.Lacunarity > 0) || math.IsInf(o.Lacunarity, 0) {
		return fmt.Errorf("%w: lacunarity %v", ErrInvalidOctaves, o.Lacunarity)
	}
	if !(o.Gain > 0) || math.IsInf(o.Gain, 0) {
		return fmt.Errorf("%w: gain %v", ErrInvalidOctaves, o.Gain)
	}
	return nil
}

// sum walks the octaves, handing each layer's frequency to eval and
// normalising the weighted total by the amplitude sum. A count below one
// is treated as one.
func (o Octaves) sum(eval func(freq float64) float64) float64 {
	var total, frequency, amplitude, maxValue float64 = 0, 1, 1, 0

	for i := 0; i < max(o.Count, 1); i++ {
		total += eval(frequency) * amplitude
		maxValue += amplitude
		amplitude *= o.Gain
		frequency *= o.Lacunarity
	}

	return total / maxValue
}

// FBM2 is fractal Brownian motion over src. The result stays within the
// range of src.
func FBM2(src Source2, x, y float64, o Octaves) float64 {
	return o.sum(func(f float64) float64 {
		return src.Eval2(x*f, y*f)
	})
}

func FBM3(src Source3, x, y, z float64, o Octaves) float64 {
	return o.sum(func(f float64) float64 {
		return src.Eval3(x*f, y*f, z*f)
	})
}

// Turbulence2 sums |noise| per octave, giving billowy, always positive
// patterns in [0, 1] for a source in [-1, 1].
func Turbulence2(src Source2, x, y float64, o Octaves) float64 {
	return o.sum(func(f float64) float64 {
		return math.Abs(src.Eval2(x*f, y*f))
	})
}

// Ridged2 sums (1 - |noise|)^2, turning the zero crossings of src into
// sharp ridges.
func Ridged2(src Source2, x, y float64, o Octaves) float64 {
	return o.sum(func(f float64) float64 {
		r := 1 - math.Abs(src.Eval2(x*f, y*f))
		return r * r
	})
}
