package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ojrac/opensimplex-go"

	"github.com/bigzano/noisekit/vecmath"
)

// Source2 is a 2D scalar field. The method set matches opensimplex.Noise so
// its generators can be used directly.
type Source2 interface {
	Eval2(x, y float64) float64
}

// Source3 is a 3D scalar field.
type Source3 interface {
	Eval3(x, y, z float64) float64
}

// Func2 adapts a plain function to Source2.
type Func2 func(x, y float64) float64

func (f Func2) Eval2(x, y float64) float64 { return f(x, y) }

// ClassicSource evaluates Classic2 and Classic3.
type ClassicSource struct{}

func (ClassicSource) Eval2(x, y float64) float64 {
	return Classic2(vecmath.V2(x, y))
}

func (ClassicSource) Eval3(x, y, z float64) float64 {
	return Classic3(vecmath.V3(x, y, z))
}

// PeriodicSource evaluates Periodic2 and Periodic3. Eval2 uses the X and Y
// components of Period.
type PeriodicSource struct {
	Period vecmath.Vec3[float64]
}

func (s PeriodicSource) Eval2(x, y float64) float64 {
	return Periodic2(vecmath.V2(x, y), vecmath.V2(s.Period.X, s.Period.Y))
}

func (s PeriodicSource) Eval3(x, y, z float64) float64 {
	return Periodic3(vecmath.V3(x, y, z), s.Period)
}

// SimplexSource evaluates Simplex2 and Simplex3.
type SimplexSource struct{}

func (SimplexSource) Eval2(x, y float64) float64 {
	return Simplex2(vecmath.V2(x, y))
}

func (SimplexSource) Eval3(x, y, z float64) float64 {
	return Simplex3(vecmath.V3(x, y, z))
}

// CellularMetric selects which distance a CellularSource reports.
type CellularMetric int

const (
	MetricF1 CellularMetric = iota
	MetricF2
	MetricF2MinusF1
)

// CellularSource reports one cellular distance metric. Fast switches to the
// reduced search windows (Cellular2x2, Cellular2x2x2).
type CellularSource struct {
	Metric CellularMetric
	Fast   bool
}

func (s CellularSource) Eval2(x, y float64) float64 {
	p := vecmath.V2(x, y)
	if s.Fast {
		return s.Metric.pick(Cellular2x2(p))
	}
	return s.Metric.pick(Cellular2(p))
}

func (s CellularSource) Eval3(x, y, z float64) float64 {
	p := vecmath.V3(x, y, z)
	if s.Fast {
		return s.Metric.pick(Cellular2x2x2(p))
	}
	return s.Metric.pick(Cellular3(p))
}

func (m CellularMetric) pick(f vecmath.Vec2[float64]) float64 {
	switch m {
	case MetricF2:
		return f.Y
	case MetricF2MinusF1:
		return f.Y - f.X
	default:
		return f.X
	}
}

// PSRDSource evaluates the PSRD family. A zero Period gives the non-tiling
// form. Rotation is in radians.
type PSRDSource struct {
	Period   vecmath.Vec2[float64]
	Rotation float64
}

func (s *PSRDSource) Eval2(x, y float64) float64 {
	p := vecmath.V2(x, y)
	if s.Period == (vecmath.Vec2[float64]{}) {
		return SR2(p, s.Rotation)
	}
	return PSR2(p, s.Period, s.Rotation)
}

// Gradient returns the analytic gradient at (x, y).
func (s *PSRDSource) Gradient(x, y float64) vecmath.Vec2[float64] {
	p := vecmath.V2(x, y)
	if s.Period == (vecmath.Vec2[float64]{}) {
		_, g := SRD2(p, s.Rotation)
		return g
	}
	_, g := PSRD2(p, s.Period, s.Rotation)
	return g
}

// Rotate advances the gradient rotation, animating the field in place.
func (s *PSRDSource) Rotate(delta float64) {
	s.Rotation += delta
}

// FBMSource sums octaves of Src.
type FBMSource struct {
	Src     Source2
	Octaves Octaves
}

func (s FBMSource) Eval2(x, y float64) float64 {
	return FBM2(s.Src, x, y, s.Octaves)
}

// NewOpenSimplex returns a seeded OpenSimplex generator. It satisfies both
// Source2 and Source3.
func NewOpenSimplex(seed int64) opensimplex.Noise {
	return opensimplex.New(seed)
}

// ErrUnknownFamily is returned by ParseFamily for names it does not know.
var ErrUnknownFamily = errors.New("unknown noise family")

// Family names a noise family that can be built into a Source2.
type Family int

const (
	FamilyClassic Family = iota
	FamilyPeriodic
	FamilySimplex
	FamilyCellular
	FamilyCellularFast
	FamilyPSRD
	FamilyOpenSimplex
	familyCount
)

var familyNames = [...]string{
	FamilyClassic:      "classic",
	FamilyPeriodic:     "periodic",
	FamilySimplex:      "simplex",
	FamilyCellular:     "cellular",
	FamilyCellularFast: "cellular-fast",
	FamilyPSRD:         "psrd",
	FamilyOpenSimplex:  "opensimplex",
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Next returns the family after f, wrapping around.
func (f Family) Next() Family {
	return (f + 1) % familyCount
}

// Families lists every family in order.
func Families() []Family {
	out := make([]Family, familyCount)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// SourceOptions carries the per-family parameters used by Family.Source.
type SourceOptions struct {
	// Period is the tile size for the periodic and psrd families. Zero
	// leaves psrd non-tiling; the periodic family falls back to 8.
	Period   float64
	Rotation float64
	Seed     int64
	Metric   CellularMetric
}

// Source builds the field for f. The psrd family returns a *PSRDSource so
// callers can animate it with Rotate.
func (f Family) Source(opts SourceOptions) Source2 {
	switch f {
	case FamilyPeriodic:
		per := opts.Period
		if per <= 0 {
			per = 8
		}
		return PeriodicSource{Period: vecmath.V3(per, per, per)}
	case FamilySimplex:
		return SimplexSource{}
	case FamilyCellular:
		return CellularSource{Metric: opts.Metric}
	case FamilyCellularFast:
		return CellularSource{Metric: opts.Metric, Fast: true}
	case FamilyPSRD:
		s := &PSRDSource{Rotation: opts.Rotation}
		if opts.Period > 0 {
			// The y period must be even for the skewed rows to line up.
			s.Period = vecmath.V2(opts.Period, 2*vecmath.Floor((opts.Period+1)/2))
		}
		return s
	case FamilyOpenSimplex:
		return NewOpenSimplex(opts.Seed)
	default:
		return ClassicSource{}
	}
}
