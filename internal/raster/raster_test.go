package raster

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math"
	"sync/atomic"
	"testing"

	"github.com/bigzano/noisekit/noise"
)

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name string
		win  Window
		want error
	}{
		{"ok", Window{Scale: 0.1, Width: 4, Height: 3}, nil},
		{"no width", Window{Scale: 0.1, Width: 0, Height: 3}, ErrEmptyWindow},
		{"negative height", Window{Scale: 0.1, Width: 4, Height: -1}, ErrEmptyWindow},
		{"zero scale", Window{Scale: 0, Width: 4, Height: 3}, ErrBadScale},
		{"nan scale", Window{Scale: math.NaN(), Width: 4, Height: 3}, ErrBadScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.win.Validate()
			if tt.want == nil && err != nil || tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWindowPanZoom(t *testing.T) {
	w := Window{X: 1, Y: 2, Scale: 0.5, Width: 10, Height: 4}
	if x, y := w.Point(2, 3); x != 2 || y != 3.5 {
		t.Errorf("Point(2, 3) = (%v, %v)", x, y)
	}

	p := w.Pan(-4, 2)
	if p.X != -1 || p.Y != 3 || p.Scale != w.Scale {
		t.Errorf("Pan = %+v", p)
	}

	z := w.Zoom(2)
	cx, cy := w.Point(w.Width/2, w.Height/2)
	zx, zy := z.Point(z.Width/2, z.Height/2)
	if z.Scale != 1 || math.Abs(cx-zx) > 1e-12 || math.Abs(cy-zy) > 1e-12 {
		t.Errorf("Zoom(2) = %+v, centre moved from (%v, %v) to (%v, %v)", z, cx, cy, zx, zy)
	}
}

func TestSampleMatchesSerial(t *testing.T) {
	win := Window{X: -3.5, Y: 7.25, Scale: 0.07, Width: 37, Height: 29}
	sources := map[string]noise.Source2{
		"classic":  noise.ClassicSource{},
		"cellular": noise.CellularSource{Metric: noise.MetricF2MinusF1},
		"psrd":     &noise.PSRDSource{Period: noiseVec(4, 4), Rotation: 0.3},
		"fbm":      noise.FBMSource{Src: noise.SimplexSource{}, Octaves: noise.DefaultOctaves()},
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for _, workers := range []int{0, 1, 3, 64} {
				g, err := Sample(context.Background(), src, win, workers)
				if err != nil {
					t.Fatalf("Sample(workers=%d): %v", workers, err)
				}
				if g.Width != win.Width || g.Height != win.Height || len(g.Data) != win.Width*win.Height {
					t.Fatalf("grid is %dx%d with %d samples", g.Width, g.Height, len(g.Data))
				}
				for row := 0; row < win.Height; row++ {
					for col := 0; col < win.Width; col++ {
						x, y := win.Point(col, row)
						if got, want := g.At(col, row), src.Eval2(x, y); got != want {
							t.Fatalf("workers=%d (%d, %d) = %v, want %v", workers, col, row, got, want)
						}
					}
				}
			}
		})
	}
}

func TestSampleRejectsBadWindow(t *testing.T) {
	_, err := Sample(context.Background(), noise.ClassicSource{}, Window{Scale: 1}, 2)
	if !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("Sample on empty window = %v, want ErrEmptyWindow", err)
	}
}

func TestSampleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int64
	src := noise.Func2(func(x, y float64) float64 {
		if calls.Add(1) == 100 {
			cancel()
		}
		return x
	})

	win := Window{Scale: 1, Width: 200, Height: 400}
	g, err := Sample(ctx, src, win, 4)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sample after cancel = %v, %v; want context.Canceled", g, err)
	}
	if n := calls.Load(); n >= int64(win.Width*win.Height) {
		t.Errorf("cancelled sample still evaluated all %d points", n)
	}
}

func TestSampleSourcePanic(t *testing.T) {
	src := noise.Func2(func(x, y float64) float64 {
		if y >= 30 {
			panic("out of range")
		}
		return 0
	})
	for _, workers := range []int{1, 4} {
		g, err := Sample(context.Background(), src, Window{Scale: 1, Width: 8, Height: 64}, workers)
		if !errors.Is(err, ErrSourcePanic) || g != nil {
			t.Errorf("workers=%d: Sample = %v, %v; want ErrSourcePanic", workers, g, err)
		}
	}
}

func TestPoolReuse(t *testing.T) {
	var p Pool
	g := p.Get(8, 8)
	for i := range g.Data {
		g.Data[i] = 1
	}
	p.Put(g)

	// sync.Pool may drop the grid; either way the result must be zeroed
	// and correctly sized.
	h := p.Get(4, 5)
	if h.Width != 4 || h.Height != 5 || len(h.Data) != 20 {
		t.Fatalf("Get(4, 5) = %dx%d len %d", h.Width, h.Height, len(h.Data))
	}
	for i, v := range h.Data {
		if v != 0 {
			t.Fatalf("reused grid not cleared at %d: %v", i, v)
		}
	}

	var nilPool *Pool
	nilPool.Put(nilPool.Get(2, 2))

	win := Window{Scale: 0.1, Width: 16, Height: 16}
	a, err := p.Sample(context.Background(), noise.SimplexSource{}, win, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sample(context.Background(), noise.SimplexSource{}, win, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("pooled sample differs at %d", i)
		}
	}
}

func TestSummarize(t *testing.T) {
	g := &Grid{Width: 3, Height: 2, Data: []float64{-2, -1, 0, 1, 2, math.NaN()}}
	s := Summarize(g)
	if s.Count != 5 || s.Min != -2 || s.Max != 2 || s.Mean != 0 || s.Median != 0 {
		t.Errorf("Summarize = %+v", s)
	}
	if math.Abs(s.StdDev-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("StdDev = %v, want sqrt(2.5)", s.StdDev)
	}
	if s.InUnit != 0.6 {
		t.Errorf("InUnit = %v, want 0.6", s.InUnit)
	}

	if s := Summarize(&Grid{Width: 1, Height: 1, Data: []float64{0.5}}); s.StdDev != 0 || s.Mean != 0.5 {
		t.Errorf("single sample summary = %+v", s)
	}
	if s := Summarize(&Grid{}); s != (Summary{}) {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestSummarizeNoise(t *testing.T) {
	win := Window{Scale: 0.37, Width: 128, Height: 128}
	g, err := Sample(context.Background(), noise.ClassicSource{}, win, 0)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(g)
	if s.InUnit != 1 || math.Abs(s.Mean) > 0.1 || s.StdDev < 0.1 {
		t.Errorf("classic noise summary looks wrong: %+v", s)
	}
}

func TestSpectrumPeak(t *testing.T) {
	const width, cycles = 64, 5
	src := noise.Func2(func(x, y float64) float64 {
		return math.Sin(2 * math.Pi * cycles * x / width)
	})
	g, err := Sample(context.Background(), src, Window{Scale: 1, Width: width, Height: 4}, 1)
	if err != nil {
		t.Fatal(err)
	}
	power := Spectrum(g)
	if len(power) != width/2+1 {
		t.Fatalf("len(Spectrum) = %d, want %d", len(power), width/2+1)
	}
	peak := 0
	for k, p := range power {
		if p > power[peak] {
			peak = k
		}
	}
	if peak != cycles {
		t.Errorf("spectrum peaks at bin %d, want %d", peak, cycles)
	}
	if power[0] > 1e-3*power[cycles] {
		t.Errorf("DC power %v after mean removal, peak %v", power[0], power[cycles])
	}
}

func TestSpectrumDegenerate(t *testing.T) {
	tests := []struct {
		name string
		g    *Grid
	}{
		{"empty", NewGrid(0, 0)},
		{"single column", &Grid{Width: 1, Height: 4, Data: []float64{0.1, -0.2, 0.3, 0.4}}},
		{"no rows", NewGrid(8, 0)},
	}
	for _, tt := range tests {
		if power := Spectrum(tt.g); power != nil {
			t.Errorf("%s: Spectrum = %v, want nil", tt.name, power)
		}
	}
	if f := HighBandFraction(Spectrum(NewGrid(1, 4)), 0.5); f != 0 {
		t.Errorf("HighBandFraction of a single column = %v, want 0", f)
	}

	two := &Grid{Width: 2, Height: 1, Data: []float64{1, -1}}
	for k, p := range Spectrum(two) {
		if math.IsNaN(p) {
			t.Errorf("two-sample spectrum bin %d is NaN", k)
		}
	}
}

func TestNoiseIsBandLimited(t *testing.T) {
	win := Window{Scale: 0.05, Width: 256, Height: 32}
	smooth, err := Sample(context.Background(), noise.SimplexSource{}, win, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f := HighBandFraction(Spectrum(smooth), 0.5); f > 0.01 {
		t.Errorf("simplex noise puts %.3f of its power in the upper half band", f)
	}

	// Sampling one value per lattice cell at a large stride destroys the
	// coherence, leaving a much flatter spectrum.
	coarse := Window{Scale: 7.31, Width: 256, Height: 32}
	rough, err := Sample(context.Background(), noise.SimplexSource{}, coarse, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f := HighBandFraction(Spectrum(rough), 0.5); f < 0.2 {
		t.Errorf("undersampled noise puts only %.3f of its power in the upper half band", f)
	}
}

func TestWritePNG(t *testing.T) {
	g := &Grid{Width: 4, Height: 2, Data: []float64{-1, -0.5, 0, 0.5, 1, 2, -2, 0}}

	img := ToImage(g, -1, 1)
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(0, 1).Y != 255 || img.GrayAt(2, 0).Y != 128 {
		t.Errorf("ToImage mapping: %v %v %v", img.GrayAt(0, 0), img.GrayAt(0, 1), img.GrayAt(2, 0))
	}
	if img.GrayAt(1, 1).Y != 255 || img.GrayAt(2, 1).Y != 0 {
		t.Errorf("ToImage does not clamp: %v %v", img.GrayAt(1, 1), img.GrayAt(2, 1))
	}

	auto := ToImage(g, 0, 0)
	if auto.GrayAt(2, 1).Y != 0 || auto.GrayAt(1, 1).Y != 255 {
		t.Errorf("ToImage auto range: %v %v", auto.GrayAt(2, 1), auto.GrayAt(1, 1))
	}

	for _, opts := range []PNGOptions{
		{Scale: 1, Lo: -1, Hi: 1},
		{Scale: 3, Lo: -1, Hi: 1},
		{Scale: 16, Smooth: true, Caption: "psrd"},
	} {
		var buf bytes.Buffer
		if err := WritePNG(&buf, g, opts); err != nil {
			t.Fatalf("WritePNG(%+v): %v", opts, err)
		}
		decoded, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		scale := max(opts.Scale, 1)
		if b := decoded.Bounds(); b.Dx() != 4*scale || b.Dy() != 2*scale {
			t.Errorf("WritePNG(%+v) size %v", opts, b)
		}
	}

	if err := WritePNG(&bytes.Buffer{}, &Grid{}, PNGOptions{}); !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("WritePNG of empty grid = %v", err)
	}
}

func TestWritePNGNearestKeepsValues(t *testing.T) {
	g := &Grid{Width: 2, Height: 1, Data: []float64{-1, 1}}
	var buf bytes.Buffer
	if err := WritePNG(&buf, g, PNGOptions{Scale: 3, Lo: -1, Hi: 1}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 6; x++ {
		r, _, _, _ := img.At(x, 1).RGBA()
		want := uint32(0)
		if x >= 3 {
			want = 0xffff
		}
		if r != want {
			t.Errorf("pixel %d = %#x, want %#x", x, r, want)
		}
	}
}
