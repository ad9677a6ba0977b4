package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bigzano/noisekit/noise"
)

const (
	defaultScale  = 0.05
	defaultSize   = "256x256"
	maxOutputSide = 8192
)

type config struct {
	family  noise.Family
	scale   float64
	period  int
	rot     float64
	seed    int64
	octaves int
	metric  noise.CellularMetric

	png     string
	upscale int
	smooth  bool
	stats   bool
	width   int
	height  int

	logPath string
}

// parseFlags reads the command line into a validated config.
func parseFlags(args []string, errOut io.Writer) (config, error) {
	fs := flag.NewFlagSet("noiseview", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		cfg    config
		family string
		metric string
		size   string
	)
	fs.StringVar(&family, "family", "simplex", "noise family: "+familyList())
	fs.Float64Var(&cfg.scale, "scale", defaultScale, "source units per sample")
	fs.IntVar(&cfg.period, "period", 0, "tile period for periodic and psrd (0 = no tiling)")
	fs.Float64Var(&cfg.rot, "rot", 0, "psrd gradient rotation in radians")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed for opensimplex")
	fs.IntVar(&cfg.octaves, "octaves", 1, "fractal octaves (1 = plain noise)")
	fs.StringVar(&metric, "metric", "f1", "cellular distance: f1, f2 or f2-f1")
	fs.StringVar(&cfg.png, "png", "", "write a PNG to this path and exit")
	fs.IntVar(&cfg.upscale, "upscale", 1, "PNG upscale factor")
	fs.BoolVar(&cfg.smooth, "smooth", false, "upscale PNG with Catmull-Rom")
	fs.BoolVar(&cfg.stats, "stats", false, "print field statistics and exit")
	fs.StringVar(&size, "size", defaultSize, "sample grid for -png and -stats, WxH")
	fs.StringVar(&cfg.logPath, "log", "", "append a debug log to this file")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if cfg.family, err = noise.ParseFamily(family); err != nil {
		return config{}, err
	}
	if cfg.metric, err = parseMetric(metric); err != nil {
		return config{}, err
	}
	if cfg.width, cfg.height, err = parseSize(size); err != nil {
		return config{}, err
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if !(c.scale > 0) || math.IsInf(c.scale, 0) {
		return fmt.Errorf("scale must be positive, got %v", c.scale)
	}
	if c.period < 0 {
		return fmt.Errorf("period must not be negative, got %d", c.period)
	}
	if c.family == noise.FamilyPeriodic && c.period == 0 {
		return errors.New("the periodic family needs -period")
	}
	if math.IsNaN(c.rot) || math.IsInf(c.rot, 0) {
		return fmt.Errorf("rot must be finite, got %v", c.rot)
	}
	if c.upscale < 1 || c.upscale > 64 {
		return fmt.Errorf("upscale must be in [1, 64], got %d", c.upscale)
	}
	return c.octaveSettings().Validate()
}

func (c config) octaveSettings() noise.Octaves {
	o := noise.DefaultOctaves()
	o.Count = c.octaves
	return o
}

func (c config) sourceOptions(rotation float64) noise.SourceOptions {
	return noise.SourceOptions{
		Period:   float64(c.period),
		Rotation: rotation,
		Seed:     c.seed,
		Metric:   c.metric,
	}
}

// batch reports whether the run produces output and exits without a TUI.
func (c config) batch() bool {
	return c.png != "" || c.stats
}

func familyList() string {
	var names []string
	for _, f := range noise.Families() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func parseMetric(s string) (noise.CellularMetric, error) {
	switch strings.ToLower(s) {
	case "f1":
		return noise.MetricF1, nil
	case "f2":
		return noise.MetricF2, nil
	case "f2-f1":
		return noise.MetricF2MinusF1, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w < 1 || h < 1 || w > maxOutputSide || h > maxOutputSide {
		return 0, 0, fmt.Errorf("size %q: sides must be in [1, %d]", s, maxOutputSide)
	}
	return w, h, nil
}
