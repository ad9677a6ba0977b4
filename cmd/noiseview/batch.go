package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bigzano/noisekit/internal/logging"
	"github.com/bigzano/noisekit/internal/raster"
	"github.com/bigzano/noisekit/noise"
)

// runBatch samples cfg.width x cfg.height points, prints statistics and
// writes the PNG as requested.
func runBatch(ctx context.Context, cfg config, stdout io.Writer) error {
	src := cfg.family.Source(cfg.sourceOptions(cfg.rot))
	if cfg.octaves > 1 {
		src = noise.FBMSource{Src: src, Octaves: cfg.octaveSettings()}
	}
	win := raster.Window{Scale: cfg.scale, Width: cfg.width, Height: cfg.height}

	logging.LogInfo("Sampling %s over %dx%d at %v", cfg.family, win.Width, win.Height, win.Scale)
	grid, err := raster.Sample(ctx, src, win, 0)
	if err != nil {
		return fmt.Errorf("sample %s: %w", cfg.family, err)
	}

	if cfg.stats {
		if err := writeStats(stdout, cfg, grid); err != nil {
			return err
		}
	}

	if cfg.png != "" {
		lo, hi := valueRange(cfg.family, cfg.metric)
		if err := savePNG(cfg.png, grid, raster.PNGOptions{
			Scale:   cfg.upscale,
			Smooth:  cfg.smooth,
			Lo:      lo,
			Hi:      hi,
			Caption: cfg.family.String(),
		}); err != nil {
			return err
		}
		logging.LogInfo("Wrote %s", cfg.png)
	}
	return nil
}

func writeStats(w io.Writer, cfg config, grid *raster.Grid) error {
	s := raster.Summarize(grid)
	hf := raster.HighBandFraction(raster.Spectrum(grid), 0.5)

	_, err := printer.Fprintf(w,
		"family   %s\nsamples  %d (%dx%d)\nmin      %.4f\nmax      %.4f\nmean     %.4f\nstddev   %.4f\nmedian   %.4f\nin[-1,1] %.2f%%\nhighband %.4f\n",
		cfg.family, s.Count, grid.Width, grid.Height,
		s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.InUnit*100, hf)
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func savePNG(path string, grid *raster.Grid, opts raster.PNGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := raster.WritePNG(f, grid, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
