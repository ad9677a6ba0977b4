package raster

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/bigzano/noisekit/noise"
)

// rowsPerBand is how many rows a worker claims at a time.
const rowsPerBand = 8

// Sample evaluates src at every point of win using up to workers goroutines.
// workers <= 0 uses GOMAXPROCS. The grid is freshly allocated.
func Sample(ctx context.Context, src noise.Source2, win Window, workers int) (*Grid, error) {
	var p *Pool
	return p.Sample(ctx, src, win, workers)
}

// Sample is like the package-level Sample but takes its grid from p. src
// must be safe for concurrent Eval2 calls.
func (p *Pool) Sample(ctx context.Context, src noise.Source2, win Window, workers int) (*Grid, error) {
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := (win.Height + rowsPerBand - 1) / rowsPerBand
	workers = min(workers, bands)

	grid := p.Get(win.Width, win.Height)

	next := make(chan int)
	var (
		wg       sync.WaitGroup
		failOnce sync.Once
		failure  error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failOnce.Do(func() { failure = fmt.Errorf("%w: %v", ErrSourcePanic, r) })
					for range next {
					}
				}
			}()
			for start := range next {
				sampleBand(ctx, src, win, grid, start, min(start+rowsPerBand, win.Height))
			}
		}()
	}

feed:
	for b := 0; b < bands; b++ {
		select {
		case next <- b * rowsPerBand:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	if failure != nil {
		p.Put(grid)
		return nil, failure
	}
	if err := ctx.Err(); err != nil {
		p.Put(grid)
		return nil, fmt.Errorf("sample %dx%d: %w", win.Width, win.Height, err)
	}
	return grid, nil
}

func sampleBand(ctx context.Context, src noise.Source2, win Window, grid *Grid, from, to int) {
	for row := from; row < to; row++ {
		if ctx.Err() != nil {
			return
		}
		out := grid.Row(row)
		for col := range out {
			out[col] = src.Eval2(win.Point(col, row))
		}
	}
}
