// Package raster samples 2D noise sources onto grids in parallel and
// analyses, renders and exports the result.
package raster

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	ErrEmptyWindow = errors.New("raster: window has no samples")
	ErrBadScale    = errors.New("raster: window scale must be positive and finite")
	ErrSourcePanic = errors.New("raster: source panicked")
)

// Window is a rectangle of sample points in source space. Sample (col, row)
// sits at (X + col*Scale, Y + row*Scale).
type Window struct {
	X, Y          float64
	Scale         float64
	Width, Height int
}

func (w Window) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyWindow, w.Width, w.Height)
	}
	if !(w.Scale > 0) || math.IsInf(w.Scale, 0) {
		return fmt.Errorf("%w: %v", ErrBadScale, w.Scale)
	}
	return nil
}

// Point returns the source-space coordinate of a sample.
func (w Window) Point(col, row int) (x, y float64) {
	return w.X + float64(col)*w.Scale, w.Y + float64(row)*w.Scale
}

// Pan moves the window by whole samples.
func (w Window) Pan(cols, rows int) Window {
	w.X += float64(cols) * w.Scale
	w.Y += float64(rows) * w.Scale
	return w
}

// Zoom scales the window about its centre. factor > 1 zooms out.
func (w Window) Zoom(factor float64) Window {
	cx := w.X + float64(w.Width)*w.Scale/2
	cy := w.Y + float64(w.Height)*w.Scale/2
	w.Scale *= factor
	w.X = cx - float64(w.Width)*w.Scale/2
	w.Y = cy - float64(w.Height)*w.Scale/2
	return w
}

// Grid holds sampled values row by row.
type Grid struct {
	Width, Height int
	Data          []float64
}

func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Data: make([]float64, width*height)}
}

func (g *Grid) At(col, row int) float64 {
	return g.Data[row*g.Width+col]
}

func (g *Grid) Set(col, row int, v float64) {
	g.Data[row*g.Width+col] = v
}

// Row returns the samples of one row, sharing storage with the grid.
func (g *Grid) Row(row int) []float64 {
	return g.Data[row*g.Width : (row+1)*g.Width]
}

// Pool recycles grid buffers between frames. The zero value is ready to use
// and a nil *Pool allocates fresh grids.
type Pool struct {
	grids sync.Pool
}

// Get returns a zeroed grid of the given size.
func (p *Pool) Get(width, height int) *Grid {
	n := width * height
	if p == nil {
		return NewGrid(width, height)
	}
	g, _ := p.grids.Get().(*Grid)
	if g == nil || cap(g.Data) < n {
		return NewGrid(width, height)
	}
	g.Width, g.Height = width, height
	g.Data = g.Data[:n]
	clear(g.Data)
	return g
}

// Put hands g back for reuse. g must not be used afterwards.
func (p *Pool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.grids.Put(g)
}
