package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats"
)

// ToImage maps g to 8-bit grey, lo to black and hi to white. Values outside
// [lo, hi] are clamped. When hi <= lo the grid's own extent is used.
func ToImage(g *Grid, lo, hi float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	if len(g.Data) == 0 {
		return img
	}
	if hi <= lo {
		lo, hi = floats.Min(g.Data), floats.Max(g.Data)
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	for row := 0; row < g.Height; row++ {
		line := img.Pix[row*img.Stride : row*img.Stride+g.Width]
		for col, v := range g.Row(row) {
			t := min(max((v-lo)/span, 0), 1)
			line[col] = uint8(t*255 + 0.5)
		}
	}
	return img
}

// PNGOptions controls WritePNG.
type PNGOptions struct {
	// Scale is the integer upscale factor; values below 1 mean 1.
	Scale int
	// Smooth upscales with Catmull-Rom instead of nearest neighbour.
	Smooth bool
	// Lo and Hi are passed to ToImage.
	Lo, Hi float64
	// Caption, if set, is drawn in the top-left corner.
	Caption string
}

// WritePNG encodes g as a greyscale PNG.
func WritePNG(w io.Writer, g *Grid, opts PNGOptions) error {
	if g.Width == 0 || g.Height == 0 {
		return fmt.Errorf("write png: %w", ErrEmptyWindow)
	}
	src := ToImage(g, opts.Lo, opts.Hi)

	scale := max(opts.Scale, 1)
	dst := src
	if scale > 1 {
		dst = image.NewGray(image.Rect(0, 0, g.Width*scale, g.Height*scale))
		var scaler draw.Scaler = draw.NearestNeighbor
		if opts.Smooth {
			scaler = draw.CatmullRom
		}
		scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	if opts.Caption != "" {
		drawCaption(dst, opts.Caption)
	}

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// drawCaption writes text with a one pixel shadow so it reads on any
// background.
func drawCaption(dst draw.Image, text string) {
	face := basicfont.Face7x13
	base := fixed.P(4, 4+face.Ascent)

	d := font.Drawer{Dst: dst, Src: image.Black, Face: face}
	d.Dot = base.Add(fixed.P(1, 1))
	d.DrawString(text)

	d.Src = image.White
	d.Dot = base
	d.DrawString(text)
}
