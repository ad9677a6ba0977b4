package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bigzano/noisekit/internal/raster"
)

const upperHalf = "▀"

// renderHalfBlock draws g two samples per terminal cell: the upper half
// block takes the even row as foreground and the odd row below it as
// background. Horizontal runs of identical cells share one styled string.
func renderHalfBlock(g *raster.Grid, lo, hi float64, p *palette, cache *styleCache) string {
	sb := cache.builder()
	defer cache.release(sb)

	for y := 0; y < g.Height; y += 2 {
		top := g.Row(y)
		var bottom []float64
		if y+1 < g.Height {
			bottom = g.Row(y + 1)
		}
		cellAt := func(x int) (lipgloss.Color, lipgloss.Color) {
			fg := p.color(top[x], lo, hi)
			if bottom == nil {
				return fg, lipgloss.Color("")
			}
			return fg, p.color(bottom[x], lo, hi)
		}

		x := 0
		for x < g.Width {
			start := x
			fg, bg := cellAt(x)
			x++
			for x < g.Width {
				nfg, nbg := cellAt(x)
				if nfg != fg || nbg != bg {
					break
				}
				x++
			}
			sb.WriteString(cache.halfBlock(fg, bg).Render(strings.Repeat(upperHalf, x-start)))
		}
		if y+2 < g.Height {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
