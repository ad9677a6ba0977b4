package main

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// paletteLevels is how many distinct colors a palette quantizes to. It also
// bounds the style cache at paletteLevels^2 entries per palette.
const paletteLevels = 48

type palette struct {
	name   string
	colors [paletteLevels]lipgloss.Color
}

// newPalette spreads paletteLevels colors over the given stops, blending
// neighbours in CIE L*a*b* so the ramp stays even in lightness.
func newPalette(name string, stops ...string) *palette {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			panic(fmt.Sprintf("palette %s: %v", name, err))
		}
		cs[i] = c
	}

	p := &palette{name: name}
	for i := range p.colors {
		t := float64(i) / (paletteLevels - 1) * float64(len(cs)-1)
		k := min(int(t), len(cs)-2)
		c := cs[k].BlendLab(cs[k+1], t-float64(k)).Clamped()
		p.colors[i] = lipgloss.Color(strings.ToUpper(c.Hex()))
	}
	return p
}

var palettes = []*palette{
	newPalette("ember", "#000000", "#5A0000", "#E10600", "#FF7A00", "#FFD400", "#FFFFFF"),
	newPalette("retro", "#1A0033", "#3300FF", "#9900FF", "#FF00CC", "#FF0080", "#FFE0F0"),
	newPalette("ocean", "#00050F", "#0A2A6B", "#2F5BFF", "#00E5FF", "#C8FFF4"),
	newPalette("mono", "#000000", "#FFFFFF"),
}

// color maps v in [lo, hi] to a palette entry. NaN maps to the first entry.
func (p *palette) color(v, lo, hi float64) lipgloss.Color {
	t := (v - lo) / (hi - lo)
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	return p.colors[int(t*(paletteLevels-1)+0.5)]
}

// styleCache memoizes lipgloss styles and recycles string builders across
// frames.
type styleCache struct {
	styles   map[string]lipgloss.Style
	mu       sync.RWMutex
	builders sync.Pool
}

func newStyleCache() *styleCache {
	return &styleCache{
		styles: make(map[string]lipgloss.Style, paletteLevels*paletteLevels),
		builders: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// halfBlock returns the style for a cell whose upper pixel is fg and lower
// pixel is bg.
func (c *styleCache) halfBlock(fg, bg lipgloss.Color) lipgloss.Style {
	key := string(fg) + "," + string(bg)
	c.mu.RLock()
	style, ok := c.styles[key]
	c.mu.RUnlock()
	if ok {
		return style
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if style, ok = c.styles[key]; ok {
		return style
	}
	style = lipgloss.NewStyle().Foreground(fg).Background(bg)
	c.styles[key] = style
	return style
}

func (c *styleCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.styles)
}

func (c *styleCache) builder() *strings.Builder {
	sb := c.builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

func (c *styleCache) release(sb *strings.Builder) {
	c.builders.Put(sb)
}
