package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bigzano/noisekit/internal/logging"
	"github.com/bigzano/noisekit/internal/raster"
	"github.com/bigzano/noisekit/noise"
)

const (
	fps = 30
	// rotationSpeed is the psrd gradient turn rate in radians per second.
	rotationSpeed = 1.2
	panFraction   = 8
	zoomStep      = 1.25
)

type model struct {
	cfg     config
	family  noise.Family
	psrd    *noise.PSRDSource
	win     raster.Window
	sampler *frameSampler
	cache   *styleCache

	width   int
	height  int
	palette int

	animating bool
	tickGen   int
	reqGen    uint64

	frame   *raster.Grid
	summary raster.Summary
	lastErr error
	ready   bool
}

type tickMsg struct {
	gen int
	at  time.Time
}

func initialModel(cfg config, sampler *frameSampler) model {
	logging.LogInfo("Creating initial TUI model: family %s", cfg.family)

	return model{
		cfg:     cfg,
		family:  cfg.family,
		psrd:    &noise.PSRDSource{Rotation: cfg.rot},
		win:     raster.Window{Scale: cfg.scale},
		sampler: sampler,
		cache:   newStyleCache(),
	}
}

func (m model) Init() tea.Cmd {
	return waitForFrame(m.sampler.out)
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func waitForFrame(ch <-chan frameMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			logging.LogInfo("Frame channel closed, sending tea.Quit")
			return tea.Quit()
		}
		return msg
	}
}

// source builds the field for the current family. Every frame gets a fresh
// source so the sampler never sees a rotation change mid-frame.
func (m model) source() noise.Source2 {
	src := m.family.Source(m.cfg.sourceOptions(m.psrd.Rotation))
	if m.cfg.octaves > 1 {
		src = noise.FBMSource{Src: src, Octaves: m.cfg.octaveSettings()}
	}
	return src
}

// requestFrame asks the sampler for the current view.
func (m *model) requestFrame() {
	if m.win.Width <= 0 || m.win.Height <= 0 {
		return
	}
	m.reqGen++
	m.sampler.request(frameRequest{gen: m.reqGen, src: m.source(), win: m.win})
}

// fieldRows is the number of terminal rows left for the preview.
func (m model) fieldRows() int {
	return max(m.height-headerLines-2, 1)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.win.Width = m.width
		m.win.Height = m.fieldRows() * 2
		m.ready = true
		logging.LogInfo("Window resized: %dx%d", m.width, m.height)
		m.requestFrame()

	case tickMsg:
		if !m.animating || msg.gen != m.tickGen {
			return m, nil
		}
		m.psrd.Rotate(rotationSpeed / fps)
		m.requestFrame()
		return m, tickCmd(m.tickGen)

	case frameMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			logging.LogError("frame %d: %v", msg.gen, msg.err)
		} else {
			if m.frame != nil {
				m.sampler.recycle(m.frame)
			}
			m.frame = msg.grid
			m.summary = msg.summary
			m.lastErr = nil
			logging.LogDebug("frame %d sampled in %v", msg.gen, msg.took)
		}
		return m, waitForFrame(m.sampler.out)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := max(m.win.Width/panFraction, 1)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		logging.LogInfo("User requested quit via key: %s", msg.String())
		return m, tea.Quit
	case "left", "h":
		m.win = m.win.Pan(-step, 0)
	case "right", "l":
		m.win = m.win.Pan(step, 0)
	case "up", "k":
		m.win = m.win.Pan(0, -step)
	case "down", "j":
		m.win = m.win.Pan(0, step)
	case "+", "=":
		m.win = m.win.Zoom(1 / zoomStep)
	case "-", "_":
		m.win = m.win.Zoom(zoomStep)
	case "tab":
		m.family = m.family.Next()
		if m.family == noise.FamilyPeriodic && m.cfg.period == 0 {
			m.family = m.family.Next()
		}
		logging.LogDebug("Family changed to: %s", m.family)
	case " ":
		m.palette = (m.palette + 1) % len(palettes)
		logging.LogDebug("Palette changed to: %s", palettes[m.palette].name)
		return m, nil
	case "r":
		m.animating = !m.animating
		m.tickGen++
		if m.animating {
			if m.family != noise.FamilyPSRD {
				m.family = noise.FamilyPSRD
				m.requestFrame()
			}
			return m, tickCmd(m.tickGen)
		}
		return m, nil
	default:
		return m, nil
	}

	m.requestFrame()
	return m, nil
}

// valueRange is the span the palette is stretched over for a family.
func valueRange(f noise.Family, metric noise.CellularMetric) (float64, float64) {
	if f == noise.FamilyCellular || f == noise.FamilyCellularFast {
		if metric == noise.MetricF2 {
			return 0, 1.5
		}
		return 0, 1
	}
	return -1, 1
}

func (m model) View() string {
	if !m.ready || m.width == 0 {
		return "Initializing noiseview..."
	}

	pal := palettes[m.palette]
	header := renderHeader(fieldInfo{
		family:    m.family.String(),
		palette:   pal.name,
		window:    m.win,
		summary:   m.summary,
		rotation:  m.psrd.Rotation,
		animating: m.animating,
		err:       m.lastErr,
	}, m.width)

	field := "sampling..."
	if m.frame != nil {
		lo, hi := valueRange(m.family, m.cfg.metric)
		field = renderHalfBlock(m.frame, lo, hi, pal, m.cache)
	}

	anim := "r to rotate"
	if m.animating {
		anim = fmt.Sprintf("rotating at %d FPS", fps)
	}
	footer := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("#888888")).
		Render("q quit | arrows pan | +/- zoom | TAB family | SPACE colors | " + anim)

	return fmt.Sprintf("%s\n%s\n%s", header, field, footer)
}
