package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bigzano/noisekit/internal/raster"
)

// headerLines is the fixed height of renderHeader's output.
const headerLines = 6

var printer = message.NewPrinter(language.English)

// fieldInfo is what the header shows about the current view.
type fieldInfo struct {
	family    string
	palette   string
	window    raster.Window
	summary   raster.Summary
	rotation  float64
	animating bool
	err       error
}

// renderHeader draws the title bar and the field description above the
// preview.
func renderHeader(info fieldInfo, width int) string {
	var output strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD400")).
		Background(lipgloss.Color("#1A0A00")).
		Width(width).
		Align(lipgloss.Center)

	output.WriteString(titleStyle.Render(truncateString("◆ NOISEVIEW ◆", width)))
	output.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7A00")).Bold(true)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	family := info.family
	if info.animating {
		family += fmt.Sprintf(" (rotating, %.2f rad)", info.rotation)
	}
	output.WriteString(label.Render("▶ Family: "))
	output.WriteString(value.Render(truncateString(family+" | palette "+info.palette, width-12)))
	output.WriteString("\n")

	w := info.window
	view := fmt.Sprintf("origin (%.2f, %.2f) | %.4f per sample | %dx%d", w.X, w.Y, w.Scale, w.Width, w.Height)
	output.WriteString(label.Render("▶ Window: "))
	output.WriteString(value.Render(truncateString(view, width-12)))
	output.WriteString("\n")

	output.WriteString(label.Render("▶ Stats:  "))
	if info.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E10600"))
		output.WriteString(errStyle.Render(truncateString(info.err.Error(), width-12)))
	} else {
		output.WriteString(value.Render(truncateString(formatSummary(info.summary), width-12)))
	}
	output.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5A0000"))
	output.WriteString(separatorStyle.Render(strings.Repeat("═", max(width, 1))))

	return output.String()
}

func formatSummary(s raster.Summary) string {
	return printer.Sprintf("n=%d min %.3f max %.3f mean %.3f sd %.3f in[-1,1] %.1f%%",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.InUnit*100)
}

func truncateString(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
