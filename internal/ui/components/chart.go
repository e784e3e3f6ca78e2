package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)

	return graph
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		bar := strings.Repeat("█", barLen)
		valueStr := fmt.Sprintf(" %.0f", v)

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// RenderLegend creates a chart legend, one entry per line.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "\n")
}
