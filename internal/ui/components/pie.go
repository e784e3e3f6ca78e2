package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

// DefaultPieRadius is the vertical radius of a rendered pie in rows.
const DefaultPieRadius = 8

// RenderPie draws a pie chart as a colored circle of block characters with a
// legend underneath. Slices start at 12 o'clock and run clockwise in the
// order they appear in the chart.
func RenderPie(chart *models.PieChart, radius int) string {
	if chart == nil || chart.Total == 0 || len(chart.Slices) == 0 {
		return styles.HelpStyle.Render("No data available")
	}
	if radius < 3 {
		radius = 3
	}

	// Cumulative slice boundaries as fractions of the full turn.
	bounds := make([]float64, len(chart.Slices))
	acc := 0.0
	for i, slice := range chart.Slices {
		acc += float64(slice.Count) / float64(chart.Total)
		bounds[i] = acc
	}

	sliceStyles := make([]lipgloss.Style, len(chart.Slices))
	for i := range chart.Slices {
		color := styles.PieColors[i%len(styles.PieColors)]
		sliceStyles[i] = lipgloss.NewStyle().Foreground(color)
	}

	var b strings.Builder
	b.WriteString(styles.CardTitleStyle.Render(chart.Title))
	b.WriteString("\n")

	r := float64(radius)
	for y := -radius; y <= radius; y++ {
		var line strings.Builder
		// Terminal cells are roughly twice as tall as wide
		for x := -2 * radius; x <= 2*radius; x++ {
			dx := float64(x) / 2
			dy := float64(y)
			if dx*dx+dy*dy > r*r {
				line.WriteString(" ")
				continue
			}

			// Angle from 12 o'clock, clockwise, normalized to [0,1)
			turn := math.Atan2(dx, -dy) / (2 * math.Pi)
			if turn < 0 {
				turn += 1
			}

			idx := len(bounds) - 1
			for i, bound := range bounds {
				if turn < bound {
					idx = i
					break
				}
			}
			line.WriteString(sliceStyles[idx].Render("█"))
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderPieLegend(chart))

	return b.String()
}

func renderPieLegend(chart *models.PieChart) string {
	items := make([]LegendItem, len(chart.Slices))
	for i, slice := range chart.Slices {
		// Labels carry a newline between category and count, indent the
		// continuation under the text
		items[i] = LegendItem{
			Label: strings.ReplaceAll(slice.Label, "\n", "\n  "),
			Color: styles.PieColors[i%len(styles.PieColors)],
		}
	}
	return RenderLegend(items)
}
