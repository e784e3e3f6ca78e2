package components

import (
	"strings"
	"testing"

	"github.com/citybikes/bikeshare-tui/internal/models"
)

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 3, 2, 5, 4}

	chart := RenderLineChart(data, 40, 6, "Trips by hour")
	if chart == "" {
		t.Fatal("expected non-empty chart")
	}
	if !strings.Contains(chart, "Trips by hour") {
		t.Error("chart should contain the caption")
	}
}

func TestRenderLineChart_Empty(t *testing.T) {
	chart := RenderLineChart(nil, 40, 6, "empty")
	if !strings.Contains(chart, "No data available") {
		t.Errorf("empty chart = %q", chart)
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{10, 20, 5}
	labels := []string{"Subscriber", "Customer", "Other"}

	chart := RenderBarChart(values, labels, 60)
	lines := strings.Split(chart, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Subscriber") {
		t.Error("first line should carry first label")
	}
	if !strings.Contains(lines[1], "20") {
		t.Error("second line should show its value")
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	if got := RenderBarChart(nil, nil, 60); got != "" {
		t.Errorf("empty bar chart = %q", got)
	}
}

func TestRenderPie(t *testing.T) {
	chart := models.NewPieChart("User Type Distribution", []models.CategoryCount{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 1},
	})

	out := RenderPie(chart, 5)
	if !strings.Contains(out, "User Type Distribution") {
		t.Error("pie should contain the title")
	}
	if !strings.Contains(out, "Subscriber") {
		t.Error("legend should name each category")
	}
	if !strings.Contains(out, "3 (75.00%)") {
		t.Error("legend should carry count and percentage")
	}
	if !strings.Contains(out, "█") {
		t.Error("pie body should use block characters")
	}
}

func TestRenderPie_Empty(t *testing.T) {
	out := RenderPie(nil, 5)
	if !strings.Contains(out, "No data available") {
		t.Errorf("empty pie = %q", out)
	}

	out = RenderPie(models.NewPieChart("Empty", nil), 5)
	if !strings.Contains(out, "No data available") {
		t.Errorf("zero-total pie = %q", out)
	}
}

func TestRenderLegend(t *testing.T) {
	legend := RenderLegend([]LegendItem{
		{Label: "Trips", Color: "39"},
		{Label: "Riders", Color: "208"},
	})
	if !strings.Contains(legend, "Trips") || !strings.Contains(legend, "Riders") {
		t.Errorf("legend = %q", legend)
	}
	if len(strings.Split(legend, "\n")) != 2 {
		t.Errorf("legend should render one entry per line, got %q", legend)
	}
}

func TestSpinnerLabel(t *testing.T) {
	s := NewSpinner("Crunching trips")
	if !strings.Contains(s.ViewWithLabel(), "Crunching trips") {
		t.Error("spinner view should include the label")
	}

	s.SetLabel("Loading")
	if !strings.Contains(s.ViewWithLabel(), "Loading") {
		t.Error("spinner label should be updatable")
	}
}
