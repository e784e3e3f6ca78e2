package charts

import (
	"strings"
	"testing"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

func newTestState() *app.State {
	return app.NewState(models.FilterCriteria{
		City:  "Chicago",
		Month: models.FilterAll,
		Day:   models.FilterAll,
	}, 5)
}

func testResult() *services.AnalysisResult {
	hourly := make([]int, 24)
	hourly[8] = 40
	hourly[17] = 55

	weekdays := make([]int, 7)
	weekdays[4] = 3
	weekdays[0] = 1

	return &services.AnalysisResult{
		Dataset: &models.Dataset{City: "Chicago", Trips: make([]models.Trip, 4)},
		Report:  &models.Report{TotalTrips: 4},
		UserTypeChart: models.NewPieChart("User Type Distribution", []models.CategoryCount{
			{Value: "Subscriber", Count: 3},
			{Value: "Customer", Count: 1},
		}),
		GenderChart: models.NewPieChart("Gender Distribution", []models.CategoryCount{
			{Value: "Male", Count: 2},
			{Value: "Female", Count: 2},
		}),
		HourlyCounts:  hourly,
		WeekdayCounts: weekdays,
	}
}

func TestModel_View_NoResult(t *testing.T) {
	m := New(newTestState())
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "No analysis yet.") {
		t.Error("View() missing the empty-state message")
	}
}

func TestModel_View_WithCharts(t *testing.T) {
	state := newTestState()
	state.SetResult(testResult())

	m := New(state)
	m.SetSize(120, 60)

	view := m.View()
	for _, want := range []string{
		"Distributions",
		"User Type Distribution",
		"Gender Distribution",
		"Subscriber",
		"3 (75.00%)",
		"Trips by weekday",
		"Monday",
		"Trips by start hour",
		"hour of day (0-23)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_View_NoGenderColumn(t *testing.T) {
	state := newTestState()
	result := testResult()
	result.GenderChart = nil
	state.SetResult(result)

	m := New(state)
	m.SetSize(120, 60)

	view := m.View()
	if !strings.Contains(view, "Gender data not available.") {
		t.Error("View() missing the gender placeholder")
	}
	if strings.Contains(view, "Gender Distribution") {
		t.Error("View() renders a gender chart that should be absent")
	}
}

func TestModel_View_Warning(t *testing.T) {
	state := newTestState()
	state.SetResult(&services.AnalysisResult{
		Dataset: &models.Dataset{City: "Chicago"},
		Warning: "No trips match the current filters.",
	})

	m := New(state)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "No trips match the current filters.") {
		t.Error("View() missing the warning message")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(newTestState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp() is empty")
	}
}
