package info

import (
	"strings"
	"testing"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/config"
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

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("BIKESHARE_DATA_DIR", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() failed: %v", err)
	}
	return cfg
}

func TestNew(t *testing.T) {
	m := New(newTestState(), newTestConfig(t))
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init() should return nil")
	}
}

func TestModel_View(t *testing.T) {
	cfg := newTestConfig(t)
	state := newTestState()
	m := New(state, cfg)
	m.SetSize(100, 50)

	view := m.View()
	for _, want := range []string{
		"Configuration",
		"Data Directory",
		"Preview Rows",
		"Cities",
		"Chicago",
		"New York City",
		"Washington has no gender or birth year columns",
		"About Bikeshare TUI",
		"No dataset loaded yet",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_View_WithResult(t *testing.T) {
	cfg := newTestConfig(t)
	state := newTestState()
	state.SetResult(&services.AnalysisResult{
		Dataset: &models.Dataset{City: "Chicago", Trips: make([]models.Trip, 7)},
	})

	m := New(state, cfg)
	m.SetSize(100, 50)

	if !strings.Contains(m.View(), "Loaded trips") {
		t.Error("View() missing the trip count row")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(newTestState(), nil)
	m.SetSize(80, 24)

	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("View() missing the nil-config placeholder")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(newTestState(), newTestConfig(t))
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp() is empty")
	}
}
