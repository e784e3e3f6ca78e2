package app

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citybikes/bikeshare-tui/internal/config"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

func TestTabIDString(t *testing.T) {
	tests := []struct {
		id   TabID
		want string
	}{
		{TabExplore, "Explore"},
		{TabCharts, "Charts"},
		{TabData, "Data"},
		{TabInfo, "Info"},
		{TabID(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TabID(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNotificationTypeString(t *testing.T) {
	if NotificationWarning.String() != "warning" {
		t.Errorf("String() = %q", NotificationWarning.String())
	}
	if NotificationType(99).String() != "unknown" {
		t.Errorf("String() = %q", NotificationType(99).String())
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.Quit.Keys()) == 0 {
		t.Error("Quit binding should have keys")
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()
	os.Setenv("BIKESHARE_DATA_DIR", dir)
	t.Cleanup(func() { os.Unsetenv("BIKESHARE_DATA_DIR") })

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() failed: %v", err)
	}

	mgr, err := services.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })

	return NewModel(mgr)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.GetActiveTab() != TabExplore {
		t.Errorf("initial tab = %v, want Explore", m.GetActiveTab())
	}
	criteria := m.GetState().GetCriteria()
	if criteria.City != config.CityChicago {
		t.Errorf("initial city = %q", criteria.City)
	}
	if criteria.Month != "All" || criteria.Day != "All" {
		t.Errorf("initial filters = %q/%q, want All/All", criteria.Month, criteria.Day)
	}
}

func TestModelTabSwitching(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 100, 40
	m.ready = true

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if m.GetActiveTab() != TabData {
		t.Errorf("tab after '3' = %v, want Data", m.GetActiveTab())
	}

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	if m.GetActiveTab() != TabInfo {
		t.Errorf("tab after Tab = %v, want Info", m.GetActiveTab())
	}

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	if m.GetActiveTab() != TabExplore {
		t.Errorf("tab should wrap to Explore, got %v", m.GetActiveTab())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Error("help should be shown after '?'")
	}

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("help should close on Esc")
	}
}

func TestModelAnalysisCompleted(t *testing.T) {
	m := newTestModel(t)

	result, err := m.GetServices().RunAnalysis(m.GetState().GetCriteria())
	if err != nil {
		t.Fatalf("RunAnalysis() failed: %v", err)
	}

	cmds := m.handleAnalysisCompleted(AnalysisCompletedMsg{Result: result})
	if len(cmds) == 0 {
		t.Error("expected notification commands")
	}
	if m.GetState().GetResult() != result {
		t.Error("result should be stored in state")
	}
	if m.GetState().IsInitialLoading() {
		t.Error("initial loading should be cleared")
	}
}
