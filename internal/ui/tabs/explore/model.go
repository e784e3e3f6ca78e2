// Package explore provides the filter controls and statistics report tab.
package explore

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/ui/components"
)

// selectorRow identifies one of the three filter selectors.
type selectorRow int

const (
	rowCity selectorRow = iota
	rowMonth
	rowDay
	rowCount
)

// keyMap defines the key bindings specific to the explore tab.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Apply key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous selector"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next selector"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next value"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filters"),
		),
	}
}

// Model represents the explore tab state.
type Model struct {
	state    *app.State
	cities   []string
	focused  selectorRow
	city     int
	month    int
	day      int
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new explore model. The selector positions start on the
// state's current criteria.
func New(state *app.State, cities []string) *Model {
	m := &Model{
		state:    state,
		cities:   cities,
		keys:     defaultKeyMap(),
		spinner:  components.NewSpinner("Crunching trips..."),
		viewport: viewport.New(0, 0),
	}

	criteria := state.GetCriteria()
	m.city = indexOf(cities, criteria.City)
	m.month = indexOf(models.Months, criteria.Month)
	m.day = indexOf(models.Days, criteria.Day)

	return m
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return 0
}

// Init initializes the explore tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick()
}

// Criteria returns the selection currently shown by the selectors.
func (m *Model) Criteria() models.FilterCriteria {
	return models.FilterCriteria{
		City:  m.cities[m.city],
		Month: models.Months[m.month],
		Day:   models.Days[m.day],
	}
}

// Update handles messages for the explore tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.focused = (m.focused - 1 + rowCount) % rowCount
		case key.Matches(msg, m.keys.Down):
			m.focused = (m.focused + 1) % rowCount
		case key.Matches(msg, m.keys.Left):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Right):
			m.cycle(1)
		case key.Matches(msg, m.keys.Apply):
			criteria := m.Criteria()
			return m, func() tea.Msg {
				return app.CriteriaChangedMsg{Criteria: criteria}
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// cycle moves the focused selector by delta, wrapping around.
func (m *Model) cycle(delta int) {
	switch m.focused {
	case rowCity:
		m.city = (m.city + delta + len(m.cities)) % len(m.cities)
	case rowMonth:
		m.month = (m.month + delta + len(models.Months)) % len(models.Months)
	case rowDay:
		m.day = (m.day + delta + len(models.Days)) % len(models.Days)
	}
}

// SetSize sets the available size for the explore tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Apply}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Left, m.keys.Right, m.keys.Apply},
	}
}
