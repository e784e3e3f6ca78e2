// Package data provides the raw trip preview tab.
package data

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

const timeLayout = "2006-01-02 15:04:05"

// keyMap defines the key bindings specific to the data tab.
type keyMap struct {
	More key.Binding
	Less key.Binding
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer rows"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model represents the data preview tab state.
type Model struct {
	state  *app.State
	table  table.Model
	keys   keyMap
	width  int
	height int
}

// New creates a new data preview model.
func New(state *app.State) *Model {
	columns := []table.Column{
		{Title: "Start Time", Width: 20},
		{Title: "Start Station", Width: 26},
		{Title: "End Station", Width: 26},
		{Title: "Duration", Width: 9},
		{Title: "User Type", Width: 11},
		{Title: "Gender", Width: 7},
		{Title: "Birth Year", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state: state,
		table: t,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the data tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the data tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.More):
			rows := m.state.GetPreviewRows() + 5
			return m, func() tea.Msg {
				return app.PreviewRowsChangedMsg{Rows: rows}
			}
		case key.Matches(keyMsg, m.keys.Less):
			rows := m.state.GetPreviewRows() - 5
			return m, func() tea.Msg {
				return app.PreviewRowsChangedMsg{Rows: rows}
			}
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(keyMsg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the data tab.
func (m *Model) View() string {
	result := m.state.GetResult()

	var sections []string
	sections = append(sections, styles.TitleStyle.Render("Raw Trips"))

	if result == nil || result.Dataset.Empty() {
		msg := "No analysis yet."
		if result != nil && result.Warning != "" {
			msg = result.Warning
		}
		sections = append(sections, styles.HelpStyle.Render(msg))
	} else {
		previewRows := m.state.GetPreviewRows()
		trips := result.Dataset.Head(previewRows)

		m.table.SetRows(tripsToRows(trips))
		m.table.SetHeight(min(len(trips)+1, max(m.height-8, 5)))

		cardWidth := max(m.width-6, 40)
		sections = append(sections, styles.CardStyle.Width(cardWidth).Render(m.table.View()))
		sections = append(sections, styles.HelpStyle.Render(fmt.Sprintf(
			"Showing %d of %d trips · +/- adjust (5-50)", len(trips), result.Dataset.Len())))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func tripsToRows(trips []models.Trip) []table.Row {
	rows := make([]table.Row, len(trips))
	for i, trip := range trips {
		gender := trip.Gender
		if gender == "" {
			gender = "-"
		}
		birthYear := "-"
		if trip.BirthYear != nil {
			birthYear = strconv.Itoa(*trip.BirthYear)
		}

		rows[i] = table.Row{
			trip.StartTime.Format(timeLayout),
			trip.StartStation,
			trip.EndStation,
			fmt.Sprintf("%.0f", trip.Duration),
			trip.UserType,
			gender,
			birthYear,
		}
	}
	return rows
}

// SetSize sets the available size for the data tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.More, m.keys.Less}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.More, m.keys.Less},
	}
}
