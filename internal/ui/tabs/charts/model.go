// Package charts provides the distribution charts tab.
package charts

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/ui/components"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

// keyMap defines the key bindings specific to the charts tab.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// Model represents the charts tab state.
type Model struct {
	state    *app.State
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new charts model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the charts tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the charts tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmd tea.Cmd
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.viewport, cmd = m.viewport.Update(keyMsg)
	}
	return m, cmd
}

// View renders the charts tab.
func (m *Model) View() string {
	result := m.state.GetResult()

	var sections []string
	sections = append(sections, styles.TitleStyle.Render("Distributions"))

	if result == nil || result.Report == nil {
		msg := "No analysis yet."
		if result != nil && result.Warning != "" {
			msg = result.Warning
		}
		sections = append(sections, styles.HelpStyle.Render(msg))
	} else {
		cardWidth := max(m.width-6, 40)

		sections = append(sections, styles.CardStyle.Width(cardWidth).Render(
			components.RenderPie(result.UserTypeChart, components.DefaultPieRadius),
		))

		if result.GenderChart != nil {
			sections = append(sections, styles.CardStyle.Width(cardWidth).Render(
				components.RenderPie(result.GenderChart, components.DefaultPieRadius),
			))
		} else {
			sections = append(sections, styles.CardStyle.Width(cardWidth).Render(
				styles.InfoStyle.Render("Gender data not available."),
			))
		}

		sections = append(sections, styles.CardStyle.Width(cardWidth).Render(
			m.renderWeekdays(result.WeekdayCounts, cardWidth),
		))

		sections = append(sections, styles.CardStyle.Width(cardWidth).Render(
			m.renderHourly(result.HourlyCounts, cardWidth),
		))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderWeekdays(counts []int, cardWidth int) string {
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}

	title := styles.CardTitleStyle.Render("Trips by weekday")
	chart := components.RenderBarChart(values, models.Days[1:], cardWidth-8)

	return lipgloss.JoinVertical(lipgloss.Left, title, chart)
}

func (m *Model) renderHourly(counts []int, cardWidth int) string {
	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}

	title := styles.CardTitleStyle.Render("Trips by start hour")
	chart := components.RenderLineChart(data, cardWidth-12, 8, "hour of day (0-23)")

	return lipgloss.JoinVertical(lipgloss.Left, title, chart)
}

// SetSize sets the available size for the charts tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.keys.Up, m.keys.Down}}
}
