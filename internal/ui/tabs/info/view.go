package info

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/citybikes/bikeshare-tui/internal/config"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
	"github.com/citybikes/bikeshare-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderCitiesCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

// renderConfigCard renders the effective configuration.
func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("Data Directory", m.config.DataDir))
		rows = append(rows, m.renderConfigRow("Preview Rows", strconv.Itoa(m.config.PreviewRows)))
		rows = append(rows, m.renderConfigRow("Watch Data", strconv.FormatBool(m.config.WatchData)))
		rows = append(rows, m.renderConfigRow("Desktop Notify", strconv.FormatBool(m.config.DesktopNotify)))
		rows = append(rows, m.renderConfigRow("Log Level", m.config.LogLevel))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderCitiesCard lists the known cities and their CSV files.
func (m *Model) renderCitiesCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Cities"))
	rows = append(rows, "")

	if m.config != nil {
		for _, city := range m.config.Cities() {
			path, _ := m.config.CityPath(city)
			rows = append(rows, m.renderConfigRow(city, path))
		}
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render(
			config.CityWashington+" has no gender or birth year columns"))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders version and runtime information.
func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Bikeshare TUI"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Git Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")

	if result := m.state.GetResult(); result != nil {
		rows = append(rows, fmt.Sprintf("Loaded trips: %s",
			styles.InfoStyle.Render(strconv.Itoa(result.Dataset.Len()))))
	} else {
		rows = append(rows, styles.HelpStyle.Render("No dataset loaded yet"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
