package explore

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/stats"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

// View renders the explore tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return styles.CenterBoth(m.spinner.ViewWithLabel(), m.width, m.height)
	}

	var sections []string
	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderSelectors())
	sections = append(sections, m.renderReport())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Bikeshare Explorer")
	subtitle := styles.HelpStyle.Render("Trip statistics for Chicago, New York City and Washington")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderSelectors() string {
	cardWidth := max(m.width-6, 40)

	rows := []string{
		styles.CardTitleStyle.Render("Filters"),
		m.renderSelectorRow(rowCity, "City", m.cities[m.city]),
		m.renderSelectorRow(rowMonth, "Month", models.Months[m.month]),
		m.renderSelectorRow(rowDay, "Day", models.Days[m.day]),
		"",
		styles.HelpStyle.Render("←/→ change value · ↑/↓ move · enter apply"),
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSelectorRow(row selectorRow, label, value string) string {
	line := fmt.Sprintf("%-6s ◂ %s ▸", label, value)
	if m.focused == row {
		return styles.FocusedStyle.Render("> " + line)
	}
	return styles.BlurredStyle.Render("  " + line)
}

func (m *Model) renderReport() string {
	cardWidth := max(m.width-6, 40)

	result := m.state.GetResult()
	if result == nil {
		return styles.CardStyle.Width(cardWidth).Render(
			styles.HelpStyle.Render("No analysis yet."),
		)
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(fmt.Sprintf("Report · %s", result.Criteria.String())))

	if result.Warning != "" {
		rows = append(rows, styles.WarningStyle.Render(result.Warning))
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	report := result.Report
	label := styles.HelpStyle

	rows = append(rows, fmt.Sprintf("%s %d", label.Render("Total trips:"), report.TotalTrips))
	rows = append(rows, "")
	rows = append(rows, styles.SubTitleStyle.Render("Popular times"))
	rows = append(rows, fmt.Sprintf("%s %s", label.Render("Month:   "), report.MostCommonMonth))
	rows = append(rows, fmt.Sprintf("%s %s", label.Render("Weekday: "), report.MostCommonDay))
	rows = append(rows, fmt.Sprintf("%s %d:00", label.Render("Hour:    "), report.MostCommonStartHour))
	rows = append(rows, "")
	rows = append(rows, styles.SubTitleStyle.Render("Popular stations"))
	rows = append(rows, fmt.Sprintf("%s %s", label.Render("Start:   "), report.MostCommonStartStation))
	rows = append(rows, fmt.Sprintf("%s %s", label.Render("End:     "), report.MostCommonEndStation))
	rows = append(rows, fmt.Sprintf("%s %s", label.Render("Trip:    "), report.MostFrequentTrip))
	rows = append(rows, "")
	rows = append(rows, styles.SubTitleStyle.Render("Durations"))
	rows = append(rows, fmt.Sprintf("%s %s seconds", label.Render("Total:   "), stats.FormatTotalDuration(report.TotalDuration)))
	rows = append(rows, fmt.Sprintf("%s %s seconds", label.Render("Mean:    "), stats.FormatMeanDuration(report.AvgDuration)))
	rows = append(rows, "")
	rows = append(rows, styles.SubTitleStyle.Render("Birth years"))
	if report.BirthYears != nil {
		rows = append(rows, fmt.Sprintf("%s %d", label.Render("Earliest:    "), report.BirthYears.Earliest))
		rows = append(rows, fmt.Sprintf("%s %d", label.Render("Most recent: "), report.BirthYears.MostRecent))
		rows = append(rows, fmt.Sprintf("%s %d", label.Render("Most common: "), report.BirthYears.MostCommon))
	} else {
		rows = append(rows, styles.InfoStyle.Render("Birth year data not available."))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
