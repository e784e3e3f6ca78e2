// Package app implements the main Bubble Tea application with tab-based navigation.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
	"github.com/citybikes/bikeshare-tui/internal/ui/styles"
)

// TabID represents the identifier for a tab in the application.
type TabID int

const (
	// TabExplore is the ID for the explore tab with filters and the report.
	TabExplore TabID = iota
	// TabCharts is the ID for the charts tab.
	TabCharts
	// TabData is the ID for the raw data preview tab.
	TabData
	// TabInfo is the ID for the info tab.
	TabInfo
)

// String returns the string representation of the TabID.
func (t TabID) String() string {
	switch t {
	case TabExplore:
		return "Explore"
	case TabCharts:
		return "Charts"
	case TabData:
		return "Data"
	case TabInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Tab defines the interface that all tabs must implement.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the short help view.
	ShortHelp() []key.Binding

	// FullHelp returns key bindings for the full help view.
	FullHelp() [][]key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "explore")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "charts")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "data")),
		Tab4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "info")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload data")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Refresh, k.Help, k.Quit},
	}
}

// Styles defines the application styles.
type Styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	NotificationSuccess lipgloss.Style
	NotificationError   lipgloss.Style
	NotificationWarning lipgloss.Style
	NotificationInfo    lipgloss.Style

	Content lipgloss.Style
	Help    lipgloss.Style
	Toast   lipgloss.Style

	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warning := lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"}
	errorColor := lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}
	info := lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}

	s := Styles{}
	s.TabBar = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(subtle)
	s.ActiveTab = lipgloss.NewStyle().Bold(true).Foreground(highlight).Padding(0, 2)
	s.InactiveTab = lipgloss.NewStyle().Foreground(subtle).Padding(0, 2)

	s.NotificationSuccess = lipgloss.NewStyle().Foreground(success).Padding(0, 1)
	s.NotificationError = lipgloss.NewStyle().Foreground(errorColor).Bold(true).Padding(0, 1)
	s.NotificationWarning = lipgloss.NewStyle().Foreground(warning).Padding(0, 1)
	s.NotificationInfo = lipgloss.NewStyle().Foreground(info).Padding(0, 1)

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.Help = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	s.Toast = styles.ToastStyle

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Highlight = lipgloss.NewStyle().Foreground(highlight)

	return s
}

// Model is the main application model.
type Model struct {
	activeTab TabID
	tabs      []Tab
	tabNames  []string

	state    *State
	services *services.Manager
	commands *Commands
	keymap   KeyMap
	styles   Styles

	spinner spinner.Model

	width  int
	height int

	showHelp bool
	ready    bool

	eventChannel chan services.ServiceEvent
}

// NewModel initializes a new application model.
func NewModel(mgr *services.Manager) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	criteria := models.FilterCriteria{
		City:  mgr.Cities()[0],
		Month: models.FilterAll,
		Day:   models.FilterAll,
	}

	return &Model{
		activeTab: TabExplore,
		tabNames:  []string{"Explore", "Charts", "Data", "Info"},
		tabs:      make([]Tab, 4),
		state:     NewState(criteria, mgr.PreviewRows()),
		services:  mgr,
		commands:  NewCommands(mgr),
		keymap:    DefaultKeyMap(),
		styles:    DefaultStyles(),
		spinner:   s,
	}
}

// SetTabs sets the tabs for the model.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	if m.width > 0 && m.height > 0 {
		m.updateTabSizes()
	}
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// GetServices returns the service manager.
func (m *Model) GetServices() *services.Manager {
	return m.services
}

// GetCommands returns the commands helper.
func (m *Model) GetCommands() *Commands {
	return m.commands
}

// GetKeyMap returns the key bindings.
func (m *Model) GetKeyMap() KeyMap {
	return m.keymap
}

// GetStyles returns the application styles.
func (m *Model) GetStyles() Styles {
	return m.styles
}

// GetActiveTab returns the currently active tab ID.
func (m *Model) GetActiveTab() TabID {
	return m.activeTab
}

// GetWidth returns the window width.
func (m *Model) GetWidth() int {
	return m.width
}

// GetHeight returns the window height.
func (m *Model) GetHeight() int {
	return m.height
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	m.state.SetLoadingNotification("Loading trips...")

	cmds := []tea.Cmd{
		m.spinner.Tick,
		defaultTickCmd(),
	}

	if m.services != nil {
		cmds = append(cmds, subscribeToServicesCmd(m.services))
		cmds = append(cmds, runAnalysisCmd(m.services, m.state.GetCriteria()))
	}

	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg, tea.KeyMsg, spinner.TickMsg:
		if cmd := m.handleTeaMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		if appCmds := m.handleAppMsg(msg); len(appCmds) > 0 {
			cmds = append(cmds, appCmds...)
		}
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleTeaMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateTabSizes()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TickMsg:
		m.state.ClearExpiredNotifications()
		cmds = append(cmds, defaultTickCmd())
	case SubscriptionEventMsg:
		m.eventChannel = msg.Channel
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	case ServiceEventMsg:
		cmds = append(cmds, m.handleServiceEventMsg(msg)...)
	case CriteriaChangedMsg:
		cmds = append(cmds, m.handleCriteriaChanged(msg)...)
	case AnalysisCompletedMsg:
		cmds = append(cmds, m.handleAnalysisCompleted(msg)...)
	case PreviewRowsChangedMsg:
		m.state.SetPreviewRows(msg.Rows)
	case AddNotificationMsg:
		cmds = append(cmds, m.handleAddNotification(msg)...)
	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)
	case ClearExpiredNotificationsMsg:
		m.state.ClearExpiredNotifications()
	case StartLoadingMsg:
		m.state.SetLoading(msg.Resource, true)
		m.state.SetLoadingNotification("Crunching trips...")
	case StopLoadingMsg:
		m.state.SetLoading(msg.Resource, false)
		if !m.state.AnyLoading() {
			m.state.ClearLoadingNotification()
		}
	case ErrorMsg:
		cmds = append(cmds, notifyErrorCmd(msg.Error.Error()))
	case TabSwitchMsg:
		m.activeTab = msg.Tab
		m.updateTabSizes()
	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
	}
	return cmds
}

func (m *Model) handleServiceEventMsg(msg ServiceEventMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.handleServiceEvent(msg.Event); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.eventChannel != nil {
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	}
	return cmds
}

func (m *Model) handleServiceEvent(event services.ServiceEvent) tea.Cmd {
	switch e := event.(type) {
	case services.DataChangedEvent:
		// Re-run the analysis so the report reflects the new file contents
		return tea.Batch(
			notifyInfoCmd("Trip data changed on disk, reloading."),
			func() tea.Msg { return StartLoadingMsg{Resource: "analysis"} },
			runAnalysisCmd(m.services, m.state.GetCriteria()),
		)

	case services.ErrorEvent:
		return notifyErrorCmd(fmt.Sprintf("[%s] %v", e.Service, e.Error))
	}

	return nil
}

func (m *Model) handleCriteriaChanged(msg CriteriaChangedMsg) []tea.Cmd {
	m.state.SetCriteria(msg.Criteria)
	return []tea.Cmd{
		func() tea.Msg { return StartLoadingMsg{Resource: "analysis"} },
		runAnalysisCmd(m.services, msg.Criteria),
	}
}

func (m *Model) handleAnalysisCompleted(msg AnalysisCompletedMsg) []tea.Cmd {
	var cmds []tea.Cmd

	m.state.SetLoading("initial", false)
	m.state.SetLoading("analysis", false)
	if !m.state.AnyLoading() {
		m.state.ClearLoadingNotification()
	}

	if msg.Err != nil {
		cmds = append(cmds, notifyErrorCmd(fmt.Sprintf("Analysis failed: %v", msg.Err)))
		return cmds
	}

	m.state.SetResult(msg.Result)

	if msg.Result.Warning != "" {
		cmds = append(cmds, notifyWarningCmd(msg.Result.Warning))
	} else {
		cmds = append(cmds, notifySuccessCmd(fmt.Sprintf(
			"Loaded %d trips for %s", msg.Result.Dataset.Len(), msg.Result.Criteria.City)))
	}
	if msg.Result.Info != "" {
		cmds = append(cmds, notifyInfoCmd(msg.Result.Info))
	}

	return cmds
}

func (m *Model) handleAddNotification(msg AddNotificationMsg) []tea.Cmd {
	var cmds []tea.Cmd
	id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
	if msg.Duration > 0 {
		cmds = append(cmds, clearNotificationCmd(id, msg.Duration))
	}
	return cmds
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateTabSizes() {
	contentHeight := m.height - 5
	contentHeight = max(0, contentHeight)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil

	case key.Matches(msg, m.keymap.Tab1):
		m.activeTab = TabExplore
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab2):
		m.activeTab = TabCharts
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab3):
		m.activeTab = TabData
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.Tab4):
		m.activeTab = TabInfo
		m.updateTabSizes()
		return nil

	case key.Matches(msg, m.keymap.NextTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) + 1) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.PrevTab):
		if !m.showHelp {
			m.activeTab = TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs))
			m.updateTabSizes()
		}
		return nil

	case key.Matches(msg, m.keymap.Refresh):
		if m.services != nil {
			return tea.Batch(
				func() tea.Msg { return StartLoadingMsg{Resource: "analysis"} },
				runAnalysisCmd(m.services, m.state.GetCriteria()),
			)
		}
		return nil

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
			return nil
		}
	}

	// Let the tab handle other keys
	return nil
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	if !m.ready {
		b.WriteString(m.styles.Content.Render(fmt.Sprintf("%s Loading...", m.spinner.View())))
		return b.String()
	}

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		b.WriteString(m.tabs[m.activeTab].View())
	}

	mainView := b.String()

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	notifications := m.renderNotifications()
	if len(notifications) > 0 {
		return m.overlayToasts(mainView, notifications)
	}

	return mainView
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i, name := range m.tabNames {
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	var toasts []string
	for _, n := range notifications {
		var style lipgloss.Style
		var prefix string

		switch n.Type {
		case NotificationSuccess:
			style = m.styles.NotificationSuccess
			prefix = "[OK]"
		case NotificationError:
			style = m.styles.NotificationError
			prefix = "[ERR]"
		case NotificationWarning:
			style = m.styles.NotificationWarning
			prefix = "[WARN]"
		case NotificationInfo:
			style = m.styles.NotificationInfo
			prefix = "[INFO]"
		case NotificationLoading:
			style = m.styles.NotificationInfo
			prefix = m.spinner.View()
		}

		content := style.Render(fmt.Sprintf("%s %s", prefix, n.Message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}

	return toasts
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayHeight := len(overlayLines)
	overlayWidth := lipgloss.Width(overlay)

	y := (m.height - overlayHeight) / 2
	x := (m.width - overlayWidth) / 2

	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}

	for i, overlayLine := range overlayLines {
		mainY := y + i
		if mainY >= len(mainLines) {
			break
		}

		mainLine := mainLines[mainY]

		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if lipgloss.Width(left) < x {
			left += strings.Repeat(" ", x-lipgloss.Width(left))
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	if len(toasts) == 0 {
		return mainView
	}

	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)
	startY := 2

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			padding := strings.Repeat(" ", startX-mainLineWidth)
			mainLines[lineIdx] = mainLine + padding + toastLine
		} else {
			truncated := ansi.Truncate(mainLine, startX, "")
			mainLines[lineIdx] = truncated + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Navigation"))
	lines = append(lines, "  1-4        Switch tabs")
	lines = append(lines, "  Tab        Next tab")
	lines = append(lines, "  Shift+Tab  Previous tab")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Actions"))
	lines = append(lines, "  r          Reload data")
	lines = append(lines, "  ?          Toggle help")
	lines = append(lines, "  q/Ctrl+C   Quit")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Filters"))
	lines = append(lines, "  j/k, ↑/↓   Move between selectors")
	lines = append(lines, "  h/l, ←/→   Change selector value")
	lines = append(lines, "  Enter      Apply filters")
	lines = append(lines, "")

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		tabHelp := m.tabs[m.activeTab].ShortHelp()
		if len(tabHelp) > 0 {
			lines = append(lines, m.styles.Highlight.Render(fmt.Sprintf("%s Tab", m.tabNames[m.activeTab])))
			for _, binding := range tabHelp {
				lines = append(lines, fmt.Sprintf("  %-10s %s", binding.Help().Key, binding.Help().Desc))
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Subtle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
