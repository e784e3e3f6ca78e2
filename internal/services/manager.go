// Package services provides service orchestration for the TUI.
package services

import (
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/citybikes/bikeshare-tui/internal/charts"
	"github.com/citybikes/bikeshare-tui/internal/config"
	"github.com/citybikes/bikeshare-tui/internal/dataset"
	"github.com/citybikes/bikeshare-tui/internal/db"
	"github.com/citybikes/bikeshare-tui/internal/logger"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/stats"
)

type (
	// DataChangedEvent is emitted when a CSV in the data directory changes.
	DataChangedEvent struct {
		Path string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DataChangedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()       {}

// AnalysisResult bundles everything one analysis run produces. Report is nil
// when the filtered view is empty; GenderChart is nil when the city's export
// has no gender column.
type AnalysisResult struct {
	Criteria      models.FilterCriteria
	Dataset       *models.Dataset
	Report        *models.Report
	UserTypeChart *models.PieChart
	GenderChart   *models.PieChart
	HourlyCounts  []int
	WeekdayCounts []int
	Warning       string
	Info          string
}

// Manager owns the loader, the frame and the watcher, and runs the
// load, filter, summarize, chart pipeline.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	loader      *dataset.Loader
	frame       *db.Frame
	reporter    *stats.Reporter
	watcher     *dataset.Watcher
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	frame, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize frame: %w", err)
	}

	m := &Manager{
		cfg:      cfg,
		loader:   dataset.NewLoader(cfg.CityPaths()),
		frame:    frame,
		reporter: stats.NewReporter(frame),
		stopChan: make(chan struct{}),
	}

	if cfg.WatchData {
		m.watcher, err = dataset.NewWatcher(cfg.DataDir)
		if err != nil {
			_ = frame.Close()
			return nil, fmt.Errorf("failed to start data watcher: %w", err)
		}
	}

	go m.routeEvents()

	return m, nil
}

// RunAnalysis loads the city's trips, applies the filters and computes the
// report and charts. Missing data files and empty filtered views degrade to
// a result carrying a warning rather than an error.
func (m *Manager) RunAnalysis(criteria models.FilterCriteria) (*AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := &AnalysisResult{Criteria: criteria}

	ds, err := m.loader.Load(criteria)
	switch {
	case errors.Is(err, dataset.ErrDataNotFound):
		logger.Warn("data file missing", "city", criteria.City)
		result.Dataset = &models.Dataset{City: criteria.City}
		result.Warning = fmt.Sprintf("Data file for %s is missing. Showing an empty dataset.", criteria.City)
		return result, nil
	case err != nil:
		return nil, err
	}
	result.Dataset = ds

	if err := m.frame.LoadDataset(ds); err != nil {
		return nil, err
	}

	if ds.Empty() {
		logger.Warn("no trips match filters", "criteria", criteria.String())
		result.Warning = "No trips match the current filters."
		return result, nil
	}

	result.Report, err = m.reporter.Summarize()
	if err != nil {
		return nil, err
	}

	result.UserTypeChart, err = charts.UserTypeDistribution(m.frame)
	if err != nil {
		return nil, err
	}

	result.GenderChart, err = charts.GenderDistribution(m.frame, ds.HasGender)
	if err != nil {
		if !errors.Is(err, charts.ErrColumnUnavailable) {
			return nil, err
		}
		logger.Info("gender column not available", "city", criteria.City)
		result.GenderChart = nil
	}

	switch {
	case !ds.HasGender && !ds.HasBirthYear:
		result.Info = fmt.Sprintf("Gender and birth year data are not available for %s.", criteria.City)
	case !ds.HasGender:
		result.Info = fmt.Sprintf("Gender data is not available for %s.", criteria.City)
	case !ds.HasBirthYear:
		result.Info = fmt.Sprintf("Birth year data is not available for %s.", criteria.City)
	}

	result.HourlyCounts, err = m.frame.HourCounts()
	if err != nil {
		return nil, err
	}

	result.WeekdayCounts, err = m.frame.DayCounts()
	if err != nil {
		return nil, err
	}

	logger.Debug("analysis complete", "criteria", criteria.String(), "trips", ds.Len())

	return result, nil
}

// Cities returns the supported city names in display order.
func (m *Manager) Cities() []string {
	return m.cfg.Cities()
}

// PreviewRows returns the configured raw preview row count.
func (m *Manager) PreviewRows() int {
	return m.cfg.PreviewRows
}

// routeEvents routes watcher events to subscribers.
func (m *Manager) routeEvents() {
	var watchEvents <-chan dataset.Event
	if m.watcher != nil {
		watchEvents = m.watcher.Events()
	}

	for {
		select {
		case event, ok := <-watchEvents:
			if !ok {
				return
			}
			m.handleWatchEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleWatchEvent(event dataset.Event) {
	if event.Err != nil {
		m.broadcast(ErrorEvent{Service: "watcher", Error: event.Err})
		return
	}

	logger.Info("data file changed", "path", event.Path)
	m.broadcast(DataChangedEvent{Path: event.Path})

	if m.cfg.DesktopNotify {
		_ = beeep.Notify("Bikeshare data updated", "A trip data file changed. Reload to pick up the new rows.", "")
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := m.frame.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
