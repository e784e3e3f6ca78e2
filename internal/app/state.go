// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/citybikes/bikeshare-tui/internal/config"
	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State holds the shared application state: the current filter selection,
// the last analysis result and the notification stack.
type State struct {
	mu sync.RWMutex

	criteria    models.FilterCriteria
	result      *services.AnalysisResult
	previewRows int

	loadingInitial  bool
	loadingAnalysis bool

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates the shared state with an initial filter selection.
func NewState(criteria models.FilterCriteria, previewRows int) *State {
	return &State{
		criteria:       criteria,
		previewRows:    config.ClampPreviewRows(previewRows),
		notifications:  make([]Notification, 0),
		loadingInitial: true,
	}
}

// GetCriteria returns the current filter selection.
func (s *State) GetCriteria() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// SetCriteria updates the current filter selection.
func (s *State) SetCriteria(criteria models.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = criteria
}

// GetResult returns the last analysis result, or nil before the first run.
func (s *State) GetResult() *services.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// SetResult stores an analysis result.
func (s *State) SetResult(result *services.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.LastUpdated = time.Now()
}

// GetPreviewRows returns the raw preview row count.
func (s *State) GetPreviewRows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previewRows
}

// SetPreviewRows updates the raw preview row count, clamped to the allowed
// range, and returns the value actually stored.
func (s *State) SetPreviewRows(rows int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewRows = config.ClampPreviewRows(rows)
	return s.previewRows
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.loadingInitial = loading
	case "analysis":
		s.loadingAnalysis = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingInitial || s.loadingAnalysis
}

// IsInitialLoading returns true if the first analysis has not completed yet.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingInitial
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}
