package app

import (
	"time"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// CriteriaChangedMsg requests a fresh analysis with a new filter selection.
type CriteriaChangedMsg struct {
	Criteria models.FilterCriteria
}

// AnalysisCompletedMsg contains the outcome of an analysis run.
type AnalysisCompletedMsg struct {
	Result *services.AnalysisResult
	Err    error
}

// PreviewRowsChangedMsg requests a change to the raw preview row count.
type PreviewRowsChangedMsg struct {
	Rows int
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
