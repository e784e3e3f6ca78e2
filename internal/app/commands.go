package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// runAnalysisCmd returns a command that runs the full analysis pipeline.
func runAnalysisCmd(mgr *services.Manager, criteria models.FilterCriteria) tea.Cmd {
	return func() tea.Msg {
		result, err := mgr.RunAnalysis(criteria)
		return AnalysisCompletedMsg{Result: result, Err: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// Commands provides a public interface to the command functions for tabs.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// RunAnalysis returns a command that runs the analysis pipeline.
func (c *Commands) RunAnalysis(criteria models.FilterCriteria) tea.Cmd {
	return runAnalysisCmd(c.manager, criteria)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}

// Quit returns a command that quits the application.
func (c *Commands) Quit() tea.Cmd {
	return tea.Quit
}
