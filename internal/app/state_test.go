package app

import (
	"testing"
	"time"

	"github.com/citybikes/bikeshare-tui/internal/models"
	"github.com/citybikes/bikeshare-tui/internal/services"
)

func testCriteria() models.FilterCriteria {
	return models.FilterCriteria{City: "Chicago", Month: models.FilterAll, Day: models.FilterAll}
}

func TestNewState(t *testing.T) {
	s := NewState(testCriteria(), 5)
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.GetCriteria().City != "Chicago" {
		t.Error("criteria should be preserved")
	}
	if !s.IsInitialLoading() {
		t.Error("initial loading should be true")
	}
	if s.GetResult() != nil {
		t.Error("result should be nil before the first analysis")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState(testCriteria(), 5)

	s.SetLoading("analysis", true)
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("analysis", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}
}

func TestState_SetResult(t *testing.T) {
	s := NewState(testCriteria(), 5)

	result := &services.AnalysisResult{Criteria: testCriteria()}
	s.SetResult(result)

	if s.GetResult() != result {
		t.Error("result should be stored")
	}
	if s.LastUpdated.IsZero() {
		t.Error("LastUpdated should be set")
	}
}

func TestState_PreviewRowsClamped(t *testing.T) {
	s := NewState(testCriteria(), 100)
	if s.GetPreviewRows() != 50 {
		t.Errorf("PreviewRows = %d, want 50", s.GetPreviewRows())
	}

	if got := s.SetPreviewRows(1); got != 5 {
		t.Errorf("SetPreviewRows(1) = %d, want 5", got)
	}
	if got := s.SetPreviewRows(30); got != 30 {
		t.Errorf("SetPreviewRows(30) = %d, want 30", got)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState(testCriteria(), 5)

	id := s.AddNotification(NotificationSuccess, "loaded", time.Minute)
	if id == "" {
		t.Fatal("expected a notification ID")
	}
	if len(s.GetNotifications()) != 1 {
		t.Fatal("expected one notification")
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification should be removed")
	}
}

func TestState_ExpiredNotifications(t *testing.T) {
	s := NewState(testCriteria(), 5)

	s.AddNotification(NotificationInfo, "short lived", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if len(s.GetNotifications()) != 0 {
		t.Error("expired notification should not be returned")
	}

	s.ClearExpiredNotifications()
	s.AddNotification(NotificationInfo, "persistent", 0)
	if len(s.GetNotifications()) != 1 {
		t.Error("zero-duration notification should persist")
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState(testCriteria(), 5)

	s.SetLoadingNotification("Loading trips...")
	notifications := s.GetNotifications()
	if len(notifications) != 1 || notifications[0].ID != LoadingNotificationID {
		t.Fatalf("notifications = %+v", notifications)
	}

	// Setting again updates the message in place
	s.SetLoadingNotification("Crunching trips...")
	notifications = s.GetNotifications()
	if len(notifications) != 1 || notifications[0].Message != "Crunching trips..." {
		t.Fatalf("notifications = %+v", notifications)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification should be cleared")
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState(testCriteria(), 5)

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", 0)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("notification count = %d, want 10", got)
	}
}
