package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/citybikes/bikeshare-tui/internal/db"
	"github.com/citybikes/bikeshare-tui/internal/models"
)

func newLoadedFrame(t *testing.T, trips []models.Trip) *db.Frame {
	t.Helper()
	frame, err := db.New()
	if err != nil {
		t.Fatalf("Failed to create frame: %v", err)
	}
	t.Cleanup(func() { _ = frame.Close() })

	if err := frame.LoadDataset(&models.Dataset{Trips: trips}); err != nil {
		t.Fatalf("LoadDataset() failed: %v", err)
	}
	return frame
}

func derived(start time.Time, startStation, endStation, userType string, birthYear *int, duration float64) models.Trip {
	tr := models.Trip{
		StartTime:    start,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		BirthYear:    birthYear,
		Duration:     duration,
	}
	tr.Derive()
	return tr
}

func intPtr(n int) *int { return &n }

func TestSummarize(t *testing.T) {
	jun := time.Date(2017, 6, 23, 15, 0, 0, 0, time.UTC)
	jan := time.Date(2017, 1, 2, 9, 0, 0, 0, time.UTC)

	frame := newLoadedFrame(t, []models.Trip{
		derived(jun, "A", "B", "Subscriber", intPtr(1992), 300),
		derived(jun, "A", "B", "Subscriber", intPtr(1981), 600),
		derived(jan, "B", "C", "Customer", nil, 900),
	})

	report, err := NewReporter(frame).Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}

	if report.TotalTrips != 3 {
		t.Errorf("TotalTrips = %d", report.TotalTrips)
	}
	if report.MostCommonMonth != "June" {
		t.Errorf("MostCommonMonth = %q", report.MostCommonMonth)
	}
	if report.MostCommonDay != "Friday" {
		t.Errorf("MostCommonDay = %q", report.MostCommonDay)
	}
	if report.MostCommonStartHour != 15 {
		t.Errorf("MostCommonStartHour = %d", report.MostCommonStartHour)
	}
	if report.MostCommonStartStation != "A" {
		t.Errorf("MostCommonStartStation = %q", report.MostCommonStartStation)
	}
	if report.MostCommonEndStation != "B" {
		t.Errorf("MostCommonEndStation = %q", report.MostCommonEndStation)
	}
	if report.MostFrequentTrip != "A to B" {
		t.Errorf("MostFrequentTrip = %q", report.MostFrequentTrip)
	}
	if report.TotalDuration != 1800 {
		t.Errorf("TotalDuration = %f", report.TotalDuration)
	}
	if report.AvgDuration != 600 {
		t.Errorf("AvgDuration = %f", report.AvgDuration)
	}

	if report.BirthYears == nil {
		t.Fatal("expected birth year stats")
	}
	if report.BirthYears.Earliest != 1981 || report.BirthYears.MostRecent != 1992 {
		t.Errorf("BirthYears = %+v", report.BirthYears)
	}
}

func TestSummarize_SumMatchesMeanTimesCount(t *testing.T) {
	jun := time.Date(2017, 6, 23, 15, 0, 0, 0, time.UTC)

	frame := newLoadedFrame(t, []models.Trip{
		derived(jun, "A", "B", "Subscriber", nil, 321.5),
		derived(jun, "A", "B", "Subscriber", nil, 1610.25),
		derived(jun, "B", "C", "Customer", nil, 489.066),
	})

	report, err := NewReporter(frame).Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}

	product := report.AvgDuration * float64(report.TotalTrips)
	if math.Abs(report.TotalDuration-product) > 1e-6 {
		t.Errorf("sum %f does not match mean*count %f", report.TotalDuration, product)
	}
}

func TestSummarize_Empty(t *testing.T) {
	frame := newLoadedFrame(t, nil)

	_, err := NewReporter(frame).Summarize()
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("error = %v, want ErrEmptyDataset", err)
	}
}

func TestSummarize_NoBirthYears(t *testing.T) {
	jun := time.Date(2017, 6, 23, 15, 0, 0, 0, time.UTC)

	frame := newLoadedFrame(t, []models.Trip{
		derived(jun, "A", "B", "Subscriber", nil, 300),
	})

	report, err := NewReporter(frame).Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if report.BirthYears != nil {
		t.Errorf("BirthYears = %+v, want nil", report.BirthYears)
	}
}

func TestFormatDurations(t *testing.T) {
	if got := FormatTotalDuration(1234567); got != "1,234,567" {
		t.Errorf("FormatTotalDuration = %q", got)
	}
	if got := FormatMeanDuration(1234.5); got != "1,234.50" {
		t.Errorf("FormatMeanDuration = %q", got)
	}
}
