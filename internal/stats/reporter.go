// Package stats computes descriptive statistics over loaded trips.
package stats

import (
	"errors"

	"github.com/dustin/go-humanize"

	"github.com/citybikes/bikeshare-tui/internal/db"
	"github.com/citybikes/bikeshare-tui/internal/models"
)

// ErrEmptyDataset indicates no trips match the current filters.
var ErrEmptyDataset = errors.New("no trips match the current filters")

// Reporter aggregates the frame contents into a report.
type Reporter struct {
	frame *db.Frame
}

// NewReporter creates a reporter over a frame.
func NewReporter(frame *db.Frame) *Reporter {
	return &Reporter{frame: frame}
}

// Summarize computes the full report for the currently loaded trips.
// Returns ErrEmptyDataset when the frame holds no trips. BirthYears is nil
// when no trip carries a birth year.
func (r *Reporter) Summarize() (*models.Report, error) {
	count, err := r.frame.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyDataset
	}

	report := &models.Report{TotalTrips: count}

	if report.MostCommonMonth, err = r.frame.ModeOf("month"); err != nil {
		return nil, err
	}
	if report.MostCommonDay, err = r.frame.ModeOf("day_of_week"); err != nil {
		return nil, err
	}
	if report.MostCommonStartHour, err = r.frame.ModeOfHour(); err != nil {
		return nil, err
	}
	if report.MostCommonStartStation, err = r.frame.ModeOf("start_station"); err != nil {
		return nil, err
	}
	if report.MostCommonEndStation, err = r.frame.ModeOf("end_station"); err != nil {
		return nil, err
	}
	if report.MostFrequentTrip, err = r.frame.MostFrequentTrip(); err != nil {
		return nil, err
	}
	if report.TotalDuration, report.AvgDuration, err = r.frame.DurationStats(); err != nil {
		return nil, err
	}
	if report.BirthYears, err = r.frame.BirthYearStats(); err != nil {
		return nil, err
	}

	return report, nil
}

// FormatTotalDuration renders a duration sum in seconds with digit grouping.
func FormatTotalDuration(seconds float64) string {
	return humanize.FormatFloat("#,###.", seconds)
}

// FormatMeanDuration renders a mean duration in seconds with two decimals.
func FormatMeanDuration(seconds float64) string {
	return humanize.FormatFloat("#,###.##", seconds)
}
