// Package models defines the domain types shared across the application.
package models

import "time"

// Trip is a single bicycle-share trip as read from a city CSV file, plus the
// calendar fields derived from its start timestamp at load time.
type Trip struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string
	Gender       string // empty when missing or column absent
	BirthYear    *int   // nil when missing or column absent

	// Derived fields, recomputed from StartTime on every load. They are
	// never read back from the source file.
	Month     string // full month name, e.g. "January"
	DayOfWeek string // full weekday name, e.g. "Monday"
	Hour      int    // 0-23
}

// Derive fills in the calendar fields from StartTime.
func (t *Trip) Derive() {
	t.Month = t.StartTime.Month().String()
	t.DayOfWeek = t.StartTime.Weekday().String()
	t.Hour = t.StartTime.Hour()
}

// TripKey returns the combined start/end station key used for the
// most-frequent-trip statistic.
func (t *Trip) TripKey() string {
	return t.StartStation + " to " + t.EndStation
}

// Dataset is an ordered sequence of trips for one city. Optional column
// presence is decided once at load time and carried as flags so consumers
// never probe rows ad hoc.
type Dataset struct {
	City         string
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Trips)
}

// Empty reports whether the dataset holds no trips.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Head returns the first n trips (or fewer, if the dataset is smaller).
// The returned slice is a copy; the dataset is never mutated.
func (d *Dataset) Head(n int) []Trip {
	if d == nil || n <= 0 {
		return nil
	}
	if n > len(d.Trips) {
		n = len(d.Trips)
	}
	head := make([]Trip, n)
	copy(head, d.Trips[:n])
	return head
}
