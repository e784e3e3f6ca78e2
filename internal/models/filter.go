package models

import "fmt"

// FilterAll disables filtering on a dimension.
const FilterAll = "All"

// Months enumerates the selectable month filters. The datasets cover the
// first half of the year only.
var Months = []string{FilterAll, "January", "February", "March", "April", "May", "June"}

// Days enumerates the selectable weekday filters.
var Days = []string{FilterAll, "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// FilterCriteria selects a subset of a dataset by derived month and weekday.
// FilterAll on either dimension means no filtering on that dimension.
type FilterCriteria struct {
	City  string
	Month string
	Day   string
}

// Validate checks that month and day are members of their enumerations.
func (f FilterCriteria) Validate() error {
	if !contains(Months, f.Month) {
		return fmt.Errorf("invalid month filter: %q", f.Month)
	}
	if !contains(Days, f.Day) {
		return fmt.Errorf("invalid day filter: %q", f.Day)
	}
	return nil
}

// Matches reports whether a trip's derived fields satisfy the criteria.
func (f FilterCriteria) Matches(t *Trip) bool {
	if f.Month != FilterAll && t.Month != f.Month {
		return false
	}
	if f.Day != FilterAll && t.DayOfWeek != f.Day {
		return false
	}
	return true
}

// String renders the criteria for display and logging.
func (f FilterCriteria) String() string {
	return fmt.Sprintf("%s / %s / %s", f.City, f.Month, f.Day)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
