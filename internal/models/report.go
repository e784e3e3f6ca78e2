package models

// BirthYearStats summarizes the optional birth-year column. All values are
// coerced to integers.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// Report is the fixed set of aggregate descriptors computed over one
// filtered view. Mode values break ties by ascending value.
type Report struct {
	TotalTrips int

	MostCommonMonth     string
	MostCommonDay       string
	MostCommonStartHour int

	MostCommonStartStation string
	MostCommonEndStation   string
	MostFrequentTrip       string

	TotalDuration float64 // seconds
	AvgDuration   float64 // seconds

	// BirthYears is nil when the city's file lacks the Birth Year column
	// or no row carries a value.
	BirthYears *BirthYearStats
}
