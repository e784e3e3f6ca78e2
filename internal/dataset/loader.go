// Package dataset loads bikeshare trip records from city CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/citybikes/bikeshare-tui/internal/logger"
	"github.com/citybikes/bikeshare-tui/internal/models"
)

var (
	// ErrDataNotFound indicates the CSV file for a city is missing.
	ErrDataNotFound = errors.New("data file not found")
	// ErrUnknownCity indicates a city with no configured data file.
	ErrUnknownCity = errors.New("unknown city")
)

// timeLayout matches the timestamp format used in the trip exports.
const timeLayout = "2006-01-02 15:04:05"

// Column names as they appear in the CSV headers.
const (
	colStartTime    = "Start Time"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colDuration     = "Trip Duration"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

var requiredColumns = []string{colStartTime, colStartStation, colEndStation, colDuration, colUserType}

// Loader reads trip CSVs and produces filtered in-memory datasets.
type Loader struct {
	cityPaths map[string]string
}

// NewLoader creates a loader over a city to file path mapping.
func NewLoader(cityPaths map[string]string) *Loader {
	paths := make(map[string]string, len(cityPaths))
	for city, path := range cityPaths {
		paths[city] = path
	}
	return &Loader{cityPaths: paths}
}

// Load reads the CSV for the criteria's city and returns the trips matching
// the month and day filters, with derived fields populated. A missing file
// returns ErrDataNotFound so callers can degrade to an empty view.
func (l *Loader) Load(criteria models.FilterCriteria) (*models.Dataset, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	path, ok := l.cityPaths[criteria.City]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, criteria.City)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDataNotFound, criteria.City, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := l.read(f, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ds.City = criteria.City
	return ds, nil
}

func (l *Loader) read(r io.Reader, criteria models.FilterCriteria) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty file")
		}
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	_, hasGender := idx[colGender]
	_, hasBirthYear := idx[colBirthYear]

	ds := &models.Dataset{
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}

	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		trip, ok := parseTrip(record, idx, hasGender, hasBirthYear)
		if !ok {
			skipped++
			continue
		}

		trip.Derive()
		if criteria.Matches(&trip) {
			ds.Trips = append(ds.Trips, trip)
		}
	}

	if skipped > 0 {
		logger.Warn("skipped malformed trip records", "count", skipped, "city", criteria.City)
	}

	return ds, nil
}

// parseTrip converts a CSV record to a Trip. Records with an unparseable
// start time or duration are rejected. Missing gender or birth year cells
// stay unset rather than failing the row.
func parseTrip(record []string, idx map[string]int, hasGender, hasBirthYear bool) (models.Trip, bool) {
	var trip models.Trip

	get := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	start, err := time.Parse(timeLayout, get(colStartTime))
	if err != nil {
		return trip, false
	}
	duration, err := strconv.ParseFloat(get(colDuration), 64)
	if err != nil {
		return trip, false
	}

	trip.StartTime = start
	trip.Duration = duration
	trip.StartStation = get(colStartStation)
	trip.EndStation = get(colEndStation)
	trip.UserType = get(colUserType)

	if hasGender {
		trip.Gender = get(colGender)
	}
	if hasBirthYear {
		if raw := get(colBirthYear); raw != "" {
			// Exports carry birth years as floats ("1992.0")
			if year, err := strconv.ParseFloat(raw, 64); err == nil {
				y := int(year)
				trip.BirthYear = &y
			}
		}
	}

	return trip, true
}
