package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/citybikes/bikeshare-tui/internal/models"
)

// Aggregatable columns of the trips table, keyed by the name callers use.
var modeColumns = map[string]string{
	"month":         "month",
	"day_of_week":   "day_of_week",
	"hour":          "hour",
	"start_station": "start_station",
	"end_station":   "end_station",
	"user_type":     "user_type",
	"gender":        "gender",
}

// LoadDataset replaces the frame contents with the dataset's trips.
func (f *Frame) LoadDataset(ds *models.Dataset) error {
	ctx := context.Background()

	tx, err := f.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM trips"); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (
			month, day_of_week, hour, start_station, end_station,
			duration, user_type, gender, birth_year
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range ds.Trips {
		trip := &ds.Trips[i]

		var gender sql.NullString
		if trip.Gender != "" {
			gender = sql.NullString{String: trip.Gender, Valid: true}
		}
		var birthYear sql.NullInt64
		if trip.BirthYear != nil {
			birthYear = sql.NullInt64{Int64: int64(*trip.BirthYear), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			trip.Month,
			trip.DayOfWeek,
			trip.Hour,
			trip.StartStation,
			trip.EndStation,
			trip.Duration,
			trip.UserType,
			gender,
			birthYear,
		); err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trips: %w", err)
	}

	return nil
}

// Count returns the number of trips currently loaded.
func (f *Frame) Count() (int, error) {
	var count int
	err := f.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM trips").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

// ModeOf returns the most frequent value of a column. Ties break toward the
// smaller value so results stay deterministic across runs.
func (f *Frame) ModeOf(column string) (string, error) {
	col, ok := modeColumns[column]
	if !ok {
		return "", fmt.Errorf("unknown column: %s", column)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM trips
		WHERE %s IS NOT NULL
		GROUP BY %s
		ORDER BY COUNT(*) DESC, %s ASC
		LIMIT 1
	`, col, col, col, col)

	var value string
	err := f.QueryRowContext(context.Background(), query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to compute mode of %s: %w", col, err)
	}
	return value, nil
}

// ModeOfHour returns the most frequent start hour.
func (f *Frame) ModeOfHour() (int, error) {
	query := `
		SELECT hour FROM trips
		GROUP BY hour
		ORDER BY COUNT(*) DESC, hour ASC
		LIMIT 1
	`

	var hour int
	err := f.QueryRowContext(context.Background(), query).Scan(&hour)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute mode of hour: %w", err)
	}
	return hour, nil
}

// MostFrequentTrip returns the most common start to end station pairing,
// formatted as "<start> to <end>".
func (f *Frame) MostFrequentTrip() (string, error) {
	query := `
		SELECT start_station || ' to ' || end_station AS trip
		FROM trips
		GROUP BY trip
		ORDER BY COUNT(*) DESC, trip ASC
		LIMIT 1
	`

	var trip string
	err := f.QueryRowContext(context.Background(), query).Scan(&trip)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to compute most frequent trip: %w", err)
	}
	return trip, nil
}

// DurationStats returns the total and mean trip duration in seconds.
func (f *Frame) DurationStats() (total, mean float64, err error) {
	query := "SELECT COALESCE(SUM(duration), 0), COALESCE(AVG(duration), 0) FROM trips"
	err = f.QueryRowContext(context.Background(), query).Scan(&total, &mean)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute duration stats: %w", err)
	}
	return total, mean, nil
}

// BirthYearStats returns earliest, most recent and most common birth year
// over the rows that carry one. Returns nil when no row does.
func (f *Frame) BirthYearStats() (*models.BirthYearStats, error) {
	ctx := context.Background()

	var earliest, mostRecent sql.NullInt64
	err := f.QueryRowContext(ctx,
		"SELECT MIN(birth_year), MAX(birth_year) FROM trips WHERE birth_year IS NOT NULL",
	).Scan(&earliest, &mostRecent)
	if err != nil {
		return nil, fmt.Errorf("failed to compute birth year range: %w", err)
	}
	if !earliest.Valid {
		return nil, nil
	}

	var mostCommon int
	err = f.QueryRowContext(ctx, `
		SELECT birth_year FROM trips
		WHERE birth_year IS NOT NULL
		GROUP BY birth_year
		ORDER BY COUNT(*) DESC, birth_year ASC
		LIMIT 1
	`).Scan(&mostCommon)
	if err != nil {
		return nil, fmt.Errorf("failed to compute most common birth year: %w", err)
	}

	return &models.BirthYearStats{
		Earliest:   int(earliest.Int64),
		MostRecent: int(mostRecent.Int64),
		MostCommon: mostCommon,
	}, nil
}

// CategoryCounts returns per-value counts for a column, most frequent first.
// NULL and empty values are left out.
func (f *Frame) CategoryCounts(column string) ([]models.CategoryCount, error) {
	col, ok := modeColumns[column]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", column)
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) FROM trips
		WHERE %s IS NOT NULL AND %s != ''
		GROUP BY %s
		ORDER BY COUNT(*) DESC, %s ASC
	`, col, col, col, col, col)

	rows, err := f.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s counts: %w", col, err)
	}
	defer func() { _ = rows.Close() }()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", col, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s counts: %w", col, err)
	}

	return counts, nil
}

// DayCounts returns trip counts per weekday, Monday through Sunday.
func (f *Frame) DayCounts() ([]int, error) {
	rows, err := f.QueryContext(context.Background(),
		"SELECT day_of_week, COUNT(*) FROM trips GROUP BY day_of_week",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query day counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	days := models.Days[1:]
	counts := make([]int, len(days))
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		for i, name := range days {
			if name == day {
				counts[i] = count
				break
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day counts: %w", err)
	}

	return counts, nil
}

// HourCounts returns trip counts for each of the 24 start hours.
func (f *Frame) HourCounts() ([]int, error) {
	rows, err := f.QueryContext(context.Background(),
		"SELECT hour, COUNT(*) FROM trips GROUP BY hour",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query hour counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]int, 24)
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, fmt.Errorf("failed to scan hour count: %w", err)
		}
		if hour >= 0 && hour < 24 {
			counts[hour] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hour counts: %w", err)
	}

	return counts, nil
}
