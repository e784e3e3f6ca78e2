// Package charts builds category distribution charts from the trip frame.
package charts

import (
	"errors"
	"fmt"

	"github.com/citybikes/bikeshare-tui/internal/db"
	"github.com/citybikes/bikeshare-tui/internal/models"
)

// ErrColumnUnavailable indicates the requested column is not present in the
// current city's dataset.
var ErrColumnUnavailable = errors.New("column not available for this city")

// Chart titles by column.
const (
	TitleUserType = "User Type Distribution"
	TitleGender   = "Gender Distribution"
)

// CategoryDistribution counts the distinct values of a column and turns them
// into a pie chart, slices ordered by descending count. The available flag
// reflects whether the current city's CSV carries the column at all.
func CategoryDistribution(frame *db.Frame, column, title string, available bool) (*models.PieChart, error) {
	if !available {
		return nil, fmt.Errorf("%w: %s", ErrColumnUnavailable, column)
	}

	counts, err := frame.CategoryCounts(column)
	if err != nil {
		return nil, err
	}

	return models.NewPieChart(title, counts), nil
}

// UserTypeDistribution builds the user type pie chart.
func UserTypeDistribution(frame *db.Frame) (*models.PieChart, error) {
	return CategoryDistribution(frame, "user_type", TitleUserType, true)
}

// GenderDistribution builds the gender pie chart. Washington's export has no
// gender column, so callers pass availability from the loaded dataset.
func GenderDistribution(frame *db.Frame, available bool) (*models.PieChart, error) {
	return CategoryDistribution(frame, "gender", TitleGender, available)
}
