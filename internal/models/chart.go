package models

import "fmt"

// CategoryCount is one distinct categorical value and its occurrence count.
type CategoryCount struct {
	Value string
	Count int
}

// PieSlice is one slice of a category distribution pie chart.
type PieSlice struct {
	Category string
	Count    int
	Percent  float64 // 0-100
	Label    string  // "<category>\n<count> (<pct>%)"
}

// PieChart is a renderable category distribution. Slices are ordered by
// descending count, ties by ascending category value.
type PieChart struct {
	Title  string
	Total  int
	Slices []PieSlice
}

// NewPieChart builds a pie chart from ordered category counts. Percentages
// and labels are derived from the counts; the input order is preserved.
func NewPieChart(title string, counts []CategoryCount) *PieChart {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	chart := &PieChart{
		Title:  title,
		Total:  total,
		Slices: make([]PieSlice, 0, len(counts)),
	}

	for _, c := range counts {
		percent := 0.0
		if total > 0 {
			percent = float64(c.Count) / float64(total) * 100
		}
		chart.Slices = append(chart.Slices, PieSlice{
			Category: c.Value,
			Count:    c.Count,
			Percent:  percent,
			Label:    fmt.Sprintf("%s\n%d (%.2f%%)", c.Value, c.Count, percent),
		})
	}

	return chart
}
