package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/citybikes/bikeshare-tui/internal/models"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321.0,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610.0,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416.0,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350.0,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,,
45207,2017-01-17 14:53:07,2017-01-17 15:02:01,534.0,Clark St & Randolph St,Desplaines St & Jackson Blvd,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "chicago.csv", chicagoCSV)
	writeFixture(t, dir, "washington.csv", washingtonCSV)
	return NewLoader(map[string]string{
		"Chicago":       filepath.Join(dir, "chicago.csv"),
		"Washington":    filepath.Join(dir, "washington.csv"),
		"New York City": filepath.Join(dir, "new_york_city.csv"),
	})
}

func TestLoadUnfiltered(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.Load(models.FilterCriteria{City: "Chicago", Month: models.FilterAll, Day: models.FilterAll})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if ds.City != "Chicago" {
		t.Errorf("City = %q", ds.City)
	}
	if ds.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", ds.Len())
	}
	if !ds.HasGender || !ds.HasBirthYear {
		t.Error("Chicago dataset should report gender and birth year columns")
	}

	first := ds.Trips[0]
	if first.Month != "June" || first.DayOfWeek != "Friday" || first.Hour != 15 {
		t.Errorf("derived fields = %s/%s/%d", first.Month, first.DayOfWeek, first.Hour)
	}
	if first.Duration != 321.0 {
		t.Errorf("Duration = %f", first.Duration)
	}
	if first.BirthYear == nil || *first.BirthYear != 1992 {
		t.Errorf("BirthYear = %v", first.BirthYear)
	}

	// Rows with empty optional cells keep nil/empty values
	if ds.Trips[3].BirthYear != nil {
		t.Error("empty birth year cell should stay nil")
	}
	if ds.Trips[3].Gender != "" {
		t.Errorf("empty gender cell should stay empty, got %q", ds.Trips[3].Gender)
	}
}

func TestLoadFiltered(t *testing.T) {
	loader := newTestLoader(t)

	tests := []struct {
		name  string
		month string
		day   string
		want  int
	}{
		{"JanuaryOnly", "January", models.FilterAll, 2},
		{"TuesdayOnly", models.FilterAll, "Tuesday", 1},
		{"MarchMonday", "March", "Monday", 1},
		{"NoMatches", "February", models.FilterAll, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := loader.Load(models.FilterCriteria{City: "Chicago", Month: tt.month, Day: tt.day})
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if ds.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", ds.Len(), tt.want)
			}
		})
	}
}

func TestLoadIdempotent(t *testing.T) {
	loader := newTestLoader(t)
	criteria := models.FilterCriteria{City: "Chicago", Month: "January", Day: models.FilterAll}

	first, err := loader.Load(criteria)
	if err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}
	second, err := loader.Load(criteria)
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated loads differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestLoadWashingtonMissingOptionalColumns(t *testing.T) {
	loader := newTestLoader(t)

	ds, err := loader.Load(models.FilterCriteria{City: "Washington", Month: models.FilterAll, Day: models.FilterAll})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if ds.HasGender || ds.HasBirthYear {
		t.Error("Washington dataset should not report gender or birth year columns")
	}
	if ds.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ds.Len())
	}
	if ds.Trips[0].Duration != 489.066 {
		t.Errorf("Duration = %f", ds.Trips[0].Duration)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.Load(models.FilterCriteria{City: "New York City", Month: models.FilterAll, Day: models.FilterAll})
	if !errors.Is(err, ErrDataNotFound) {
		t.Errorf("error = %v, want ErrDataNotFound", err)
	}
}

func TestLoadUnknownCity(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.Load(models.FilterCriteria{City: "Atlantis", Month: models.FilterAll, Day: models.FilterAll})
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("error = %v, want ErrUnknownCity", err)
	}
}

func TestLoadInvalidCriteria(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.Load(models.FilterCriteria{City: "Chicago", Month: "Smarch", Day: models.FilterAll})
	if err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	content := `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-23 15:09:32,2017-06-23 15:14:53,321.0,A,B,Subscriber
2,not-a-timestamp,2017-06-23 15:14:53,321.0,A,B,Subscriber
3,2017-06-23 16:00:00,2017-06-23 16:10:00,not-a-number,A,B,Subscriber
`
	path := writeFixture(t, dir, "chicago.csv", content)
	loader := NewLoader(map[string]string{"Chicago": path})

	ds, err := loader.Load(models.FilterCriteria{City: "Chicago", Month: models.FilterAll, Day: models.FilterAll})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ds.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ds.Len())
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	content := `,Start Time,End Time,Start Station,End Station,User Type
1,2017-06-23 15:09:32,2017-06-23 15:14:53,A,B,Subscriber
`
	path := writeFixture(t, dir, "chicago.csv", content)
	loader := NewLoader(map[string]string{"Chicago": path})

	_, err := loader.Load(models.FilterCriteria{City: "Chicago", Month: models.FilterAll, Day: models.FilterAll})
	if err == nil {
		t.Error("expected error for missing required column")
	}
}
