package calendar_test

import (
	"reflect"
	"testing"

	"github.com/McCune1224/matrix-miles/internal/pkg/calendar"
)

func records(dates ...string) []calendar.Activity {
	activities := make([]calendar.Activity, 0, len(dates))
	for _, date := range dates {
		activities = append(activities, calendar.Activity{StartDate: date})
	}
	return activities
}

func TestExtractDaysStats(t *testing.T) {
	tests := []struct {
		name      string
		records   []calendar.Activity
		maxDays   int
		want      calendar.DaySet
		wantStats calendar.ExtractStats
	}{
		{
			name:    "duplicate day suppressed",
			records: records("2024-06-05", "2024-06-05", "2024-06-17"),
			maxDays: 31,
			want:    calendar.DaySet{5, 17},
		},
		{
			name:    "max days stops early",
			records: records("2024-06-05", "2024-06-17"),
			maxDays: 1,
			want:    calendar.DaySet{5},
		},
		{
			name:    "full timestamps",
			records: records("2024-06-05T06:01:12Z", "2024-06-09T18:30:00Z"),
			maxDays: 31,
			want:    calendar.DaySet{5, 9},
		},
		{
			name:      "short start date skipped",
			records:   records("2024-06", "", "2024-06-17"),
			maxDays:   31,
			want:      calendar.DaySet{17},
			wantStats: calendar.ExtractStats{Skipped: 2},
		},
		{
			name:      "out of range day kept and counted",
			records:   records("2024-06-32", "2024-06-05"),
			maxDays:   31,
			want:      calendar.DaySet{32, 5},
			wantStats: calendar.ExtractStats{OutOfRange: 1},
		},
		{
			name:    "no records",
			records: nil,
			maxDays: 31,
			want:    nil,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, stats := calendar.ExtractDaysStats(tt.records, tt.maxDays)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDaysStats() days = %v, want %v", got, tt.want)
			}

			if stats != tt.wantStats {
				t.Errorf("ExtractDaysStats() stats = %+v, want %+v", stats, tt.wantStats)
			}
		})
	}
}

func TestExtractDays_MaxDaysCountsUniqueDays(t *testing.T) {
	// Duplicates must not eat into the cap.
	got := calendar.ExtractDays(records("2024-06-05", "2024-06-05", "2024-06-17"), 2)

	want := calendar.DaySet{5, 17}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDays() = %v, want %v", got, want)
	}
}

func TestDaySet_Contains(t *testing.T) {
	set := calendar.DaySet{5, 17}

	if !set.Contains(5) {
		t.Error("DaySet.Contains(5) = false, want true")
	}
	if set.Contains(6) {
		t.Error("DaySet.Contains(6) = true, want false")
	}
}

func TestFilterMonth(t *testing.T) {
	all := records(
		"2024-05-31T23:59:59Z",
		"2024-06-01T00:00:00Z",
		"2024-06-15T06:00:00Z",
		"2024-07-01T00:00:00Z",
		"bogus",
	)

	got := calendar.FilterMonth(all, calendar.Month{Year: 2024, Month: 6})

	want := records("2024-06-01T00:00:00Z", "2024-06-15T06:00:00Z")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterMonth() = %v, want %v", got, want)
	}
}
