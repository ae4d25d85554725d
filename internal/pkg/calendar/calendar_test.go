package calendar_test

import (
	"errors"
	"testing"

	"github.com/McCune1224/matrix-miles/internal/pkg/calendar"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{year: 2000, want: true},
		{year: 2024, want: true},
		{year: 1900, want: false},
		{year: 2023, want: false},
		{year: 1600, want: true},
		{year: 2100, want: false},
	}
	for _, tt := range tests {
		if got := calendar.IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		want    int
		wantErr error
	}{
		{name: "february leap year", year: 2024, month: 2, want: 29},
		{name: "february common year", year: 2023, month: 2, want: 28},
		{name: "april any year", year: 1999, month: 4, want: 30},
		{name: "december", year: 2024, month: 12, want: 31},
		{name: "month zero", year: 2024, month: 0, wantErr: calendar.ErrInvalidMonth},
		{name: "month thirteen", year: 2024, month: 13, wantErr: calendar.ErrInvalidMonth},
		{name: "year zero", year: 0, month: 6, wantErr: calendar.ErrInvalidYear},
		{name: "negative year", year: -44, month: 3, wantErr: calendar.ErrInvalidYear},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.DaysInMonth(tt.year, tt.month)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DaysInMonth(%d, %d) error = %v, wantErr %v", tt.year, tt.month, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth_AprilAlwaysThirty(t *testing.T) {
	for year := 1582; year <= 2100; year++ {
		got, err := calendar.DaysInMonth(year, 4)
		if err != nil {
			t.Fatalf("DaysInMonth(%d, 4) error = %v", year, err)
		}
		if got != 30 {
			t.Fatalf("DaysInMonth(%d, 4) = %d, want 30", year, got)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		want    int
		wantErr error
	}{
		// Jan 1 2024 is a Monday.
		{name: "january 2024", year: 2024, month: 1, want: 1},
		// Jun 1 2024 is a Saturday.
		{name: "june 2024", year: 2024, month: 6, want: 6},
		// Mar 1 2020 is a Sunday.
		{name: "march 2020", year: 2020, month: 3, want: 0},
		// Feb 1 2000 is a Tuesday; exercises the Jan/Feb previous-year shift.
		{name: "february 2000", year: 2000, month: 2, want: 2},
		{name: "month zero", year: 2024, month: 0, wantErr: calendar.ErrInvalidMonth},
		{name: "year zero", year: 0, month: 1, wantErr: calendar.ErrInvalidYear},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.FirstWeekday(tt.year, tt.month)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FirstWeekday(%d, %d) error = %v, wantErr %v", tt.year, tt.month, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("FirstWeekday(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

// Advancing a month's first weekday by its day count must predict the
// next month's first weekday across a full year.
func TestFirstWeekday_ConsecutiveMonths(t *testing.T) {
	for _, year := range []int{1999, 2023, 2024} {
		month := calendar.Month{Year: year, Month: 1}

		for i := 0; i < 12; i++ {
			first, err := month.FirstWeekday()
			if err != nil {
				t.Fatalf("FirstWeekday(%v) error = %v", month, err)
			}

			days, err := month.DaysInMonth()
			if err != nil {
				t.Fatalf("DaysInMonth(%v) error = %v", month, err)
			}

			next := month.Next()
			nextFirst, err := next.FirstWeekday()
			if err != nil {
				t.Fatalf("FirstWeekday(%v) error = %v", next, err)
			}

			if want := (first + days) % 7; nextFirst != want {
				t.Errorf("FirstWeekday(%v) = %d, want %d (from %v)", next, nextFirst, want, month)
			}

			month = next
		}
	}
}

func TestMonth_NextPrev(t *testing.T) {
	tests := []struct {
		name  string
		month calendar.Month
		next  calendar.Month
	}{
		{
			name:  "mid year",
			month: calendar.Month{Year: 2024, Month: 6},
			next:  calendar.Month{Year: 2024, Month: 7},
		},
		{
			name:  "year rollover",
			month: calendar.Month{Year: 2023, Month: 12},
			next:  calendar.Month{Year: 2024, Month: 1},
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Next(); got != tt.next {
				t.Errorf("Month.Next() = %v, want %v", got, tt.next)
			}
			if got := tt.next.Prev(); got != tt.month {
				t.Errorf("Month.Prev() = %v, want %v", got, tt.month)
			}
		})
	}
}

func TestMonth_Name(t *testing.T) {
	if got := (calendar.Month{Year: 2024, Month: 6}).Name(); got != "June" {
		t.Errorf("Month.Name() = %q, want %q", got, "June")
	}
	if got := (calendar.Month{Year: 2024, Month: 13}).Name(); got != "Unknown" {
		t.Errorf("Month.Name() = %q, want %q", got, "Unknown")
	}
}
