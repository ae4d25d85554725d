// Package calendar computes month geometry and maps Strava activity
// records onto calendar days.
package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonth = errors.New("calendar: month outside 1..12")
	ErrInvalidYear  = errors.New("calendar: year must be positive")
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, 28..31.
func DaysInMonth(year, month int) (int, error) {
	if year < 1 {
		return 0, fmt.Errorf("year %d: %w", year, ErrInvalidYear)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d: %w", month, ErrInvalidMonth)
	}

	days := daysPerMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		days = 29
	}

	return days, nil
}

// FirstWeekday returns the weekday of the first day of the month,
// 0=Sunday..6=Saturday, via Zeller's congruence. January and February
// are treated as months 13 and 14 of the previous year, and the
// congruence's zero-on-Saturday result is rotated to zero-on-Sunday.
func FirstWeekday(year, month int) (int, error) {
	if year < 1 {
		return 0, fmt.Errorf("year %d: %w", year, ErrInvalidYear)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d: %w", month, ErrInvalidMonth)
	}

	q := 1
	m := month
	y := year

	if m < 3 {
		m += 12
		y--
	}

	k := y % 100
	j := y / 100

	h := (q + (13*(m+1))/5 + k + k/4 + j/4 - 2*j) % 7
	if h < 0 {
		h += 7
	}

	return (h + 6) % 7, nil
}

// Month is a single calendar month of a specific year.
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (m Month) Validate() error {
	if m.Year < 1 {
		return fmt.Errorf("year %d: %w", m.Year, ErrInvalidYear)
	}
	if m.Month < 1 || m.Month > 12 {
		return fmt.Errorf("month %d: %w", m.Month, ErrInvalidMonth)
	}
	return nil
}

// Name returns the English month name, or "Unknown" for an
// out-of-range month.
func (m Month) Name() string {
	if m.Month < 1 || m.Month > 12 {
		return "Unknown"
	}
	return monthNames[m.Month-1]
}

func (m Month) DaysInMonth() (int, error) {
	return DaysInMonth(m.Year, m.Month)
}

func (m Month) FirstWeekday() (int, error) {
	return FirstWeekday(m.Year, m.Month)
}

// Next returns the month that follows m, rolling over the year.
func (m Month) Next() Month {
	if m.Month >= 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the month that precedes m, rolling over the year.
func (m Month) Prev() Month {
	if m.Month <= 1 {
		return Month{Year: m.Year - 1, Month: 12}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Name(), m.Year)
}
