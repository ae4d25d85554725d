package calendar

import "fmt"

// Activity is one activity record as delivered by the external
// activity source, a JSON array of objects. Only StartDate drives the
// calendar; the remaining fields ride along for display.
type Activity struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Distance   float64 `json:"distance"`
	MovingTime int     `json:"moving_time"`
	StartDate  string  `json:"start_date"`
}

// DaySet is a set of day-of-month numbers kept in discovery order.
// Uniqueness is the only guaranteed property; membership checks are a
// linear scan, which is fine at calendar scale.
type DaySet []int

// Contains reports whether day is a member of the set.
func (s DaySet) Contains(day int) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// Add appends day to the set if not already present and reports
// whether the set grew.
func (s *DaySet) Add(day int) bool {
	if s.Contains(day) {
		return false
	}
	*s = append(*s, day)
	return true
}

func (s DaySet) Len() int {
	return len(s)
}

// ExtractStats counts records that contributed nothing to the set.
type ExtractStats struct {
	// Skipped records had no start_date or one shorter than the
	// "YYYY-MM-DD" prefix.
	Skipped int
	// OutOfRange records yielded a day outside 1..31. The day is still
	// added to the set; the renderer treats it as inert.
	OutOfRange int
}

// ExtractDays scans records in input order and collects the unique
// day-of-month numbers encoded in each start_date, stopping once
// maxDays unique days have been found.
func ExtractDays(records []Activity, maxDays int) DaySet {
	days, _ := ExtractDaysStats(records, maxDays)
	return days
}

// ExtractDaysStats is ExtractDays with a diagnostic count of skipped
// and out-of-range records.
//
// The day number is read from start_date byte offsets 8 and 9, the
// two-digit day of a "YYYY-MM-DD..." timestamp. Records with a missing
// or short start_date are skipped without error; a day parsed from
// malformed input may fall outside 1..31 and is kept anyway.
func ExtractDaysStats(records []Activity, maxDays int) (DaySet, ExtractStats) {
	var (
		days  DaySet
		stats ExtractStats
	)

	for _, record := range records {
		if days.Len() >= maxDays {
			break
		}

		if len(record.StartDate) < 10 {
			stats.Skipped++
			continue
		}

		day := int(record.StartDate[8]-'0')*10 + int(record.StartDate[9]-'0')
		if day < 1 || day > 31 {
			stats.OutOfRange++
		}

		days.Add(day)
	}

	return days, stats
}

// FilterMonth keeps the records whose start_date falls in the given
// month, matched on the "YYYY-MM" prefix. It lets a multi-month
// payload drive one month's calendar at a time.
func FilterMonth(records []Activity, month Month) []Activity {
	prefix := fmt.Sprintf("%04d-%02d", month.Year, month.Month)

	filtered := make([]Activity, 0, len(records))
	for _, record := range records {
		if len(record.StartDate) >= len(prefix) && record.StartDate[:len(prefix)] == prefix {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
