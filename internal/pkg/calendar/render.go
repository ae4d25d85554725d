package calendar

import (
	"fmt"
	"strings"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// Render produces the textual month grid: a title line, the fixed
// weekday header, then week rows of three-character cells, " X " for
// days in activeDays and " . " otherwise. Rows wrap after Saturday,
// and the last row gets a terminator even when it ends mid-week.
// Members of activeDays outside the rendered day range never match a
// cell and produce no output.
func Render(month Month, activeDays DaySet) (string, error) {
	days, err := month.DaysInMonth()
	if err != nil {
		return "", err
	}

	firstWeekday, err := month.FirstWeekday()
	if err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "   %s %d\n", month.Name(), month.Year)
	b.WriteString(weekdayHeader)
	b.WriteByte('\n')

	b.WriteString(strings.Repeat("   ", firstWeekday))

	weekday := firstWeekday
	for day := 1; day <= days; day++ {
		if activeDays.Contains(day) {
			b.WriteString(" X ")
		} else {
			b.WriteString(" . ")
		}

		weekday++
		if weekday > 6 {
			b.WriteByte('\n')
			weekday = 0
		}
	}

	if weekday != 0 {
		b.WriteByte('\n')
	}

	return b.String(), nil
}
