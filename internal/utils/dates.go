package utils

import (
	"fmt"
	"time"
)

// FormatDisplayDate renders a date as "Jan 1st, 2025". Display only; never
// sort on this format.
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	day := t.Day()
	return fmt.Sprintf("%s %d%s, %d", t.Format("Jan"), day, ordinalSuffix(day), t.Year())
}

func ordinalSuffix(day int) string {
	switch {
	case day%10 == 1 && day != 11:
		return "st"
	case day%10 == 2 && day != 12:
		return "nd"
	case day%10 == 3 && day != 13:
		return "rd"
	default:
		return "th"
	}
}
