package utils

import (
	"testing"
	"time"
)

func TestFormatDisplayDate(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-01", "Jan 1st, 2025"},
		{"2025-03-02", "Mar 2nd, 2025"},
		{"2025-03-03", "Mar 3rd, 2025"},
		{"2025-03-04", "Mar 4th, 2025"},
		{"2025-03-11", "Mar 11th, 2025"},
		{"2025-03-12", "Mar 12th, 2025"},
		{"2025-03-13", "Mar 13th, 2025"},
		{"2025-03-21", "Mar 21st, 2025"},
		{"2025-12-28", "Dec 28th, 2025"},
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatDisplayDate(d); got != c.want {
			t.Errorf("FormatDisplayDate(%s) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestFormatDisplayDateZero(t *testing.T) {
	if got := FormatDisplayDate(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}
