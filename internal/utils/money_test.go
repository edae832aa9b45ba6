package utils

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{123456, "$1234.56"},
		{95000, "$950.00"},
		{-250, "-$2.50"},
	}
	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Errorf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}
