package utils

import "fmt"

// FormatCents renders an amount in minor currency units as "$12.34".
// All monetary math stays in integers; division happens only at display time.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
