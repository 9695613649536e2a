package tui

import (
	"fmt"
	"time"
)

// Units used by FormatElapsed. Months and years are fixed-length
// approximations; the output is a visual hint, not a calendar difference.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// FormatElapsed formats a duration with the largest unit whose value is at
// least 1, one decimal digit, and a short suffix.
// Examples: "45.0s", "1.5m", "2.0h", "2.0d", "1.0w", "1.0mo", "1.0y".
func FormatElapsed(d time.Duration) string {
	seconds := d.Seconds()

	switch {
	case d >= year:
		return fmt.Sprintf("%.1fy", seconds/year.Seconds())
	case d >= month:
		return fmt.Sprintf("%.1fmo", seconds/month.Seconds())
	case d >= week:
		return fmt.Sprintf("%.1fw", seconds/week.Seconds())
	case d >= day:
		return fmt.Sprintf("%.1fd", seconds/day.Seconds())
	case d >= time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	case d >= time.Minute:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fs", seconds)
	}
}
