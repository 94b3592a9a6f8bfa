package ratelog

import (
	"fmt"
	"time"
)

// Summary renders the repeat report for a tracked key.
// Quote characters embedded in key pass through as-is; the surrounding
// quotes are literal delimiters added here.
func Summary(key string, count uint32, accumulated time.Duration) string {
	return fmt.Sprintf("Message: \"%s\" repeat for %d times in the past %s", key, count, formatDuration(accumulated))
}

// formatDuration picks a unit by magnitude (ms, s, m, h) and renders a
// whole number in that unit, rounded to nearest with ties up.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", (d+time.Millisecond/2)/time.Millisecond)
	case d < time.Minute:
		return fmt.Sprintf("%ds", (d+time.Second/2)/time.Second)
	case d < time.Hour:
		return fmt.Sprintf("%dm", (d+time.Minute/2)/time.Minute)
	default:
		return fmt.Sprintf("%dh", (d+time.Hour/2)/time.Hour)
	}
}
