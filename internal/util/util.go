package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDistance formats meters for display, rounded to the meter below one kilometer.
func FormatDistance(meters float64) string {
	if meters < 0 {
		meters = 0
	}

	rounded := math.Round(meters)
	if rounded < 1000 {
		return fmt.Sprintf("%d m", int64(rounded))
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
