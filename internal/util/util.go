// Package util holds small formatting helpers shared by the terminal commands.
package util

import (
	"fmt"
	"strconv"
	"time"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// FormatSize renders a byte count the way a file listing would, e.g. "1.5 KB".
func FormatSize(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// FormatInterval renders a polling interval at second precision.
// Sub-second intervals keep their milliseconds so "500ms" does not read as "0s".
func FormatInterval(d time.Duration) string {
	if d > 0 && d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}

	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
