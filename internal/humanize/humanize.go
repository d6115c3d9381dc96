// Package humanize is like dustin/go-humanize.
package humanize

import (
	"fmt"
	"strings"
)

// SI is like dustin/go-humanize.SI but its implementation is
// specially tailored for printing transfer speeds.
func SI(value float64, unit string) string {
	value, prefix := reduce(value)
	return strings.TrimSpace(fmt.Sprintf("%.2f %s%s", value, prefix, unit))
}

// Rate formats a speed expressed in bytes per millisecond.
func Rate(bytesPerMs int64) string {
	return SI(float64(bytesPerMs), "B/ms")
}

// Milliseconds formats a delay expressed in milliseconds choosing
// between milliseconds and seconds.
func Milliseconds(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.1fms", ms)
	}
	return fmt.Sprintf("%.2fs", ms/1000)
}

// reduce reduces value to a base value and a unit prefix. For
// example, reduce(1055) returns (1.055, "k").
func reduce(value float64) (float64, string) {
	if value < 1e03 {
		return value, ""
	}
	value /= 1e03
	if value < 1e03 {
		return value, "k"
	}
	value /= 1e03
	if value < 1e03 {
		return value, "M"
	}
	value /= 1e03
	return value, "G"
}
