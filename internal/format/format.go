// Package format provides display formatting helpers shared by the CLI and
// TUI front ends. Result fields use fixed precision: power as integer watts,
// power-to-weight with two decimals, absolute VO2max as integer ml/min, and
// relative VO2max with one decimal.
package format

import (
	"fmt"
	"time"
)

// Power formats a power value as integer watts, e.g. "312 W".
func Power(watts float64) string {
	return fmt.Sprintf("%.0f W", watts)
}

// PowerToWeight formats a power-to-weight ratio with two decimals, e.g. "4.29 W/kg".
func PowerToWeight(wPerKg float64) string {
	return fmt.Sprintf("%.2f W/kg", wPerKg)
}

// VO2Absolute formats an absolute oxygen uptake as integer ml/min, e.g. "3822 ml/min".
func VO2Absolute(mlPerMin float64) string {
	return fmt.Sprintf("%.0f ml/min", mlPerMin)
}

// VO2Relative formats a relative oxygen uptake with one decimal, e.g. "54.6 ml/min/kg".
func VO2Relative(mlPerKgPerMin float64) string {
	return fmt.Sprintf("%.1f ml/min/kg", mlPerKgPerMin)
}

// ExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
func ExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// BandRange formats a classification band boundary pair for table display.
// Unbounded bands render as "<hi" or ">=lo"; bounded bands as "lo-hi".
func BandRange(lo, hi float64, loUnbounded, hiUnbounded bool) string {
	switch {
	case loUnbounded:
		return fmt.Sprintf("<%.0f", hi)
	case hiUnbounded:
		return fmt.Sprintf("≥%.0f", lo)
	default:
		return fmt.Sprintf("%.0f–%.0f", lo, hi)
	}
}
