// Package shared provides common types and utilities for mode controllers.
package shared

import (
	"fmt"
	"time"
)

// Clock provides the current time. Use RealClock in production and
// FixedClock in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Since returns a relative label for t according to clock, e.g. "loaded 5m ago".
func Since(t time.Time, clock Clock) string {
	if t.IsZero() {
		return "never"
	}
	return FormatRelativeTimeFrom(t, clock.Now())
}

// FormatRelativeTimeFrom returns a short relative timestamp for t as seen from
// now: "now", "5m ago", "3h ago", "2d ago", "1w ago", "3mo ago", "1y ago".
// Future timestamps read as "now".
func FormatRelativeTimeFrom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 4*7*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
