package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"exact", now, "now"},
		{"59 seconds", now.Add(-59 * time.Second), "now"},
		{"future", now.Add(time.Hour), "now"},
		{"minute boundary", now.Add(-time.Minute), "1m ago"},
		{"59 minutes", now.Add(-59 * time.Minute), "59m ago"},
		{"hour boundary", now.Add(-time.Hour), "1h ago"},
		{"23 hours", now.Add(-23 * time.Hour), "23h ago"},
		{"day boundary", now.Add(-24 * time.Hour), "1d ago"},
		{"6 days", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"week boundary", now.Add(-7 * 24 * time.Hour), "1w ago"},
		{"3 weeks", now.Add(-21 * 24 * time.Hour), "3w ago"},
		{"month", now.Add(-60 * 24 * time.Hour), "2mo ago"},
		{"year", now.Add(-400 * 24 * time.Hour), "1y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatRelativeTimeFrom(tt.input, now))
		})
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	clock := FixedClock(now)

	require.Equal(t, now, clock.Now())
	require.Equal(t, "5m ago", Since(now.Add(-5*time.Minute), clock))
	require.Equal(t, "never", Since(time.Time{}, clock))
}
