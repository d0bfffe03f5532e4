// Package chart wraps ntcharts for the usage line chart and inline sparklines.
package chart

import (
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// DateLayout is the day format used by series records.
const DateLayout = "2006-01-02"

// Point is one sample of a daily series.
type Point struct {
	Time  time.Time
	Value float64
}

// FromRecords extracts a series from records, reading the timestamp at timeKey
// and the value at valueKey. Records with an unparsable date or value are
// skipped. The result is sorted by time.
func FromRecords(records []table.Record, timeKey, valueKey string) []Point {
	points := make([]Point, 0, len(records))
	for _, r := range records {
		rawTime, ok := table.Resolve(r, timeKey)
		if !ok {
			continue
		}
		ts, err := parseTime(rawTime)
		if err != nil {
			continue
		}
		rawValue, ok := table.Resolve(r, valueKey)
		if !ok {
			continue
		}
		v, err := cast.ToFloat64E(rawValue)
		if err != nil {
			continue
		}
		points = append(points, Point{Time: ts, Value: v})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points
}

func parseTime(v any) (time.Time, error) {
	if s, ok := v.(string); ok {
		return time.Parse(DateLayout, s)
	}
	return cast.ToTimeE(v)
}

// Values returns the sample values in order.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// Line renders points as a braille time-series chart of the given size.
// Fewer than two points render a centred muted message instead.
func Line(points []Point, width, height int) string {
	width = max(width, 10)
	height = max(height, 4)
	if len(points) < 2 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Not enough data"))
	}

	start, end := points[0].Time, points[len(points)-1].Time
	maxVal := 0.0
	for _, p := range points {
		maxVal = max(maxVal, p.Value)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	c := tslc.New(width, height)
	c.SetXStep(1)
	c.SetYStep(2)
	c.SetStyle(lipgloss.NewStyle().Foreground(styles.AccentColor))
	c.AxisStyle = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
	c.LabelStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	c.SetTimeRange(start, end)
	c.SetViewTimeRange(start, end)
	c.SetYRange(0, maxVal)
	c.SetViewYRange(0, maxVal)
	c.Model.XLabelFormatter = dayLabel()
	c.Model.YLabelFormatter = countLabel()

	for _, p := range points {
		c.Push(tslc.TimePoint{Time: p.Time, Value: p.Value})
	}
	c.DrawBraille()
	return c.View()
}

func dayLabel() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("Jan 2")
	}
}

func countLabel() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		if v < 0 {
			return ""
		}
		return styles.FormatCount(int64(v))
	}
}

// Sparkline renders values as a one-line bar sparkline of the given width.
func Sparkline(values []float64, width int) string {
	width = max(width, 1)
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}
	sl := sparkline.New(width, 1)
	sl.PushAll(values)
	sl.Draw()
	return lipgloss.NewStyle().Foreground(styles.AccentColor).Render(sl.View())
}
