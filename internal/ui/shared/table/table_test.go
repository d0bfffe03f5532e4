package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func newTestTable() Model {
	return New(TableConfig{
		Columns: []ColumnConfig{
			{Key: "name", Header: "Name"},
			{Key: "score", Header: "Score", Width: 5, Align: lipgloss.Right},
		},
		ShowHeader: true,
	})
}

func TestNew_PanicsOnEmptyKey(t *testing.T) {
	require.Panics(t, func() { New(TableConfig{Columns: []ColumnConfig{{Header: "Name"}}}) })
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(TableConfig{}))
	require.ErrorIs(t, ValidateConfig(TableConfig{Columns: []ColumnConfig{{Header: "X"}}}), ErrEmptyKey)
	require.NoError(t, ValidateConfig(TableConfig{Columns: []ColumnConfig{{Key: "x"}}}))
}

func TestView_NoColumnsShowsEmptyState(t *testing.T) {
	tbl := New(TableConfig{ShowHeader: true}).SetSize(30, 4)

	require.Equal(t, DefaultEmptyMessage, tbl.Config().EmptyMessage)
	require.Contains(t, tbl.View(), "No data available")
}

func TestView_NoColumnsWithRows(t *testing.T) {
	tbl := New(TableConfig{}).SetRows([]Record{{"name": "alpha"}}).SetSize(20, 3)

	require.NotPanics(t, func() { _ = tbl.View() })
	require.NotContains(t, tbl.View(), "alpha")
}

func TestView_ZeroSizeIsEmpty(t *testing.T) {
	require.Empty(t, newTestTable().View())
}

func TestView_RowsFillHeight(t *testing.T) {
	tbl := newTestTable().
		SetRows([]Record{{"name": "alpha", "score": 10}, {"name": "beta", "score": 7}}).
		SetSize(20, 5)

	lines := strings.Split(tbl.View(), "\n")

	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[0], "Score")
	require.True(t, strings.HasPrefix(lines[1], "alpha"))
	require.True(t, strings.HasSuffix(lines[1], "10"))
	require.Equal(t, 20, lipgloss.Width(lines[1]))
}

func TestView_LoadingShowsPlaceholders(t *testing.T) {
	tbl := newTestTable().
		SetRows([]Record{{"name": "alpha", "score": 10}}).
		SetLoading(true).
		SetSize(20, 8)

	view := tbl.View()

	require.NotContains(t, view, "alpha")
	placeholders := 0
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "░") {
			placeholders++
		}
	}
	require.Equal(t, PlaceholderRows, placeholders)
}

func TestView_EmptyShowsMessage(t *testing.T) {
	tbl := New(TableConfig{
		Columns:      []ColumnConfig{{Key: "name", Header: "Name"}},
		EmptyMessage: "No buckets",
		ShowHeader:   true,
	}).SetSize(30, 5)

	view := tbl.View()

	require.Contains(t, view, "Name")
	require.Contains(t, view, "No buckets")
	require.Len(t, strings.Split(view, "\n"), 5)
}

func TestView_BorderedPaneDimensions(t *testing.T) {
	tbl := newTestTable().
		SetConfig(TableConfig{
			Columns:    newTestTable().Config().Columns,
			ShowHeader: true,
			ShowBorder: true,
			Title:      "Streams",
		}).
		SetRows([]Record{{"name": "alpha", "score": 1}}).
		SetSize(30, 6)

	lines := strings.Split(tbl.View(), "\n")

	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "Streams")
	for _, line := range lines {
		require.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestViewWithSelection_KeepsSelectedRowVisible(t *testing.T) {
	rows := make([]Record, 10)
	for i := range rows {
		rows[i] = Record{"name": string(rune('a' + i)), "score": i}
	}
	tbl := newTestTable().SetRows(rows).SetSize(20, 4)

	view := tbl.ViewWithSelection(8)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[3], "i"))
}

func TestView_HideBelow(t *testing.T) {
	tbl := New(TableConfig{
		Columns: []ColumnConfig{
			{Key: "name", Header: "Name"},
			{Key: "region", Header: "Region", HideBelow: 60},
		},
		ShowHeader: true,
	}).SetRows([]Record{{"name": "alpha", "region": "eu-west"}})

	require.NotContains(t, tbl.SetSize(40, 3).View(), "Region")
	require.Contains(t, tbl.SetSize(80, 3).View(), "Region")
}

func TestCalculateColumnWidths(t *testing.T) {
	cols := []ColumnConfig{
		{Key: "a", Width: 8},
		{Key: "b"},
		{Key: "c", MaxWidth: 10},
	}
	require.Equal(t, []int{8, 15, 10}, calculateColumnWidths(cols, 40))

	cols = []ColumnConfig{
		{Key: "a", MaxWidth: 5},
		{Key: "b"},
	}
	require.Equal(t, []int{5, 24}, calculateColumnWidths(cols, 30))

	cols = []ColumnConfig{{Key: "a", MinWidth: 6}, {Key: "b"}}
	require.Equal(t, []int{6, 3}, calculateColumnWidths(cols, 4))
}

func TestFilterVisibleColumns_KeepsFirstColumn(t *testing.T) {
	cols := []ColumnConfig{{Key: "a", HideBelow: 100}, {Key: "b", HideBelow: 100}}

	visible, index := filterVisibleColumns(cols, 10)

	require.Len(t, visible, 1)
	require.Equal(t, []int{0}, index)
}

func TestAlignText(t *testing.T) {
	require.Equal(t, "ab   ", alignText("ab", 5, lipgloss.Left))
	require.Equal(t, "   ab", alignText("ab", 5, lipgloss.Right))
	require.Equal(t, " ab  ", alignText("ab", 5, lipgloss.Center))
	require.Equal(t, "abcdef", alignText("abcdef", 3, lipgloss.Left))
}
