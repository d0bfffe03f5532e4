package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/ui/shared/badge"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// badgeColumns are rendered as status badges.
var badgeColumns = map[string]bool{"status": true, "visibility": true}

// tableView is a selectable, clickable table over one dataset.
type tableView struct {
	table      table.Model
	records    []table.Record
	cursor     int
	focused    bool
	zonePrefix string
}

func newTableView(name dataset.Name, title, emptyText string) tableView {
	prefix := zone.NewPrefix()
	cols := dataset.Columns(name)
	for i := range cols {
		if badgeColumns[cols[i].Key] {
			cols[i].Render = renderBadge
		}
	}
	t := table.New(table.TableConfig{
		Columns:            cols,
		EmptyMessage:       emptyText,
		ShowHeader:         true,
		ShowBorder:         true,
		Title:              title,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
		RowZoneID: func(i int, _ table.Record) string {
			return rowZoneID(prefix, i)
		},
	})
	return tableView{table: t.SetLoading(true), zonePrefix: prefix}
}

func renderBadge(v any, _ table.Record, _ int) string {
	s := table.FormatValue(v)
	if s == "" {
		return "-"
	}
	return badge.Status(s)
}

// setRecords replaces the rows. The loading state is left unchanged.
func (v tableView) setRecords(records []table.Record) tableView {
	v.records = records
	v.table = v.table.SetRows(records)
	v.cursor = min(v.cursor, max(len(records)-1, 0))
	return v
}

func (v tableView) setLoading(loading bool) tableView {
	v.table = v.table.SetLoading(loading)
	return v
}

func (v tableView) setEmptyMessage(msg string) tableView {
	cfg := v.table.Config()
	cfg.EmptyMessage = msg
	v.table = v.table.SetConfig(cfg)
	return v
}

func (v tableView) setSize(width, height int) tableView {
	v.table = v.table.SetSize(width, height)
	return v
}

func (v tableView) setFocused(focused bool) tableView {
	v.focused = focused
	cfg := v.table.Config()
	cfg.Focused = focused
	v.table = v.table.SetConfig(cfg)
	return v
}

func (v tableView) move(delta int) tableView {
	if n := len(v.records); n > 0 {
		v.cursor = max(min(v.cursor+delta, n-1), 0)
	}
	return v
}

func (v tableView) selected() (table.Record, bool) {
	if v.table.Loading() || v.cursor >= len(v.records) {
		return nil, false
	}
	return v.records[v.cursor], true
}

// click moves the cursor to a clicked row and reports whether one was hit.
func (v tableView) click(msg tea.MouseMsg) (tableView, bool) {
	if !isLeftClick(msg) || v.table.Loading() {
		return v, false
	}
	i, ok := hitRow(v.zonePrefix, len(v.records), msg)
	if ok {
		v.cursor = i
	}
	return v, ok
}

func (v tableView) view() string {
	if !v.focused {
		return v.table.View()
	}
	return v.table.ViewWithSelection(v.cursor)
}
