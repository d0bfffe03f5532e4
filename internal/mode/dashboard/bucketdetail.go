package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/ui/shared/panes"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// noObjectsText is shown when a bucket, or the current search, has no objects.
const noObjectsText = "No objects found"

// bucketDetail is the dialog over the bucket list that shows one bucket and
// its objects.
type bucketDetail struct {
	bucket    table.Record
	all       []table.Record
	list      tableView
	search    textinput.Model
	searching bool

	width  int
	height int
}

func newBucketDetail(bucket table.Record, objects []table.Record) bucketDetail {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter objects by key or type"
	ti.CharLimit = 64

	d := bucketDetail{
		bucket: bucket,
		all:    objects,
		list:   newTableView(dataset.Objects, "Objects", noObjectsText).setFocused(true),
		search: ti,
	}
	return d.applyFilter()
}

// Name returns the bucket name.
func (d bucketDetail) Name() string { return table.FormatValue(d.bucket["name"]) }

// Query returns the object filter text.
func (d bucketDetail) Query() string { return d.search.Value() }

// setObjects replaces the bucket's objects, keeping the query.
func (d bucketDetail) setObjects(objects []table.Record) bucketDetail {
	d.all = objects
	return d.applyFilter()
}

func (d bucketDetail) applyFilter() bucketDetail {
	filtered := dataset.Filter(d.all, d.search.Value(), dataset.SearchKeys(dataset.Objects)...)
	d.list = d.list.setRecords(filtered).setLoading(false)
	return d
}

// setSize sizes the dialog for a page of width x height.
func (d bucketDetail) setSize(width, height int) bucketDetail {
	d.width = max(min(width-4, 96), 40)
	d.height = max(min(height-2, 20), 10)
	d.search.Width = max(d.width-6, 10)
	d.list = d.list.setSize(d.width-2, d.height-4)
	return d
}

// update handles a key. closed reports that the dialog was dismissed.
func (d bucketDetail) update(msg tea.KeyMsg) (next bucketDetail, cmd tea.Cmd, closed bool) {
	if d.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			d.searching = false
			d.search.Blur()
			return d, nil, false
		}
		d.search, cmd = d.search.Update(msg)
		return d.applyFilter(), cmd, false
	}

	switch {
	case key.Matches(msg, keys.Common.Escape):
		return d, nil, true
	case key.Matches(msg, keys.Dashboard.Search):
		d.searching = true
		return d, d.search.Focus(), false
	case key.Matches(msg, keys.Dashboard.Down):
		d.list = d.list.move(1)
	case key.Matches(msg, keys.Dashboard.Up):
		d.list = d.list.move(-1)
	}
	return d, nil, false
}

func (d bucketDetail) view() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	info := muted.Render(fmt.Sprintf("%s · %s · %s objects · %s",
		table.FormatValue(d.bucket["region"]),
		table.FormatValue(d.bucket["visibility"]),
		dataset.Count(d.bucket["objects"], d.bucket, 0),
		dataset.Gigabytes(d.bucket["size_gb"], d.bucket, 0),
	))

	bar := muted.Render("Press / to search objects")
	if d.searching || d.search.Value() != "" {
		bar = d.search.View()
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            info + "\n" + bar + "\n" + d.list.view(),
		Width:              d.width,
		Height:             d.height,
		TopLeft:            d.Name(),
		BottomRight:        "esc close",
		Focused:            true,
		FocusedBorderColor: styles.OverlayBorderColor,
	})
}
