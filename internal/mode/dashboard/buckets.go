package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/modal"
	"github.com/strata-labs/strata/internal/ui/overlay"
	"github.com/strata-labs/strata/internal/ui/shared/table"
)

const tagCreateBucket = "create-bucket"

type bucketsPage struct {
	services mode.Services
	all      []table.Record
	objects  []table.Record
	list     tableView

	detail     bucketDetail
	detailOpen bool

	width  int
	height int
}

func newBucketsPage(services mode.Services) bucketsPage {
	return bucketsPage{
		services: services,
		list:     newTableView(dataset.Buckets, "Buckets", emptyText(services)),
	}
}

func (p bucketsPage) SetCatalog(cat *dataset.Catalog) Page {
	if cat == nil {
		p.list = p.list.setLoading(true)
		return p
	}
	p.all = cat.Records(dataset.Buckets)
	p.objects = cat.Records(dataset.Objects)
	p.list = p.list.setRecords(p.all).setLoading(false)
	if p.detailOpen {
		p.detail = p.detail.setObjects(dataset.Where(p.objects, "bucket", p.detail.Name()))
	}
	return p
}

func (p bucketsPage) SetSize(width, height int) Page {
	p.width = width
	p.height = height
	p.list = p.list.setSize(width, height)
	p.detail = p.detail.setSize(width, height)
	return p
}

func (p bucketsPage) SetFocused(focused bool) Page {
	p.list = p.list.setFocused(focused)
	return p
}

// Capturing is true while the detail dialog is open so esc closes it.
func (p bucketsPage) Capturing() bool { return p.detailOpen }

// Detail returns the open bucket detail, if any.
func (p bucketsPage) Detail() (bucketDetail, bool) { return p.detail, p.detailOpen }

func (p bucketsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if p.detailOpen {
		return p.updateDetail(msg)
	}

	switch msg := msg.(type) {
	case modal.SubmitMsg:
		if msg.Tag != tagCreateBucket {
			return p, nil
		}
		return p.create(msg.Values["name"], msg.Values["region"])

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Dashboard.New):
			if p.list.table.Loading() {
				return p, nil
			}
			return p, openModal(modal.Config{
				Tag:          tagCreateBucket,
				Title:        "Create bucket",
				Message:      "Buckets start empty and private.",
				ConfirmLabel: "Create",
				Inputs: []modal.InputConfig{
					{Key: "name", Label: "Name", Placeholder: "raw-events", MaxLength: 48},
					{Key: "region", Label: "Region", Placeholder: "us-east-1", Value: "us-east-1", MaxLength: 24},
				},
			})
		case key.Matches(msg, keys.Dashboard.Open):
			return p.openDetail(), nil
		case key.Matches(msg, keys.Dashboard.Down):
			p.list = p.list.move(1)
		case key.Matches(msg, keys.Dashboard.Up):
			p.list = p.list.move(-1)
		}

	case tea.MouseMsg:
		p.list, _ = p.list.click(msg)
	}
	return p, nil
}

func (p bucketsPage) openDetail() bucketsPage {
	rec, ok := p.list.selected()
	if !ok {
		return p
	}
	name := table.FormatValue(rec["name"])
	p.detail = newBucketDetail(rec, dataset.Where(p.objects, "bucket", name)).setSize(p.width, p.height)
	p.detailOpen = true
	log.Debug(log.CatUI, "bucket detail opened", "name", name)
	return p
}

func (p bucketsPage) updateDetail(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		var closed bool
		p.detail, cmd, closed = p.detail.update(msg)
		if closed {
			p.detailOpen = false
		}
		return p, cmd

	case tea.MouseMsg:
		p.detail.list, _ = p.detail.list.click(msg)
		return p, nil
	}

	if p.detail.searching {
		var cmd tea.Cmd
		p.detail.search, cmd = p.detail.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p bucketsPage) create(name, region string) (Page, tea.Cmd) {
	name = strings.TrimSpace(name)
	for _, v := range dataset.Values(p.all, "name") {
		if strings.EqualFold(v, name) {
			return p, setError(fmt.Sprintf("Bucket %q already exists", name))
		}
	}

	records := dataset.Append(p.all, dataset.NewBucket(name, strings.TrimSpace(region), now(p.services)))
	p.all = records
	p.list = p.list.setRecords(records)
	p.list.cursor = len(records) - 1
	log.Info(log.CatData, "bucket created", "name", name)
	return p, tea.Batch(updateCatalog(dataset.Buckets, records), setStatus(fmt.Sprintf("Created bucket %q", name)))
}

func (p bucketsPage) View() string {
	bg := p.list.view()
	if !p.detailOpen {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    p.width,
		Height:   p.height,
		Position: overlay.Center,
	}, p.detail.view(), bg)
}
