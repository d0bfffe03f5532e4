package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/flags"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/modal"
	"github.com/strata-labs/strata/internal/ui/shared/table"
)

const (
	tagCreateKey = "create-key"
	tagRevokeKey = "revoke-key"
)

type apiKeysPage struct {
	services mode.Services
	all      []table.Record
	list     tableView
	revoking string // id of the key awaiting revoke confirmation
}

func newAPIKeysPage(services mode.Services) apiKeysPage {
	return apiKeysPage{
		services: services,
		list:     newTableView(dataset.APIKeys, "API keys", "No API keys yet. Press n to create one."),
	}
}

func (p apiKeysPage) SetCatalog(cat *dataset.Catalog) Page {
	if cat == nil {
		p.list = p.list.setLoading(true)
		return p
	}
	p.all = cat.Records(dataset.APIKeys)
	p.list = p.list.setRecords(p.all).setLoading(false)
	return p
}

func (p apiKeysPage) SetSize(width, height int) Page {
	p.list = p.list.setSize(width, height)
	return p
}

func (p apiKeysPage) SetFocused(focused bool) Page {
	p.list = p.list.setFocused(focused)
	return p
}

func (p apiKeysPage) Capturing() bool { return false }

func (p apiKeysPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case modal.SubmitMsg:
		switch msg.Tag {
		case tagCreateKey:
			return p.create(msg.Values["name"], msg.Values["scope"])
		case tagRevokeKey:
			return p.revoke()
		}

	case modal.CancelMsg:
		if msg.Tag == tagRevokeKey {
			p.revoking = ""
		}

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		p.list, _ = p.list.click(msg)
	}
	return p, nil
}

func (p apiKeysPage) handleKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Dashboard.New):
		if !p.services.Flags.Enabled(flags.FlagAPIKeyCreate) {
			return p, setError("Creating API keys is disabled for this workspace")
		}
		if p.list.table.Loading() {
			return p, nil
		}
		return p, openModal(modal.Config{
			Tag:          tagCreateKey,
			Title:        "Create API key",
			ConfirmLabel: "Create",
			Inputs: []modal.InputConfig{
				{Key: "name", Label: "Name", Placeholder: "ingest-staging", MaxLength: 48},
				{Key: "scope", Label: "Scope (" + strings.Join(dataset.Scopes, ", ") + ")", Value: "read", MaxLength: 8},
			},
		})

	case key.Matches(msg, keys.Dashboard.Delete):
		rec, ok := p.list.selected()
		if !ok {
			return p, nil
		}
		p.revoking = field(rec, "id")
		return p, openModal(modal.Config{
			Tag:            tagRevokeKey,
			Title:          "Revoke API key",
			Message:        fmt.Sprintf("Revoke %q?\n\nApplications using this key stop working immediately.", field(rec, "name")),
			ConfirmLabel:   "Revoke",
			ConfirmVariant: modal.ButtonDanger,
		})

	case key.Matches(msg, keys.Dashboard.Copy):
		rec, ok := p.list.selected()
		if !ok || p.services.Clipboard == nil {
			return p, nil
		}
		id := field(rec, "id")
		if err := p.services.Clipboard.Copy(id); err != nil {
			return p, setError("Copy failed: " + err.Error())
		}
		return p, setStatus("Copied key id " + id)

	case key.Matches(msg, keys.Dashboard.Down):
		p.list = p.list.move(1)
	case key.Matches(msg, keys.Dashboard.Up):
		p.list = p.list.move(-1)
	}
	return p, nil
}

func (p apiKeysPage) create(name, scope string) (Page, tea.Cmd) {
	rec := dataset.NewAPIKey(name, scope, now(p.services))
	records := dataset.Append(p.all, rec)
	p.all = records
	p.list = p.list.setRecords(records)
	p.list.cursor = len(records) - 1
	log.Info(log.CatData, "api key created", "name", field(rec, "name"), "scope", field(rec, "scope"))
	return p, tea.Batch(
		updateCatalog(dataset.APIKeys, records),
		setStatus(fmt.Sprintf("Created %s key %q", field(rec, "scope"), field(rec, "name"))),
	)
}

func (p apiKeysPage) revoke() (Page, tea.Cmd) {
	id := p.revoking
	p.revoking = ""
	for i, rec := range p.all {
		if field(rec, "id") != id {
			continue
		}
		records := dataset.RemoveAt(p.all, i)
		p.all = records
		p.list = p.list.setRecords(records)
		log.Info(log.CatData, "api key revoked", "id", id)
		return p, tea.Batch(updateCatalog(dataset.APIKeys, records), setStatus(fmt.Sprintf("Revoked %q", field(rec, "name"))))
	}
	return p, nil
}

func (p apiKeysPage) View() string {
	return p.list.view()
}

// field returns the display string at path.
func field(rec table.Record, path string) string {
	v, _ := table.Resolve(rec, path)
	return table.FormatValue(v)
}
