package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/ui/modal"
	"github.com/strata-labs/strata/internal/ui/shared/sidebar"
	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// Page paths.
const (
	PathOverview = "/dashboard"
	PathStreams  = "/dashboard/streams"
	PathBuckets  = "/dashboard/buckets"
	PathModels   = "/dashboard/models"
	PathAPIKeys  = "/dashboard/api-keys"
	PathSettings = "/dashboard/settings"
)

// Links is the sidebar navigation, in display order.
var Links = []sidebar.Link{
	{Label: "Overview", Path: PathOverview, Exact: true},
	{Label: "Streams", Path: PathStreams},
	{Label: "Buckets", Path: PathBuckets},
	{Label: "Models", Path: PathModels},
	{Label: "API keys", Path: PathAPIKeys},
	{Label: "Settings", Path: PathSettings},
}

// crumbLabels overrides breadcrumb segments that do not title-case well.
var crumbLabels = map[string]string{"api-keys": "API keys"}

// ResolvePage maps any path to the page that serves it. Paths below a page
// resolve to that page; unknown paths resolve to the overview.
func ResolvePage(path string) string {
	for _, l := range Links {
		if sidebar.IsActive(l, path) {
			return l.Path
		}
	}
	return PathOverview
}

func pageLabel(path string) string {
	for _, l := range Links {
		if l.Path == path {
			return l.Label
		}
	}
	return ""
}

// Page is one dashboard screen.
type Page interface {
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	SetSize(width, height int) Page
	SetCatalog(cat *dataset.Catalog) Page
	SetFocused(focused bool) Page
	// Capturing reports that the page is editing text and needs every key,
	// including esc.
	Capturing() bool
}

// catalogUpdateMsg replaces one dataset after an in-memory edit.
type catalogUpdateMsg struct {
	name    dataset.Name
	records []table.Record
}

// openModalMsg asks the shell to show a dialog owned by the current page.
type openModalMsg struct {
	config modal.Config
}

// statusMsg sets the footer status line.
type statusMsg struct {
	text  string
	isErr bool
}

func updateCatalog(name dataset.Name, records []table.Record) tea.Cmd {
	return func() tea.Msg { return catalogUpdateMsg{name: name, records: records} }
}

func openModal(cfg modal.Config) tea.Cmd {
	return func() tea.Msg { return openModalMsg{config: cfg} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func setError(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: true} }
}
