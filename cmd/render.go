package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/term"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/tracing"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// renderOptions controls a single `strata render` invocation.
type renderOptions struct {
	Dataset   dataset.Name
	Columns   []string // key[:Header[:align]]
	Filter    string
	Loading   bool
	EmptyText string
	Plain     bool
	Width     int
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render <dataset>",
	Short: "Print a dataset as a table",
	Long: `Print one mock dataset through the table renderer.

Columns default to the dashboard layout for the dataset. Use --columns to pick
fields by dotted path, optionally with a header and alignment.

Examples:
  # Streams as shown on the dashboard
  strata render streams

  # Pick nested fields
  strata render streams --columns name:Stream --columns throughput.rps:RPS:right

  # Pre-filter rows
  strata render buckets --filter eu-

  # Show the placeholder and empty states
  strata render models --loading
  strata render api_keys --filter nothing --empty-text "No keys yet"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := dataset.ParseName(args[0])
		if err != nil {
			return err
		}
		opts := renderOpts
		opts.Dataset = name
		if !cmd.Flags().Changed("empty-text") && cfg.UI.EmptyText != "" {
			opts.EmptyText = cfg.UI.EmptyText
		}

		width, tty := terminalWidth(os.Stdout)
		if !cmd.Flags().Changed("plain") && !tty {
			opts.Plain = true
		}
		if opts.Width <= 0 {
			opts.Width = width
		}

		shutdown, err := setupTracing()
		if err != nil {
			return err
		}
		defer shutdown()

		return renderDataset(cmd.Context(), os.Stdout, newStore(cfg), opts)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringArrayVar(&renderOpts.Columns, "columns", nil, "column as key[:Header[:left|center|right]] (repeatable)")
	f.StringVarP(&renderOpts.Filter, "filter", "f", "", "only rows whose searchable fields contain this text")
	f.BoolVar(&renderOpts.Loading, "loading", false, "render the loading placeholder instead of rows")
	f.StringVar(&renderOpts.EmptyText, "empty-text", table.DefaultEmptyMessage, "message shown when no rows match")
	f.BoolVar(&renderOpts.Plain, "plain", false, "unstyled aligned text (default when stdout is not a terminal)")
	f.IntVarP(&renderOpts.Width, "width", "w", 0, "table width (default terminal width)")
	rootCmd.AddCommand(renderCmd)
}

// renderDataset writes one dataset projected through the table renderer.
func renderDataset(ctx context.Context, w io.Writer, store *dataset.Store, opts renderOptions) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracing.Start(ctx, tracing.SpanTableRender,
		attribute.String(tracing.AttrDataset, string(opts.Dataset)),
		attribute.Bool(tracing.AttrLoading, opts.Loading),
	)
	defer func() { tracing.End(span, err) }()

	cols, err := parseColumns(opts.Columns, dataset.Columns(opts.Dataset))
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("dataset %q has no default columns, pass --columns", opts.Dataset)
	}

	records, err := store.Get(ctx, opts.Dataset)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.Dataset, err)
	}
	if opts.Filter != "" {
		records = dataset.Filter(records, opts.Filter, searchKeys(opts.Dataset, cols)...)
	}
	span.SetAttributes(
		attribute.Int(tracing.AttrRows, len(records)),
		attribute.Int(tracing.AttrColumns, len(cols)),
	)
	log.Debug(log.CatTable, "render dataset", "dataset", opts.Dataset, "rows", len(records), "plain", opts.Plain)

	var out string
	if opts.Plain {
		headers := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.Header
		}
		out = table.PlainText(table.Project(cols, records, opts.Loading, opts.EmptyText), headers)
	} else {
		out = styledTable(cols, records, opts) + "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

func styledTable(cols []table.ColumnConfig, records []table.Record, opts renderOptions) string {
	body := len(records)
	switch {
	case opts.Loading:
		body = table.PlaceholderRows
	case body == 0:
		body = 3
	}
	t := table.New(table.TableConfig{
		Columns:      cols,
		EmptyMessage: opts.EmptyText,
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        string(opts.Dataset),
		BorderColor:  styles.BorderDefaultColor,
	})
	return t.SetRows(records).
		SetLoading(opts.Loading).
		SetSize(max(opts.Width, 20), body+3).
		View()
}

// searchKeys prefers the dataset's search fields and falls back to the
// rendered column keys.
func searchKeys(name dataset.Name, cols []table.ColumnConfig) []string {
	if keys := dataset.SearchKeys(name); len(keys) > 0 {
		return keys
	}
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	return keys
}

// parseColumns turns key[:Header[:align]] specs into column configs. A key
// that appears in defaults keeps its width and cell renderer. With no specs
// the defaults are returned unchanged.
func parseColumns(specs []string, defaults []table.ColumnConfig) ([]table.ColumnConfig, error) {
	if len(specs) == 0 {
		return defaults, nil
	}
	known := make(map[string]table.ColumnConfig, len(defaults))
	for _, c := range defaults {
		known[c.Key] = c
	}

	cols := make([]table.ColumnConfig, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("column %q: empty key", spec)
		}

		col, ok := known[key]
		if !ok {
			col = table.ColumnConfig{Key: key, Header: key, MinWidth: len(key)}
		}
		col.HideBelow = 0
		if len(parts) > 1 && parts[1] != "" {
			col.Header = parts[1]
		}
		if len(parts) > 2 {
			align, err := parseAlign(parts[2])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", spec, err)
			}
			col.Align = align
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func parseAlign(s string) (lipgloss.Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return lipgloss.Left, nil
	case "center", "centre":
		return lipgloss.Center, nil
	case "right":
		return lipgloss.Right, nil
	default:
		return lipgloss.Left, fmt.Errorf("unknown alignment %q", s)
	}
}

// terminalWidth reports the width of out and whether it is a terminal.
func terminalWidth(out io.Writer) (int, bool) {
	const defaultWidth = 100
	f, ok := out.(*os.File)
	if !ok {
		return defaultWidth, false
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return defaultWidth, false
	}
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		return w, true
	}
	return defaultWidth, true
}
