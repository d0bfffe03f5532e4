package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strata-labs/strata/internal/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the mock datasets and their row counts",
	Long: `List every dataset strata knows about with its row count.

With --data-dir set, files in that directory replace the built-in data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listDatasets(cmd.Context(), os.Stdout, newStore(cfg))
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

// listDatasets prints one line per dataset. A dataset that fails to load is
// reported inline and the listing continues.
func listDatasets(ctx context.Context, w io.Writer, store *dataset.Store) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name := color.New(color.Bold)
	count := color.New(color.FgCyan)
	failed := color.New(color.FgRed)

	var errCount int
	for _, n := range dataset.Names {
		records, err := store.Get(ctx, n)
		if err != nil {
			errCount++
			_, _ = name.Fprintf(w, "%-12s", n)
			_, _ = failed.Fprintf(w, " error: %v\n", err)
			continue
		}
		_, _ = name.Fprintf(w, "%-12s", n)
		_, _ = count.Fprintf(w, " %5d", len(records))
		_, _ = fmt.Fprintln(w, " rows")
	}
	if errCount > 0 {
		return fmt.Errorf("%d of %d datasets failed to load", errCount, len(dataset.Names))
	}
	return nil
}
