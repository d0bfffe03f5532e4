package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/flags"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Show feature flags",
	Long: `Show every feature flag with its effective value.

Examples:
  strata flags
  strata flags set charts off`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		printFlags(os.Stdout, flags.New(cfg.Flags))
		return nil
	},
}

var flagsSetCmd = &cobra.Command{
	Use:   "set <flag> <on|off>",
	Short: "Turn a feature flag on or off in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path := configPath()
		updated, err := setFlag(path, cfg.Flags, args[0], args[1])
		if err != nil {
			return err
		}
		cfg.Flags = updated
		fmt.Fprintf(os.Stdout, "%s set to %s in %s\n", args[0], onOff(updated[args[0]]), path)
		return nil
	},
}

func init() {
	flagsCmd.AddCommand(flagsSetCmd)
	rootCmd.AddCommand(flagsCmd)
}

// setFlag validates the flag and value, then writes the updated flags section.
func setFlag(path string, current map[string]bool, name, value string) (map[string]bool, error) {
	if !flags.Known(name) {
		return nil, fmt.Errorf("unknown flag %q (known: %s)", name, strings.Join(slices.Sorted(maps.Keys(flags.New(nil).All())), ", "))
	}
	var on bool
	switch strings.ToLower(value) {
	case "on", "true", "1":
		on = true
	case "off", "false", "0":
	default:
		return nil, fmt.Errorf("flag value must be on or off, got %q", value)
	}

	updated := maps.Clone(current)
	if updated == nil {
		updated = make(map[string]bool)
	}
	updated[name] = on
	if err := config.SaveFlags(path, updated); err != nil {
		return nil, fmt.Errorf("saving flags: %w", err)
	}
	return updated, nil
}

func printFlags(w io.Writer, reg *flags.Registry) {
	all := reg.All()
	on := color.New(color.FgGreen)
	off := color.New(color.FgRed)
	for _, name := range slices.Sorted(maps.Keys(all)) {
		_, _ = fmt.Fprintf(w, "%-16s ", name)
		if all[name] {
			_, _ = on.Fprintln(w, "on")
		} else {
			_, _ = off.Fprintln(w, "off")
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
