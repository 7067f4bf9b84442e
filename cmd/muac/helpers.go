package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mua/internal/diag"
	"mua/internal/diagfmt"
	"mua/internal/driver"
	"mua/internal/project"
	"mua/internal/source"
)

// buildOptions merges persistent flags with the nearest project manifest:
// explicit flags win, then manifest values, then defaults.
func buildOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		if manifest, ok, err := project.Load("."); err == nil && ok && manifest.Config.Build.MaxDiagnostics > 0 {
			maxDiag = manifest.Config.Build.MaxDiagnostics
		}
	}

	return driver.Options{MaxDiagnostics: maxDiag}, nil
}

// useColor resolves the --color flag, falling back to the manifest and
// then to terminal detection.
func useColor(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	if !cmd.Root().PersistentFlags().Changed("color") {
		if manifest, ok, merr := project.Load("."); merr == nil && ok && manifest.Config.Build.Color != "" {
			mode = manifest.Config.Build.Color
		}
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

// renderDiagnostics sorts and prints the bag to stderr.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor(cmd)})
}

// reportOpenFailure prints the open error the way the compiler reports it.
func reportOpenFailure(path string, err error) {
	fmt.Fprintf(os.Stderr, "error: could not open file %s: %v\n", path, err)
}

func showTimings(cmd *cobra.Command, t driver.Timings) {
	want, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !want {
		return
	}
	fmt.Fprintf(os.Stderr, "parse: %v\nanalyze: %v\nlower: %v\n", t.Parse, t.Analyze, t.Lower)
}
