package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mua/internal/version"
)

// Exit codes, stable for test harnesses.
const (
	exitOK          = 0
	exitCLIFailure  = 1
	exitOpenFailure = 2
	exitParseError  = 3
	exitSemaError   = 4
)

var rootCmd = &cobra.Command{
	Use:   "muac",
	Short: "mua language compiler",
	Long:  `muac compiles mua source files into a numeric SSA module`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-phase timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCLIFailure)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
