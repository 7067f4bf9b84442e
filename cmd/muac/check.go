package main

import (
	"os"

	"github.com/spf13/cobra"

	"mua/internal/driver"
	"mua/internal/symbols"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.mua>",
	Short: "Analyze a source file and dump its scope tree",
	Args:  cobra.ExactArgs(1),
	Run:   runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	opts, err := buildOptions(cmd)
	if err != nil {
		os.Exit(exitCLIFailure)
	}

	res, err := driver.Compile(args[0], opts)
	if err != nil {
		reportOpenFailure(args[0], err)
		os.Exit(exitOpenFailure)
	}
	showTimings(cmd, res.Timings)

	if !res.ParseOk {
		renderDiagnostics(cmd, res.Bag, res.FileSet)
		os.Exit(exitParseError)
	}
	if !res.SemaOk {
		renderDiagnostics(cmd, res.Bag, res.FileSet)
		os.Exit(exitSemaError)
	}

	symbols.Dump(os.Stdout, res.Sema.Table, res.Sema.Global, res.FileSet)
	os.Exit(exitOK)
}
