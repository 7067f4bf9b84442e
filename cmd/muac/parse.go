package main

import (
	"os"

	"github.com/spf13/cobra"

	"mua/internal/ast"
	"mua/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.mua>",
	Short: "Parse a source file and dump its abstract syntax tree",
	Args:  cobra.ExactArgs(1),
	Run:   runParse,
}

func runParse(cmd *cobra.Command, args []string) {
	opts, err := buildOptions(cmd)
	if err != nil {
		os.Exit(exitCLIFailure)
	}

	res, err := driver.Parse(args[0], opts)
	if err != nil {
		reportOpenFailure(args[0], err)
		os.Exit(exitOpenFailure)
	}
	showTimings(cmd, res.Timings)

	if !res.ParseOk {
		renderDiagnostics(cmd, res.Bag, res.FileSet)
		os.Exit(exitParseError)
	}

	ast.Dump(os.Stdout, res.Builder, res.FileID, res.FileSet)
	os.Exit(exitOK)
}
