package main

import (
	"os"

	"github.com/spf13/cobra"

	"mua/internal/diagfmt"
	"mua/internal/lexer"
	"mua/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.mua>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	Run:   runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		reportOpenFailure(args[0], err)
		os.Exit(exitOpenFailure)
	}

	lx := lexer.New(fs.Get(fileID))
	diagfmt.FormatTokens(os.Stdout, lx, fs)
	os.Exit(exitOK)
}
