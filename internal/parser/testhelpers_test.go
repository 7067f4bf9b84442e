package parser_test

import (
	"strings"

	"mua/internal/ast"
	"mua/internal/diag"
	"mua/internal/lexer"
	"mua/internal/parser"
	"mua/internal/source"
)

// testReporter collects every diagnostic a parse emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Message)
	}
	return out
}

type parseResult struct {
	fs       *source.FileSet
	builder  *ast.Builder
	file     ast.FileID
	ok       bool
	reporter *testReporter
}

func parseString(input string) parseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte(input))
	lx := lexer.New(fs.Get(id))
	builder := ast.NewBuilder(ast.Hints{})
	reporter := &testReporter{}

	result := parser.ParseFile(lx, builder, parser.Options{Reporter: reporter})
	return parseResult{
		fs:       fs,
		builder:  builder,
		file:     result.File,
		ok:       result.Ok,
		reporter: reporter,
	}
}

func dumpString(r parseResult) string {
	var sb strings.Builder
	ast.Dump(&sb, r.builder, r.file, r.fs)
	return sb.String()
}
