package driver

import (
	"time"

	"mua/internal/ast"
	"mua/internal/diag"
	"mua/internal/ir"
	"mua/internal/lexer"
	"mua/internal/lower"
	"mua/internal/parser"
	"mua/internal/sema"
	"mua/internal/source"
)

// Options configure a compilation.
type Options struct {
	MaxDiagnostics int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// Timings records how long each phase took.
type Timings struct {
	Parse   time.Duration
	Analyze time.Duration
	Lower   time.Duration
}

// Result carries everything one compilation produced. Each phase's Ok flag
// gates the next: a false ParseOk means Sema and Module were never run.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	ParseOk bool

	Sema   sema.Result
	SemaOk bool

	Module *ir.Module

	Timings Timings
}

// Compile loads a file from disk and runs the full pipeline. The returned
// error covers I/O only; compilation failures land in the result's bag.
func Compile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compile(fs, fileID, opts), nil
}

// CompileBytes runs the full pipeline over an in-memory buffer.
func CompileBytes(name string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return compile(fs, fileID, opts)
}

func compile(fs *source.FileSet, fileID source.FileID, opts Options) *Result {
	res := &Result{
		FileSet: fs,
		File:    fs.Get(fileID),
		Builder: ast.NewBuilder(ast.Hints{}),
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	reporter := diag.BagReporter{Bag: res.Bag}

	start := time.Now()
	lx := lexer.New(res.File)
	pr := parser.ParseFile(lx, res.Builder, parser.Options{Reporter: reporter})
	res.Timings.Parse = time.Since(start)
	res.FileID = pr.File
	res.ParseOk = pr.Ok
	if !pr.Ok {
		return res
	}

	start = time.Now()
	res.Sema = sema.Analyze(res.Builder, res.FileID, sema.Options{Reporter: reporter})
	res.Timings.Analyze = time.Since(start)
	res.SemaOk = res.Sema.Ok
	if !res.Sema.Ok {
		return res
	}

	start = time.Now()
	res.Module = lower.Lower(res.Builder, res.FileID, res.Sema.Table, res.Sema.Global, fs)
	res.Timings.Lower = time.Since(start)
	return res
}

// Parse runs only the first phase, for the parse command.
func Parse(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	res := &Result{
		FileSet: fs,
		File:    fs.Get(fileID),
		Builder: ast.NewBuilder(ast.Hints{}),
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}

	start := time.Now()
	lx := lexer.New(res.File)
	pr := parser.ParseFile(lx, res.Builder, parser.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	res.Timings.Parse = time.Since(start)
	res.FileID = pr.File
	res.ParseOk = pr.Ok
	return res, nil
}
