package ast

import (
	"mua/internal/source"
)

// Hints presizes the builder's arenas.
type Hints struct{ Files, Decls, Stmts, Exprs uint }

// Builder aggregates the arenas a single parse populates.
type Builder struct {
	Files *Files
	Decls *Decls
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Decls: NewDecls(hints.Decls),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

func (b *Builder) NewFile(src source.FileID, sp source.Span) FileID {
	return b.Files.New(src, sp)
}

// PushFunc appends a parsed function to the unit in source order.
func (b *Builder) PushFunc(file FileID, fn DeclID) {
	f := b.Files.Get(file)
	f.Funcs = append(f.Funcs, fn)
}
