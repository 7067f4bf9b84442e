package ast

import (
	"mua/internal/source"
)

// ParamDecl is a function parameter.
type ParamDecl struct {
	Name string
	Span source.Span
}

// FuncDecl is a top-level function declaration: the only declaration the
// language has besides parameters.
type FuncDecl struct {
	Name     string
	NameSpan source.Span
	Params   []ParamID
	Body     StmtID // always a CompoundStmt
	Span     source.Span
}

// Decls manages allocation of declarations.
type Decls struct {
	Funcs  *Arena[FuncDecl]
	Params *Arena[ParamDecl]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Decls{
		Funcs:  NewArena[FuncDecl](capHint),
		Params: NewArena[ParamDecl](capHint * 2),
	}
}

func (d *Decls) NewFunc(name string, nameSpan source.Span, params []ParamID, body StmtID, span source.Span) DeclID {
	return DeclID(d.Funcs.Allocate(FuncDecl{
		Name:     name,
		NameSpan: nameSpan,
		Params:   params,
		Body:     body,
		Span:     span,
	}))
}

func (d *Decls) NewParam(name string, span source.Span) ParamID {
	return ParamID(d.Params.Allocate(ParamDecl{Name: name, Span: span}))
}

func (d *Decls) Func(id DeclID) *FuncDecl {
	return d.Funcs.Get(uint32(id))
}

func (d *Decls) Param(id ParamID) *ParamDecl {
	return d.Params.Get(uint32(id))
}
