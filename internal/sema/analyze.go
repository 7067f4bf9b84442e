package sema

import (
	"mua/internal/ast"
	"mua/internal/diag"
	"mua/internal/symbols"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	// Table receives the scopes and symbols; a fresh one is allocated
	// when nil.
	Table *symbols.Table
}

// Result stores the artifacts of semantic analysis. When Ok is false at
// least one error was reported and the scope tree must not be consumed.
type Result struct {
	Table  *symbols.Table
	Global symbols.ScopeID
	Ok     bool
}

// Analyze walks the AST once, building the scope tree and validating name,
// call, assignment, and return-placement rules. Unlike the parser it does
// not stop at the first error: every error it can reach is reported, each
// one suppressing descent into the offending subtree.
func Analyze(b *ast.Builder, file ast.FileID, opts Options) Result {
	table := opts.Table
	if table == nil {
		table = symbols.NewTable(symbols.Hints{}, nil)
	}

	a := &analyzer{
		table:    table,
		reporter: opts.Reporter,
	}
	a.global = table.NewScope(symbols.NoScopeID, symbols.NoSymbolID)
	a.current = a.global

	ast.Walk(b, file, a)

	return Result{Table: table, Global: a.global, Ok: !a.errored}
}

// analyzer implements ast.Visitor. It maintains the current scope while
// descending and flags any reported error.
type analyzer struct {
	ast.NopVisitor

	table    *symbols.Table
	reporter diag.Reporter
	global   symbols.ScopeID
	current  symbols.ScopeID
	errored  bool
}

func (a *analyzer) EnterFunc(b *ast.Builder, id ast.DeclID) bool {
	fn := b.Decls.Func(id)
	name := a.table.Strings.Intern(fn.Name)

	sym, ok := a.table.Declare(a.current, symbols.SymbolFunction, name, fn.NameSpan)
	if !ok {
		prev := a.table.Symbol(sym)
		diag.ReportError(a.reporter, diag.SemaFnRedefinition, fn.Span, "redefinition of function "+fn.Name).
			WithNote(prev.Span, "previous definition is here").
			Emit()
		a.errored = true
		return false
	}

	child := a.table.NewScope(a.current, sym)
	a.table.AttachChild(sym, child)
	a.current = child
	return true
}

func (a *analyzer) ExitFunc(b *ast.Builder, id ast.DeclID) {
	fn := b.Decls.Func(id)
	body, _ := b.Stmts.Compound(fn.Body)

	switch {
	case len(body.Stmts) == 0:
		diag.ReportError(a.reporter, diag.SemaMissingReturn, fn.Span,
			"function "+fn.Name+" must end with a return statement").Emit()
		a.errored = true
	default:
		last := body.Stmts[len(body.Stmts)-1]
		if b.Stmts.Get(last).Kind != ast.StmtReturn {
			diag.ReportError(a.reporter, diag.SemaLastNotReturn, b.Stmts.Get(last).Span,
				"last statement of function "+fn.Name+" must be a return statement").Emit()
			a.errored = true
		}
	}

	a.current = a.table.Scope(a.current).Parent
}

func (a *analyzer) EnterParam(b *ast.Builder, id ast.ParamID) bool {
	p := b.Decls.Param(id)
	name := a.table.Strings.Intern(p.Name)

	sym, ok := a.table.Declare(a.current, symbols.SymbolParam, name, p.Span)
	if !ok {
		prev := a.table.Symbol(sym)
		diag.ReportError(a.reporter, diag.SemaParamRedefinition, p.Span, "redefinition of parameter "+p.Name).
			WithNote(prev.Span, "previous definition is here").
			Emit()
		a.errored = true
		return false
	}
	return true
}

func (a *analyzer) EnterExpr(b *ast.Builder, id ast.ExprID) bool {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		// First appearance of an identifier implicitly declares a local
		// variable; Declare is a no-op when the name already resolves.
		data, _ := b.Exprs.Ident(id)
		a.table.Declare(a.current, symbols.SymbolVar, a.table.Strings.Intern(data.Name), expr.Span)
		return true

	case ast.ExprCall:
		return a.checkCall(b, id)

	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		if data.Op == ast.OpAssign {
			if b.Exprs.Get(data.LHS).Kind != ast.ExprIdent {
				diag.ReportError(a.reporter, diag.SemaNotAssignable, b.Exprs.Get(data.LHS).Span,
					"expression is not assignable").Emit()
				a.errored = true
				return false
			}
		}
		return true
	}
	return true
}

func (a *analyzer) checkCall(b *ast.Builder, id ast.ExprID) bool {
	expr := b.Exprs.Get(id)
	data, _ := b.Exprs.Call(id)

	symID := a.table.Lookup(a.current, a.table.Strings.Intern(data.Callee))
	if !symID.IsValid() {
		diag.ReportError(a.reporter, diag.SemaUndeclaredCall, expr.Span,
			"use of undeclared function "+data.Callee).Emit()
		a.errored = true
		return false
	}

	sym := a.table.Symbol(symID)
	if sym.Kind != symbols.SymbolFunction {
		diag.ReportError(a.reporter, diag.SemaNotAFunction, expr.Span,
			"called object "+data.Callee+" is not a function").
			WithNote(sym.Span, "previous definition is here").
			Emit()
		a.errored = true
		return false
	}

	params := a.table.SymbolsOfKind(sym.Child, symbols.SymbolParam)
	if len(data.Args) != len(params) {
		diag.ReportError(a.reporter, diag.SemaArityMismatch, expr.Span,
			"call to function "+data.Callee+" with incorrect number of arguments").Emit()
		a.errored = true
		return false
	}

	return true
}
