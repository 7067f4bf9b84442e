package ast

// Visitor receives enter/exit hooks during a document-order walk.
// Returning false from an Enter hook suppresses descent into that node's
// children and its Exit hook.
type Visitor interface {
	EnterUnit(b *Builder, id FileID) bool
	ExitUnit(b *Builder, id FileID)
	EnterFunc(b *Builder, id DeclID) bool
	ExitFunc(b *Builder, id DeclID)
	EnterParam(b *Builder, id ParamID) bool
	ExitParam(b *Builder, id ParamID)
	EnterStmt(b *Builder, id StmtID) bool
	ExitStmt(b *Builder, id StmtID)
	EnterExpr(b *Builder, id ExprID) bool
	ExitExpr(b *Builder, id ExprID)
}

// NopVisitor implements Visitor with no-op hooks; embed it and override
// only the hooks a pass cares about.
type NopVisitor struct{}

func (NopVisitor) EnterUnit(*Builder, FileID) bool   { return true }
func (NopVisitor) ExitUnit(*Builder, FileID)         {}
func (NopVisitor) EnterFunc(*Builder, DeclID) bool   { return true }
func (NopVisitor) ExitFunc(*Builder, DeclID)         {}
func (NopVisitor) EnterParam(*Builder, ParamID) bool { return true }
func (NopVisitor) ExitParam(*Builder, ParamID)       {}
func (NopVisitor) EnterStmt(*Builder, StmtID) bool   { return true }
func (NopVisitor) ExitStmt(*Builder, StmtID)         {}
func (NopVisitor) EnterExpr(*Builder, ExprID) bool   { return true }
func (NopVisitor) ExitExpr(*Builder, ExprID)         {}

// Walk traverses the translation unit in document order: functions in
// declaration order, a function's parameters before its body, statements
// and expression operands left to right. A call's callee is a name, not a
// child; only its arguments are walked.
func Walk(b *Builder, file FileID, v Visitor) {
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	if !v.EnterUnit(b, file) {
		return
	}
	for _, fn := range f.Funcs {
		walkFunc(b, fn, v)
	}
	v.ExitUnit(b, file)
}

func walkFunc(b *Builder, id DeclID, v Visitor) {
	fn := b.Decls.Func(id)
	if fn == nil {
		return
	}
	if !v.EnterFunc(b, id) {
		return
	}
	for _, p := range fn.Params {
		if v.EnterParam(b, p) {
			v.ExitParam(b, p)
		}
	}
	walkStmt(b, fn.Body, v)
	v.ExitFunc(b, id)
}

func walkStmt(b *Builder, id StmtID, v Visitor) {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return
	}
	if !v.EnterStmt(b, id) {
		return
	}
	switch stmt.Kind {
	case StmtExpr:
		data, _ := b.Stmts.ExprStmt(id)
		walkExpr(b, data.Expr, v)
	case StmtReturn:
		data, _ := b.Stmts.Return(id)
		walkExpr(b, data.Value, v)
	case StmtCompound:
		data, _ := b.Stmts.Compound(id)
		for _, s := range data.Stmts {
			walkStmt(b, s, v)
		}
	}
	v.ExitStmt(b, id)
}

func walkExpr(b *Builder, id ExprID, v Visitor) {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return
	}
	if !v.EnterExpr(b, id) {
		return
	}
	switch expr.Kind {
	case ExprNumber, ExprIdent:
		// leaves
	case ExprCall:
		data, _ := b.Exprs.Call(id)
		for _, arg := range data.Args {
			walkExpr(b, arg, v)
		}
	case ExprBinary:
		data, _ := b.Exprs.Binary(id)
		walkExpr(b, data.LHS, v)
		walkExpr(b, data.RHS, v)
	}
	v.ExitExpr(b, id)
}
