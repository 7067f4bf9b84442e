package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"mua/internal/source"
)

// Dump writes the stable textual tree of a translation unit: one line per
// node, two-space indent per depth, tag plus discriminating data plus span.
func Dump(w io.Writer, b *Builder, file FileID, fs *source.FileSet) {
	v := &dumpVisitor{w: w, fs: fs}
	Walk(b, file, v)
}

type dumpVisitor struct {
	NopVisitor
	w     io.Writer
	fs    *source.FileSet
	level int
}

func (v *dumpVisitor) indent() string {
	return strings.Repeat("  ", v.level)
}

func (v *dumpVisitor) line(tag, data string, span source.Span) {
	if data != "" {
		fmt.Fprintf(v.w, "%s%s %s [%s]\n", v.indent(), tag, data, v.fs.FormatSpan(span))
	} else {
		fmt.Fprintf(v.w, "%s%s [%s]\n", v.indent(), tag, v.fs.FormatSpan(span))
	}
}

func (v *dumpVisitor) EnterUnit(b *Builder, id FileID) bool {
	f := b.Files.Get(id)
	v.line("TranslationUnit", "", f.Span)
	v.level++
	return true
}

func (v *dumpVisitor) ExitUnit(*Builder, FileID) { v.level-- }

func (v *dumpVisitor) EnterFunc(b *Builder, id DeclID) bool {
	fn := b.Decls.Func(id)
	v.line("FunctionDecl", fn.Name, fn.Span)
	v.level++
	return true
}

func (v *dumpVisitor) ExitFunc(*Builder, DeclID) { v.level-- }

func (v *dumpVisitor) EnterParam(b *Builder, id ParamID) bool {
	p := b.Decls.Param(id)
	v.line("ParamDecl", p.Name, p.Span)
	return true
}

func (v *dumpVisitor) EnterStmt(b *Builder, id StmtID) bool {
	stmt := b.Stmts.Get(id)
	v.line(stmt.Kind.String(), "", stmt.Span)
	v.level++
	return true
}

func (v *dumpVisitor) ExitStmt(*Builder, StmtID) { v.level-- }

func (v *dumpVisitor) EnterExpr(b *Builder, id ExprID) bool {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ExprNumber:
		data, _ := b.Exprs.Number(id)
		v.line("NumberExpr", strconv.FormatFloat(data.Value, 'g', -1, 64), expr.Span)
	case ExprIdent:
		data, _ := b.Exprs.Ident(id)
		v.line("IdentifierExpr", data.Name, expr.Span)
	case ExprCall:
		data, _ := b.Exprs.Call(id)
		v.line("CallExpr", data.Callee, expr.Span)
	case ExprBinary:
		data, _ := b.Exprs.Binary(id)
		v.line("BinaryExpr", data.Op.String(), expr.Span)
	}
	v.level++
	return true
}

func (v *dumpVisitor) ExitExpr(*Builder, ExprID) { v.level-- }
