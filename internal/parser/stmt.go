package parser

import (
	"mua/internal/ast"
	"mua/internal/token"
)

// parseStmt recognizes a return statement by its keyword; everything else
// is an expression statement.
func (p *Parser) parseStmt(context string) (ast.StmtID, bool) {
	if p.at(token.KwReturn) {
		return p.parseReturnStmt()
	}
	return p.parseExprStmt(context)
}

func (p *Parser) parseExprStmt(context string) (ast.StmtID, bool) {
	expr, ok := p.parseExpr(context)
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.arenas.Exprs.Get(expr).Span
	return p.arenas.Stmts.NewExprStmt(expr, span), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	begin := p.bump().Span // 'return'

	value, ok := p.parseExpr("after return")
	if !ok {
		return ast.NoStmtID, false
	}

	span := begin.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Stmts.NewReturn(value, span), true
}
