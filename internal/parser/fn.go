package parser

import (
	"mua/internal/ast"
	"mua/internal/source"
	"mua/internal/token"
)

// parseFunctionDecl parses
//
//	'function' Identifier '(' ParamList? ')' Stmt* 'end'
func (p *Parser) parseFunctionDecl(context string) (ast.DeclID, bool) {
	if !p.at(token.KwFunction) {
		p.expectedToken(token.KwFunction, context)
		return ast.NoDeclID, false
	}
	begin := p.bump().Span

	if !p.at(token.Ident) {
		p.expectedToken(token.Ident, "after function")
		return ast.NoDeclID, false
	}
	name := p.bump()

	if !p.at(token.LParen) {
		p.expectedToken(token.LParen, "after function identifier")
		return ast.NoDeclID, false
	}
	p.bump()

	params, ok := p.parseParamList()
	if !ok {
		return ast.NoDeclID, false
	}

	if !p.at(token.RParen) {
		p.expectedToken(token.RParen, "after function parameter list")
		return ast.NoDeclID, false
	}
	p.bump()

	body, bodySpan, ok := p.parseCompoundStmt("in function body")
	if !ok {
		return ast.NoDeclID, false
	}

	span := begin.Cover(bodySpan)
	return p.arenas.Decls.NewFunc(name.Text, name.Span, params, body, span), true
}

// parseParamList parses Identifier (',' Identifier)* up to the closing ')'.
// Empty lists are permitted.
func (p *Parser) parseParamList() ([]ast.ParamID, bool) {
	params := make([]ast.ParamID, 0, 4)
	for !p.at(token.RParen) {
		if !p.at(token.Ident) {
			p.expectedToken(token.Ident, "in function parameter list")
			return nil, false
		}
		name := p.bump()
		params = append(params, p.arenas.Decls.NewParam(name.Text, name.Span))

		if !p.at(token.Comma) {
			break
		}
		p.bump()
	}
	return params, true
}

// parseCompoundStmt collects statements until 'end' and consumes it.
func (p *Parser) parseCompoundStmt(context string) (ast.StmtID, source.Span, bool) {
	begin := p.lx.Peek().Span

	stmts := make([]ast.StmtID, 0, 8)
	for !p.at(token.KwEnd) {
		stmt, ok := p.parseStmt(context)
		if !ok {
			return ast.NoStmtID, source.Span{}, false
		}
		stmts = append(stmts, stmt)
	}
	end := p.bump().Span // 'end'

	span := begin.Cover(end)
	return p.arenas.Stmts.NewCompound(stmts, span), span, true
}
