package parser

import (
	"strconv"

	"mua/internal/ast"
	"mua/internal/token"
)

func (p *Parser) parseExpr(context string) (ast.ExprID, bool) {
	return p.parseBinaryExpr(0, context)
}

// parseBinaryExpr climbs precedence: while the current token is a binary
// operator at or above minPrec, consume it and recurse. Left-associative
// operators recurse one level tighter so equal precedence folds left;
// right-associative ones recurse at the same level and fold right.
func (p *Parser) parseBinaryExpr(minPrec int, context string) (ast.ExprID, bool) {
	lhs, ok := p.parsePrimaryExpr(context)
	if !ok {
		return ast.NoExprID, false
	}

	for {
		op, isOp := lookupBinaryOp(p.lx.Peek().Kind)
		if !isOp || op.prec < minPrec {
			break
		}
		p.bump()

		nextMinPrec := op.prec
		if !op.rightAssoc {
			nextMinPrec++
		}

		rhs, ok := p.parseBinaryExpr(nextMinPrec, "in the right-hand side of a binary expression")
		if !ok {
			return ast.NoExprID, false
		}

		span := p.arenas.Exprs.Get(lhs).Span.Cover(p.arenas.Exprs.Get(rhs).Span)
		lhs = p.arenas.Exprs.NewBinary(op.op, lhs, rhs, span)
	}

	return lhs, true
}

func (p *Parser) parsePrimaryExpr(context string) (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.Number:
		return p.parseNumberExpr(context)
	case token.Ident:
		return p.parseIdentifierOrCallExpr()
	default:
		p.expectedExpr(context)
		return ast.NoExprID, false
	}
}

func (p *Parser) parseNumberExpr(context string) (ast.ExprID, bool) {
	tok := p.lx.Peek()
	value, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		// A lone '.' lexes as a number but does not convert.
		p.expectedToken(token.Number, context)
		return ast.NoExprID, false
	}
	p.bump()
	return p.arenas.Exprs.NewNumber(value, tok.Span), true
}

// parseIdentifierOrCallExpr parses an identifier, upgraded to a call when
// immediately followed by '('.
func (p *Parser) parseIdentifierOrCallExpr() (ast.ExprID, bool) {
	name := p.bump()

	if !p.at(token.LParen) {
		return p.arenas.Exprs.NewIdent(name.Text, name.Span), true
	}
	p.bump()

	args := make([]ast.ExprID, 0, 4)
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr("in call argument list")
		if !ok {
			return ast.NoExprID, false
		}
		args = append(args, arg)

		if !p.at(token.Comma) {
			break
		}
		p.bump()
	}

	if !p.at(token.RParen) {
		p.expectedToken(token.RParen, "after call argument list")
		return ast.NoExprID, false
	}
	end := p.bump().Span

	span := name.Span.Cover(end)
	return p.arenas.Exprs.NewCall(name.Text, name.Span, args, span), true
}
