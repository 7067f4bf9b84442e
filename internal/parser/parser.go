package parser

import (
	"mua/internal/ast"
	"mua/internal/diag"
	"mua/internal/lexer"
	"mua/internal/source"
	"mua/internal/token"
)

// Options configure a single-file parse.
type Options struct {
	Reporter diag.Reporter
}

// Result carries the parsed unit. Ok is false when a diagnostic was
// emitted; the unit must not be consumed in that case.
type Result struct {
	File ast.FileID
	Ok   bool
}

// Parser holds the state for parsing one file. It aborts on the first
// syntactic failure; there is no recovery.
type Parser struct {
	lx     *lexer.Lexer
	arenas *ast.Builder
	file   ast.FileID
	opts   Options
	failed bool
}

// ParseFile is the entry point for parsing one file into the builder.
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:     lx,
		arenas: arenas,
		opts:   opts,
	}
	startSpan := lx.Peek().Span

	p.file = arenas.NewFile(lx.File().ID, startSpan)
	p.parseTranslationUnit(startSpan)

	return Result{File: p.file, Ok: !p.failed}
}

func (p *Parser) parseTranslationUnit(startSpan source.Span) {
	for !p.at(token.EOF) {
		fn, ok := p.parseFunctionDecl("at top level")
		if !ok {
			return
		}
		p.arenas.PushFunc(p.file, fn)
	}
	endSpan := p.lx.Peek().Span
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(endSpan)
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// bump consumes the current token and returns it.
func (p *Parser) bump() token.Token {
	return p.lx.Next()
}

// expectedToken reports "expected <kind> <context>" at the current token
// and marks the parse failed.
func (p *Parser) expectedToken(k token.Kind, context string) {
	p.report(diag.SynExpectedToken, "expected "+k.String()+" "+context)
}

// expectedExpr reports "expected expression <context>".
func (p *Parser) expectedExpr(context string) {
	p.report(diag.SynExpectedExpr, "expected expression "+context)
}

func (p *Parser) report(code diag.Code, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, p.lx.Peek().Span, msg, nil)
	}
	p.failed = true
}
