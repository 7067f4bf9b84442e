package lexer

import (
	"mua/internal/source"
	"mua/internal/token"
)

// Lexer turns a file's byte buffer into a token stream with a one-token
// lookahead window. It never reports diagnostics: unrecognized bytes become
// Invalid tokens for the parser to reject.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		look:   nil,
	}
}

// Next consumes and returns the next significant token.
// After the end of input it returns EOF forever.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch) || ch == '.':
		return lx.scanNumber()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file the lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// skipTrivia consumes ASCII whitespace and '--' line comments.
func (lx *Lexer) skipTrivia() {
	for {
		for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '-' && lx.cursor.PeekAt(1) == '-' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}
