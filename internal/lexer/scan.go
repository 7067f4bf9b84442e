package lexer

import (
	"mua/internal/token"
)

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies the lexeme
// against the keyword table.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanNumber scans digits with at most one '.'. A leading '.' is accepted;
// whether the lexeme converts to a float is the parser's problem.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	dotSeen := false
	for {
		b := lx.cursor.Peek()
		if lx.cursor.EOF() {
			break
		}
		if b == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
			lx.cursor.Bump()
			continue
		}
		if !isDec(b) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanPunct scans one punctuation byte. An unmatched byte yields Invalid but
// still advances so lexing terminates.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupPunct(b); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
