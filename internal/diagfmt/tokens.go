package diagfmt

import (
	"fmt"
	"io"

	"mua/internal/lexer"
	"mua/internal/source"
	"mua/internal/token"
)

// FormatTokens drains the lexer and writes one line per token:
// kind, quoted lexeme, span. Used by the tokenize command.
func FormatTokens(w io.Writer, lx *lexer.Lexer, fs *source.FileSet) {
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			fmt.Fprintf(w, "%s [%s]\n", tok.Kind, fs.FormatSpan(tok.Span))
			return
		}
		fmt.Fprintf(w, "%s %q [%s]\n", tok.Kind, tok.Text, fs.FormatSpan(tok.Span))
	}
}
