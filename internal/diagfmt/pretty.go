package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mua/internal/diag"
	"mua/internal/source"
)

// PrettyOpts configure human-readable diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

// Pretty renders every diagnostic in the bag:
//
//	error: <message>
//	<file:line:col-endcol>
//	<source line>
//	<caret run under the span>
//
// Notes render identically under the "note:" prefix. The bag is expected
// to be sorted.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d.Severity.String(), d.Message, d.Primary, fs, opts)
		for _, n := range d.Notes {
			printOne(w, "note", n.Msg, n.Span, fs, opts)
		}
	}
}

func printOne(w io.Writer, prefix, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s %s\n", colorPrefix(prefix, opts), msg)
	fmt.Fprintf(w, "%s\n", fs.FormatSpan(span))

	f := fs.Get(span.File)
	line := f.LineAt(span.Start)
	fmt.Fprintf(w, "%s\n", line)
	fmt.Fprintf(w, "%s\n", caretLine(line, span, fs, opts))
}

func colorPrefix(prefix string, opts PrettyOpts) string {
	label := prefix + ":"
	if !opts.Color {
		return label
	}
	var c *color.Color
	switch prefix {
	case "error":
		c = color.New(color.FgRed, color.Bold)
	case "warning":
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan, color.Bold)
	}
	// The --color flag already decided; bypass the package's tty detection.
	c.EnableColor()
	return c.Sprint(label)
}

// caretLine underlines the span within its first source line. Widths are
// display widths, so tabs and wide runes keep the carets aligned.
func caretLine(line string, span source.Span, fs *source.FileSet, opts PrettyOpts) string {
	start, _ := fs.Resolve(span)
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}

	pad := runewidth.StringWidth(line[:col])

	width := int(span.Len())
	if rest := len(line) - col; width > rest {
		width = rest
	}
	if width > 0 {
		width = runewidth.StringWidth(line[col : col+width])
	}
	if width < 1 {
		width = 1
	}

	carets := strings.Repeat("^", width)
	if opts.Color {
		c := color.New(color.FgGreen, color.Bold)
		c.EnableColor()
		carets = c.Sprint(carets)
	}
	return strings.Repeat(" ", pad) + carets
}
