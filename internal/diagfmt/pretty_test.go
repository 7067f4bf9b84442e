package diagfmt_test

import (
	"strings"
	"testing"

	"mua/internal/diag"
	"mua/internal/diagfmt"
	"mua/internal/source"
)

func render(t *testing.T, input string, d diag.Diagnostic) string {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("test.mua", []byte(input))

	bag := diag.NewBag(10)
	bag.Add(d)

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Color: false})
	return sb.String()
}

func TestPrettyError(t *testing.T) {
	got := render(t, "function f() return g() end", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaUndeclaredCall,
		Message:  "use of undeclared function g",
		Primary:  source.Span{File: 0, Start: 20, End: 23},
	})

	want := `error: use of undeclared function g
test.mua:1:21-24
function f() return g() end
                    ^^^
`
	if got != want {
		t.Errorf("render:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNote(t *testing.T) {
	got := render(t, "function f(x,x) return x end", diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaParamRedefinition,
		Message:  "redefinition of parameter x",
		Primary:  source.Span{File: 0, Start: 13, End: 14},
		Notes: []diag.Note{
			{Span: source.Span{File: 0, Start: 11, End: 12}, Msg: "previous definition is here"},
		},
	})

	want := `error: redefinition of parameter x
test.mua:1:14-15
function f(x,x) return x end
             ^
note: previous definition is here
test.mua:1:12-13
function f(x,x) return x end
           ^
`
	if got != want {
		t.Errorf("render:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestZeroWidthSpanGetsOneCaret(t *testing.T) {
	got := render(t, "function", diag.Diagnostic{
		Severity: diag.SevError,
		Message:  "expected identifier after function",
		Primary:  source.Span{File: 0, Start: 8, End: 8},
	})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	caret := lines[len(lines)-1]
	if caret != strings.Repeat(" ", 8)+"^" {
		t.Errorf("caret line = %q", caret)
	}
}

func TestSecondLineCaret(t *testing.T) {
	got := render(t, "function f()\nreturn 0\nend", diag.Diagnostic{
		Severity: diag.SevError,
		Message:  "example",
		Primary:  source.Span{File: 0, Start: 13, End: 19},
	})
	want := `error: example
test.mua:2:1-7
return 0
^^^^^^
`
	if got != want {
		t.Errorf("render:\n got:\n%s\nwant:\n%s", got, want)
	}
}
