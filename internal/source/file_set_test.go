package source_test

import (
	"testing"

	"mua/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte("function f()\nreturn 0\nend\n"))

	cases := []struct {
		name      string
		span      source.Span
		wantLine  uint32
		wantCol   uint32
		wantEndLn uint32
		wantEndCl uint32
	}{
		{"start of file", source.Span{File: id, Start: 0, End: 8}, 1, 1, 1, 9},
		{"second line", source.Span{File: id, Start: 13, End: 19}, 2, 1, 2, 7},
		{"third line", source.Span{File: id, Start: 22, End: 25}, 3, 1, 3, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := fs.Resolve(tc.span)
			if start.Line != tc.wantLine || start.Col != tc.wantCol {
				t.Errorf("start = %d:%d, want %d:%d", start.Line, start.Col, tc.wantLine, tc.wantCol)
			}
			if end.Line != tc.wantEndLn || end.Col != tc.wantEndCl {
				t.Errorf("end = %d:%d, want %d:%d", end.Line, end.Col, tc.wantEndLn, tc.wantEndCl)
			}
		})
	}
}

func TestFormatSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte("function f()\nreturn 0\nend\n"))

	got := fs.FormatSpan(source.Span{File: id, Start: 13, End: 19})
	want := "test.mua:2:1-7"
	if got != want {
		t.Errorf("FormatSpan = %q, want %q", got, want)
	}

	got = fs.FormatSpan(source.Span{File: id, Start: 0, End: 25})
	want = "test.mua:1:1-3:4"
	if got != want {
		t.Errorf("FormatSpan across lines = %q, want %q", got, want)
	}
}

func TestSlice(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte("function f() return 0 end"))

	if got := fs.Slice(source.Span{File: id, Start: 9, End: 10}); got != "f" {
		t.Errorf("Slice = %q, want %q", got, "f")
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	for i, want := range []string{"one", "two", "three"} {
		lineNum := uint32(i + 1)
		if got := f.GetLine(lineNum); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", lineNum, got, want)
		}
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}

func TestNormalization(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("crlf.mua", []byte("a\r\nb"), 0)
	f := fs.Get(id)
	// Add does not normalize; only Load does. The raw bytes survive.
	if string(f.Content) != "a\r\nb" {
		t.Errorf("Add must not rewrite content, got %q", f.Content)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 4, End: 8}
	b := source.Span{File: 1, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Errorf("Cover = %v", c)
	}

	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}

func TestInterner(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("x")
	b := in.Intern("y")
	if a == b {
		t.Fatalf("distinct strings interned to the same ID")
	}
	if in.Intern("x") != a {
		t.Errorf("re-interning returned a different ID")
	}
	if got := in.MustLookup(a); got != "x" {
		t.Errorf("MustLookup = %q, want %q", got, "x")
	}
	if _, ok := in.Lookup(source.StringID(99)); ok {
		t.Errorf("Lookup of unknown ID succeeded")
	}
}
