package sema_test

import (
	"strings"
	"testing"

	"mua/internal/ast"
	"mua/internal/diag"
	"mua/internal/lexer"
	"mua/internal/parser"
	"mua/internal/sema"
	"mua/internal/source"
	"mua/internal/symbols"
)

type analyzed struct {
	fs      *source.FileSet
	builder *ast.Builder
	file    ast.FileID
	result  sema.Result
	bag     *diag.Bag
}

func analyzeString(t *testing.T, input string) analyzed {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mua", []byte(input))
	lx := lexer.New(fs.Get(id))
	builder := ast.NewBuilder(ast.Hints{})

	bag := diag.NewBag(100)
	pr := parser.ParseFile(lx, builder, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if !pr.Ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}

	res := sema.Analyze(builder, pr.File, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	return analyzed{fs: fs, builder: builder, file: pr.File, result: res, bag: bag}
}

func errorMessages(a analyzed) []string {
	var out []string
	for _, d := range a.bag.Items() {
		out = append(out, d.Message)
	}
	return out
}

func TestConstantFunction(t *testing.T) {
	a := analyzeString(t, "function f() return 0 end")
	if !a.result.Ok {
		t.Fatalf("analysis failed: %v", errorMessages(a))
	}

	table := a.result.Table
	fName := table.Strings.Intern("f")
	sym := table.Lookup(a.result.Global, fName)
	if !sym.IsValid() || table.Symbol(sym).Kind != symbols.SymbolFunction {
		t.Fatalf("f not declared as a function")
	}
	child := table.Symbol(sym).Child
	if !child.IsValid() {
		t.Fatalf("function scope missing")
	}
	if n := len(table.Scope(child).Symbols); n != 0 {
		t.Errorf("f's scope has %d symbols, want 0", n)
	}
}

func TestParamAndImplicitVar(t *testing.T) {
	a := analyzeString(t, "function f(x) y = x + 1 return y end")
	if !a.result.Ok {
		t.Fatalf("analysis failed: %v", errorMessages(a))
	}

	table := a.result.Table
	fnSym := table.Lookup(a.result.Global, table.Strings.Intern("f"))
	scope := table.Symbol(fnSym).Child

	x := table.Lookup(scope, table.Strings.Intern("x"))
	if table.Symbol(x).Kind != symbols.SymbolParam {
		t.Errorf("x is %v, want Param", table.Symbol(x).Kind)
	}
	y := table.Lookup(scope, table.Strings.Intern("y"))
	if table.Symbol(y).Kind != symbols.SymbolVar {
		t.Errorf("y is %v, want Var", table.Symbol(y).Kind)
	}
	if table.Symbol(y).Owner != scope {
		t.Errorf("y declared outside the function scope")
	}
}

func TestScopeDump(t *testing.T) {
	a := analyzeString(t, "function f(x) y = x + 1 return y end")
	if !a.result.Ok {
		t.Fatalf("analysis failed: %v", errorMessages(a))
	}

	var sb strings.Builder
	symbols.Dump(&sb, a.result.Table, a.result.Global, a.fs)
	want := `<<unnamed>> : Scope
  f : Function : test.mua:1:10-11
    f : Scope
      x : Param : test.mua:1:12-13
      y : Var : test.mua:1:15-16
`
	if sb.String() != want {
		t.Errorf("scope dump:\n got:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestUndeclaredCall(t *testing.T) {
	a := analyzeString(t, "function f() return g() end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "use of undeclared function g" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestCallBeforeDeclaration(t *testing.T) {
	// Names resolve at visit time; a later function is not visible yet.
	a := analyzeString(t, "function f() return g() end function g() return 0 end")
	if a.result.Ok {
		t.Fatalf("forward call not rejected")
	}
}

func TestCalledObjectNotAFunction(t *testing.T) {
	a := analyzeString(t, "function f(x) return x(1) end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "called object x is not a function" {
		t.Fatalf("messages = %v", msgs)
	}
	if len(a.bag.Items()[0].Notes) != 1 {
		t.Errorf("missing previous-definition note")
	}
}

func TestArityMismatch(t *testing.T) {
	a := analyzeString(t, "function g(x) return x end function f() return g() end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "call to function g with incorrect number of arguments" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestFunctionRedefinition(t *testing.T) {
	a := analyzeString(t, "function f() return 0 end function f() return 1 end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "redefinition of function f" {
		t.Fatalf("messages = %v", msgs)
	}
	d := a.bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous definition is here" {
		t.Errorf("note = %+v", d.Notes)
	}
}

func TestParamRedefinition(t *testing.T) {
	a := analyzeString(t, "function f(x,x) return x end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "redefinition of parameter x" {
		t.Fatalf("messages = %v", msgs)
	}
	d := a.bag.Items()[0]
	if len(d.Notes) != 1 {
		t.Fatalf("missing note")
	}
	// The note must point at the first x, before the redefinition.
	if d.Notes[0].Span.Start >= d.Primary.Start {
		t.Errorf("note span %v does not precede primary %v", d.Notes[0].Span, d.Primary)
	}
}

func TestEmptyBody(t *testing.T) {
	a := analyzeString(t, "function f() end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "function f must end with a return statement" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestLastStatementNotReturn(t *testing.T) {
	a := analyzeString(t, "function f() 1 + 2 end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "last statement of function f must be a return statement" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestNotAssignable(t *testing.T) {
	a := analyzeString(t, "function f() 1 = 2 return 0 end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	msgs := errorMessages(a)
	if len(msgs) != 1 || msgs[0] != "expression is not assignable" {
		t.Errorf("messages = %v", msgs)
	}
}

func TestCollectsMultipleErrors(t *testing.T) {
	a := analyzeString(t, "function f() g() return 0 end function h() 1 = 2 return 0 end")
	if a.result.Ok {
		t.Fatalf("analysis succeeded")
	}
	if len(errorMessages(a)) != 2 {
		t.Errorf("messages = %v, want two independent errors", errorMessages(a))
	}
}

func TestEmptySourceYieldsEmptyGlobalScope(t *testing.T) {
	a := analyzeString(t, "")
	if !a.result.Ok {
		t.Fatalf("analysis failed: %v", errorMessages(a))
	}
	if n := len(a.result.Table.Scope(a.result.Global).Symbols); n != 0 {
		t.Errorf("global scope has %d symbols, want 0", n)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	const input = "function f(x) y = x + 1 return y end function g() return f(2) end"

	dump := func() string {
		a := analyzeString(t, input)
		if !a.result.Ok {
			t.Fatalf("analysis failed: %v", errorMessages(a))
		}
		var sb strings.Builder
		symbols.Dump(&sb, a.result.Table, a.result.Global, a.fs)
		return sb.String()
	}

	if first, second := dump(), dump(); first != second {
		t.Errorf("scope dumps differ:\n%s\n---\n%s", first, second)
	}
}
