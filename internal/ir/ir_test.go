package ir_test

import (
	"strings"
	"testing"

	"mua/internal/ir"
)

// buildIdentity assembles `fn f(x): return x` by hand.
func buildIdentity(m *ir.Module) {
	b := ir.NewFunc(m, "f", []string{"x"})
	slot := b.EmitAlloca("x")
	b.EmitStore(ir.Arg(0), slot)
	v := b.EmitLoad(slot, "x")
	b.EmitRet(ir.Value(v))
}

func TestBuilderNumbersResults(t *testing.T) {
	m := &ir.Module{SourceFile: "test.mua"}
	buildIdentity(m)

	f := m.FuncByName("f")
	if f == nil {
		t.Fatalf("function not registered in module")
	}
	instrs := f.EntryBlock().Instrs
	if len(instrs) != 4 {
		t.Fatalf("instrs = %d, want 4", len(instrs))
	}
	if instrs[0].Result != 0 || instrs[2].Result != 1 {
		t.Errorf("result numbering off: alloca=%d load=%d", instrs[0].Result, instrs[2].Result)
	}
	if instrs[1].Kind.HasResult() {
		t.Errorf("store reported a result")
	}
}

func TestValidateAccepts(t *testing.T) {
	m := &ir.Module{SourceFile: "test.mua"}
	buildIdentity(m)
	if err := ir.Validate(m); err != nil {
		t.Errorf("Validate = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name  string
		build func(m *ir.Module)
		want  string
	}{
		{
			"missing ret",
			func(m *ir.Module) {
				b := ir.NewFunc(m, "f", nil)
				b.EmitAlloca("x")
			},
			"missing ret",
		},
		{
			"undefined value",
			func(m *ir.Module) {
				b := ir.NewFunc(m, "f", nil)
				b.EmitRet(ir.Value(7))
			},
			"undefined value",
		},
		{
			"store to non-alloca",
			func(m *ir.Module) {
				b := ir.NewFunc(m, "f", nil)
				v := b.EmitBin(ir.FAdd, ir.Const(1), ir.Const(2))
				b.EmitStore(ir.Const(3), v)
				b.EmitRet(ir.Const(0))
			},
			"non-alloca",
		},
		{
			"unknown callee",
			func(m *ir.Module) {
				b := ir.NewFunc(m, "f", nil)
				v := b.EmitCall("g", nil)
				b.EmitRet(ir.Value(v))
			},
			"unknown function",
		},
		{
			"arity mismatch",
			func(m *ir.Module) {
				bg := ir.NewFunc(m, "g", []string{"x"})
				slot := bg.EmitAlloca("x")
				bg.EmitStore(ir.Arg(0), slot)
				bg.EmitRet(ir.Const(0))

				b := ir.NewFunc(m, "f", nil)
				v := b.EmitCall("g", nil)
				b.EmitRet(ir.Value(v))
			},
			"want 1",
		},
		{
			"duplicate function",
			func(m *ir.Module) {
				a := ir.NewFunc(m, "f", nil)
				a.EmitRet(ir.Const(0))
				b := ir.NewFunc(m, "f", nil)
				b.EmitRet(ir.Const(0))
			},
			"duplicate function",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &ir.Module{SourceFile: "test.mua"}
			tc.build(m)
			err := ir.Validate(m)
			if err == nil {
				t.Fatalf("Validate accepted a broken module")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestDumpModule(t *testing.T) {
	m := &ir.Module{SourceFile: "test.mua"}
	buildIdentity(m)

	var sb strings.Builder
	ir.DumpModule(&sb, m)
	want := `module test.mua

fn f(x):
  bb0:
    %0 = alloca x
    store arg0, %0
    %1 = load %0
    ret %1
`
	if sb.String() != want {
		t.Errorf("dump:\n got:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestEmptyModuleDump(t *testing.T) {
	m := &ir.Module{SourceFile: "empty.mua"}
	var sb strings.Builder
	ir.DumpModule(&sb, m)
	if sb.String() != "module empty.mua\n" {
		t.Errorf("dump = %q", sb.String())
	}
	if err := ir.Validate(m); err != nil {
		t.Errorf("empty module invalid: %v", err)
	}
}
