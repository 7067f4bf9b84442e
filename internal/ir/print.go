package ir

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DumpModule writes the stable human-readable form of a module. Functions
// print in module order, blocks in block order, one instruction per line.
func DumpModule(w io.Writer, m *Module) {
	fmt.Fprintf(w, "module %s\n", m.SourceFile)
	for _, f := range m.Funcs {
		dumpFunc(w, f)
	}
}

func dumpFunc(w io.Writer, f *Func) {
	fmt.Fprintf(w, "\nfn %s(%s):\n", f.Name, strings.Join(f.Params, ", "))
	for i := range f.Blocks {
		blk := &f.Blocks[i]
		fmt.Fprintf(w, "  bb%d:\n", blk.ID)
		for j := range blk.Instrs {
			fmt.Fprintf(w, "    %s\n", formatInstr(&blk.Instrs[j]))
		}
	}
}

func formatInstr(in *Instr) string {
	switch in.Kind {
	case InstrAlloca:
		return fmt.Sprintf("%%%d = alloca %s", in.Result, in.Alloca.Name)
	case InstrStore:
		return fmt.Sprintf("store %s, %%%d", formatOperand(in.Store.Value), in.Store.Addr)
	case InstrLoad:
		return fmt.Sprintf("%%%d = load %%%d", in.Result, in.Load.Addr)
	case InstrBin:
		return fmt.Sprintf("%%%d = %s %s, %s", in.Result, in.Bin.Op, formatOperand(in.Bin.LHS), formatOperand(in.Bin.RHS))
	case InstrCall:
		args := make([]string, 0, len(in.Call.Args))
		for _, a := range in.Call.Args {
			args = append(args, formatOperand(a))
		}
		return fmt.Sprintf("%%%d = call %s(%s)", in.Result, in.Call.Callee, strings.Join(args, ", "))
	case InstrRet:
		return fmt.Sprintf("ret %s", formatOperand(in.Ret.Value))
	}
	return "?"
}

func formatOperand(op Operand) string {
	switch op.Kind {
	case OperandConst:
		return strconv.FormatFloat(op.Const, 'g', -1, 64)
	case OperandValue:
		return fmt.Sprintf("%%%d", op.Value)
	case OperandArg:
		return fmt.Sprintf("arg%d", op.Arg)
	}
	return "?"
}
