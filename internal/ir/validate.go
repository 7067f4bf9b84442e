package ir

import (
	"fmt"
)

// Validate checks module well-formedness. Violations are compiler bugs,
// never user errors: the lowerer trusts the semantic invariants and this
// is the safety net behind that trust.
func Validate(m *Module) error {
	seen := make(map[string]bool, len(m.Funcs))
	for _, f := range m.Funcs {
		if seen[f.Name] {
			return fmt.Errorf("duplicate function %q", f.Name)
		}
		seen[f.Name] = true
	}
	for _, f := range m.Funcs {
		if err := validateFunc(m, f); err != nil {
			return fmt.Errorf("fn %s: %w", f.Name, err)
		}
	}
	return nil
}

func validateFunc(m *Module, f *Func) error {
	if len(f.Blocks) == 0 {
		return fmt.Errorf("no blocks")
	}
	if int(f.Entry) >= len(f.Blocks) {
		return fmt.Errorf("entry block %d out of range", f.Entry)
	}

	defined := make(map[ValueID]InstrKind)
	numArgs, err := argCount(f)
	if err != nil {
		return err
	}

	checkOperand := func(op Operand) error {
		switch op.Kind {
		case OperandValue:
			if _, ok := defined[op.Value]; !ok {
				return fmt.Errorf("use of undefined value %%%d", op.Value)
			}
		case OperandArg:
			if op.Arg >= numArgs {
				return fmt.Errorf("argument index %d out of range", op.Arg)
			}
		case OperandConst:
			// always fine
		}
		return nil
	}

	sawRet := false
	for bi := range f.Blocks {
		blk := &f.Blocks[bi]
		for ii := range blk.Instrs {
			in := &blk.Instrs[ii]
			if sawRet {
				return fmt.Errorf("instruction after ret")
			}
			switch in.Kind {
			case InstrAlloca:
				if BlockID(bi) != f.Entry {
					return fmt.Errorf("alloca outside the entry block")
				}
			case InstrStore:
				if err := checkOperand(in.Store.Value); err != nil {
					return err
				}
				if defined[in.Store.Addr] != InstrAlloca {
					return fmt.Errorf("store to non-alloca value %%%d", in.Store.Addr)
				}
			case InstrLoad:
				if defined[in.Load.Addr] != InstrAlloca {
					return fmt.Errorf("load from non-alloca value %%%d", in.Load.Addr)
				}
			case InstrBin:
				if err := checkOperand(in.Bin.LHS); err != nil {
					return err
				}
				if err := checkOperand(in.Bin.RHS); err != nil {
					return err
				}
			case InstrCall:
				callee := m.FuncByName(in.Call.Callee)
				if callee == nil {
					return fmt.Errorf("call to unknown function %q", in.Call.Callee)
				}
				if len(in.Call.Args) != len(callee.Params) {
					return fmt.Errorf("call to %q with %d args, want %d", in.Call.Callee, len(in.Call.Args), len(callee.Params))
				}
				for _, a := range in.Call.Args {
					if err := checkOperand(a); err != nil {
						return err
					}
				}
			case InstrRet:
				if err := checkOperand(in.Ret.Value); err != nil {
					return err
				}
				sawRet = true
			}
			if in.Kind.HasResult() {
				if _, dup := defined[in.Result]; dup {
					return fmt.Errorf("value %%%d defined twice", in.Result)
				}
				defined[in.Result] = in.Kind
			}
		}
	}

	if !sawRet {
		return fmt.Errorf("missing ret")
	}
	return nil
}

func argCount(f *Func) (uint32, error) {
	n := len(f.Params)
	if n > 1<<16 {
		return 0, fmt.Errorf("too many parameters")
	}
	return uint32(n), nil
}
