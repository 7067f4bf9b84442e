package ir

// Builder appends instructions to one function, numbering results as it
// goes. It always points at a single insertion block; the language has no
// control flow, so that block is the entry block.
type Builder struct {
	fn    *Func
	block BlockID
	next  ValueID
}

// NewFunc creates a function with an empty entry block, appends it to the
// module, and returns a builder positioned at the entry.
func NewFunc(m *Module, name string, params []string) *Builder {
	fn := &Func{
		Name:   name,
		Params: params,
		Blocks: []Block{{ID: 0}},
		Entry:  0,
	}
	m.Funcs = append(m.Funcs, fn)
	return &Builder{fn: fn, block: fn.Entry}
}

// Func returns the function under construction.
func (b *Builder) Func() *Func {
	return b.fn
}

func (b *Builder) push(in Instr) ValueID {
	if in.Kind.HasResult() {
		in.Result = b.next
		b.next++
	}
	blk := &b.fn.Blocks[b.block]
	blk.Instrs = append(blk.Instrs, in)
	return in.Result
}

// EmitAlloca reserves a named stack slot and returns its address value.
func (b *Builder) EmitAlloca(name string) ValueID {
	return b.push(Instr{Kind: InstrAlloca, Alloca: AllocaInstr{Name: name}})
}

// EmitStore writes value into the slot at addr.
func (b *Builder) EmitStore(value Operand, addr ValueID) {
	b.push(Instr{Kind: InstrStore, Store: StoreInstr{Value: value, Addr: addr}})
}

// EmitLoad reads the slot at addr.
func (b *Builder) EmitLoad(addr ValueID, name string) ValueID {
	return b.push(Instr{Kind: InstrLoad, Load: LoadInstr{Addr: addr, Name: name}})
}

// EmitBin applies a float binary operation.
func (b *Builder) EmitBin(op BinOp, lhs, rhs Operand) ValueID {
	return b.push(Instr{Kind: InstrBin, Bin: BinInstr{Op: op, LHS: lhs, RHS: rhs}})
}

// EmitCall calls the named function with args in source order.
func (b *Builder) EmitCall(callee string, args []Operand) ValueID {
	return b.push(Instr{Kind: InstrCall, Call: CallInstr{Callee: callee, Args: args}})
}

// EmitRet returns value from the function.
func (b *Builder) EmitRet(value Operand) {
	b.push(Instr{Kind: InstrRet, Ret: RetInstr{Value: value}})
}
