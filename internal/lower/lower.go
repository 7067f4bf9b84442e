package lower

import (
	"fmt"

	"mua/internal/ast"
	"mua/internal/ir"
	"mua/internal/source"
	"mua/internal/symbols"
)

// Lower translates a validated AST plus its scope tree into a numeric SSA
// module. It trusts the semantic invariants: every identifier resolves,
// every assignment's LHS is an identifier, every call target exists with
// matching arity. The IR verifier backs those assumptions with a panic,
// never with a user-facing diagnostic.
func Lower(b *ast.Builder, file ast.FileID, table *symbols.Table, global symbols.ScopeID, fs *source.FileSet) *ir.Module {
	f := b.Files.Get(file)
	module := &ir.Module{
		SourceFile: fs.Get(f.Source).Path,
	}

	lw := &lowerer{
		table:   table,
		current: global,
		module:  module,
		slots:   make(map[symbols.SymbolID]ir.ValueID),
	}
	ast.Walk(b, file, lw)

	if err := ir.Validate(module); err != nil {
		panic(fmt.Errorf("lowering produced an invalid module: %w", err))
	}
	return module
}

// lowerer implements ast.Visitor. Statements drive expression lowering
// directly, so statement hooks suppress the walker's descent into
// expressions.
type lowerer struct {
	ast.NopVisitor

	table   *symbols.Table
	current symbols.ScopeID
	module  *ir.Module
	builder *ir.Builder
	// slots maps each parameter and local symbol to its stack slot; it
	// lives only for the duration of one lowering run.
	slots map[symbols.SymbolID]ir.ValueID
}

func (lw *lowerer) EnterFunc(b *ast.Builder, id ast.DeclID) bool {
	fn := b.Decls.Func(id)
	symID := lw.table.Lookup(lw.current, lw.table.Strings.Intern(fn.Name))
	scope := lw.table.Symbol(symID).Child

	params := lw.table.SymbolsOfKind(scope, symbols.SymbolParam)
	paramNames := make([]string, 0, len(params))
	for _, p := range params {
		paramNames = append(paramNames, lw.table.Strings.MustLookup(lw.table.Symbol(p).Name))
	}

	lw.builder = ir.NewFunc(lw.module, fn.Name, paramNames)

	// One stack slot per parameter, initialized from the incoming
	// argument, then one per local variable, left unwritten.
	for i, p := range params {
		slot := lw.builder.EmitAlloca(paramNames[i])
		lw.builder.EmitStore(ir.Arg(uint32(i)), slot)
		lw.slots[p] = slot
	}
	for _, v := range lw.table.SymbolsOfKind(scope, symbols.SymbolVar) {
		slot := lw.builder.EmitAlloca(lw.table.Strings.MustLookup(lw.table.Symbol(v).Name))
		lw.slots[v] = slot
	}

	lw.current = scope
	return true
}

func (lw *lowerer) ExitFunc(*ast.Builder, ast.DeclID) {
	lw.current = lw.table.Scope(lw.current).Parent
	lw.builder = nil
}

func (lw *lowerer) EnterStmt(b *ast.Builder, id ast.StmtID) bool {
	switch b.Stmts.Get(id).Kind {
	case ast.StmtExpr:
		data, _ := b.Stmts.ExprStmt(id)
		lw.lowerExpr(b, data.Expr) // value discarded, side effects kept
		return false
	case ast.StmtReturn:
		data, _ := b.Stmts.Return(id)
		lw.builder.EmitRet(lw.lowerExpr(b, data.Value))
		return false
	case ast.StmtCompound:
		return true
	}
	return true
}

// lowerExpr lowers one expression and yields the operand holding its
// value. LHS before RHS, arguments in index order: the only observable
// side effect is assignment, and this fixes its evaluation order.
func (lw *lowerer) lowerExpr(b *ast.Builder, id ast.ExprID) ir.Operand {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprNumber:
		data, _ := b.Exprs.Number(id)
		return ir.Const(data.Value)

	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		slot := lw.slotFor(data.Name)
		return ir.Value(lw.builder.EmitLoad(slot, data.Name))

	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		args := make([]ir.Operand, 0, len(data.Args))
		for _, arg := range data.Args {
			args = append(args, lw.lowerExpr(b, arg))
		}
		return ir.Value(lw.builder.EmitCall(data.Callee, args))

	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		if data.Op == ast.OpAssign {
			// The analyzer guarantees the LHS is an identifier.
			lhs, _ := b.Exprs.Ident(data.LHS)
			rhs := lw.lowerExpr(b, data.RHS)
			lw.builder.EmitStore(rhs, lw.slotFor(lhs.Name))
			return rhs
		}
		lhs := lw.lowerExpr(b, data.LHS)
		rhs := lw.lowerExpr(b, data.RHS)
		return ir.Value(lw.builder.EmitBin(binOpFor(data.Op), lhs, rhs))
	}
	panic(fmt.Errorf("unhandled expression kind %v", expr.Kind))
}

func (lw *lowerer) slotFor(name string) ir.ValueID {
	sym := lw.table.Lookup(lw.current, lw.table.Strings.Intern(name))
	slot, ok := lw.slots[sym]
	if !ok {
		panic(fmt.Errorf("no stack slot for %q", name))
	}
	return slot
}

func binOpFor(op ast.BinOp) ir.BinOp {
	switch op {
	case ast.OpAdd:
		return ir.FAdd
	case ast.OpSub:
		return ir.FSub
	case ast.OpMul:
		return ir.FMul
	case ast.OpDiv:
		return ir.FDiv
	default:
		panic(fmt.Errorf("operator %v is not a float instruction", op))
	}
}
