package ast

import (
	"mua/internal/source"
)

type ExprKind uint8

const (
	ExprNumber ExprKind = iota
	ExprIdent
	ExprCall
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "NumberExpr"
	case ExprIdent:
		return "IdentifierExpr"
	case ExprCall:
		return "CallExpr"
	case ExprBinary:
		return "BinaryExpr"
	}
	return "invalid"
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	OpAssign BinOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) String() string {
	switch op {
	case OpAssign:
		return "="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Expr is the kind+span header shared by every expression; per-kind payload
// lives in a dedicated arena indexed by the same ExprID.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

// NumberExprData holds a numeric literal already converted by the parser.
type NumberExprData struct {
	Value float64
}

// IdentExprData holds the identifier lexeme; its span is in the Expr header.
type IdentExprData struct {
	Name string
}

// CallExprData references the callee by name; arguments are child
// expressions in source order. The callee is not a child node: walking a
// call descends into the arguments only.
type CallExprData struct {
	Callee     string
	CalleeSpan source.Span
	Args       []ExprID
}

// BinaryExprData holds an operator application; for OpAssign the analyzer
// guarantees LHS is an identifier expression.
type BinaryExprData struct {
	Op  BinOp
	LHS ExprID
	RHS ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Numbers  *Arena[NumberExprData]
	Idents   *Arena[IdentExprData]
	Calls    *Arena[CallExprData]
	Binaries *Arena[BinaryExprData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Numbers:  NewArena[NumberExprData](capHint / 4),
		Idents:   NewArena[IdentExprData](capHint / 2),
		Calls:    NewArena[CallExprData](capHint / 8),
		Binaries: NewArena[BinaryExprData](capHint / 2),
	}
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewNumber(value float64, span source.Span) ExprID {
	payload := e.Numbers.Allocate(NumberExprData{Value: value})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprNumber, Span: span, Payload: payload}))
}

func (e *Exprs) NewIdent(name string, span source.Span) ExprID {
	payload := e.Idents.Allocate(IdentExprData{Name: name})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprIdent, Span: span, Payload: payload}))
}

func (e *Exprs) NewCall(callee string, calleeSpan source.Span, args []ExprID, span source.Span) ExprID {
	payload := e.Calls.Allocate(CallExprData{Callee: callee, CalleeSpan: calleeSpan, Args: args})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprCall, Span: span, Payload: payload}))
}

func (e *Exprs) NewBinary(op BinOp, lhs, rhs ExprID, span source.Span) ExprID {
	payload := e.Binaries.Allocate(BinaryExprData{Op: op, LHS: lhs, RHS: rhs})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprBinary, Span: span, Payload: payload}))
}

// Number returns the payload of a number expression, or nil+false on a
// kind mismatch.
func (e *Exprs) Number(id ExprID) (*NumberExprData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(expr.Payload), true
}

func (e *Exprs) Ident(id ExprID) (*IdentExprData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(expr.Payload), true
}

func (e *Exprs) Call(id ExprID) (*CallExprData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(expr.Payload), true
}

func (e *Exprs) Binary(id ExprID) (*BinaryExprData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(expr.Payload), true
}
