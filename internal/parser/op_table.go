package parser

import (
	"mua/internal/ast"
	"mua/internal/token"
)

// binaryOp describes one entry of the operator table.
type binaryOp struct {
	op         ast.BinOp
	prec       int
	rightAssoc bool
}

// lookupBinaryOp maps a token to its operator table entry.
//
//	=  Assign  10  right
//	+  Add     20  left
//	-  Sub     20  left
//	*  Mul     30  left
//	/  Div     30  left
func lookupBinaryOp(k token.Kind) (binaryOp, bool) {
	switch k {
	case token.Assign:
		return binaryOp{op: ast.OpAssign, prec: 10, rightAssoc: true}, true
	case token.Plus:
		return binaryOp{op: ast.OpAdd, prec: 20}, true
	case token.Minus:
		return binaryOp{op: ast.OpSub, prec: 20}, true
	case token.Star:
		return binaryOp{op: ast.OpMul, prec: 30}, true
	case token.Slash:
		return binaryOp{op: ast.OpDiv, prec: 30}, true
	default:
		return binaryOp{}, false
	}
}
