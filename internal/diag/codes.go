package diag

import (
	"fmt"
)

// Code identifies a diagnostic class. Ranges are reserved per phase.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (reserved; the lexer never reports, bad bytes surface as
	// Invalid tokens the parser rejects).
	LexInfo Code = 1000

	// Syntactic.
	SynInfo          Code = 2000
	SynExpectedToken Code = 2001
	SynExpectedExpr  Code = 2002
	SynBadNumber     Code = 2003

	// Semantic.
	SemaInfo              Code = 3000
	SemaUndeclaredCall    Code = 3001
	SemaNotAFunction      Code = 3002
	SemaArityMismatch     Code = 3003
	SemaFnRedefinition    Code = 3004
	SemaParamRedefinition Code = 3005
	SemaNotAssignable     Code = 3006
	SemaMissingReturn     Code = 3007
	SemaLastNotReturn     Code = 3008

	// Lowering / verifier (internal; should never reach users).
	LowerInfo Code = 4000
)

// ID returns the stable textual form, e.g. "MUA3001".
func (c Code) ID() string {
	return fmt.Sprintf("MUA%04d", uint16(c))
}
