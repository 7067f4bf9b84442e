package symbols

import (
	"mua/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	// SymbolParam is a function parameter.
	SymbolParam
	// SymbolFunction is a top-level function; the only kind that owns a
	// child scope.
	SymbolFunction
	// SymbolVar is a local variable, implicitly declared by its first
	// appearance inside a function body.
	SymbolVar
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolParam:
		return "Param"
	case SymbolFunction:
		return "Function"
	case SymbolVar:
		return "Var"
	default:
		return "Invalid"
	}
}

// Symbol describes a named entity available in a scope.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Span  source.Span // defining range: where the name was spelled
	Owner ScopeID     // scope the symbol was declared in
	Child ScopeID     // function body scope; NoScopeID for non-functions
}
