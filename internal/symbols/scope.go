package symbols

import (
	"mua/internal/source"
)

// Scope models a lexical scope: an insertion-ordered name to symbol
// mapping with a non-owning back-reference to its parent. The global scope
// has no parent and no owner; function scopes are owned by their function
// symbol.
type Scope struct {
	Parent  ScopeID
	Owner   SymbolID // function symbol the scope belongs to; NoSymbolID for global
	Names   map[source.StringID]SymbolID
	Symbols []SymbolID // insertion order
}
