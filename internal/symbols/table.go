package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"mua/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates all scopes and symbols of one analysis, slice-backed
// with index 0 reserved as the invalid sentinel. Parent links are plain
// IDs, never followed for ownership.
type Table struct {
	scopes  []Scope
	symbols []Symbol
	Strings *source.Interner
}

// NewTable builds a fresh table. If strings is nil, a fresh interner is
// allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	if h.Scopes == 0 {
		h.Scopes = 32
	}
	if h.Symbols == 0 {
		h.Symbols = 64
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		scopes:  make([]Scope, 1, h.Scopes+1),
		symbols: make([]Symbol, 1, h.Symbols+1),
		Strings: strings,
	}
}

// NewScope allocates a scope under parent (NoScopeID for the global scope).
func (t *Table) NewScope(parent ScopeID, owner SymbolID) ScopeID {
	value, err := safecast.Conv[uint32](len(t.scopes))
	if err != nil {
		panic(fmt.Errorf("scope arena overflow: %w", err))
	}
	id := ScopeID(value)
	t.scopes = append(t.scopes, Scope{
		Parent: parent,
		Owner:  owner,
		Names:  make(map[source.StringID]SymbolID),
	})
	return id
}

// Scope returns the scope pointer, or nil for an invalid ID.
func (t *Table) Scope(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(t.scopes) {
		return nil
	}
	return &t.scopes[id]
}

// Symbol returns the symbol pointer, or nil for an invalid ID.
func (t *Table) Symbol(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.symbols) {
		return nil
	}
	return &t.symbols[id]
}

// NumScopes reports the number of allocated scopes.
func (t *Table) NumScopes() int { return len(t.scopes) - 1 }

// NumSymbols reports the number of allocated symbols.
func (t *Table) NumSymbols() int { return len(t.symbols) - 1 }

// Lookup resolves name from scope through its ancestors toward the root.
func (t *Table) Lookup(scope ScopeID, name source.StringID) SymbolID {
	for scope.IsValid() {
		s := t.Scope(scope)
		if sym, ok := s.Names[name]; ok {
			return sym
		}
		scope = s.Parent
	}
	return NoSymbolID
}

// Declare inserts a symbol into scope unless the name already resolves
// from scope or any ancestor. It returns the existing symbol and false on
// a conflict, mirroring the declare-or-report pattern of the analyzer.
func (t *Table) Declare(scope ScopeID, kind SymbolKind, name source.StringID, span source.Span) (SymbolID, bool) {
	if existing := t.Lookup(scope, name); existing.IsValid() {
		return existing, false
	}

	value, err := safecast.Conv[uint32](len(t.symbols))
	if err != nil {
		panic(fmt.Errorf("symbol arena overflow: %w", err))
	}
	id := SymbolID(value)
	t.symbols = append(t.symbols, Symbol{
		Name:  name,
		Kind:  kind,
		Span:  span,
		Owner: scope,
	})

	s := t.Scope(scope)
	s.Names[name] = id
	s.Symbols = append(s.Symbols, id)
	return id, true
}

// AttachChild records the body scope a function symbol owns.
func (t *Table) AttachChild(sym SymbolID, child ScopeID) {
	t.Symbol(sym).Child = child
}

// SymbolsOfKind returns the scope's symbols of one kind in declaration
// order.
func (t *Table) SymbolsOfKind(scope ScopeID, kind SymbolKind) []SymbolID {
	s := t.Scope(scope)
	out := make([]SymbolID, 0, len(s.Symbols))
	for _, id := range s.Symbols {
		if t.Symbol(id).Kind == kind {
			out = append(out, id)
		}
	}
	return out
}
