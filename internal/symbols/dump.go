package symbols

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"mua/internal/source"
)

// Dump writes the stable textual form of a scope tree: one line per scope
// (the global scope is unnamed), then each symbol sorted by its defining
// span; function symbols recurse into their child scope one level deeper.
func Dump(w io.Writer, t *Table, root ScopeID, fs *source.FileSet) {
	dumpScope(w, t, root, fs, 0)
}

func dumpScope(w io.Writer, t *Table, id ScopeID, fs *source.FileSet, indent int) {
	scope := t.Scope(id)
	if scope == nil {
		return
	}

	pad := strings.Repeat("  ", indent)
	if scope.Owner.IsValid() {
		name := t.Strings.MustLookup(t.Symbol(scope.Owner).Name)
		fmt.Fprintf(w, "%s%s : Scope\n", pad, name)
	} else {
		fmt.Fprintf(w, "%s<<unnamed>> : Scope\n", pad)
	}

	syms := make([]SymbolID, len(scope.Symbols))
	copy(syms, scope.Symbols)
	sort.SliceStable(syms, func(i, j int) bool {
		return t.Symbol(syms[i]).Span.Start < t.Symbol(syms[j]).Span.Start
	})

	pad = strings.Repeat("  ", indent+1)
	for _, symID := range syms {
		sym := t.Symbol(symID)
		fmt.Fprintf(w, "%s%s : %s : %s\n", pad, t.Strings.MustLookup(sym.Name), sym.Kind, fs.FormatSpan(sym.Span))
		if sym.Child.IsValid() {
			dumpScope(w, t, sym.Child, fs, indent+2)
		}
	}
}
