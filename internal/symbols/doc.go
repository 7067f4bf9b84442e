// Package symbols holds the scope and symbol model the semantic analyzer
// populates and the lowerer consumes: an arena-backed table of lexical
// scopes with parent back-references and insertion-ordered symbols.
package symbols
