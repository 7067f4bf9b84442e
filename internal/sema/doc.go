// Package sema implements the semantic analyzer: a single enter/exit walk
// over the AST that populates the symbol table, resolves every name, and
// enforces the call, assignment, and terminal-return rules of the language.
package sema
