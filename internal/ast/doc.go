// Package ast holds the arena-allocated syntax tree for the mua language.
//
// Nodes are split by category (expressions, statements, declarations) with a
// kind+span header in a shared arena and per-kind payload arenas; typed IDs
// reference nodes, with 0 reserved as the invalid sentinel. A Builder
// aggregates the arenas for one parse; Walk drives enter/exit visitors over
// the tree in document order.
package ast
