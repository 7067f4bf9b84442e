// Package ir models the numeric SSA intermediate representation: typed
// instructions grouped into basic blocks, blocks into functions, functions
// into a module. Every value has the single 64-bit float scalar type;
// parameters and locals live in entry-block stack slots.
package ir
