// Package lower translates the analyzed AST into the numeric SSA IR,
// materializing every parameter and local variable as an entry-block stack
// slot and expressions as loads, stores, float operations, and calls.
package lower
