// Package token defines the lexical vocabulary of the mua language: token
// kinds, the keyword table, and the Token value the lexer produces.
package token
