package token_test

import (
	"testing"

	"mua/internal/token"
)

func TestKeywordLookup(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
		ok   bool
	}{
		{"function", token.KwFunction, true},
		{"return", token.KwReturn, true},
		{"end", token.KwEnd, true},
		{"Function", token.Invalid, false},
		{"ends", token.Invalid, false},
		{"", token.Invalid, false},
	}
	for _, tc := range cases {
		k, ok := token.LookupKeyword(tc.text)
		if ok != tc.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			continue
		}
		if ok && k != tc.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tc.text, k, tc.kind)
		}
	}
}

func TestPunctLookup(t *testing.T) {
	for b, want := range map[byte]token.Kind{
		'=': token.Assign,
		',': token.Comma,
		'(': token.LParen,
		')': token.RParen,
		'+': token.Plus,
		'-': token.Minus,
		'*': token.Star,
		'/': token.Slash,
	} {
		k, ok := token.LookupPunct(b)
		if !ok || k != want {
			t.Errorf("LookupPunct(%q) = %v, %v; want %v", b, k, ok, want)
		}
	}
	if _, ok := token.LookupPunct('#'); ok {
		t.Errorf("LookupPunct('#') succeeded")
	}
}

func TestKindSpelling(t *testing.T) {
	if got := token.Plus.String(); got != "+" {
		t.Errorf("Plus.String() = %q", got)
	}
	if got := token.EOF.String(); got != "end of file" {
		t.Errorf("EOF.String() = %q", got)
	}
	if got := token.KwFunction.String(); got != "function" {
		t.Errorf("KwFunction.String() = %q", got)
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(token.Token{Kind: token.KwEnd}).IsKeyword() {
		t.Errorf("KwEnd not recognized as keyword")
	}
	if !(token.Token{Kind: token.Star}).IsBinaryOp() {
		t.Errorf("Star not recognized as binary operator")
	}
	if (token.Token{Kind: token.Comma}).IsBinaryOp() {
		t.Errorf("Comma recognized as binary operator")
	}
	if !(token.Token{Kind: token.Comma}).IsPunct() {
		t.Errorf("Comma not recognized as punctuation")
	}
}
