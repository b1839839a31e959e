package driver

import (
	"testing"

	"slate/internal/token"
)

func TestParseText(t *testing.T) {
	res := ParseText("test.sl", []byte("x = 1 + 2 * 3;"), 16)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if len(res.Exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(res.Exprs))
	}
}

func TestParseTextCollectsDiagnostics(t *testing.T) {
	res := ParseText("test.sl", []byte("a = struct"), 16)
	if got := res.Bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1: %v", got, res.Bag.Items())
	}
}

func TestTokenizeText(t *testing.T) {
	res := TokenizeText("test.sl", []byte("x = 42;"), 16)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}
