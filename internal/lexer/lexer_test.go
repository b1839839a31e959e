package lexer_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"slate/internal/diag"
	"slate/internal/lexer"
	"slate/internal/source"
	"slate/internal/token"
)

func newLexer(t *testing.T, text string) (*lexer.Lexer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sl", []byte(text)))
	bag := diag.NewBag(32)
	return lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			"operators", "+ - * / % & | !",
			[]token.Kind{token.Plus, token.Minus, token.Star, token.Slash,
				token.Percent, token.Amp, token.Pipe, token.Bang, token.EOF},
		},
		{
			"compound assigns", "+= -= *= /= %= &= |=",
			[]token.Kind{token.PlusAssign, token.MinusAssign, token.StarAssign,
				token.SlashAssign, token.PercentAssign, token.AmpAssign,
				token.PipeAssign, token.EOF},
		},
		{
			"arrow binds before minus-assign", "-> -= -",
			[]token.Kind{token.Arrow, token.MinusAssign, token.Minus, token.EOF},
		},
		{
			"bang never combines", "!= ! =",
			[]token.Kind{token.Bang, token.Assign, token.Bang, token.Assign, token.EOF},
		},
		{
			"punctuation", "{ } ( ) : ; . , =",
			[]token.Kind{token.LBrace, token.RBrace, token.LParen, token.RParen,
				token.Colon, token.Semicolon, token.Dot, token.Comma, token.Assign, token.EOF},
		},
		{
			"keywords and idents", "struct ret structs retx",
			[]token.Kind{token.KwStruct, token.KwRet, token.Ident, token.Ident, token.EOF},
		},
		{
			"literals", "42 'c' \"str\"",
			[]token.Kind{token.IntLit, token.CharLit, token.StringLit, token.EOF},
		},
		{
			"no spaces needed around specials", "a=b+1;",
			[]token.Kind{token.Ident, token.Assign, token.Ident, token.Plus,
				token.IntLit, token.Semicolon, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := newLexer(t, tt.src)
			got := collectKinds(lx)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
			if bag.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestTokenSpansAndValues(t *testing.T) {
	lx, bag := newLexer(t, "x = 10;")
	want := []token.Token{
		{Kind: token.Ident, Span: source.Span{Start: 0, End: 1}, Text: "x"},
		{Kind: token.Assign, Span: source.Span{Start: 2, End: 3}, Text: "="},
		{Kind: token.IntLit, Span: source.Span{Start: 4, End: 6}, Text: "10", Value: 10},
		{Kind: token.Semicolon, Span: source.Span{Start: 6, End: 7}, Text: ";"},
		{Kind: token.EOF, Span: source.Span{Start: 7, End: 7}},
	}
	var got []token.Token
	for range want {
		got = append(got, lx.Next())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := newLexer(t, "x")
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("got %v after end of input, want EOF", tok.Kind)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"backslash", `"a\\b"`, `a\b`},
		{"nul", `"a\0b"`, "a\x00b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := newLexer(t, tt.src)
			tok := lx.Next()
			if tok.Kind != token.StringLit {
				t.Fatalf("got kind %v, want StringLit", tok.Kind)
			}
			if tok.Text != tt.want {
				t.Errorf("decoded text: got %q, want %q", tok.Text, tt.want)
			}
			if bag.Len() != 0 {
				t.Errorf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestInvalidEscapeContinues(t *testing.T) {
	lx, bag := newLexer(t, `"a\qb"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("got kind %v, want StringLit", tok.Kind)
	}
	// битый escape ничего не подставляет, но лексинг продолжается
	if tok.Text != "ab" {
		t.Errorf("decoded text: got %q, want %q", tok.Text, "ab")
	}
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1: %v", got, bag.Items())
	}
	if bag.Items()[0].Code != diag.LexInvalidEscape {
		t.Errorf("got code %v, want LexInvalidEscape", bag.Items()[0].Code)
	}
	if !lx.HasError() {
		t.Error("sticky error flag not set")
	}
}

func TestBrokenLiteralsNeverFatal(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind token.Kind
		wantCode diag.Code
	}{
		{"unterminated string", `"abc`, token.StringLit, diag.LexUnterminatedString},
		{"unterminated char", `'a`, token.CharLit, diag.LexUnterminatedChar},
		{"char too long", `'ab'`, token.CharLit, diag.LexInvalidCharLit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := newLexer(t, tt.src)
			tok := lx.Next()
			if tok.Kind != tt.wantKind {
				t.Errorf("got kind %v, want %v", tok.Kind, tt.wantKind)
			}
			if got := bag.ErrorCount(); got != 1 {
				t.Fatalf("got %d errors, want 1: %v", got, bag.Items())
			}
			if bag.Items()[0].Code != tt.wantCode {
				t.Errorf("got code %v, want %v", bag.Items()[0].Code, tt.wantCode)
			}
			// после битого литерала лексер продолжает выдавать токены
			if tok := lx.Next(); tok.Kind != token.EOF {
				t.Errorf("got %v after literal, want EOF", tok.Kind)
			}
			if !lx.HasError() {
				t.Error("sticky error flag not set")
			}
		})
	}
}

func TestCharLengthInRunes(t *testing.T) {
	// многобайтовая руна — один символ, не ошибка
	lx, bag := newLexer(t, "'я'")
	tok := lx.Next()
	if tok.Kind != token.CharLit {
		t.Fatalf("got kind %v, want CharLit", tok.Kind)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestIntOverflowSaturates(t *testing.T) {
	lx, bag := newLexer(t, "99999999999999999999999")
	tok := lx.Next()
	if tok.Kind != token.IntLit {
		t.Fatalf("got kind %v, want IntLit", tok.Kind)
	}
	if tok.Value != math.MaxUint64 {
		t.Errorf("got value %d, want MaxUint64", tok.Value)
	}
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1: %v", got, bag.Items())
	}
	if bag.Items()[0].Code != diag.LexIntOverflow {
		t.Errorf("got code %v, want LexIntOverflow", bag.Items()[0].Code)
	}
}

func TestPeekIdempotence(t *testing.T) {
	lx, bag := newLexer(t, "'ab' x")

	first := lx.Peek()
	for i := 0; i < 3; i++ {
		if got := lx.Peek(); got != first {
			t.Fatalf("repeated Peek returned a different token: %v vs %v", got, first)
		}
	}
	// повторные Peek не дублируют диагностику битого литерала
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors after peeks, want 1: %v", got, bag.Items())
	}

	second := lx.Peek2()
	if second.Kind != token.Ident || second.Text != "x" {
		t.Fatalf("Peek2: got %v %q", second.Kind, second.Text)
	}

	// Next выдаёт ровно те токены, что были в буфере
	if got := lx.Next(); got != first {
		t.Errorf("Next after Peek: got %v, want %v", got, first)
	}
	if got := lx.Next(); got != second {
		t.Errorf("Next after Peek2: got %v, want %v", got, second)
	}
	if got := lx.Next(); got.Kind != token.EOF {
		t.Errorf("got %v, want EOF", got.Kind)
	}
	if got := bag.ErrorCount(); got != 1 {
		t.Errorf("got %d errors total, want 1: %v", got, bag.Items())
	}
}
