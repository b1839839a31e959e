package parser_test

import (
	"strings"
	"testing"

	"slate/internal/diag"
)

// Каждый испорченный вход даёт ровно одну диагностику: правило, заметившее
// ошибку, само ресинхронизируется и не порождает вторичных жалоб.
func TestSingleDiagnosticPerError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"struct without body", "a = struct"},
		{"struct without open brace", "a = struct }"},
		{"struct without close brace", "a = struct {"},
		{"struct with bare semicolon", "a = struct { ; a = 10;"},
		{"struct field without type", "a = struct {whatever: 10}"},
		{"struct field without name", "a = struct {10: 10}"},
		{"fn with close paren first", "a = ) {}"},
		{"fn without close paren", "a = ( {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseText(t, tt.src)
			if got := bag.ErrorCount(); got != 1 {
				t.Errorf("parse %q: got %d errors, want exactly 1:\n%v",
					tt.src, got, bag.Items())
			}
		})
	}
}

// Ресинхронизация не мешает разбору следующих statement'ов: после
// испорченной конструкции валидный хвост разбирается без новых ошибок.
func TestRecoveryDoesNotCascade(t *testing.T) {
	tests := []string{
		"a = struct\nb = 5;",
		"a = struct }\nb = 5;",
		"a = struct { ; a = 10;\nb = 5;",
		"a = ) {}\nb = 5;",
		"a = ( {}\nb = 5;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			exprs, bag := parseText(t, src)
			if got := bag.ErrorCount(); got != 1 {
				t.Fatalf("parse %q: got %d errors, want 1:\n%v", src, got, bag.Items())
			}
			if got := dump(exprs[len(exprs)-1]); got != "(= b 5)" {
				t.Errorf("parse %q: trailing statement got %s, want (= b 5)", src, got)
			}
		})
	}
}

func TestMismatchedBracesAtEOF(t *testing.T) {
	_, bag := parseText(t, "a = P {10 (")
	var found bool
	for _, d := range bag.Items() {
		if d.Code == diag.SynMismatchedBraces {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a mismatched-braces diagnostic, got:\n%v", bag.Items())
	}
}

func TestConstructFieldRecovery(t *testing.T) {
	// испорченное поле пропускается до запятой, остальные разбираются
	exprs, bag := parseText(t, "p = Point { .x 1, .y = 2 };")
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1:\n%v", got, bag.Items())
	}
	if got := dumpAll(exprs); got != "(= p (construct Point .y=2))" {
		t.Errorf("got %s, want (= p (construct Point .y=2))", got)
	}
}

// Все рекурсивные формы упираются в лимит глубины ровно одной
// диагностикой: скобки, конструирования и вложенные тела функций.
func TestDeepNestingGuard(t *testing.T) {
	depth := 300
	tests := []struct {
		name string
		src  string
	}{
		{"parens", strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)},
		{"constructs", "a = " + strings.Repeat("P { .x = ", depth) + "1" + strings.Repeat(" }", depth) + ";"},
		{"fn bodies", strings.Repeat("f = () { ", depth) + strings.Repeat("} ", depth)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseText(t, tt.src)
			if got := bag.ErrorCount(); got != 1 {
				t.Fatalf("got %d errors, want 1:\n%v", got, bag.Items())
			}
			if bag.Items()[0].Code != diag.SynTooDeep {
				t.Errorf("got code %v, want SynTooDeep", bag.Items()[0].Code)
			}
		})
	}
}

// Переглубокая вложенность, оборванная концом входа, тоже завершается
// диагностикой, а не раскруткой стека.
func TestDeepNestingUnclosedAtEOF(t *testing.T) {
	src := "a = " + strings.Repeat("P { .x = ", 300) + "1"
	_, bag := parseText(t, src)
	var found bool
	for _, d := range bag.Items() {
		if d.Code == diag.SynTooDeep {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a too-deep diagnostic, got:\n%v", bag.Items())
	}
}

func TestLexicalErrorSurfaces(t *testing.T) {
	_, bag := parseText(t, "x = \"abc;")
	if !bag.HasErrors() {
		t.Fatal("expected a lexical diagnostic for the unterminated string")
	}
}
