package parser_test

import (
	"testing"
)

func TestBinaryPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"1 + 2 * 3 - 4", "(- (+ 1 (* 2 3)) 4)"},
		{"2 * 3 % 4", "(% (* 2 3) 4)"},
		{"1 + 2 & 3 + 4", "(& (+ 1 2) (+ 3 4))"},
		{"1 | 2 & 3", "(& (| 1 2) 3)"},
		{"a & b | c", "(| (& a b) c)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1 * (2 + 3)", "(* 1 (+ 2 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			exprs, bag := parseText(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
			if len(exprs) != 1 {
				t.Fatalf("got %d expressions, want 1", len(exprs))
			}
			if got := dump(exprs[0]); got != tt.want {
				t.Errorf("parse %q:\n got  %s\n want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestUnaryMinus(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"-5", "(neg 5)"},
		{"--5", "(neg (neg 5))"},
		{"---5", "(neg (neg (neg 5)))"},
		{"-5 + 3", "(+ (neg 5) 3)"},
		{"1 * -2", "(* 1 (neg 2))"},
		{"-(1 + 2)", "(neg (+ 1 2))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			exprs, bag := parseText(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
			if got := dump(exprs[0]); got != tt.want {
				t.Errorf("parse %q: got %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestMissingOperand(t *testing.T) {
	exprs, bag := parseText(t, "1 +")
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1: %v", got, bag.Items())
	}
	if got := dump(exprs[0]); got != "(+ 1 <error>)" {
		t.Errorf("got %s, want (+ 1 <error>)", got)
	}
}

func TestUnclosedParen(t *testing.T) {
	// пропущенная ')' в позиции операнда не теряет значение внутренностей
	exprs, bag := parseText(t, "x = 1 + (2 + 3;")
	if got := bag.ErrorCount(); got != 1 {
		t.Fatalf("got %d errors, want 1: %v", got, bag.Items())
	}
	if got := dumpAll(exprs); got != "(= x (+ 1 (+ 2 3)))" {
		t.Errorf("got %s, want (= x (+ 1 (+ 2 3)))", got)
	}
}
