package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{KwStruct, "KwStruct"},
		{IntLit, "IntLit"},
		{PlusAssign, "PlusAssign"},
		{Arrow, "Arrow"},
		{Semicolon, "Semicolon"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Ident, "an identifier"},
		{IntLit, "a number"},
		{Plus, "an operator"},
		{LBrace, "'{'"},
		{RParen, "')'"},
		{EOF, "end of input"},
	}
	for _, tt := range tests {
		if got := tt.kind.Describe(); got != tt.want {
			t.Errorf("%v.Describe(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if kw, ok := LookupKeyword("struct"); !ok || kw != KwStruct {
		t.Errorf("struct: got %v, %v", kw, ok)
	}
	if kw, ok := LookupKeyword("ret"); !ok || kw != KwRet {
		t.Errorf("ret: got %v, %v", kw, ok)
	}
	if _, ok := LookupKeyword("structure"); ok {
		t.Error("structure must not be a keyword")
	}
}

func TestClassifiers(t *testing.T) {
	if !(Token{Kind: Plus}).IsBinaryOp() || !(Token{Kind: Bang}).IsBinaryOp() {
		t.Error("Plus and Bang are binary operator characters")
	}
	if (Token{Kind: Assign}).IsBinaryOp() {
		t.Error("Assign is not a binary operator")
	}
	if !(Token{Kind: PlusAssign}).IsOpAssign() {
		t.Error("PlusAssign is a compound assign")
	}
	if !(Token{Kind: CharLit}).IsLiteral() {
		t.Error("CharLit is a literal")
	}
	if !(Token{Kind: KwRet}).IsKeyword() {
		t.Error("KwRet is a keyword")
	}
}
