package token

import (
	"slate/internal/source"
)

// Token represents a single source token with its location.
// Text holds the decoded text for identifiers and literals (escape
// sequences already processed); Value holds the parsed integer for IntLit.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value uint64
}

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the token is one of the binary operator
// characters (including the non-combinable 'not' marker).
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Amp, Pipe, Bang:
		return true
	default:
		return false
	}
}

// IsOpAssign reports whether the token is a compound operator-equals form.
func (t Token) IsOpAssign() bool {
	switch t.Kind {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwRet:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
