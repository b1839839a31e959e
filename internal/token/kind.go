package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwRet represents the 'ret' keyword.
	KwRet // ret

	// IntLit represents an unsigned integer literal token.
	IntLit
	// CharLit represents a character literal token (decoded text).
	CharLit
	// StringLit represents a string literal token (decoded text).
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Amp represents the logical-and operator token.
	Amp // &
	// Pipe represents the logical-or operator token.
	Pipe // |
	// Bang represents the 'not' marker token. It never combines with '='
	// and carries no binary precedence.
	Bang // !

	// Assign represents the assignment operator token.
	Assign // =
	// PlusAssign represents the compound plus-assign token.
	PlusAssign // +=
	// MinusAssign represents the compound minus-assign token.
	MinusAssign // -=
	// StarAssign represents the compound star-assign token.
	StarAssign // *=
	// SlashAssign represents the compound slash-assign token.
	SlashAssign // /=
	// PercentAssign represents the compound percent-assign token.
	PercentAssign // %=
	// AmpAssign represents the compound and-assign token.
	AmpAssign // &=
	// PipeAssign represents the compound or-assign token.
	PipeAssign // |=

	// Arrow represents the '->' return-type marker.
	Arrow // ->
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	KwStruct:      "KwStruct",
	KwRet:         "KwRet",
	IntLit:        "IntLit",
	CharLit:       "CharLit",
	StringLit:     "StringLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Bang:          "Bang",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	Arrow:         "Arrow",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LParen:        "LParen",
	RParen:        "RParen",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Dot:           "Dot",
	Comma:         "Comma",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Describe returns the human-readable form used inside
// "expected ... but got ..." diagnostics.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "an identifier"
	case KwStruct:
		return "'struct'"
	case KwRet:
		return "'ret'"
	case IntLit:
		return "a number"
	case CharLit:
		return "a character literal"
	case StringLit:
		return "a string literal"
	case Plus, Minus, Star, Slash, Percent, Amp, Pipe, Bang,
		PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign:
		return "an operator"
	case Assign:
		return "'='"
	case Arrow:
		return "'->'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case Dot:
		return "'.'"
	case Comma:
		return "','"
	default:
		return "an invalid token"
	}
}
