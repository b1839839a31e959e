package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexInvalidEscape      Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexInvalidCharLit     Code = 1004
	LexIntOverflow        Code = 1005

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnexpectedEOF    Code = 2002
	SynMismatchedBraces Code = 2003
	SynExpectExpression Code = 2004
	SynExpectIdentifier Code = 2005
	SynExpectType       Code = 2006
	SynUnclosedParen    Code = 2007
	SynUnclosedBrace    Code = 2008
	SynTooDeep          Code = 2009

	// Ввод-вывод
	IOLoadFileError Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown",
	LexInfo:               "lexical note",
	LexInvalidEscape:      "invalid escape sequence",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedChar:   "unterminated character literal",
	LexInvalidCharLit:     "invalid character literal",
	LexIntOverflow:        "integer literal overflow",
	SynInfo:               "syntax note",
	SynUnexpectedToken:    "unexpected token",
	SynUnexpectedEOF:      "unexpected end of input",
	SynMismatchedBraces:   "mismatched braces",
	SynExpectExpression:   "expected expression",
	SynExpectIdentifier:   "expected identifier",
	SynExpectType:         "expected type",
	SynUnclosedParen:      "unclosed parenthesis",
	SynUnclosedBrace:      "unclosed brace",
	SynTooDeep:            "expression too deeply nested",
	IOLoadFileError:       "cannot load file",
}

// ID возвращает стабильный строковый идентификатор кода (LEX1001, SYN2001, ...).
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
