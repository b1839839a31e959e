package lexer

import (
	"strconv"

	"slate/internal/diag"
	"slate/internal/token"
)

// scanWord жадно читает последовательность не-пробельных не-специальных
// символов, затем классифицирует её: все ASCII-цифры → целочисленный
// литерал, иначе ключевое слово из таблицы или идентификатор.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) || isSpecialByte(b) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if isAllDigits(text) {
		value, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			// не влезает в uint64: репортим и насыщаем до максимума
			lx.errLex(diag.LexIntOverflow, sp,
				"integer literal '"+text+"' does not fit in 64 bits")
		}
		return token.Token{Kind: token.IntLit, Span: sp, Text: text, Value: value}
	}

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
