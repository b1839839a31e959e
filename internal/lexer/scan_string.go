package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"slate/internal/diag"
	"slate/internal/source"
	"slate/internal/token"
)

// scanQuoted читает строковый ('"') или символьный ('\'') литерал.
// Поддерживаются escape-последовательности \n \t \\ \0; любая другая —
// ошибка InvalidEscape, но лексинг продолжается (символ пропускается,
// в текст ничего не подставляется). Незакрытый литерал и символьный
// литерал длиннее одного символа тоже репортятся, но токен всё равно
// выдаётся с уже накопленным текстом: лексер никогда не падает фатально
// на битых литералах.
func (lx *Lexer) scanQuoted() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var text strings.Builder
	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			terminated = true
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			escSpan := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 1}
			switch esc := lx.cursor.Bump(); esc {
			case 'n':
				text.WriteByte('\n')
			case 't':
				text.WriteByte('\t')
			case '\\':
				text.WriteByte('\\')
			case '0':
				text.WriteByte(0)
			default:
				lx.errLex(diag.LexInvalidEscape, escSpan,
					fmt.Sprintf("invalid escape sequence %c", esc))
			}
			continue
		}
		text.WriteByte(lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	isChar := quote == '\''
	kind := token.StringLit
	if isChar {
		kind = token.CharLit
	}

	if !terminated {
		if isChar {
			lx.errLex(diag.LexUnterminatedChar, sp,
				fmt.Sprintf("unterminated char literal '%s'", text.String()))
		} else {
			lx.errLex(diag.LexUnterminatedString, sp,
				fmt.Sprintf("unterminated string literal '%s'", text.String()))
		}
	}

	if isChar && utf8.RuneCountInString(text.String()) > 1 {
		lx.errLex(diag.LexInvalidCharLit, sp,
			fmt.Sprintf("invalid character literal '%s'", text.String()))
	}

	return token.Token{Kind: kind, Span: sp, Text: text.String()}
}
