package lexer

import (
	"slate/internal/source"
	"slate/internal/token"
)

// Lexer выдаёт по одному значимому токену за вызов Next, пропуская
// пробелы между токенами. Буфер опережения — ровно два слота (FIFO):
// Peek материализует первый, Peek2 — второй. Next сначала осушает буфер.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     [2]*token.Token
	hasError bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После конца входа всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look[0] != nil {
		tok := *lx.look[0]
		lx.look[0] = lx.look[1]
		lx.look[1] = nil
		return tok
	}
	return lx.scan()
}

// Peek возвращает следующий токен, не потребляя его.
// Повторные вызовы без Next возвращают тот же токен.
func (lx *Lexer) Peek() token.Token {
	if lx.look[0] != nil {
		return *lx.look[0]
	}
	t := lx.scan()
	lx.look[0] = &t
	return t
}

// Peek2 возвращает токен через один, не потребляя ничего.
func (lx *Lexer) Peek2() token.Token {
	if lx.look[1] != nil {
		return *lx.look[1]
	}
	if lx.look[0] == nil {
		t := lx.scan()
		lx.look[0] = &t
	}
	t := lx.scan()
	lx.look[1] = &t
	return t
}

// HasError reports whether any lexical error occurred so far. The flag is
// sticky: once set it stays set for the lifetime of the lexer.
func (lx *Lexer) HasError() bool {
	return lx.hasError
}

// File returns the file this lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// EmptySpan возвращает пустой span на текущей позиции курсора.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scan пропускает пробелы и читает один токен из курсора.
func (lx *Lexer) scan() token.Token {
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	switch ch := lx.cursor.Peek(); {
	case isSpecialByte(ch):
		return lx.scanOperatorOrPunct()
	case ch == '"' || ch == '\'':
		return lx.scanQuoted()
	default:
		return lx.scanWord()
	}
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// isSpecialByte — символы из таблицы пунктуации/операторов.
// Они же терминируют жадное сканирование слова.
func isSpecialByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '&', '|', '!',
		'=', ':', ';', '.', ',', '{', '}', '(', ')':
		return true
	default:
		return false
	}
}
