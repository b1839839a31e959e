package lexer

import (
	"slate/internal/token"
)

// Жадность ограниченная: комбинируемый бинарный оператор + '=' даёт
// compound-форму, '-' + '>' даёт стрелку. Всё остальное — один символ.
// '!' не комбинируется ни с чем.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		if lx.cursor.Eat('=') {
			return emit(token.PlusAssign)
		}
		return emit(token.Plus)
	case '-':
		if lx.cursor.Eat('>') {
			return emit(token.Arrow)
		}
		if lx.cursor.Eat('=') {
			return emit(token.MinusAssign)
		}
		return emit(token.Minus)
	case '*':
		if lx.cursor.Eat('=') {
			return emit(token.StarAssign)
		}
		return emit(token.Star)
	case '/':
		if lx.cursor.Eat('=') {
			return emit(token.SlashAssign)
		}
		return emit(token.Slash)
	case '%':
		if lx.cursor.Eat('=') {
			return emit(token.PercentAssign)
		}
		return emit(token.Percent)
	case '&':
		if lx.cursor.Eat('=') {
			return emit(token.AmpAssign)
		}
		return emit(token.Amp)
	case '|':
		if lx.cursor.Eat('=') {
			return emit(token.PipeAssign)
		}
		return emit(token.Pipe)
	case '!':
		return emit(token.Bang)
	case '=':
		return emit(token.Assign)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	default:
		// недостижимо: scan диспатчит сюда только символы таблицы
		return emit(token.Invalid)
	}
}
