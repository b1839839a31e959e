package parser

import (
	"fmt"

	"slate/internal/ast"
	"slate/internal/token"
)

// Уровни приоритета бинарных операторов. Бо́льшее число связывает сильнее.
const (
	precLogical        = 5
	precAdditive       = 10
	precMultiplicative = 20
)

// binaryPrec возвращает приоритет бинарного оператора. '!' бинарного
// приоритета не имеет и сюда не попадает как оператор.
func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Amp, token.Pipe:
		return precLogical, true
	default:
		return 0, false
	}
}

// binOpFor отображает токен оператора в AST-вариант. Незнакомый токен
// здесь — баг парсера, а не ошибка во входе.
func binOpFor(k token.Kind) ast.BinOp {
	switch k {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.Amp:
		return ast.BinAnd
	case token.Pipe:
		return ast.BinOr
	default:
		panic(fmt.Sprintf("parser: token %s is not a binary operator", k))
	}
}
