package parser

import (
	"slate/internal/ast"
	"slate/internal/diag"
	"slate/internal/lexer"
	"slate/internal/source"
)

// Options управляет поведением парсера.
type Options struct {
	// Reporter получает все синтаксические диагностики. nil — молча.
	Reporter diag.Reporter
	// MaxErrors ограничивает число ошибок; 0 — без лимита.
	// После достижения лимита ошибки больше не репортятся.
	MaxErrors uint
}

// Parser строит список верхнеуровневых выражений из потока токенов.
// Восстановление после ошибок — panic-mode: правило, заметившее ошибку,
// само ресинхронизируется и подставляет Error-узел; раскрутки вверх нет.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	opts Options

	errCount uint
	hasError bool

	depth      int
	depthBlown bool
}

func New(lx *lexer.Lexer, opts Options) *Parser {
	return &Parser{
		lx:   lx,
		file: lx.File(),
		opts: opts,
	}
}

// Parse разбирает весь вход. Всегда возвращает список узлов: на месте
// неразобранных конструкций стоят Error-узлы, а диагностики уходят в Reporter.
func (p *Parser) Parse() []ast.Expr {
	var exprs []ast.Expr
	for !p.atEOF() {
		exprs = append(exprs, p.parseExpression())
	}
	return exprs
}

// HasError reports whether any syntax or lexical error occurred. The flag
// is sticky and covers errors swallowed by the MaxErrors cap.
func (p *Parser) HasError() bool {
	return p.hasError || p.lx.HasError()
}

// ErrorCount returns the number of reported syntax errors.
func (p *Parser) ErrorCount() uint {
	return p.errCount
}
