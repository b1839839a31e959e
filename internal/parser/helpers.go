package parser

import (
	"slices"
	"strings"

	"slate/internal/ast"
	"slate/internal/diag"
	"slate/internal/source"
	"slate/internal/token"
)

// peek возвращает следующий токен, не потребляя его.
func (p *Parser) peek() token.Token {
	t := p.lx.Peek()
	p.syncLexErr()
	return t
}

// peek2 возвращает токен через один (второй слот буфера лексера).
func (p *Parser) peek2() token.Token {
	t := p.lx.Peek2()
	p.syncLexErr()
	return t
}

func (p *Parser) advance() token.Token {
	t := p.lx.Next()
	p.syncLexErr()
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atEOF() bool {
	return p.at(token.EOF)
}

// syncLexErr подтягивает липкий флаг лексера: лексические ошибки тоже
// делают результат разбора ошибочным.
func (p *Parser) syncLexErr() {
	if p.lx.HasError() {
		p.hasError = true
	}
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		p.hasError = true
		p.errCount++
		if p.opts.MaxErrors > 0 && p.errCount > p.opts.MaxErrors {
			return
		}
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

// errEOI репортит ошибку на пустом спане сразу за последним байтом входа.
func (p *Parser) errEOI(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.file.EOISpan(), msg)
}

// expect потребляет следующий токен, если его вид входит в kinds. При
// несовпадении токен НЕ потребляется: репортится ошибка, а ресинхронизация
// остаётся на совести вызывающего правила.
func (p *Parser) expect(kinds ...token.Kind) (token.Token, bool) {
	tok := p.peek()
	if slices.Contains(kinds, tok.Kind) {
		return p.advance(), true
	}
	label := expectLabel(kinds)
	if tok.Kind == token.EOF {
		p.errEOI(diag.SynUnexpectedEOF, label+" but found end of input")
	} else {
		p.errAt(diag.SynUnexpectedToken, tok.Span, label+" but got "+tok.Kind.Describe())
	}
	return tok, false
}

// expectLabel строит часть сообщения вида "expected X, Y or Z".
func expectLabel(kinds []token.Kind) string {
	var sb strings.Builder
	sb.WriteString("expected ")
	for i, k := range kinds {
		switch {
		case i == 0:
		case i == len(kinds)-1:
			sb.WriteString(" or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(k.Describe())
	}
	return sb.String()
}

// parseIdent потребляет идентификатор. what подставляется в сообщение об
// ошибке ("a field name", "a type", ...), code — в диагностику.
func (p *Parser) parseIdent(what string, code diag.Code) (ast.Ident, bool) {
	tok := p.peek()
	if tok.Kind == token.Ident {
		p.advance()
		return ast.NewIdent(tok.Text, tok.Span), true
	}
	if tok.Kind == token.EOF {
		p.errEOI(diag.SynUnexpectedEOF, "expected "+what+" but found end of input")
	} else {
		p.errAt(code, tok.Span, "expected "+what+" but got "+tok.Kind.Describe())
	}
	return ast.Ident{}, false
}

// parseIdentType разбирает пару `name : type` (поле структуры, параметр).
func (p *Parser) parseIdentType() (ast.Field, bool) {
	name, ok := p.parseIdent("an identifier", diag.SynExpectIdentifier)
	if !ok {
		return ast.Field{}, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return ast.Field{}, false
	}
	typ, ok := p.parseIdent("a type", diag.SynExpectType)
	if !ok {
		return ast.Field{}, false
	}
	return ast.Field{Name: name, Type: typ}, true
}
