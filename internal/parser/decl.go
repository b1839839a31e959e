package parser

import (
	"slate/internal/ast"
	"slate/internal/diag"
	"slate/internal/token"
)

// parseAssign разбирает правую часть после уже увиденного '='. Формы
// `struct {...}` и `(...) ...` допустимы только сразу за `name =` и дают
// объявление типа или функции; всё остальное — обычное присваивание.
func (p *Parser) parseAssign(target ast.Expr) ast.Expr {
	equals := p.advance() // '='

	tok := p.peek()
	if tok.Kind == token.EOF {
		p.errEOI(diag.SynExpectExpression, "expected an expression")
		return &ast.AssignExpr{Target: target, Value: &ast.ErrorExpr{}}
	}

	var name ast.Ident
	if tok.Kind == token.KwStruct || tok.Kind == token.LParen {
		if v, isVar := target.(*ast.VarExpr); isVar {
			name = ast.NewIdent(v.Name, v.Span())
		} else {
			// объявление требует простого имени слева; имя остаётся
			// пустым, разбор правой части продолжается
			p.errAt(diag.SynExpectIdentifier, equals.Span,
				"expected an identifier on the left of the declaration")
		}
	}

	switch tok.Kind {
	case token.KwStruct:
		return p.parseStructDecl(name)
	case token.LParen:
		return p.parseFnDecl(name, target)
	case token.RParen:
		return p.parseBadFnDecl(tok)
	default:
		value := p.parseAtom()
		p.expect(token.Semicolon)
		return &ast.AssignExpr{Target: target, Value: value}
	}
}

// parseStructDecl разбирает `struct { name: type, ... }` после `name =`.
// Токен struct ещё не съеден.
func (p *Parser) parseStructDecl(name ast.Ident) ast.Expr {
	p.advance() // 'struct'

	if _, ok := p.expect(token.LBrace); !ok {
		// терпимо, если дальше всё равно похоже на тело: '}' или поле
		tok := p.peek()
		if tok.Kind != token.RBrace && tok.Kind != token.Ident {
			return &ast.ErrorExpr{}
		}
		if tok.Kind == token.Ident && p.peek2().Kind != token.Colon {
			return &ast.ErrorExpr{}
		}
	}

	var fields []ast.Field
	closed := false
	for !p.atEOF() {
		if p.at(token.RBrace) {
			p.advance()
			closed = true
			break
		}
		field, ok := p.parseIdentType()
		if !ok {
			p.skipUntil(syncPoint{kind: token.Semicolon, mode: consumeAndStop})
			return &ast.ErrorExpr{}
		}
		fields = append(fields, field)

		sep, ok := p.expect(token.Comma, token.RBrace)
		if !ok {
			return &ast.StructDecl{Name: name, Fields: fields}
		}
		if sep.Kind == token.RBrace {
			closed = true
			break
		}
	}
	if !closed {
		p.errEOI(diag.SynUnclosedBrace, "expected '}' but found end of input")
	}
	return &ast.StructDecl{Name: name, Fields: fields}
}

// parseFnDecl разбирает `( params ) -> type { body }` после `name =`.
// Тело из `;` даёт forward-объявление (Body == nil), `{}` — определение
// с пустым телом. Открывающая скобка ещё не съедена.
func (p *Parser) parseFnDecl(name ast.Ident, target ast.Expr) ast.Expr {
	p.advance() // '('

	skipSignature := false
	if tok := p.peek(); tok.Kind == token.LBrace {
		// `( {` — сигнатуры нет, сразу тело
		p.errAt(diag.SynUnexpectedToken, tok.Span, "expected ')' but got "+tok.Kind.Describe())
		skipSignature = true
	}

	var params []ast.Field
	if !skipSignature {
		for !p.atEOF() {
			if p.at(token.RParen) {
				p.advance()
				break
			}
			param, ok := p.parseIdentType()
			if !ok {
				return &ast.ErrorExpr{}
			}
			params = append(params, param)

			sep, ok := p.expect(token.Comma, token.RParen)
			if ok {
				if sep.Kind == token.RParen {
					break
				}
				continue
			}
			// пропущенная запятая перед очередным параметром терпима
			if !p.peek().IsIdent() {
				break
			}
		}
	}

	var retType ast.Ident
	if p.at(token.Arrow) {
		p.advance()
		typ, ok := p.parseIdent("a type", diag.SynExpectType)
		if !ok {
			if !p.at(token.Comma) {
				return &ast.AssignExpr{Target: target, Value: &ast.ErrorExpr{}}
			}
			// тип остаётся пустым, терминатор ещё впереди
		} else {
			retType = typ
		}
	}

	sep, ok := p.expect(token.LBrace, token.Semicolon)
	if !ok || sep.Kind == token.Semicolon {
		return &ast.FnDecl{Name: name, Params: params, RetType: retType}
	}

	// тело — такая же рекурсивная форма, как скобки и конструирование:
	// вложенные определения идут через общий счётчик глубины
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		if !p.depthBlown {
			p.depthBlown = true
			p.errAt(diag.SynTooDeep, sep.Span, "expression nesting is too deep")
		}
		p.skipUntil(syncPoint{kind: token.RBrace, mode: consumeAndStop})
		return &ast.FnDecl{Name: name, Params: params, RetType: retType, Body: &ast.Block{}}
	}

	body := &ast.Block{}
	for !p.atEOF() && !p.at(token.RBrace) {
		body.Exprs = append(body.Exprs, p.parseExpression())
	}
	if p.atEOF() && p.depthBlown {
		return &ast.FnDecl{Name: name, Params: params, RetType: retType, Body: body}
	}
	p.expect(token.RBrace)
	return &ast.FnDecl{Name: name, Params: params, RetType: retType, Body: body}
}

// parseBadFnDecl обрабатывает `name = )` — закрывающую скобку на месте
// открывающей. Возможное тело пропускается целиком, чтобы его содержимое
// не породило каскад вторичных ошибок.
func (p *Parser) parseBadFnDecl(tok token.Token) ast.Expr {
	p.advance() // ')'
	p.errAt(diag.SynUnexpectedToken, tok.Span, "expected '(' but got "+tok.Kind.Describe())

	sep, ok := p.expect(token.Semicolon, token.LBrace)
	if ok && sep.Kind == token.Semicolon {
		return &ast.ErrorExpr{}
	}
	p.skipUntil(syncPoint{kind: token.RBrace, mode: consumeAndStop})
	return &ast.ErrorExpr{}
}

// parseVarDecl разбирает `name : type` с необязательным `= atom` после
// уже разобранного имени. Двоеточие ещё не съедено.
func (p *Parser) parseVarDecl(name ast.Ident) ast.Expr {
	p.advance() // ':'
	typ, ok := p.parseIdent("a type", diag.SynExpectType)
	if !ok {
		return &ast.ErrorExpr{}
	}

	sep, ok := p.expect(token.Assign, token.Semicolon)
	if !ok || sep.Kind == token.Semicolon {
		return &ast.VarDecl{Name: name, Type: typ}
	}

	value := p.parseAtom()
	p.expect(token.Semicolon)
	return &ast.VarDecl{Name: name, Type: typ, Value: value}
}
