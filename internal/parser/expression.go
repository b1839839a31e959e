package parser

import (
	"slate/internal/ast"
	"slate/internal/diag"
	"slate/internal/token"
)

// maxExprDepth ограничивает вложенность рекурсивных форм — скобок,
// конструирований и тел функций — чтобы разбор враждебного входа не
// взорвал стек. Каждая форма инкрементирует общий счётчик p.depth.
const maxExprDepth = 256

// parseExpression разбирает одно верхнеуровневое выражение (statement).
// Диспатч по токену после первичного выражения: бинарный оператор уходит
// в прецедентный разбор, '=' — в присваивание, ':' — в объявление
// переменной, ';' потребляется, любой другой хвостовой токен завершает
// выражение как есть.
func (p *Parser) parseExpression() ast.Expr {
	if p.at(token.KwRet) {
		return p.parseRet()
	}

	primary, ok := p.parsePrimary()
	if !ok {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.errEOI(diag.SynUnexpectedEOF, "expected a primary expression but found end of input")
			return &ast.ErrorExpr{}
		}
		p.advance()
		p.errAt(diag.SynUnexpectedToken, tok.Span,
			"expected a primary expression but got "+tok.Kind.Describe())
		return &ast.ErrorExpr{}
	}

	tok := p.peek()
	if _, isBin := binaryPrec(tok.Kind); isBin {
		expr := p.parseBinExpr(primary, 0)
		if p.at(token.Semicolon) {
			p.advance()
		}
		return expr
	}

	switch tok.Kind {
	case token.Assign:
		return p.parseAssign(primary)
	case token.Colon:
		if v, isVar := primary.(*ast.VarExpr); isVar {
			return p.parseVarDecl(ast.NewIdent(v.Name, v.Span()))
		}
		p.errAt(diag.SynExpectIdentifier, tok.Span,
			"expected an identifier before ':' but got "+describeExpr(primary))
		p.advance()
		return &ast.ErrorExpr{}
	case token.Semicolon:
		p.advance()
		return primary
	default:
		return primary
	}
}

// parseAtom — выражение в позиции значения: первичное выражение плюс,
// если за ним идёт бинарный оператор, прецедентный хвост. Отсутствие
// первичного выражения здесь — всегда ошибка.
func (p *Parser) parseAtom() ast.Expr {
	primary, ok := p.parsePrimary()
	if !ok {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.errEOI(diag.SynUnexpectedEOF, "expected a primary expression but found end of input")
			return &ast.ErrorExpr{}
		}
		p.advance()
		p.errAt(diag.SynUnexpectedToken, tok.Span,
			"expected a primary expression but got "+tok.Kind.Describe())
		return &ast.ErrorExpr{}
	}
	if _, isBin := binaryPrec(p.peek().Kind); isBin {
		return p.parseBinExpr(primary, 0)
	}
	return primary
}

// parseBinExpr — прецедентное восхождение. Пока следующий оператор не
// слабее minPrec, съедаем его и правый операнд; хвост с более сильным
// оператором докручиваем рекурсивно с порогом opPrec+1, так что равный
// приоритет остаётся лево-ассоциативным.
func (p *Parser) parseBinExpr(lhs ast.Expr, minPrec int) ast.Expr {
	for {
		next := p.peek()
		opPrec, isBin := binaryPrec(next.Kind)
		if !isBin || opPrec < minPrec {
			return lhs
		}
		op := p.advance()

		rhs, ok := p.parsePrimary()
		if !ok {
			// спан сдвигаем за оператор: там ждали операнд
			p.errAt(diag.SynExpectExpression, op.Span.ShiftRight(op.Span.Len()),
				"expected a primary expression after "+op.Kind.Describe())
			rhs = &ast.ErrorExpr{}
		}

		for {
			peekPrec, isBin2 := binaryPrec(p.peek().Kind)
			if !isBin2 || peekPrec <= opPrec {
				break
			}
			rhs = p.parseBinExpr(rhs, opPrec+1)
		}

		lhs = &ast.BinaryExpr{Op: binOpFor(op.Kind), Left: lhs, Right: rhs}
	}
}

// parsePrimary разбирает первичное выражение: литерал, переменную,
// доступ к полю, конструирование структуры или выражение в скобках.
// Ведущие минусы сворачиваются в цепочку унарных отрицаний: --5 это
// Neg(Neg(5)). Возвращает ok=false, если первичного выражения нет;
// диагностика в этом случае остаётся за вызывающим.
func (p *Parser) parsePrimary() (ast.Expr, bool) {
	minus := 0
	for p.at(token.Minus) {
		p.advance()
		minus++
	}

	tok := p.peek()
	var expr ast.Expr
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		expr = ast.NewNumExpr(tok.Value, tok.Span)
	case token.CharLit:
		p.advance()
		expr = ast.NewCharLitExpr(tok.Text, tok.Span)
	case token.StringLit:
		p.advance()
		expr = ast.NewStringLitExpr(tok.Text, tok.Span)
	case token.Ident:
		p.advance()
		name := ast.NewIdent(tok.Text, tok.Span)
		switch p.peek().Kind {
		case token.LBrace:
			expr = p.parseConstruct(name)
		case token.Dot:
			p.advance()
			field, ok := p.parseIdent("a field name", diag.SynExpectIdentifier)
			if !ok {
				return nil, false
			}
			expr = &ast.FieldAccessExpr{Name: name, Field: field}
		default:
			expr = ast.NewVarExpr(tok.Text, tok.Span)
		}
	case token.LParen:
		p.advance()
		expr = p.parseParen(tok)
	default:
		return nil, false
	}

	for i := 0; i < minus; i++ {
		expr = &ast.NegExpr{Operand: expr}
	}
	return expr, true
}

// parseParen разбирает скобочную группу после уже съеденной '('.
// Пропущенная закрывающая скобка репортится, но значение внутренностей
// не теряется.
func (p *Parser) parseParen(open token.Token) ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		if !p.depthBlown {
			p.depthBlown = true
			p.errAt(diag.SynTooDeep, open.Span, "expression nesting is too deep")
		}
		p.skipUntil(syncPoint{kind: token.RParen, mode: consumeAndStop})
		return &ast.ErrorExpr{}
	}

	inner := p.parseAtom()

	next := p.peek()
	switch next.Kind {
	case token.RParen:
		p.advance()
	case token.EOF:
		p.errEOI(diag.SynUnclosedParen, "expected ')' but found end of input")
	default:
		p.errAt(diag.SynUnclosedParen, next.Span, "expected ')' but got "+next.Kind.Describe())
	}
	return inner
}

// parseConstruct разбирает конструирование структуры после имени:
// `{ .field = atom, ... }`. Открывающая скобка ещё не съедена.
// Испорченный элемент списка ресинхронизируется до следующей запятой
// или закрывающей скобки на нулевой глубине.
func (p *Parser) parseConstruct(name ast.Ident) ast.Expr {
	open := p.advance() // '{'
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		if !p.depthBlown {
			p.depthBlown = true
			p.errAt(diag.SynTooDeep, open.Span, "expression nesting is too deep")
		}
		p.skipUntil(syncPoint{kind: token.RBrace, mode: consumeAndStop})
		return &ast.ErrorExpr{}
	}

	var fields []ast.FieldInit
	for !p.at(token.RBrace) && !p.atEOF() {
		field, ok := p.parseConstructField()
		if ok {
			fields = append(fields, field)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		switch p.resyncList(token.Comma, token.RBrace) {
		case recContinue:
			p.advance() // ','
			continue
		case recEOF:
			// несбалансированность уже отрепорчена, '}' не требуем
			return &ast.ConstructExpr{Name: name, Fields: fields}
		case recBreak:
		}
	}
	if p.atEOF() && p.depthBlown {
		// вход оборвался внутри переглубокой вложенности: про неё уже
		// отрепорчено, '}' с каждого уровня раскрутки не требуем
		return &ast.ConstructExpr{Name: name, Fields: fields}
	}
	p.expect(token.RBrace)
	return &ast.ConstructExpr{Name: name, Fields: fields}
}

func (p *Parser) parseConstructField() (ast.FieldInit, bool) {
	if _, ok := p.expect(token.Dot); !ok {
		return ast.FieldInit{}, false
	}
	fname, ok := p.parseIdent("a field name", diag.SynExpectIdentifier)
	if !ok {
		return ast.FieldInit{}, false
	}
	if _, ok := p.expect(token.Assign); !ok {
		return ast.FieldInit{}, false
	}
	value := p.parseAtom()
	return ast.FieldInit{Name: fname, Value: value}, true
}

// parseRet разбирает `ret;` или `ret atom;`.
func (p *Parser) parseRet() ast.Expr {
	p.advance() // 'ret'
	if p.at(token.Semicolon) {
		p.advance()
		return &ast.RetExpr{}
	}
	value := p.parseAtom()
	p.expect(token.Semicolon)
	return &ast.RetExpr{Value: value}
}

// describeExpr — короткое имя вида узла для сообщений об ошибках.
func describeExpr(e ast.Expr) string {
	switch e.(type) {
	case *ast.NumExpr:
		return "a number"
	case *ast.CharLitExpr, *ast.StringLitExpr:
		return "a literal"
	case *ast.FieldAccessExpr:
		return "a field access"
	default:
		return "an expression"
	}
}
