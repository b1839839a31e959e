package parser

import (
	"slate/internal/diag"
	"slate/internal/token"
)

// Примитивы panic-mode восстановления. Оба сканируют вперёд, считая
// чистую глубину вложенности {} и (); целевые токены распознаются только
// на нулевой глубине, так что вложенные конструкции пропускаются целиком.

type skipMode uint8

const (
	// stopBefore останавливается перед целевым токеном.
	stopBefore skipMode = iota
	// consumeAndStop съедает целевой токен и останавливается за ним.
	consumeAndStop
)

type syncPoint struct {
	kind token.Kind
	mode skipMode
}

// skipUntil пропускает токены до первой из целей на нулевой глубине
// (или до конца входа).
func (p *Parser) skipUntil(targets ...syncPoint) {
	depth := 0
	for !p.atEOF() {
		tok := p.peek()
		if depth == 0 {
			for _, t := range targets {
				if tok.Kind == t.kind {
					if t.mode == consumeAndStop {
						p.advance()
					}
					return
				}
			}
		}
		switch tok.Kind {
		case token.LBrace, token.LParen:
			depth++
		case token.RBrace, token.RParen:
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
}

// listRecovery — исход ресинхронизации списка.
type listRecovery uint8

const (
	// recContinue: стоим на разделителе, можно разбирать следующий элемент.
	recContinue listRecovery = iota
	// recBreak: стоим на терминаторе клаузы.
	recBreak
	// recEOF: вход кончился раньше.
	recEOF
)

// resyncList восстанавливает разбор списка после испорченного элемента:
// пропускает токены до разделителя nextElem или терминатора clauseEnd на
// нулевой глубине. Конец входа при незакрытой вложенности — отдельная
// ошибка о несбалансированных скобках.
func (p *Parser) resyncList(nextElem, clauseEnd token.Kind) listRecovery {
	depth := 0
	for !p.atEOF() {
		tok := p.peek()
		if depth == 0 {
			switch tok.Kind {
			case nextElem:
				return recContinue
			case clauseEnd:
				return recBreak
			}
		}
		switch tok.Kind {
		case token.LBrace, token.LParen:
			depth++
		case token.RBrace, token.RParen:
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
	if depth > 0 {
		p.errEOI(diag.SynMismatchedBraces, "mismatched braces")
	}
	return recEOF
}
