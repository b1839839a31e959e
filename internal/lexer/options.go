package lexer

import (
	"slate/internal/diag"
	"slate/internal/source"
)

// Options настраивают лексер. Reporter может быть nil — тогда ошибки
// не репортятся (но лексер продолжает работу и помнит sticky-флаг).
type Options struct {
	Reporter diag.Reporter
}

// errLex репортует лексическую ошибку и взводит sticky-флаг.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.hasError = true
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
