// Package token defines lexical token kinds for the slate front end.
// Invariants:
//   - Token.Span is a half-open byte range into the original source.
//   - Spans of a token stream are non-decreasing in Start and never overlap.
//   - Token.Text for string/char literals is the decoded text, not the
//     raw source slice; for everything else it mirrors the source.
//   - Type names are identifiers; the lexer knows only 'struct' and 'ret'.
package token
