// Package diag defines the diagnostic model shared by the lexer and parser.
//
//   - Diagnostic is the central record: Severity, Code, Message, Primary span.
//   - Reporter is the sink contract producers report through; BagReporter
//     collects into a Bag, Emitter streams formatted text to a writer, and
//     Multi fans out to several sinks.
//   - Producers never hold a shared mutable emitter: each phase receives a
//     Reporter and keeps its own sticky error state.
//
// Rendering of token streams and AST dumps lives in internal/diagfmt.
package diag
