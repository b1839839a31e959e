package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"slate/internal/source"
)

// Emitter streams formatted diagnostics to a writer as they are reported.
// Each diagnostic renders as two lines:
//
//	{severity}: {label}
//	  --> {file}:{line}:{column}
//
// The writer is pluggable: stderr in production, a bytes.Buffer under test.
// Emitter implements Reporter, so phases can stream straight through it.
type Emitter struct {
	fs *source.FileSet
	w  io.Writer

	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	arrowColor *color.Color
	locColor   *color.Color
}

// NewEmitter создаёт Emitter поверх набора файлов и писателя.
// colorize=false полностью отключает ANSI-коды (для тестов и пайпов).
func NewEmitter(fs *source.FileSet, w io.Writer, colorize bool) *Emitter {
	e := &Emitter{
		fs:         fs,
		w:          w,
		infoColor:  color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed),
		arrowColor: color.New(color.FgCyan),
		locColor:   color.New(color.FgBlue),
	}
	if !colorize {
		e.infoColor.DisableColor()
		e.warnColor.DisableColor()
		e.errorColor.DisableColor()
		e.arrowColor.DisableColor()
		e.locColor.DisableColor()
	}
	return e
}

func (e *Emitter) sevColor(sev Severity) *color.Color {
	switch sev {
	case SevWarning:
		return e.warnColor
	case SevError:
		return e.errorColor
	default:
		return e.infoColor
	}
}

// Report implements Reporter by formatting the diagnostic immediately.
func (e *Emitter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	e.write(sev, msg, primary)
	for _, n := range notes {
		e.write(SevInfo, n.Msg, n.Span)
	}
}

func (e *Emitter) write(sev Severity, label string, sp source.Span) {
	start, _ := e.fs.Resolve(sp)
	path := e.fs.Get(sp.File).Path
	fmt.Fprintf(e.w, "%s%s\n", e.sevColor(sev).Sprintf("%s: ", sev), label)
	fmt.Fprintf(e.w, "  %s%s\n",
		e.arrowColor.Sprint("--> "),
		e.locColor.Sprintf("%s:%d:%d", path, start.Line, start.Col))
}

// Emit — незавершённая диагностика в builder-стиле.
type Emit struct {
	e     *Emitter
	sev   Severity
	label string
	span  source.Span
}

// Info starts an informational diagnostic.
func (e *Emitter) Info() *Emit { return &Emit{e: e, sev: SevInfo} }

// Warning starts a warning diagnostic.
func (e *Emitter) Warning() *Emit { return &Emit{e: e, sev: SevWarning} }

// Error starts an error diagnostic.
func (e *Emitter) Error() *Emit { return &Emit{e: e, sev: SevError} }

// WithLabel sets the human-readable message.
func (m *Emit) WithLabel(label string) *Emit {
	m.label = label
	return m
}

// WithSpan sets the primary span.
func (m *Emit) WithSpan(sp source.Span) *Emit {
	m.span = sp
	return m
}

// WithEOISpan points the diagnostic at the end of the given file.
func (m *Emit) WithEOISpan(id source.FileID) *Emit {
	m.span = m.e.fs.Get(id).EOISpan()
	return m
}

// Emit writes the diagnostic to the emitter's sink.
func (m *Emit) Emit() {
	m.e.write(m.sev, m.label, m.span)
}
