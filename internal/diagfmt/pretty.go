package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"slate/internal/diag"
	"slate/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид, в том же
// двухстрочном формате, что и стримящий Emitter:
//
//	{severity}: {label}
//	  --> {file}:{line}:{column}
//
// Идёт по bag.Items() (ожидается bag.Sort() заранее). ShowSource добавляет
// строку исходника с подчёркиванием ^~~~ по спану.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColors := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgGreen),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed),
	}
	arrowColor := color.New(color.FgCyan)
	locColor := color.New(color.FgBlue)
	markColor := color.New(color.FgRed)
	if !opts.Color {
		for _, c := range sevColors {
			c.DisableColor()
		}
		arrowColor.DisableColor()
		locColor.DisableColor()
		markColor.DisableColor()
	}

	for _, d := range bag.Items() {
		writePretty(w, fs, opts, sevColors[d.Severity], arrowColor, locColor, markColor,
			d.Severity, d.Message, d.Primary)
		for _, n := range d.Notes {
			writePretty(w, fs, opts, sevColors[diag.SevInfo], arrowColor, locColor, markColor,
				diag.SevInfo, n.Msg, n.Span)
		}
	}
}

func writePretty(
	w io.Writer, fs *source.FileSet, opts PrettyOpts,
	sevColor, arrowColor, locColor, markColor *color.Color,
	sev diag.Severity, label string, sp source.Span,
) {
	// диагностики ввода-вывода не привязаны к загруженному файлу
	if int(sp.File) >= fs.Len() {
		fmt.Fprintf(w, "%s%s\n", sevColor.Sprintf("%s: ", sev), label)
		return
	}

	start, _ := fs.Resolve(sp)
	file := fs.Get(sp.File)
	path := opts.PathMode.format(file.Path)

	fmt.Fprintf(w, "%s%s\n", sevColor.Sprintf("%s: ", sev), label)
	fmt.Fprintf(w, "  %s%s\n",
		arrowColor.Sprint("--> "),
		locColor.Sprintf("%s:%d:%d", path, start.Line, start.Col))

	if !opts.ShowSource {
		return
	}
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "   | %s\n", line)
	markLen := int(sp.Len())
	if markLen < 1 {
		markLen = 1
	}
	if rest := len(line) - int(start.Col) + 1; markLen > rest && rest > 0 {
		markLen = rest
	}
	underline := "^" + strings.Repeat("~", markLen-1)
	fmt.Fprintf(w, "   | %s%s\n", strings.Repeat(" ", int(start.Col)-1), markColor.Sprint(underline))
}
