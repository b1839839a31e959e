package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"slate/internal/diag"
	"slate/internal/diagfmt"
	"slate/internal/source"
)

func TestPrettyFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sl", []byte("x = struct\ny = 2;\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "expected '{' but got an identifier",
		Primary:  source.Span{File: id, Start: 11, End: 12},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "error: expected '{' but got an identifier" {
		t.Errorf("first line: %q", lines[0])
	}
	if lines[1] != "  --> main.sl:2:1" {
		t.Errorf("second line: %q", lines[1])
	}
}

func TestPrettyShowSource(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sl", []byte("a = 10 +\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectExpression,
		Message:  "expected a primary expression after an operator",
		Primary:  source.Span{File: id, Start: 7, End: 8},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowSource: true})

	out := buf.String()
	if !strings.Contains(out, "   | a = 10 +") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "   |        ^") {
		t.Errorf("missing underline:\n%s", out)
	}
}

func TestPrettyBasename(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/deep/main.sl", []byte("x\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynInfo,
		Message:  "just a note",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})

	if !strings.Contains(buf.String(), "  --> main.sl:1:1") {
		t.Errorf("basename path not applied:\n%s", buf.String())
	}
}
