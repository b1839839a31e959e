package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sl":       "x = 1;",
		"b.sl":       "y = 2 + 3;",
		"broken.sl":  "a = struct",
		"ignored.go": "package ignored",
	})

	fs, results, err := ParseDir(context.Background(), dir, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	if fs.Len() != 3 {
		t.Errorf("loaded %d files, want 3", fs.Len())
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// результаты в отсортированном порядке путей
	for i, wantBase := range []string{"a.sl", "b.sl", "broken.sl"} {
		if got := filepath.Base(results[i].Path); got != wantBase {
			t.Errorf("result %d: got %s, want %s", i, got, wantBase)
		}
	}
	if results[0].Bag.HasErrors() || results[1].Bag.HasErrors() {
		t.Error("clean files must not produce diagnostics")
	}
	if got := results[2].Bag.ErrorCount(); got != 1 {
		t.Errorf("broken.sl: got %d errors, want 1", got)
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := ParseDir(context.Background(), t.TempDir(), 16, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sl": "x = 1;",
		"b.sl": "y = \"oops", // незакрытая строка
	})

	_, results, err := TokenizeDir(context.Background(), dir, 16, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("a.sl: unexpected diagnostics: %v", results[0].Bag.Items())
	}
	if !results[1].Bag.HasErrors() {
		t.Error("b.sl: expected a lexical diagnostic")
	}
	if len(results[0].Tokens) == 0 {
		t.Error("a.sl: no tokens collected")
	}
}
