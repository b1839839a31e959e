package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		off      uint32
		wantLine uint32
		wantCol  uint32
	}{
		{"empty input", "", 0, 1, 1},
		{"first byte", "a", 0, 1, 1},
		{"end of single line", "a", 1, 1, 2},
		{"before newline", "ab\ncd", 2, 1, 3},
		{"after newline", "ab\ncd", 3, 2, 1},
		{"second line middle", "ab\ncd", 4, 2, 2},
		{"end of input", "ab\ncd", 5, 2, 3},
		{"third line", "a\nb\nc", 4, 3, 1},
		// конец входа после завершающего \n прижимается к последней строке
		{"trailing newline end", "a\n", 2, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			id := fs.AddVirtual("test.sl", []byte(tt.content))
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Errorf("offset %d in %q: got %d:%d, want %d:%d",
					tt.off, tt.content, start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestResolveSpanEnds(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sl", []byte("ab\ncd\n"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start: got %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end: got %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.sl")
	content := []byte{0xEF, 0xBB, 0xBF, 'a', '\r', '\n', 'b'}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Errorf("normalized content: got %q, want %q", f.Content, "a\nb")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestEOISpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sl", []byte("abc"))
	sp := fs.Get(id).EOISpan()
	if !sp.Empty() || sp.Start != 3 {
		t.Errorf("got span %v, want empty span at offset 3", sp)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.sl", []byte("first\nsecond\nthird")))
	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGetLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.sl", []byte("old"))
	id2 := fs.AddVirtual("a.sl", []byte("new"))

	got, ok := fs.GetLatest("a.sl")
	if !ok {
		t.Fatal("path not found")
	}
	if got != id2 {
		t.Errorf("got id %d, want the latest %d", got, id2)
	}
	if string(fs.Get(got).Content) != "new" {
		t.Error("latest id does not point at the newest content")
	}
}
