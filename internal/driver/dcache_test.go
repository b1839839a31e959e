package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"slate/internal/diag"
)

func TestDiskCacheRoundtrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := Digest(sha256.Sum256([]byte("content")))
	in := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "main.sl",
		ContentHash: key,
		ErrorCount:  1,
		Diagnostics: []CachedDiagnostic{
			{Severity: uint8(diag.SevError), Code: uint16(diag.SynUnexpectedEOF),
				Start: 10, End: 10, Message: "expected '{' but found end of input"},
		},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("payload not found after Put")
	}
	if out.Path != in.Path || out.ErrorCount != in.ErrorCount {
		t.Errorf("payload mismatch: %+v", out)
	}
	if len(out.Diagnostics) != 1 || out.Diagnostics[0].Message != in.Diagnostics[0].Message {
		t.Errorf("diagnostics mismatch: %+v", out.Diagnostics)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	ok, err := cache.Get(Digest(sha256.Sum256([]byte("missing"))), &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestCheckUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sl")
	if err := os.WriteFile(path, []byte("a = struct"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := Check(path, cache, 16)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Error("first check must not hit the cache")
	}
	if got := first.Bag.ErrorCount(); got != 1 {
		t.Fatalf("first check: got %d errors, want 1", got)
	}

	second, err := Check(path, cache, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Error("second check of unchanged file must hit the cache")
	}
	if got := second.Bag.ErrorCount(); got != 1 {
		t.Fatalf("cached check: got %d errors, want 1", got)
	}

	// изменённый файл инвалидируется по хэшу
	if err := os.WriteFile(path, []byte("a = 5;"), 0o644); err != nil {
		t.Fatal(err)
	}
	third, err := Check(path, cache, 16)
	if err != nil {
		t.Fatal(err)
	}
	if third.FromCache {
		t.Error("changed file must not hit the cache")
	}
	if third.Bag.HasErrors() {
		t.Errorf("clean file: unexpected diagnostics: %v", third.Bag.Items())
	}
}
