package tx_test

import (
	"os"
	"path/filepath"
	"testing"

	"studytrack/internal/platform/tx"
)

func TestReplaceFileCreatesAndOverwrites(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	if err := tx.ReplaceFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := tx.ReplaceFile(path, []byte(`{"a":2}`), 0o644); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Fatalf("expected overwritten payload, got %s", got)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be gone, found %d entries", len(entries))
	}
}

func TestReplaceFileFailsWhenTargetIsDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.json")
	if err := os.MkdirAll(filepath.Join(target, "child"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := tx.ReplaceFile(target, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected replace over a non-empty directory to fail")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp file should be cleaned up, found %d entries", len(entries))
	}
}
