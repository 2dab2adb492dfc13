package sysfs

import (
	"os"
	"path/filepath"
	"testing"
)

// seedFile creates an empty attribute file the way the kernel would
// expose it; the writer never creates files itself.
func seedFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to seed %s: %v", path, err)
	}
	return path
}

func TestWriteIntAppendsNewline(t *testing.T) {
	dir := t.TempDir()
	path := seedFile(t, dir, "brightness")

	w := NewWriter()
	if err := w.WriteInt(path, 255); err != nil {
		t.Fatalf("WriteInt() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "255\n" {
		t.Errorf("file content = %q, want %q", data, "255\n")
	}
}

func TestWriteStringIsLiteral(t *testing.T) {
	dir := t.TempDir()
	path := seedFile(t, dir, "trigger")

	w := NewWriter()
	if err := w.WriteString(path, "notification"); err != nil {
		t.Fatalf("WriteString() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "notification" {
		t.Errorf("file content = %q, want %q", data, "notification")
	}
}

func TestMissingFileKeepsFailing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	w := NewWriter()

	if err := w.WriteInt(path, 1); err == nil {
		t.Fatal("WriteInt() on missing file should return error")
	}
	// Later failures still propagate even though only the first is logged.
	if err := w.WriteInt(path, 1); err == nil {
		t.Fatal("second WriteInt() on missing file should return error")
	}
}

func TestOpenFailureWarnedOncePerPath(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing-a")
	second := filepath.Join(dir, "missing-b")
	w := NewWriter()

	_ = w.WriteInt(first, 1)
	_ = w.WriteInt(first, 2)
	_ = w.WriteString(second, "none")

	if len(w.warned) != 2 {
		t.Errorf("warned paths = %d, want 2 (one per distinct path)", len(w.warned))
	}
	if !w.warned[first] || !w.warned[second] {
		t.Errorf("warned map = %v, want both paths marked", w.warned)
	}
}
