package pathtree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLines_TrimsAndSkipsBlank(t *testing.T) {
	in := "  a/b  \n\n\t\nc/d\r\n   \n"
	lines, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a/b" || lines[1] != "c/d" {
		t.Fatalf("Unexpected lines: %q", lines)
	}
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("Expected no lines, got %q", lines)
	}
}

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	if err := os.WriteFile(path, []byte("x/y\n\nz\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", lines)
	}
}

func TestLoadLines_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := LoadLines(path)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Expected ErrResourceNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Fatalf("Expected error to name the resource, got %v", err)
	}
}

func TestLoadLines_Directory(t *testing.T) {
	_, err := LoadLines(t.TempDir())
	if err == nil {
		t.Fatal("Expected an error when reading a directory")
	}
	if errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Expected a non not-found error, got %v", err)
	}
}
