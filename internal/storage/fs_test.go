package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/barcart/barcart/internal/apperr"
)

func tempLibrary(t *testing.T) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, fs
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRead(t *testing.T) {
	dir, s := tempLibrary(t)
	writeFile(t, dir, "daiquiri.yaml", "title: Daiquiri\n")

	got, err := s.Read("daiquiri.yaml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "title: Daiquiri\n" {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestListOnlyRecipeFiles(t *testing.T) {
	dir, s := tempLibrary(t)
	writeFile(t, dir, "a.yaml", "title: A\n")
	writeFile(t, dir, "sours/b.yml", "title: B\n")
	writeFile(t, dir, "README.md", "not a recipe")
	writeFile(t, dir, "notes.txt", "also not")

	items, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
	for _, m := range items {
		if m.Checksum == "" {
			t.Errorf("missing checksum for %s", m.Path)
		}
	}
}

func TestListSubdirectory(t *testing.T) {
	dir, s := tempLibrary(t)
	writeFile(t, dir, "sours/daiquiri.yaml", "title: Daiquiri\n")
	writeFile(t, dir, "tiki/mai-tai.yaml", "title: Mai Tai\n")

	items, err := s.List("sours")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Path != filepath.Join("sours", "daiquiri.yaml") {
		t.Errorf("items = %+v", items)
	}
}

func TestReadNonRecipeFile(t *testing.T) {
	dir, s := tempLibrary(t)
	writeFile(t, dir, "README.md", "not a recipe")

	_, err := s.Read("README.md")
	if !errors.Is(err, apperr.ErrNotRecipe) {
		t.Errorf("err = %v, want ErrNotRecipe", err)
	}
}

func TestTraversalBlocked(t *testing.T) {
	_, s := tempLibrary(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.yaml",
		"/etc/shadow",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
	}
}

func TestIsRecipeFile(t *testing.T) {
	cases := map[string]bool{
		"margarita.yaml": true,
		"sours/fix.yml":  true,
		"README.md":      false,
		"margarita.json": false,
		"yaml":           false,
		"notes.yaml.bak": false,
	}
	for name, want := range cases {
		if got := IsRecipeFile(name); got != want {
			t.Errorf("IsRecipeFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS("/tmp/barcart-does-not-exist-" + t.Name())
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "barcart-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
