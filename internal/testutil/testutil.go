// Package testutil provides shared test helpers for setting up recipe
// libraries.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/barcart/barcart/internal/storage"
)

// Margarita is a minimal recipe document that passes every check.
const Margarita = `title: Margarita
version: 1
ingredients:
  - ingredient: tequila
    quantity: 2
    unit: ounce
instructions:
  - Shake with ice.
  - Strain into glass.
`

// TestLibrary creates a temporary library directory with a storage.Provider.
func TestLibrary(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteFile writes content under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
