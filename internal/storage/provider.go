// Package storage defines the recipe library file-system abstraction.
// Recipes are authored and edited by hand; the library is read-only from
// the program's point of view.
package storage

import "github.com/barcart/barcart/internal/models"

// Provider is the interface for recipe library access.
type Provider interface {
	// List returns metadata for every recipe file under dir (relative to
	// the library root), in lexical walk order.
	List(dir string) ([]models.RecipeMetadata, error)
	// Read returns the raw bytes of the file at path (relative to the
	// library root).
	Read(path string) ([]byte, error)
}
