// Package library coordinates storage and validation across a recipe
// collection. Each file is validated independently; a parse or read failure
// in one file never aborts the rest of the batch.
package library

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/barcart/barcart/internal/apperr"
	"github.com/barcart/barcart/internal/checksum"
	"github.com/barcart/barcart/internal/models"
	"github.com/barcart/barcart/internal/storage"
	"github.com/barcart/barcart/internal/validate"
)

// FileResult is the validation outcome for one file. Exactly one of Failure
// and Result is populated: Failure carries a fatal per-file problem (bytes
// unreadable or not well-formed YAML), Result the accumulated schema
// violations.
type FileResult struct {
	Path     string           `json:"path"`
	Checksum string           `json:"checksum,omitempty"`
	Failure  string           `json:"failure,omitempty"`
	Result   *validate.Result `json:"result,omitempty"`
}

// Valid reports whether the file parsed and passed every error-severity
// check.
func (fr FileResult) Valid() bool {
	return fr.Failure == "" && fr.Result != nil && fr.Result.Valid()
}

// ValidateData validates raw recipe bytes attributed to path.
func ValidateData(path string, data []byte) FileResult {
	fr := FileResult{Path: path, Checksum: checksum.Sum(data)}
	res, err := validate.Document(data)
	if err != nil {
		fr.Failure = err.Error()
		return fr
	}
	fr.Result = res
	return fr
}

// Service coordinates library access and validation.
type Service struct {
	store storage.Provider
}

// NewService creates a new library service.
func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// List returns metadata for every recipe file under dir (empty for the
// whole library).
func (s *Service) List(_ context.Context, dir string) ([]models.RecipeMetadata, error) {
	return s.store.List(dir)
}

// Read returns the raw bytes of one recipe file.
func (s *Service) Read(_ context.Context, path string) ([]byte, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// ValidateFile validates one library file. Read failures are reported in
// the result, not as an error.
func (s *Service) ValidateFile(_ context.Context, path string) FileResult {
	data, err := s.store.Read(path)
	if err != nil {
		return FileResult{Path: path, Failure: err.Error()}
	}
	return ValidateData(path, data)
}

// ValidateAll validates every recipe file in the library. Files are checked
// concurrently with at most workers in flight; results come back in listing
// order regardless of completion order. The returned error is non-nil only
// when the library itself cannot be listed or ctx is cancelled.
func (s *Service) ValidateAll(ctx context.Context, workers int) ([]FileResult, error) {
	metas, err := s.store.List("")
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(metas))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range metas {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = s.ValidateFile(gCtx, m.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
