package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sementinha/internal/domain"
)

// ArtifactFileStore writes export artifacts into a directory, replacing any
// file of the same name.
type ArtifactFileStore struct {
	mode os.FileMode
}

// NewArtifactFileStore returns an ArtifactFileStore that creates files
// readable by the owner only, since user artifacts carry personal data.
func NewArtifactFileStore() *ArtifactFileStore { return &ArtifactFileStore{mode: 0o600} }

// WriteArtifacts writes each artifact atomically and returns the written
// paths. The directory is created when missing. Cancellation is checked
// between files.
func (s *ArtifactFileStore) WriteArtifacts(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, a.Name)
		if err := writeFile(path, a.Body, s.mode); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RemoveArtifacts deletes the named files from dir. Missing files are not an
// error; the returned paths are the files that existed.
func (s *ArtifactFileStore) RemoveArtifacts(ctx context.Context, dir string, names []string) ([]string, error) {
	var removed []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		path := filepath.Join(dir, name)
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return removed, nil
}

// Compile-time assertion that ArtifactFileStore implements domain.ArtifactStore.
var _ domain.ArtifactStore = (*ArtifactFileStore)(nil)
