// Package fs provides file-based storage for fetched entry records.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pdbfetch"
)

// ArtifactPath returns the artifact file name for an identifier.
// Example: 1ABC → 1ABC.json
func ArtifactPath(dir, id string) string {
	return filepath.Join(dir, id+".json")
}

// Ensure Store implements pdbfetch.ArtifactStore at compile time.
var _ pdbfetch.ArtifactStore = (*Store)(nil)

// Store writes record bodies as JSON files to a single directory.
// Saves are atomic: the body is written to a temporary file in the same
// directory and renamed into place, so a failed transfer never leaves a
// partial artifact.
type Store struct {
	dir string
}

// NewStore creates a new Store that writes to the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Init creates the output directory if it does not exist.
// It is idempotent and must complete before any Save.
func (s *Store) Init() error {
	return os.MkdirAll(s.dir, 0755)
}

// Save writes the body verbatim to <dir>/<id>.json, overwriting any
// existing artifact, and returns the written path.
func (s *Store) Save(ctx context.Context, id string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, "."+id+".json.tmp-")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}

	path := ArtifactPath(s.dir, id)
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}

	return path, nil
}
