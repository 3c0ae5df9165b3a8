package pdbfetch

import "context"

// ArtifactStore persists fetched record bodies, one artifact per identifier.
//
// Saves must be atomic-or-absent: a failed or interrupted save leaves no
// partial artifact behind.
type ArtifactStore interface {
	// Init prepares the output location, creating it if absent.
	// It is idempotent and must be called once before any Save.
	Init() error

	// Save writes the body verbatim as the artifact for id, overwriting any
	// existing artifact. It returns the path of the written file.
	Save(ctx context.Context, id string, body []byte) (path string, err error)
}
