package mock

import (
	"context"

	"github.com/fwojciec/pdbfetch"
)

var _ pdbfetch.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of pdbfetch.ArtifactStore.
type ArtifactStore struct {
	InitFn func() error
	SaveFn func(ctx context.Context, id string, body []byte) (string, error)
}

func (s *ArtifactStore) Init() error {
	if s.InitFn == nil {
		return nil
	}
	return s.InitFn()
}

func (s *ArtifactStore) Save(ctx context.Context, id string, body []byte) (string, error) {
	return s.SaveFn(ctx, id, body)
}
