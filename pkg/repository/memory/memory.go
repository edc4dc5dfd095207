package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/repository"
)

// New creates a new in-memory watermark repository. State does not survive
// a process restart; intended for one-shot scans and tests.
func New() interfaces.WatermarkRepository {
	return &watermarkRepository{
		marks: make(map[types.WatermarkKey]types.CommitSHA),
	}
}

type watermarkRepository struct {
	mu    sync.RWMutex
	marks map[types.WatermarkKey]types.CommitSHA
}

func (r *watermarkRepository) Get(ctx context.Context, key types.WatermarkKey) (types.CommitSHA, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sha, exists := r.marks[key]
	if !exists {
		return "", goerr.Wrap(repository.ErrNotFound, "watermark not found",
			goerr.V("key", key),
		)
	}

	return sha, nil
}

func (r *watermarkRepository) Set(ctx context.Context, key types.WatermarkKey, sha types.CommitSHA) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "watermark key is empty")
	}
	if sha == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "commit SHA is empty",
			goerr.V("key", key),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.marks[key] = sha
	return nil
}

func (r *watermarkRepository) Save(ctx context.Context) error {
	return nil
}

func (r *watermarkRepository) Load(ctx context.Context) error {
	return nil
}
