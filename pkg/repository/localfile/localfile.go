package localfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/repository"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
	"github.com/secmon-lab/commitwatch/pkg/utils/safe"
)

// New creates a watermark repository backed by a local JSON file. Save writes
// the whole state via a temporary file and rename, so readers never observe a
// partial write. Load tolerates a missing or corrupt file by starting empty.
func New(path string) interfaces.WatermarkRepository {
	return &watermarkRepository{
		path:  path,
		marks: make(map[types.WatermarkKey]types.CommitSHA),
	}
}

type watermarkRepository struct {
	mu    sync.RWMutex
	path  string
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
	r.mu.RLock()
	raw, err := json.MarshalIndent(r.marks, "", "  ")
	r.mu.RUnlock()
	if err != nil {
		return goerr.Wrap(err, "failed to marshal watermarks")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create state directory", goerr.V("dir", dir))
	}

	// Write to a temp file in the same directory, then rename. Rename within
	// one filesystem is atomic, so a concurrent reader or a crash mid-write
	// never leaves a truncated state file behind.
	tmp, err := os.CreateTemp(dir, ".watermarks.*.json")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp state file", goerr.V("dir", dir))
	}

	if _, err := tmp.Write(raw); err != nil {
		safe.Close(tmp)
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write temp state file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close temp state file", goerr.V("path", tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to replace state file",
			goerr.V("from", tmp.Name()),
			goerr.V("to", r.path),
		)
	}

	logging.From(ctx).Debug("saved watermarks",
		slog.String("path", r.path),
	)

	return nil
}

func (r *watermarkRepository) Load(ctx context.Context) error {
	raw, err := os.ReadFile(filepath.Clean(r.path))
	if err != nil {
		if os.IsNotExist(err) {
			logging.From(ctx).Info("no watermark state file, starting empty",
				slog.String("path", r.path),
			)
			return nil
		}
		return goerr.Wrap(err, "failed to read state file", goerr.V("path", r.path))
	}

	marks := make(map[types.WatermarkKey]types.CommitSHA)
	if err := json.Unmarshal(raw, &marks); err != nil {
		// A corrupt state file must not block startup. Every tracked pair is
		// re-scanned as first-ever on the next pass.
		logging.From(ctx).Warn("corrupt watermark state file, starting empty",
			slog.String("path", r.path),
			slog.Any("error", err),
		)
		return nil
	}

	r.mu.Lock()
	r.marks = marks
	r.mu.Unlock()

	logging.From(ctx).Info("loaded watermarks",
		slog.String("path", r.path),
		slog.Int("count", len(marks)),
	)

	return nil
}
