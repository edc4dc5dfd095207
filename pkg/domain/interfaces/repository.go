package interfaces

//go:generate moq -out ../mock/watermark_repository_mock.go -pkg mock . WatermarkRepository

import (
	"context"

	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

// WatermarkRepository stores the last scanned commit per (repository, branch).
// Get returns repository.ErrNotFound for a pair that was never scanned.
// Save durably writes the whole current state as one unit; Load repopulates
// it at process start and tolerates missing or corrupt durable data by
// starting empty. Implementations must serialize per-key mutation.
type WatermarkRepository interface {
	Get(ctx context.Context, key types.WatermarkKey) (types.CommitSHA, error)
	Set(ctx context.Context, key types.WatermarkKey, sha types.CommitSHA) error
	Save(ctx context.Context) error
	Load(ctx context.Context) error
}
