package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/repository"
)

// TestAll runs all shared test cases for a WatermarkRepository implementation.
func TestAll(t *testing.T, repo interfaces.WatermarkRepository) {
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
	t.Run("IndependentKeys", func(t *testing.T) {
		TestIndependentKeys(t, repo)
	})
}

func newKey() types.WatermarkKey {
	repoURL := types.RepoURL(fmt.Sprintf("https://github.com/owner-%s/repo-%s",
		uuid.New().String()[:8], uuid.New().String()[:8]))
	return types.NewWatermarkKey(repoURL, "main")
}

// TestSetAndGet verifies a stored watermark is returned as stored.
func TestSetAndGet(t *testing.T, repo interfaces.WatermarkRepository) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, repo.Set(ctx, key, "abc123"))

	sha, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("abc123"))
}

// TestNotFound verifies Get on an unknown pair fails with ErrNotFound.
func TestNotFound(t *testing.T, repo interfaces.WatermarkRepository) {
	ctx := context.Background()

	_, err := repo.Get(ctx, newKey())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestOverwrite verifies a later Set replaces the previous value.
func TestOverwrite(t *testing.T, repo interfaces.WatermarkRepository) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, repo.Set(ctx, key, "abc123"))
	gt.NoError(t, repo.Set(ctx, key, "def456"))

	sha, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("def456"))
}

// TestInvalidInput verifies empty key or SHA is rejected.
func TestInvalidInput(t *testing.T, repo interfaces.WatermarkRepository) {
	ctx := context.Background()

	err := repo.Set(ctx, "", "abc123")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.Set(ctx, newKey(), "")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

// TestIndependentKeys verifies branches of the same repository do not share
// a watermark.
func TestIndependentKeys(t *testing.T, repo interfaces.WatermarkRepository) {
	ctx := context.Background()
	repoURL := types.RepoURL(fmt.Sprintf("https://github.com/owner-%s/repo", uuid.New().String()[:8]))
	mainKey := types.NewWatermarkKey(repoURL, "main")
	devKey := types.NewWatermarkKey(repoURL, "develop")

	gt.NoError(t, repo.Set(ctx, mainKey, "aaa111"))
	gt.NoError(t, repo.Set(ctx, devKey, "bbb222"))

	sha, err := repo.Get(ctx, mainKey)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("aaa111"))

	sha, err = repo.Get(ctx, devKey)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("bbb222"))
}
