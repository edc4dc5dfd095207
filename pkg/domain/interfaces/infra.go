package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient Notifier

import (
	"context"

	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

// GitHubClient is the read-only view of the GitHub API that the scan engine
// depends on. Every failure is non-fatal to a pass: the caller logs it and
// moves on to the next branch or repository.
type GitHubClient interface {
	// ListCommits returns up to limit recent commits on the branch, newest first.
	ListCommits(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error)

	// GetCommit returns the commit with its changed-file list populated.
	GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*model.Commit, error)

	// GetBlob returns the decoded content of a blob. It fails with
	// types.ErrBlobTooLarge, before decoding, when the blob exceeds maxSize.
	GetBlob(ctx context.Context, owner, repo string, blobSHA types.CommitSHA, maxSize int64) (string, error)

	// DefaultBranch resolves the default branch of the repository.
	DefaultBranch(ctx context.Context, owner, repo string) (types.BranchName, error)
}

// Notifier consumes findings. Delivery is at-least-once relative to the
// watermark: a delivery failure never rolls the watermark back.
type Notifier interface {
	Notify(ctx context.Context, finding *model.Finding) error
}
