package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/repository"
	"github.com/secmon-lab/commitwatch/pkg/utils/errutil"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

// ScanTarget runs one polling pass over all branches of the target and
// persists the watermarks when any of them advanced. Branch-level failures
// are reported and do not abort the remaining branches.
func (x *UseCase) ScanTarget(ctx context.Context, target *model.Target) error {
	advanced, err := x.scanTarget(ctx, target)
	if err != nil {
		return err
	}

	if advanced {
		if err := x.clients.Watermarks().Save(ctx); err != nil {
			return goerr.Wrap(err, "failed to save watermarks", goerr.V("repo", target.URL))
		}
	}

	return nil
}

func (x *UseCase) scanTarget(ctx context.Context, target *model.Target) (bool, error) {
	branches := target.Branches
	if len(branches) == 0 {
		branch, err := x.clients.GitHub().DefaultBranch(ctx, target.Owner, target.Name)
		if err != nil {
			return false, goerr.Wrap(err, "failed to resolve default branch",
				goerr.V("repo", target.URL),
			)
		}
		branches = []types.BranchName{branch}
	}

	var advanced bool
	for _, branch := range branches {
		branchAdvanced, err := x.scanBranch(ctx, target, branch)
		if err != nil {
			// A failed branch leaves its watermark untouched and is retried
			// from the same point on the next pass.
			errutil.HandleError(ctx, "failed to scan branch", goerr.Wrap(err,
				"branch scan failed",
				goerr.V("repo", target.URL),
				goerr.V("branch", branch),
			))
			continue
		}
		if branchAdvanced {
			advanced = true
		}
	}

	return advanced, nil
}

// scanBranch is one incremental pass over a (repository, branch) pair:
// fetch the most recent commits, walk them newest to oldest until the stored
// watermark, inspect each unseen commit, dispatch findings immediately, and
// advance the watermark to the newest fetched commit.
//
// The fetch window is bounded by the configured limit. When more commits
// landed since the last pass than fit the window, the watermark still jumps
// to the newest fetched commit: the oldest of those commits are skipped for
// good. This trades completeness for a bounded per-pass cost.
func (x *UseCase) scanBranch(ctx context.Context, target *model.Target, branch types.BranchName) (bool, error) {
	logger := logging.From(ctx).With(
		slog.String("repo", string(target.URL)),
		slog.String("branch", string(branch)),
	)

	commits, err := x.clients.GitHub().ListCommits(ctx, target.Owner, target.Name, branch, x.policy.FetchLimit)
	if err != nil {
		return false, goerr.Wrap(err, "failed to list recent commits")
	}
	if len(commits) == 0 {
		logger.Debug("no commits on branch")
		return false, nil
	}

	key := types.NewWatermarkKey(target.URL, branch)
	watermark, err := x.clients.Watermarks().Get(ctx, key)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return false, goerr.Wrap(err, "failed to read watermark", goerr.V("key", key))
	}

	var newCommits int
	for _, commit := range commits {
		if commit.SHA == watermark {
			break
		}
		newCommits++

		finding := x.inspectCommit(ctx, target, branch, commit)
		if finding == nil || !finding.HasMatch() {
			continue
		}

		// Dispatch immediately rather than batching: once a finding exists
		// it is delivered even if a later commit in the same pass fails.
		if err := x.clients.Notifier().Notify(ctx, finding); err != nil {
			errutil.HandleError(ctx, "failed to dispatch alert", goerr.Wrap(err,
				"alert dispatch failed",
				goerr.V("repo", target.URL),
				goerr.V("commit", commit.SHA),
			))
		}
	}

	if newCommits == 0 {
		logger.Debug("no new commits since last pass")
		return false, nil
	}

	if err := x.clients.Watermarks().Set(ctx, key, commits[0].SHA); err != nil {
		return false, goerr.Wrap(err, "failed to advance watermark", goerr.V("key", key))
	}

	logger.Info("scanned branch",
		slog.Int("new_commits", newCommits),
		slog.String("watermark", commits[0].SHA.Short()),
	)

	return true, nil
}

// inspectCommit matches the target's keywords against the commit message and,
// when file scanning is enabled, against each eligible changed file body.
// Returns nil when the target has no keywords configured.
func (x *UseCase) inspectCommit(ctx context.Context, target *model.Target, branch types.BranchName, commit *model.Commit) *model.Finding {
	if len(target.Keywords) == 0 {
		return nil
	}

	finding := model.NewFinding(target.URL, branch, commit)
	finding.InMessage = model.MatchKeywords(commit.Message, target.Keywords)

	if !x.policy.ScanFiles {
		return finding
	}

	logger := logging.From(ctx)

	detail, err := x.clients.GitHub().GetCommit(ctx, target.Owner, target.Name, commit.SHA)
	if err != nil {
		// Fall back to message-only inspection for this commit.
		logger.Warn("failed to get commit detail, skipping file scan",
			slog.String("repo", string(target.URL)),
			slog.String("commit", string(commit.SHA)),
			slog.Any("error", err),
		)
		return finding
	}

	for _, file := range detail.Files {
		if file.Status == types.FileStatusRemoved || file.BlobSHA == "" {
			continue
		}

		body, err := x.clients.GitHub().GetBlob(ctx, target.Owner, target.Name, file.BlobSHA, x.policy.MaxBlobSize)
		if err != nil {
			if errors.Is(err, types.ErrBlobTooLarge) {
				logger.Debug("skipping oversized file",
					slog.String("file", file.Filename),
					slog.String("commit", string(commit.SHA)),
				)
			} else {
				logger.Warn("failed to get file content",
					slog.String("file", file.Filename),
					slog.String("commit", string(commit.SHA)),
					slog.Any("error", err),
				)
			}
			continue
		}

		if matched := model.MatchKeywords(body, target.Keywords); len(matched) > 0 {
			finding.InFiles[file.Filename] = matched
		}
	}

	return finding
}
