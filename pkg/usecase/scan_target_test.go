package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/commitwatch/pkg/domain/mock"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/infra"
	"github.com/secmon-lab/commitwatch/pkg/repository/memory"
	"github.com/secmon-lab/commitwatch/pkg/usecase"
)

func newCommit(sha, message string) *model.Commit {
	return &model.Commit{
		SHA:        types.CommitSHA(sha),
		AuthorName: "alice",
		Message:    message,
		HTMLURL:    "https://github.com/secmon-lab/commitwatch/commit/" + sha,
	}
}

func newTestTarget(t *testing.T, keywords ...string) *model.Target {
	return gt.R1(model.NewTarget(
		"https://github.com/secmon-lab/commitwatch",
		keywords,
		[]string{"main"},
	)).NoError(t)
}

// watermarkMock wraps the in-memory store so tests can count Set/Save calls.
func watermarkMock() *mock.WatermarkRepositoryMock {
	mem := memory.New()
	return &mock.WatermarkRepositoryMock{
		GetFunc:  mem.Get,
		SetFunc:  mem.Set,
		SaveFunc: func(ctx context.Context) error { return nil },
		LoadFunc: mem.Load,
	}
}

func TestScanTargetStopAtWatermark(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "security")
	key := types.NewWatermarkKey(target.URL, "main")

	fetched := []*model.Commit{
		newCommit("c5", "security fix for c5"),
		newCommit("c4", "plain change"),
		newCommit("c3", "security fix for c3"),
		newCommit("c2", "security fix for c2"),
		newCommit("c1", "initial commit"),
	}

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			gt.V(t, owner).Equal("secmon-lab")
			gt.V(t, repo).Equal("commitwatch")
			gt.V(t, branch).Equal(types.BranchName("main"))
			return fetched, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()
	gt.NoError(t, wm.Set(ctx, key, "c3"))

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))

	// Only c5 matched among the two new commits; c3 and older are not re-reported.
	findings := notifyMock.NotifyCalls()
	gt.V(t, len(findings)).Equal(1)
	gt.V(t, findings[0].Finding.Commit.SHA).Equal(types.CommitSHA("c5"))
	gt.V(t, findings[0].Finding.InMessage).Equal([]string{"security"})

	sha, err := wm.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("c5"))
}

func TestScanTargetFirstScan(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "password")
	key := types.NewWatermarkKey(target.URL, "main")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return []*model.Commit{
				newCommit("c2", "rotate PASSWORD for staging"),
				newCommit("c1", "initial commit"),
			}, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))

	// Matching is case-insensitive.
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(1)
	gt.V(t, notifyMock.NotifyCalls()[0].Finding.InMessage).Equal([]string{"password"})

	sha, err := wm.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("c2"))
	gt.V(t, len(wm.SaveCalls())).Equal(1)
}

func TestScanTargetIdempotentSecondPass(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "security")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return []*model.Commit{
				newCommit("c2", "security fix"),
				newCommit("c1", "initial commit"),
			}, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(1)
	gt.V(t, len(wm.SetCalls())).Equal(1)
	gt.V(t, len(wm.SaveCalls())).Equal(1)

	// Same remote state: second pass must produce nothing and leave the
	// watermark alone.
	gt.NoError(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(1)
	gt.V(t, len(wm.SetCalls())).Equal(1)
	gt.V(t, len(wm.SaveCalls())).Equal(1)
}

func TestScanTargetBoundedWindow(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "fix")
	key := types.NewWatermarkKey(target.URL, "main")

	// 15 new commits upstream, but the fetch window holds only 10; the
	// watermark is far below the window.
	var window []*model.Commit
	for i := 15; i > 5; i-- {
		window = append(window, newCommit(fmt.Sprintf("c%02d", i), "fix something"))
	}

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			gt.V(t, limit).Equal(10)
			return window, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()
	gt.NoError(t, wm.Set(ctx, key, "old-watermark-below-window"))

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))

	// All 10 fetched commits are scanned; the watermark jumps to the newest
	// fetched commit and the 5 older commits are skipped permanently.
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(10)

	sha, err := wm.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(window[0].SHA)
}

func TestScanTargetEmptyKeywords(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t) // no keywords
	key := types.NewWatermarkKey(target.URL, "main")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return []*model.Commit{newCommit("c1", "security password token")}, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))

	// No keywords configured: never a finding, but the commit still counts
	// as scanned and the watermark advances.
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(0)
	sha, err := wm.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("c1"))
}

func TestScanTargetEmptyBranch(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "security")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return nil, nil
		},
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(wm.SetCalls())).Equal(0)
	gt.V(t, len(wm.SaveCalls())).Equal(0)
}

func TestScanTargetFetchFailureLeavesWatermark(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "security")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return nil, goerr.New("api unavailable")
		},
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	// A fetch failure is treated as "no new commits this pass".
	gt.NoError(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(wm.SetCalls())).Equal(0)
	gt.V(t, len(wm.SaveCalls())).Equal(0)
}

func TestScanTargetDispatchFailureAdvancesWatermark(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "security")
	key := types.NewWatermarkKey(target.URL, "main")

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return []*model.Commit{newCommit("c1", "security fix")}, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error {
			return goerr.New("smtp unavailable")
		},
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))

	// Alert delivery is fire-and-forget relative to watermark state.
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(1)
	sha, err := wm.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, sha).Equal(types.CommitSHA("c1"))
}

func TestScanTargetResolvesDefaultBranch(t *testing.T) {
	ctx := context.Background()
	target := gt.R1(model.NewTarget(
		"https://github.com/secmon-lab/commitwatch",
		[]string{"security"},
		nil, // no explicit branches
	)).NoError(t)

	ghMock := &mock.GitHubClientMock{
		DefaultBranchFunc: func(ctx context.Context, owner, repo string) (types.BranchName, error) {
			return "trunk", nil
		},
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			gt.V(t, branch).Equal(types.BranchName("trunk"))
			return []*model.Commit{newCommit("c1", "security fix")}, nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.NoError(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(ghMock.DefaultBranchCalls())).Equal(1)
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(1)
}

func TestScanTargetDefaultBranchFailure(t *testing.T) {
	ctx := context.Background()
	target := gt.R1(model.NewTarget(
		"https://github.com/secmon-lab/commitwatch",
		[]string{"security"},
		nil,
	)).NoError(t)

	ghMock := &mock.GitHubClientMock{
		DefaultBranchFunc: func(ctx context.Context, owner, repo string) (types.BranchName, error) {
			return "", goerr.New("repository not found")
		},
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	gt.Error(t, uc.ScanTarget(ctx, target))
	gt.V(t, len(wm.SetCalls())).Equal(0)
}

func TestScanTargetWatermarkMonotonic(t *testing.T) {
	ctx := context.Background()
	target := newTestTarget(t, "fix")
	key := types.NewWatermarkKey(target.URL, "main")

	history := [][]*model.Commit{
		{newCommit("c2", "fix a"), newCommit("c1", "base")},
		{newCommit("c3", "fix b"), newCommit("c2", "fix a"), newCommit("c1", "base")},
		// Remote unchanged on the third pass.
		{newCommit("c3", "fix b"), newCommit("c2", "fix a"), newCommit("c1", "base")},
	}
	var pass int

	ghMock := &mock.GitHubClientMock{
		ListCommitsFunc: func(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
			return history[pass], nil
		},
	}
	notifyMock := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, finding *model.Finding) error { return nil },
	}
	wm := watermarkMock()

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghMock),
		infra.WithNotifier(notifyMock),
		infra.WithWatermarkRepository(wm),
	), []*model.Target{target}, model.DefaultScanPolicy())

	expected := []types.CommitSHA{"c2", "c3", "c3"}
	for pass = 0; pass < len(history); pass++ {
		gt.NoError(t, uc.ScanTarget(ctx, target))
		sha, err := wm.Get(ctx, key)
		gt.NoError(t, err)
		gt.V(t, sha).Equal(expected[pass])
	}

	// Each commit was reported exactly once across the three passes.
	gt.V(t, len(notifyMock.NotifyCalls())).Equal(2)
}
