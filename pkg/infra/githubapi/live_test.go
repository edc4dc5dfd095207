package githubapi_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/infra/githubapi"
	"github.com/secmon-lab/commitwatch/pkg/utils/testutil"
)

// TestLiveGitHub hits the real API. Set COMMITWATCH_TEST_GITHUB_REPO to a
// repository URL (e.g. https://github.com/m-mizutani/gt) to enable it.
func TestLiveGitHub(t *testing.T) {
	repoURL := testutil.GetEnvOrSkip(t, "COMMITWATCH_TEST_GITHUB_REPO")
	token := types.GitHubToken(testutil.GetEnvOrSkip(t, "COMMITWATCH_TEST_GITHUB_TOKEN"))

	owner, repo, err := model.ParseRepoURL(repoURL)
	gt.NoError(t, err)

	client := gt.R1(githubapi.New(token)).NoError(t)
	ctx := context.Background()

	branch := gt.R1(client.DefaultBranch(ctx, owner, repo)).NoError(t)
	gt.V(t, string(branch)).NotEqual("")

	commits := gt.R1(client.ListCommits(ctx, owner, repo, branch, 5)).NoError(t)
	gt.True(t, len(commits) > 0)
	gt.True(t, len(commits) <= 5)

	detail := gt.R1(client.GetCommit(ctx, owner, repo, commits[0].SHA)).NoError(t)
	gt.V(t, detail.SHA).Equal(commits[0].SHA)
}
