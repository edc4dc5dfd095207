package githubapi

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

const requestTimeout = 30 * time.Second

type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint. Used by tests
// and GitHub Enterprise installations.
func WithBaseURL(rawURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		baseURL, err := x.gh.BaseURL.Parse(rawURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse API base URL", goerr.V("url", rawURL))
		}
		x.gh.BaseURL = baseURL
		return nil
	}
}

// New creates a GitHub API client. An empty token yields an anonymous client,
// which is enough for public repositories within rate limits.
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	httpClient := &http.Client{Timeout: requestTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = requestTimeout
	}

	client := &Client{
		gh: github.NewClient(httpClient),
	}
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

func (x *Client) ListCommits(ctx context.Context, owner, repo string, branch types.BranchName, limit int) ([]*model.Commit, error) {
	opt := &github.CommitsListOptions{
		SHA:         string(branch),
		ListOptions: github.ListOptions{PerPage: limit},
	}

	commits, _, err := x.gh.Repositories.ListCommits(ctx, owner, repo, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, c := range commits {
		result = append(result, convertCommit(c))
		if len(result) >= limit {
			break
		}
	}

	return result, nil
}

func (x *Client) GetCommit(ctx context.Context, owner, repo string, sha types.CommitSHA) (*model.Commit, error) {
	commit, _, err := x.gh.Repositories.GetCommit(ctx, owner, repo, string(sha), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit detail",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}

	converted := convertCommit(commit)
	for _, f := range commit.Files {
		converted.Files = append(converted.Files, model.FileChange{
			Filename: f.GetFilename(),
			Status:   types.FileStatus(f.GetStatus()),
			BlobSHA:  types.CommitSHA(f.GetSHA()),
		})
	}

	return converted, nil
}

func (x *Client) GetBlob(ctx context.Context, owner, repo string, blobSHA types.CommitSHA, maxSize int64) (string, error) {
	blob, _, err := x.gh.Git.GetBlob(ctx, owner, repo, string(blobSHA))
	if err != nil {
		return "", goerr.Wrap(err, "failed to get blob",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", blobSHA),
		)
	}

	if maxSize > 0 && int64(blob.GetSize()) > maxSize {
		return "", goerr.Wrap(types.ErrBlobTooLarge, "skipping oversized blob",
			goerr.V("sha", blobSHA),
			goerr.V("size", blob.GetSize()),
			goerr.V("max_size", maxSize),
		)
	}

	content := blob.GetContent()
	if blob.GetEncoding() != "base64" {
		return content, nil
	}

	// The API wraps base64 payloads with newlines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "failed to decode blob content",
			goerr.V("sha", blobSHA),
		)
	}

	return string(decoded), nil
}

func (x *Client) DefaultBranch(ctx context.Context, owner, repo string) (types.BranchName, error) {
	repoInfo, _, err := x.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	branch := repoInfo.GetDefaultBranch()
	if branch == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "repository has no default branch",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return types.BranchName(branch), nil
}

func convertCommit(c *github.RepositoryCommit) *model.Commit {
	authorName := c.GetCommit().GetAuthor().GetName()
	if authorName == "" {
		authorName = c.GetAuthor().GetLogin()
	}

	return &model.Commit{
		SHA:        types.CommitSHA(c.GetSHA()),
		AuthorName: authorName,
		Message:    c.GetCommit().GetMessage(),
		HTMLURL:    c.GetHTMLURL(),
	}
}
