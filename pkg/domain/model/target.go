package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/commitwatch/pkg/domain/types"
)

// Target is one watched repository: where to look and what to look for.
// Immutable after construction; built once at startup from the watch config.
type Target struct {
	URL      types.RepoURL
	Owner    string
	Name     string
	Branches []types.BranchName
	Keywords []string
}

// NewTarget parses the repository URL and builds a Target. Branches may be
// empty, in which case the remote default branch is resolved at scan time.
func NewTarget(rawURL string, keywords []string, branches []string) (*Target, error) {
	owner, name, err := ParseRepoURL(rawURL)
	if err != nil {
		return nil, err
	}

	target := &Target{
		URL:      types.RepoURL(rawURL),
		Owner:    owner,
		Name:     name,
		Keywords: keywords,
	}
	for _, b := range branches {
		target.Branches = append(target.Branches, types.BranchName(b))
	}

	return target, nil
}

// ParseRepoURL extracts owner and repository name from a GitHub repository URL.
// Accepts both https://github.com/owner/repo(.git) and git@github.com:owner/repo(.git).
func ParseRepoURL(url string) (string, string, error) {
	var owner, repoName string

	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		parts = strings.TrimSuffix(parts, ".git")
		ownerRepo := strings.Split(parts, "/")
		if len(ownerRepo) == 2 {
			owner = ownerRepo[0]
			repoName = ownerRepo[1]
		}
	} else if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			parts[1] = strings.TrimSuffix(parts[1], ".git")
			parts[1] = strings.TrimSuffix(parts[1], "/")
			ownerRepo := strings.Split(parts[1], "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
				repoName = ownerRepo[1]
			}
		}
	}

	if owner == "" || repoName == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed,
			"failed to parse GitHub owner/repo from repository URL",
			goerr.V("url", url),
		)
	}

	return owner, repoName, nil
}
