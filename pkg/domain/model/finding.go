package model

import "github.com/secmon-lab/commitwatch/pkg/domain/types"

// Finding is the result of matching keywords against one commit. It is
// transient: produced per commit, handed to the notifier immediately, and
// never persisted.
type Finding struct {
	ID        types.FindingID
	RepoURL   types.RepoURL
	Branch    types.BranchName
	Commit    *Commit
	InMessage []string
	InFiles   map[string][]string
}

func NewFinding(repo types.RepoURL, branch types.BranchName, commit *Commit) *Finding {
	return &Finding{
		ID:      types.NewFindingID(),
		RepoURL: repo,
		Branch:  branch,
		Commit:  commit,
		InFiles: map[string][]string{},
	}
}

// HasMatch reports whether any keyword matched the commit message or any
// changed file body.
func (x *Finding) HasMatch() bool {
	return len(x.InMessage) > 0 || len(x.InFiles) > 0
}

// MatchCount returns the total number of keyword hits across message and files.
func (x *Finding) MatchCount() int {
	n := len(x.InMessage)
	for _, kws := range x.InFiles {
		n += len(kws)
	}
	return n
}
