package model

import "github.com/secmon-lab/commitwatch/pkg/domain/types"

// Commit is one commit as returned by the GitHub API. Files is populated
// only when the commit detail is fetched for file-content scanning.
type Commit struct {
	SHA        types.CommitSHA
	AuthorName string
	Message    string
	HTMLURL    string
	Files      []FileChange
}

// FileChange is one changed file in a commit. BlobSHA is empty when the
// file was removed and no content blob exists for it.
type FileChange struct {
	Filename string
	Status   types.FileStatus
	BlobSHA  types.CommitSHA
}
