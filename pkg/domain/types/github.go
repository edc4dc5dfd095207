package types

import "log/slog"

type (
	RepoURL      string
	BranchName   string
	CommitSHA    string
	WatermarkKey string
	FileStatus   string
	GitHubToken  string
	SMTPPassword string
)

const (
	FileStatusAdded    FileStatus = "added"
	FileStatusModified FileStatus = "modified"
	FileStatusRemoved  FileStatus = "removed"
	FileStatusRenamed  FileStatus = "renamed"
)

// NewWatermarkKey builds the durable key for a (repository, branch) pair.
func NewWatermarkKey(repo RepoURL, branch BranchName) WatermarkKey {
	return WatermarkKey(string(repo) + "/" + string(branch))
}

// Short returns the abbreviated commit SHA used in logs and mail subjects.
func (x CommitSHA) Short() string {
	if len(x) <= 7 {
		return string(x)
	}
	return string(x[:7])
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x SMTPPassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SMTPPassword) String() string {
	return "***********"
}
