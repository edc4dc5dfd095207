package lognotify

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

// New returns a notifier that writes findings to the log. Used when mail
// transport is not configured, e.g. one-shot scans from a terminal.
func New() interfaces.Notifier {
	return &notifier{}
}

type notifier struct{}

var _ interfaces.Notifier = (*notifier)(nil)

func (x *notifier) Notify(ctx context.Context, finding *model.Finding) error {
	logging.From(ctx).Info("keyword match found",
		slog.String("repo", string(finding.RepoURL)),
		slog.String("branch", string(finding.Branch)),
		slog.String("commit", finding.Commit.SHA.Short()),
		slog.String("author", finding.Commit.AuthorName),
		slog.Any("in_message", finding.InMessage),
		slog.Any("in_files", finding.InFiles),
		slog.String("url", finding.Commit.HTMLURL),
	)
	return nil
}
