package smtpmail

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wneessen/go-mail"

	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/domain/model"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

type Client struct {
	client *mail.Client
	from   string
	to     string
}

var _ interfaces.Notifier = (*Client)(nil)

// New creates a mail notifier from the alerting section of the watch config.
func New(cfg model.AlertConfig) (*Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(string(cfg.SMTP.Password)),
		)
	}

	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client",
			goerr.V("host", cfg.SMTP.Host),
			goerr.V("port", cfg.SMTP.Port),
		)
	}

	return &Client{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

func (x *Client) Notify(ctx context.Context, finding *model.Finding) error {
	msg := mail.NewMsg()
	if err := msg.From(x.from); err != nil {
		return goerr.Wrap(err, "invalid from address", goerr.V("from", x.from))
	}
	if err := msg.To(x.to); err != nil {
		return goerr.Wrap(err, "invalid to address", goerr.V("to", x.to))
	}

	msg.Subject(buildSubject(finding))
	msg.SetBodyString(mail.TypeTextPlain, buildBody(finding))

	if err := x.client.DialAndSendWithContext(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to send alert mail",
			goerr.V("repo", finding.RepoURL),
			goerr.V("commit", finding.Commit.SHA),
		)
	}

	logging.From(ctx).Info("sent alert mail",
		slog.String("repo", string(finding.RepoURL)),
		slog.String("commit", finding.Commit.SHA.Short()),
		slog.String("to", x.to),
	)

	return nil
}

func buildSubject(finding *model.Finding) string {
	return fmt.Sprintf("[commitwatch] %d keyword match(es) in %s@%s (%s)",
		finding.MatchCount(), finding.RepoURL, finding.Branch, finding.Commit.SHA.Short())
}

func buildBody(finding *model.Finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Repository: %s\n", finding.RepoURL)
	fmt.Fprintf(&b, "Branch:     %s\n", finding.Branch)
	fmt.Fprintf(&b, "Commit:     %s\n", finding.Commit.SHA)
	fmt.Fprintf(&b, "Author:     %s\n", finding.Commit.AuthorName)
	fmt.Fprintf(&b, "URL:        %s\n", finding.Commit.HTMLURL)
	fmt.Fprintf(&b, "\n")

	if len(finding.InMessage) > 0 {
		fmt.Fprintf(&b, "Keywords in commit message: %s\n", strings.Join(finding.InMessage, ", "))
	}

	if len(finding.InFiles) > 0 {
		fmt.Fprintf(&b, "Keywords in changed files:\n")
		filenames := make([]string, 0, len(finding.InFiles))
		for name := range finding.InFiles {
			filenames = append(filenames, name)
		}
		sort.Strings(filenames)
		for _, name := range filenames {
			fmt.Fprintf(&b, "  %s: %s\n", name, strings.Join(finding.InFiles[name], ", "))
		}
	}

	fmt.Fprintf(&b, "\nCommit message:\n%s\n", finding.Commit.Message)

	return b.String()
}
