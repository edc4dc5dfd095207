package config

import (
	"log/slog"

	"github.com/secmon-lab/commitwatch/pkg/domain/types"
	"github.com/secmon-lab/commitwatch/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token (anonymous access if not specified)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("COMMITWATCH_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("COMMITWATCH_GITHUB_BASE_URL"),
		},
	}
}

func (x GitHub) New() (*githubapi.Client, error) {
	var options []githubapi.Option
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}
	return githubapi.New(x.token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("baseURL", x.baseURL),
	)
}
