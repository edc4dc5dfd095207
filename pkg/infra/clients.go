package infra

import (
	"github.com/secmon-lab/commitwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/commitwatch/pkg/infra/lognotify"
	"github.com/secmon-lab/commitwatch/pkg/repository/memory"
)

type Clients struct {
	github     interfaces.GitHubClient
	notifier   interfaces.Notifier
	watermarks interfaces.WatermarkRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		notifier:   lognotify.New(),
		watermarks: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) Watermarks() interfaces.WatermarkRepository {
	return x.watermarks
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = notifier
	}
}

func WithWatermarkRepository(repo interfaces.WatermarkRepository) Option {
	return func(x *Clients) {
		x.watermarks = repo
	}
}
