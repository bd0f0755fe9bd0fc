package infra

import (
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/repository/memory"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	history      interfaces.HistoryRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		history: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}

func (x *Clients) History() interfaces.HistoryRepository {
	return x.history
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithHistory(repo interfaces.HistoryRepository) Option {
	return func(x *Clients) {
		x.history = repo
	}
}
