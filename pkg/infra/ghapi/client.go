package ghapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// notFoundMessage is the sentinel the user-lookup endpoint returns for an
// unknown username. Matched exactly.
const notFoundMessage = "Not Found"

type Client struct {
	client *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type config struct {
	token   types.GitHubToken
	baseURL string
}

type Option func(*config)

// WithToken sets a personal access token. Without a token, requests are sent
// unauthenticated with the lower rate limit.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithBaseURL overrides the API endpoint, e.g. for GitHub Enterprise Server
// or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	transport, err := github_ratelimit.NewRateLimitWaiter(http.DefaultTransport)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create rate limit waiter")
	}

	httpClient := &http.Client{Transport: transport}
	if cfg.token != "" {
		httpClient.Transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)}),
		}
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		base, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse base URL", goerr.V("baseURL", cfg.baseURL))
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = base
	}

	return &Client{client: client}, nil
}

func (x *Client) GetUser(ctx context.Context, username types.Username) (*model.GitHubUser, error) {
	user, resp, err := x.client.Users.Get(ctx, string(username))
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Message == notFoundMessage {
			return nil, goerr.Wrap(types.ErrUserNotFound, "user lookup",
				goerr.V("username", username),
			)
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("username", username))
	}

	logging.From(ctx).Debug("fetched user profile",
		slog.String("login", user.GetLogin()),
		slog.Int("status", resp.StatusCode),
	)

	return &model.GitHubUser{
		Login:     user.GetLogin(),
		AvatarURL: user.GetAvatarURL(),
		Name:      user.GetName(),
		Bio:       user.GetBio(),
		ReposURL:  user.GetReposURL(),
	}, nil
}

// ListRepos fetches the repository listing at reposURL. The URL comes from
// the repos_url field of the user response and is used as-is.
func (x *Client) ListRepos(ctx context.Context, reposURL string) ([]*model.GitHubRepo, error) {
	req, err := x.client.NewRequest(http.MethodGet, reposURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build repos request", goerr.V("url", reposURL))
	}

	var repos []*model.GitHubRepo
	resp, err := x.client.Do(ctx, req, &repos)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repos", goerr.V("url", reposURL))
	}

	logging.From(ctx).Debug("fetched repositories",
		slog.String("url", reposURL),
		slog.Int("count", len(repos)),
		slog.Int("status", resp.StatusCode),
	)

	return repos, nil
}
