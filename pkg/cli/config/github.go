package config

import (
	"log/slog"

	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/infra/ghapi"
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
			Usage:       "GitHub personal access token (optional, raises the rate limit)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTOLENS_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (e.g. GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OCTOLENS_GITHUB_BASE_URL"),
		},
	}
}

func (x GitHub) New() (*ghapi.Client, error) {
	var options []ghapi.Option
	if x.token != "" {
		options = append(options, ghapi.WithToken(x.token))
	}
	if x.baseURL != "" {
		options = append(options, ghapi.WithBaseURL(x.baseURL))
	}
	return ghapi.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
	)
}
