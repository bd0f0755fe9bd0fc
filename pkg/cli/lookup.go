package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/infra"
	"github.com/m-mizutani/octolens/pkg/usecase"

	"github.com/m-mizutani/octolens/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// lookupCommand runs a single lookup from the command line and prints the
// resulting state as JSON. Useful for checking credentials and as a plain
// CLI counterpart of the web UI.
func lookupCommand() *cli.Command {
	var githubCfg config.GitHub

	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up a single GitHub user and print the result",
		ArgsUsage: "<username>",
		Flags:     githubCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one username is required")
			}
			username := types.Username(c.Args().First())

			ghClient, err := githubCfg.New()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)))
			if err := uc.Lookup(ctx, username); err != nil {
				return err
			}

			state := uc.State()
			out := struct {
				Result string              `json:"result"`
				User   *model.Found        `json:"user,omitempty"`
				Repos  []model.RepoSummary `json:"repos"`
			}{
				Repos: state.Repos,
			}
			switch v := state.Result.(type) {
			case model.Found:
				out.Result = "found"
				out.User = &v
			case model.NotFound:
				out.Result = "not_found"
			case model.NoRequestYet:
				out.Result = "no_request_yet"
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				return goerr.Wrap(err, "failed to encode lookup result")
			}

			return nil
		},
	}
}
