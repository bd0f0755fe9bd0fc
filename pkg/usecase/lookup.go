package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/utils/logging"
)

// topRepoCount is how many repositories are kept for display.
const topRepoCount = 3

// Lookup is the two-stage pipeline: it fetches the user profile, and only
// when the profile was found it follows the repos_url of the response to
// fetch and rank the user's repositories.
//
// The username is passed through to the API unvalidated. On a transport or
// decode failure the state keeps its previous value and the error is
// returned to the caller.
func (x *UseCase) Lookup(ctx context.Context, username types.Username) error {
	user, err := x.clients.GitHub().GetUser(ctx, username)
	if errors.Is(err, types.ErrUserNotFound) {
		logging.From(ctx).Info("user not found", slog.String("username", string(username)))

		x.mu.Lock()
		x.state.Result = model.NotFound{}
		x.mu.Unlock()

		x.recordLookup(ctx, username, false)
		return nil
	}
	if err != nil {
		return err
	}

	x.mu.Lock()
	x.state.Result = model.Found{
		AvatarURL: user.AvatarURL,
		Name:      user.Name,
		Bio:       user.Bio,
	}
	x.mu.Unlock()

	x.recordLookup(ctx, username, true)

	return x.fetchRepos(ctx, user.ReposURL)
}

func (x *UseCase) fetchRepos(ctx context.Context, reposURL string) error {
	repos, err := x.clients.GitHub().ListRepos(ctx, reposURL)
	if err != nil {
		return err
	}

	summaries := model.TopStarred(repos, topRepoCount)

	x.mu.Lock()
	x.state.Repos = summaries
	x.mu.Unlock()

	logging.From(ctx).Info("repositories ranked",
		slog.Int("fetched", len(repos)),
		slog.Int("kept", len(summaries)),
	)

	return nil
}

// History returns the most recent lookups, newest first.
func (x *UseCase) History(ctx context.Context, limit int) ([]*model.LookupRecord, error) {
	return x.clients.History().Recent(ctx, limit)
}

// recordLookup stores a history entry. History is best effort: a storage
// failure must not fail the lookup itself.
func (x *UseCase) recordLookup(ctx context.Context, username types.Username, found bool) {
	record := &model.LookupRecord{
		Username:   username,
		Found:      found,
		LookedUpAt: logging.CtxTime(ctx),
	}
	if err := x.clients.History().Put(ctx, record); err != nil {
		logging.From(ctx).Warn("failed to record lookup history",
			slog.String("username", string(username)),
			slog.Any("error", err),
		)
	}
}
