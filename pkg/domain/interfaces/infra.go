package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient

import (
	"context"

	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
)

// GitHubClient is the upstream GitHub REST API surface the application needs.
type GitHubClient interface {
	// GetUser looks up a user profile by name. When the API answers with its
	// not-found sentinel, the returned error wraps types.ErrUserNotFound.
	GetUser(ctx context.Context, username types.Username) (*model.GitHubUser, error)

	// ListRepos fetches the repository listing at reposURL, which is the URL
	// embedded in the user-lookup response.
	ListRepos(ctx context.Context, reposURL string) ([]*model.GitHubRepo, error)
}
