package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/domain/model"
)

func TestTopStarred(t *testing.T) {
	t.Run("keeps the three highest by stars", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 1, Name: "five", HTMLURL: "https://github.com/x/five", StargazersCount: 5},
			{ID: 2, Name: "twenty-a", HTMLURL: "https://github.com/x/twenty-a", StargazersCount: 20},
			{ID: 3, Name: "twenty-b", HTMLURL: "https://github.com/x/twenty-b", StargazersCount: 20},
			{ID: 4, Name: "one", HTMLURL: "https://github.com/x/one", StargazersCount: 1},
			{ID: 5, Name: "nine", HTMLURL: "https://github.com/x/nine", StargazersCount: 9},
		}

		got := model.TopStarred(repos, 3)

		gt.A(t, got).Length(3)
		gt.V(t, got[0].Name).Equal("twenty-a")
		gt.V(t, got[1].Name).Equal("twenty-b")
		gt.V(t, got[2].Name).Equal("nine")
	})

	t.Run("ties keep input order", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 1, Name: "b", StargazersCount: 7},
			{ID: 2, Name: "a", StargazersCount: 7},
			{ID: 3, Name: "c", StargazersCount: 7},
		}

		got := model.TopStarred(repos, 3)

		gt.V(t, got[0].Name).Equal("b")
		gt.V(t, got[1].Name).Equal("a")
		gt.V(t, got[2].Name).Equal("c")
	})

	t.Run("caps at n even with more input", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 1, StargazersCount: 1},
			{ID: 2, StargazersCount: 2},
			{ID: 3, StargazersCount: 3},
			{ID: 4, StargazersCount: 4},
			{ID: 5, StargazersCount: 5},
		}

		got := model.TopStarred(repos, 3)

		gt.A(t, got).Length(3)
		gt.V(t, got[0].ID).Equal(int64(5))
	})

	t.Run("fewer than n repos returns all", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 1, StargazersCount: 1},
		}

		gt.A(t, model.TopStarred(repos, 3)).Length(1)
	})

	t.Run("does not mutate input order", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 1, StargazersCount: 1},
			{ID: 2, StargazersCount: 9},
		}

		_ = model.TopStarred(repos, 3)

		gt.V(t, repos[0].ID).Equal(int64(1))
		gt.V(t, repos[1].ID).Equal(int64(2))
	})

	t.Run("projects id, name and html_url", func(t *testing.T) {
		repos := []*model.GitHubRepo{
			{ID: 42, Name: "answer", HTMLURL: "https://github.com/x/answer", StargazersCount: 3},
		}

		got := model.TopStarred(repos, 3)

		gt.V(t, got[0]).Equal(model.RepoSummary{
			ID:   42,
			Name: "answer",
			URL:  "https://github.com/x/answer",
		})
	})
}

func TestNewLookupState(t *testing.T) {
	state := model.NewLookupState()

	gt.V(t, state.Result).Equal(model.NoRequestYet{})
	gt.A(t, state.Repos).Length(0)
}

func TestLookupStateClone(t *testing.T) {
	state := model.NewLookupState()
	state.Result = model.Found{Name: "octocat"}
	state.Repos = []model.RepoSummary{{ID: 1, Name: "hello"}}

	clone := state.Clone()
	state.Repos[0].Name = "mutated"

	gt.V(t, clone.Repos[0].Name).Equal("hello")
	gt.V(t, clone.Result).Equal(model.Found{Name: "octocat"})
}
