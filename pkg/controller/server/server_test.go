package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/controller/server"
	"github.com/m-mizutani/octolens/pkg/domain/mock"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/infra"
	"github.com/m-mizutani/octolens/pkg/usecase"
)

func newMockGitHub() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		GetUserFunc: func(ctx context.Context, username types.Username) (*model.GitHubUser, error) {
			if username != "octocat" {
				return nil, goerr.Wrap(types.ErrUserNotFound, "user lookup")
			}
			return &model.GitHubUser{
				Login:     "octocat",
				AvatarURL: "https://avatars.example.com/u/583231",
				Name:      "The Octocat",
				Bio:       "I love git",
				ReposURL:  "https://api.example.com/users/octocat/repos",
			}, nil
		},
		ListReposFunc: func(ctx context.Context, reposURL string) ([]*model.GitHubRepo, error) {
			return []*model.GitHubRepo{
				{ID: 1, Name: "five", HTMLURL: "https://github.com/octocat/five", StargazersCount: 5},
				{ID: 2, Name: "twenty", HTMLURL: "https://github.com/octocat/twenty", StargazersCount: 20},
				{ID: 3, Name: "one", HTMLURL: "https://github.com/octocat/one", StargazersCount: 1},
				{ID: 4, Name: "nine", HTMLURL: "https://github.com/octocat/nine", StargazersCount: 9},
			}, nil
		},
	}
}

func newTestServer(gh *mock.GitHubClientMock) *server.Server {
	uc := usecase.New(infra.New(infra.WithGitHub(gh)))
	return server.New(uc)
}

func postLookup(t *testing.T, srv *server.Server, searchTerm string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"search-term": []string{searchTerm}}
	req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func getPage(t *testing.T, srv *server.Server) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestPageBeforeAnyRequest(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	rec := getPage(t, srv)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := rec.Body.String()
	gt.S(t, body).Contains(`name="search-term"`)
	gt.S(t, body).Contains("haven't made any requests")
	gt.S(t, body).NotContains("Top repositories")
}

func TestLookupFoundRendersProfileAndRepos(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	rec := postLookup(t, srv, "octocat")

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := rec.Body.String()
	gt.S(t, body).Contains("https://avatars.example.com/u/583231")
	gt.S(t, body).Contains("The Octocat")
	gt.S(t, body).Contains("I love git")
	gt.S(t, body).Contains("Top repositories")

	// top three by stars, least-starred repo is cut
	gt.S(t, body).Contains(`<a href="https://github.com/octocat/twenty">twenty</a>`)
	gt.S(t, body).Contains(`<a href="https://github.com/octocat/nine">nine</a>`)
	gt.S(t, body).Contains(`<a href="https://github.com/octocat/five">five</a>`)
	gt.S(t, body).NotContains("octocat/one")

	// the form is still rendered after a lookup
	gt.S(t, body).Contains(`name="search-term"`)
}

func TestLookupNotFound(t *testing.T) {
	gh := newMockGitHub()
	srv := newTestServer(gh)

	rec := postLookup(t, srv, "no-such-user")

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := rec.Body.String()
	gt.S(t, body).Contains("No user found")
	gt.S(t, body).NotContains("Top repositories")

	// no repository fetch for a missing user
	gt.A(t, gh.ListReposCalls()).Length(0)
}

func TestLookupErrorKeepsPriorState(t *testing.T) {
	gh := newMockGitHub()
	srv := newTestServer(gh)

	// establish a found state first
	postLookup(t, srv, "octocat")

	gh.GetUserFunc = func(ctx context.Context, username types.Username) (*model.GitHubUser, error) {
		return nil, errors.New("connection refused")
	}

	rec := postLookup(t, srv, "octocat")

	// the page re-renders from the previous state with no error surface
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.S(t, rec.Body.String()).Contains("The Octocat")
}

func TestLookupWithMockUseCase(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		LookupFunc: func(ctx context.Context, username types.Username) error {
			return nil
		},
		StateFunc: func() model.LookupState {
			return model.LookupState{Result: model.NoRequestYet{}}
		},
		HistoryFunc: func(ctx context.Context, limit int) ([]*model.LookupRecord, error) {
			return nil, nil
		},
	}
	srv := server.New(mockUC)

	postLookup(t, srv, "octocat")

	calls := mockUC.LookupCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Username).Equal(types.Username("octocat"))
}

func TestLookupPassesEmptyUsernameThrough(t *testing.T) {
	gh := newMockGitHub()
	srv := newTestServer(gh)

	postLookup(t, srv, "")

	// no validation on the form value: the lookup is issued as-is
	calls := gh.GetUserCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Username).Equal(types.Username(""))
}

func TestPageShowsRecentLookups(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	postLookup(t, srv, "octocat")
	rec := getPage(t, srv)

	gt.S(t, rec.Body.String()).Contains("Recent lookups")
}
