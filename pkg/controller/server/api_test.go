package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/controller/server"
	"github.com/m-mizutani/octolens/pkg/domain/mock"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
)

func getJSON(t *testing.T, srv *server.Server, path string, out any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestAPILookupFound(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	var resp struct {
		Result string `json:"result"`
		User   *struct {
			AvatarURL string `json:"avatar_url"`
			Name      string `json:"name"`
			Bio       string `json:"bio"`
		} `json:"user"`
		Repos []model.RepoSummary `json:"repos"`
	}
	rec := getJSON(t, srv, "/api/v1/users/octocat", &resp)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, resp.Result).Equal("found")
	gt.True(t, resp.User != nil)
	gt.V(t, resp.User.Name).Equal("The Octocat")
	gt.V(t, resp.User.AvatarURL).Equal("https://avatars.example.com/u/583231")
	gt.A(t, resp.Repos).Length(3)
	gt.V(t, resp.Repos[0].Name).Equal("twenty")
}

func TestAPILookupNotFound(t *testing.T) {
	srv := newTestServer(newMockGitHub())

	var resp struct {
		Result string              `json:"result"`
		Repos  []model.RepoSummary `json:"repos"`
	}
	rec := getJSON(t, srv, "/api/v1/users/no-such-user", &resp)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, resp.Result).Equal("not_found")
	gt.A(t, resp.Repos).Length(0)
}

func TestAPILookupUpstreamError(t *testing.T) {
	gh := newMockGitHub()
	gh.GetUserFunc = func(ctx context.Context, username types.Username) (*model.GitHubUser, error) {
		return nil, errors.New("connection refused")
	}
	srv := newTestServer(gh)

	rec := getJSON(t, srv, "/api/v1/users/octocat", nil)

	gt.V(t, rec.Code).Equal(http.StatusBadGateway)
}

func TestAPIHistory(t *testing.T) {
	srv := newTestServer(newMockGitHub())
	postLookup(t, srv, "octocat")
	postLookup(t, srv, "no-such-user")

	var resp struct {
		Lookups []*model.LookupRecord `json:"lookups"`
	}
	rec := getJSON(t, srv, "/api/v1/history", &resp)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.A(t, resp.Lookups).Length(2)
	gt.V(t, string(resp.Lookups[0].Username)).Equal("no-such-user")
	gt.V(t, resp.Lookups[0].Found).Equal(false)
	gt.V(t, string(resp.Lookups[1].Username)).Equal("octocat")
}

func TestAPIHistoryLimit(t *testing.T) {
	srv := newTestServer(newMockGitHub())
	postLookup(t, srv, "octocat")
	postLookup(t, srv, "octocat")

	var resp struct {
		Lookups []*model.LookupRecord `json:"lookups"`
	}
	getJSON(t, srv, "/api/v1/history?limit=1", &resp)
	gt.A(t, resp.Lookups).Length(1)

	rec := getJSON(t, srv, "/api/v1/history?limit=bogus", nil)
	gt.V(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAPIHistoryError(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		HistoryFunc: func(ctx context.Context, limit int) ([]*model.LookupRecord, error) {
			return nil, errors.New("storage down")
		},
	}
	srv := server.New(mockUC)

	rec := getJSON(t, srv, "/api/v1/history", nil)
	gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
}
