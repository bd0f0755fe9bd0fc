package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/utils/errutil"
)

type lookupResponse struct {
	Result string              `json:"result"`
	User   *profileResponse    `json:"user,omitempty"`
	Repos  []model.RepoSummary `json:"repos"`
}

type profileResponse struct {
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
}

type historyResponse struct {
	Lookups []*model.LookupRecord `json:"lookups"`
}

// stateToResponse projects the lookup state, dispatching on the variant.
func stateToResponse(state model.LookupState) lookupResponse {
	resp := lookupResponse{
		Repos: []model.RepoSummary{},
	}

	switch v := state.Result.(type) {
	case model.Found:
		resp.Result = "found"
		resp.User = &profileResponse{
			AvatarURL: v.AvatarURL,
			Name:      v.Name,
			Bio:       v.Bio,
		}
		if state.Repos != nil {
			resp.Repos = state.Repos
		}

	case model.NotFound:
		resp.Result = "not_found"

	case model.NoRequestYet:
		resp.Result = "no_request_yet"
	}

	return resp
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		errutil.HandleError(r.Context(), "failed to encode JSON response", err)
	}
}

func handleAPILookup(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase) {
	username := types.Username(chi.URLParam(r, "username"))

	if err := uc.Lookup(r.Context(), username); err != nil {
		errutil.HandleError(r.Context(), "lookup failed", err)
		writeJSON(w, r, http.StatusBadGateway, map[string]string{"error": "upstream lookup failed"})
		return
	}

	writeJSON(w, r, http.StatusOK, stateToResponse(uc.State()))
}

func handleAPIHistory(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, defaultLimit int) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := uc.History(r.Context(), limit)
	if err != nil {
		errutil.HandleError(r.Context(), "failed to load lookup history", err)
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "history unavailable"})
		return
	}
	if records == nil {
		records = []*model.LookupRecord{}
	}

	writeJSON(w, r, http.StatusOK, historyResponse{Lookups: records})
}
