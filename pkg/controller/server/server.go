package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/types"
	"github.com/m-mizutani/octolens/pkg/utils/errutil"
	"github.com/m-mizutani/octolens/pkg/utils/logging"
)

// searchTermField is the form field name of the search input.
const searchTermField = "search-term"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	historyLimit int
}

type Option func(*config)

// WithHistoryLimit sets how many recent lookups the page shows.
func WithHistoryLimit(limit int) Option {
	return func(cfg *config) {
		cfg.historyLimit = limit
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		historyLimit: 5,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, uc, cfg.historyLimit)
	})

	r.Post("/lookup", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			safeWrite(w, http.StatusBadRequest, []byte("invalid form"))
			return
		}

		username := types.Username(r.PostFormValue(searchTermField))
		if err := uc.Lookup(r.Context(), username); err != nil {
			// A transport or decode failure keeps the previous state. The
			// page is re-rendered from that state; the failure surfaces in
			// logs and Sentry only.
			errutil.HandleError(r.Context(), "lookup failed", err)
		}

		renderPage(w, r, uc, cfg.historyLimit)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/{username}", func(w http.ResponseWriter, r *http.Request) {
			handleAPILookup(w, r, uc)
		})
		r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
			handleAPIHistory(w, r, uc, cfg.historyLimit)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
