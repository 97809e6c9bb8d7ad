// Package server exposes the Boreal analysis pipeline over HTTP: a thin,
// stateless wrapper so editor integrations and other external callers can
// drive the same boreal.Analyze/boreal.FindDefinition entry points the Go
// API offers, without linking against this module directly.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oxixes/boreal-lang-ext/server/api"
	"github.com/oxixes/boreal-lang-ext/server/middle"
)

// Server is a Boreal debug server. Create one with New and pass its Router
// to http.ListenAndServe.
type Server struct {
	api    api.API
	cfg    Config
	Router chi.Router
}

// New creates a Server from cfg. cfg should already have had FillDefaults
// and Validate called on it.
func New(cfg Config) Server {
	srv := Server{
		cfg: cfg,
		api: api.API{
			UnauthDelay: cfg.UnauthDelay(),
			Secret:      cfg.TokenSecret,
			APIKeyHash:  cfg.APIKeyHash,
		},
	}
	srv.Router = srv.routes()
	return srv
}

func (srv Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middle.DontPanic())

	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Post("/login", srv.api.HTTPCreateLogin())

		r.Group(func(r chi.Router) {
			r.Use(middle.OptionalAuth(srv.cfg.TokenSecret, srv.cfg.UnauthDelay()))
			r.Get("/info", srv.api.HTTPGetInfo())
			r.Get("/definition", srv.api.HTTPGetDefinition())
			r.Post("/analyze", srv.api.HTTPCreateAnalyze())
		})
	})

	return r
}

// ListenAndServe starts the server listening on addr. It blocks until the
// server is shut down or encounters an error.
func (srv Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, srv.Router)
}
