// Package httpserver exposes the worldforge HTTP API handlers.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/worldforge/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth    service.AuthService
	worlds  service.WorldService
	tiles   service.TileService
	signKey []byte
	log     *zap.Logger
}

// New constructs an HTTP server with injected services. signKey must be the
// same key the auth service signs tokens with.
func New(auth service.AuthService, worlds service.WorldService, tiles service.TileService, signKey []byte, log *zap.Logger) *Server {
	return &Server{auth: auth, worlds: worlds, tiles: tiles, signKey: signKey, log: log}
}

// Router builds the route tree with shared middleware. World routes are
// ownership-scoped through the caller identity; tile routes are scoped by
// world id only.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(s.log))
	r.Use(Recover(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(s.signKey, s.log))
			r.Post("/worlds/create", s.handleCreateWorld)
			r.Get("/worlds/overview", s.handleListWorlds)
			r.Get("/worlds/{worldID}", s.handleGetWorld)
			r.Delete("/worlds/{worldID}", s.handleDeleteWorld)
			r.Get("/worlds/{worldID}/tiles", s.handleListTiles)
			r.Put("/worlds/{worldID}/tiles", s.handleSaveTiles)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
