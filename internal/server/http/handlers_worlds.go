package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/worldforge/internal/errs"
)

// callerIdentity reads the identity stored by RequireAuth. A miss means the
// route is wired outside the auth group, which is a server bug.
func (s *Server) callerIdentity(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	ident, ok := IdentityFromCtx(r.Context())
	if !ok {
		s.log.Error("identity missing from context",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromCtx(r.Context())),
		)
		writeError(w, errs.ErrUnauthorized)
	}
	return ident, ok
}

func worldIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "worldID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad world id", errs.ErrInvalidInput)
	}
	return id, nil
}

// handleCreateWorld creates a new world for the caller.
func (s *Server) handleCreateWorld(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.callerIdentity(w, r)
	if !ok {
		return
	}
	var req createWorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", errs.ErrInvalidInput))
		return
	}
	if _, err := s.worlds.Create(r.Context(), ident.UserID, req.WorldName); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "world created successfully"})
}

// handleListWorlds returns an overview of the caller's worlds.
func (s *Server) handleListWorlds(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.callerIdentity(w, r)
	if !ok {
		return
	}
	worlds, err := s.worlds.List(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorldResponses(worlds))
}

// handleGetWorld returns one world, only if the caller owns it.
func (s *Server) handleGetWorld(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.callerIdentity(w, r)
	if !ok {
		return
	}
	worldID, err := worldIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	world, err := s.worlds.Get(r.Context(), ident.UserID, worldID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorldResponse(*world))
}

// handleDeleteWorld removes one world, only if the caller owns it.
func (s *Server) handleDeleteWorld(w http.ResponseWriter, r *http.Request) {
	ident, ok := s.callerIdentity(w, r)
	if !ok {
		return
	}
	worldID, err := worldIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.worlds.Delete(r.Context(), ident.UserID, worldID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "world deleted successfully"})
}
