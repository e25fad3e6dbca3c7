package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avolkhin/worldforge/internal/errs"
)

// handleRegister creates a new user account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", errs.ErrInvalidInput))
		return
	}
	if _, err := s.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user registered successfully"})
}

// handleLogin authenticates a user and returns a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", errs.ErrInvalidInput))
		return
	}
	tok, _, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: tok})
}
