package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avolkhin/worldforge/internal/errs"
)

// handleListTiles returns every tile of a world. Scoped by world id only.
func (s *Server) handleListTiles(w http.ResponseWriter, r *http.Request) {
	worldID, err := worldIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tiles, err := s.tiles.List(r.Context(), worldID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTileDTOs(tiles))
}

// handleSaveTiles overwrites the full tile set of a world in one transaction.
func (s *Server) handleSaveTiles(w http.ResponseWriter, r *http.Request) {
	worldID, err := worldIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req saveTilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", errs.ErrInvalidInput))
		return
	}
	if err := s.tiles.Replace(r.Context(), worldID, fromTileDTOs(worldID, req.Tiles)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "tiles saved"})
}
