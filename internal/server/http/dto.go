package httpserver

import "github.com/avolkhin/worldforge/internal/model"

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createWorldRequest struct {
	WorldName string `json:"worldName"`
}

type worldResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"worldName"`
	UserID int64  `json:"userId"`
}

type tileDTO struct {
	TileType string `json:"tileType"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type saveTilesRequest struct {
	Tiles []tileDTO `json:"tiles"`
}

func toWorldResponse(w model.World) worldResponse {
	return worldResponse{ID: w.ID, Name: w.Name, UserID: w.UserID}
}

func toWorldResponses(ws []model.World) []worldResponse {
	out := make([]worldResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWorldResponse(w))
	}
	return out
}

func toTileDTOs(ts []model.Tile) []tileDTO {
	out := make([]tileDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, tileDTO{TileType: t.TileType, X: t.X, Y: t.Y})
	}
	return out
}

func fromTileDTOs(worldID int64, ts []tileDTO) []model.Tile {
	out := make([]model.Tile, 0, len(ts))
	for _, t := range ts {
		out = append(out, model.Tile{WorldID: worldID, TileType: t.TileType, X: t.X, Y: t.Y})
	}
	return out
}
