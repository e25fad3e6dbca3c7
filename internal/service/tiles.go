package service

import (
	"context"

	"github.com/avolkhin/worldforge/internal/model"
	"github.com/avolkhin/worldforge/internal/repository"
)

// TileService manages the tile grid of a world as one replaceable unit.
// Tile operations are scoped by world id only, not by owner; callers are
// authenticated but not checked against the world's owner.
type TileService interface {
	// List returns every tile of the world.
	List(ctx context.Context, worldID int64) ([]model.Tile, error)
	// Replace atomically overwrites the world's tile set. Tile types and
	// coordinates are stored as-is; duplicates are allowed.
	Replace(ctx context.Context, worldID int64, tiles []model.Tile) error
}

type TileServiceImpl struct {
	tiles repository.TileRepository
}

// NewTileService constructs TileService.
func NewTileService(tiles repository.TileRepository) *TileServiceImpl {
	return &TileServiceImpl{tiles: tiles}
}

// List returns the world's tiles.
func (s *TileServiceImpl) List(ctx context.Context, worldID int64) ([]model.Tile, error) {
	return s.tiles.ListByWorld(ctx, worldID)
}

// Replace delegates the atomic delete-and-insert to the repository.
func (s *TileServiceImpl) Replace(ctx context.Context, worldID int64, tiles []model.Tile) error {
	return s.tiles.ReplaceAll(ctx, worldID, tiles)
}
