package repository

import (
	"context"

	"github.com/avolkhin/worldforge/internal/model"
)

// TileRepository provides bulk access to a world's tile grid.
type TileRepository interface {
	// ListByWorld returns every tile of the given world.
	ListByWorld(ctx context.Context, worldID int64) ([]model.Tile, error)
	// ReplaceAll atomically deletes the world's tiles and inserts the new
	// set in one transaction. Returns errs.ErrNotFound when the world
	// does not exist.
	ReplaceAll(ctx context.Context, worldID int64, tiles []model.Tile) error
}
