package repository

import (
	"context"

	"github.com/avolkhin/worldforge/internal/model"
)

// WorldRepository provides ownership-scoped access to worlds.
type WorldRepository interface {
	// Create inserts a new world and fills in the generated id.
	// Returns errs.ErrAlreadyExists when the owner already has a world
	// with the same name.
	Create(ctx context.Context, w *model.World) error
	// ListByOwner returns all worlds owned by ownerID.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.World, error)
	// GetOwned returns the world only if it is owned by ownerID;
	// missing and not-owned are both errs.ErrNotFound.
	GetOwned(ctx context.Context, ownerID, worldID int64) (*model.World, error)
	// DeleteOwned removes the world row only, with the same ownership
	// scoping as GetOwned. Tiles are not touched.
	DeleteOwned(ctx context.Context, ownerID, worldID int64) error
	// CountByOwner returns how many worlds ownerID currently owns.
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	// NameTaken reports whether ownerID already owns a world named name.
	NameTaken(ctx context.Context, ownerID int64, name string) (bool, error)
}
