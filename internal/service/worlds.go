package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/model"
	"github.com/avolkhin/worldforge/internal/repository"
)

const (
	// defaultMaxWorlds is the per-user world quota.
	defaultMaxWorlds = 5
	// maxWorldNameLen matches the column width of worlds.name.
	maxWorldNameLen = 25
)

// WorldService enforces ownership and quota rules for worlds. Every operation
// takes the caller identity explicitly; there is no ambient current user.
type WorldService interface {
	// Create persists a new world for ownerID after name, quota and
	// duplicate checks.
	Create(ctx context.Context, ownerID int64, name string) (*model.World, error)
	// List returns all worlds owned by ownerID.
	List(ctx context.Context, ownerID int64) ([]model.World, error)
	// Get returns the world only if owned by ownerID.
	Get(ctx context.Context, ownerID, worldID int64) (*model.World, error)
	// Delete removes the world row only if owned by ownerID.
	Delete(ctx context.Context, ownerID, worldID int64) error
}

type WorldServiceImpl struct {
	worlds    repository.WorldRepository
	maxWorlds int
}

// NewWorldService constructs WorldService with the given quota.
func NewWorldService(worlds repository.WorldRepository, maxWorlds int) *WorldServiceImpl {
	if maxWorlds <= 0 {
		maxWorlds = defaultMaxWorlds
	}
	return &WorldServiceImpl{worlds: worlds, maxWorlds: maxWorlds}
}

// Create checks name length, the world quota and name uniqueness, then
// persists the world. The quota check is read-then-insert; the duplicate-name
// check is additionally backed by a unique index in the repository.
func (s *WorldServiceImpl) Create(ctx context.Context, ownerID int64, name string) (*model.World, error) {
	if n := utf8.RuneCountInString(name); n < 1 || n > maxWorldNameLen {
		return nil, fmt.Errorf("%w: world name must be 1..%d characters", errs.ErrInvalidInput, maxWorldNameLen)
	}

	count, err := s.worlds.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= s.maxWorlds {
		return nil, errs.ErrQuotaExceeded
	}

	taken, err := s.worlds.NameTaken(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrAlreadyExists
	}

	w := &model.World{UserID: ownerID, Name: name}
	if err := s.worlds.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// List returns the caller's worlds.
func (s *WorldServiceImpl) List(ctx context.Context, ownerID int64) ([]model.World, error) {
	return s.worlds.ListByOwner(ctx, ownerID)
}

// Get returns the world with ownership scoping; a world owned by someone else
// is reported as not found.
func (s *WorldServiceImpl) Get(ctx context.Context, ownerID, worldID int64) (*model.World, error) {
	return s.worlds.GetOwned(ctx, ownerID, worldID)
}

// Delete removes the world row with ownership scoping. Tiles of the deleted
// world stay behind; see the schema notes.
func (s *WorldServiceImpl) Delete(ctx context.Context, ownerID, worldID int64) error {
	return s.worlds.DeleteOwned(ctx, ownerID, worldID)
}
