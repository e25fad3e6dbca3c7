// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/avolkhin/worldforge/internal/model"
)

// UserRepository provides access to account records.
type UserRepository interface {
	// Create inserts a new user and fills in the generated id.
	// Returns errs.ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by id.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername loads a user by exact username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
