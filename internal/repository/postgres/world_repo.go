package postgres

import (
	"context"
	"errors"

	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/model"
	"github.com/jackc/pgx/v5"
)

// WorldRepo implements WorldRepository using PostgreSQL.
type WorldRepo struct{ db *DB }

// NewWorldRepo constructs a world repository.
func NewWorldRepo(db *DB) *WorldRepo { return &WorldRepo{db: db} }

// Create inserts a new world row and fills in the generated id. The
// (user_id, name) unique index backs the duplicate-name check under
// concurrent creates.
func (r *WorldRepo) Create(ctx context.Context, w *model.World) error {
	const q = `
INSERT INTO worlds (user_id, name)
VALUES ($1, $2)
RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, w.UserID, w.Name).Scan(&w.ID)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// ListByOwner returns all worlds owned by ownerID in insertion order.
func (r *WorldRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.World, error) {
	const q = `
SELECT id, user_id, name, created_at
FROM worlds WHERE user_id=$1
ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.World
	for rows.Next() {
		var w model.World
		if err = rows.Scan(&w.ID, &w.UserID, &w.Name, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// GetOwned selects a world scoped by owner; missing and not-owned rows are
// indistinguishable.
func (r *WorldRepo) GetOwned(ctx context.Context, ownerID, worldID int64) (*model.World, error) {
	const q = `
SELECT id, user_id, name, created_at
FROM worlds WHERE id=$1 AND user_id=$2`
	var w model.World
	row := r.db.Pool.QueryRow(ctx, q, worldID, ownerID)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// DeleteOwned removes the world row only. Tiles belonging to the world are
// deliberately left in place.
func (r *WorldRepo) DeleteOwned(ctx context.Context, ownerID, worldID int64) error {
	const q = `DELETE FROM worlds WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, worldID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// CountByOwner returns the number of worlds currently owned by ownerID.
func (r *WorldRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM worlds WHERE user_id=$1`
	var n int
	if err := r.db.Pool.QueryRow(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// NameTaken reports whether ownerID already owns a world with this exact name.
func (r *WorldRepo) NameTaken(ctx context.Context, ownerID int64, name string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM worlds WHERE user_id=$1 AND name=$2)`
	var taken bool
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, name).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}
