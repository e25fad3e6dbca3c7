package postgres

import (
	"context"
	"errors"

	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/model"
	"github.com/jackc/pgx/v5"
)

// TileRepo implements TileRepository using PostgreSQL.
type TileRepo struct{ db *DB }

// NewTileRepo constructs a tile repository.
func NewTileRepo(db *DB) *TileRepo { return &TileRepo{db: db} }

// ListByWorld returns every tile of the given world in insertion order.
func (r *TileRepo) ListByWorld(ctx context.Context, worldID int64) ([]model.Tile, error) {
	const q = `
SELECT id, world_id, tile_type, x, y
FROM tiles WHERE world_id=$1
ORDER BY id ASC`
	rows, err := r.db.Pool.Query(ctx, q, worldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tile
	for rows.Next() {
		var t model.Tile
		if err = rows.Scan(&t.ID, &t.WorldID, &t.TileType, &t.X, &t.Y); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the full tile set of a world inside one transaction:
// a failure between the delete and the inserts rolls everything back.
func (r *TileRepo) ReplaceAll(ctx context.Context, worldID int64, tiles []model.Tile) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const sel = `SELECT 1 FROM worlds WHERE id=$1`
	const del = `DELETE FROM tiles WHERE world_id=$1`
	const ins = `INSERT INTO tiles (world_id, tile_type, x, y) VALUES ($1,$2,$3,$4)`

	var one int
	if err = tx.QueryRow(ctx, sel, worldID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	if _, err = tx.Exec(ctx, del, worldID); err != nil {
		return err
	}
	for _, t := range tiles {
		if _, err = tx.Exec(ctx, ins, worldID, t.TileType, t.X, t.Y); err != nil {
			return err
		}
	}
	return nil
}
