// Package model defines domain entities used by services and repositories.
package model

import "time"

// User represents an account stored on the server. The salt doubles as the
// per-user MAC key for the stored password digest.
type User struct {
	ID        int64
	Username  string // unique, max 50 chars
	PwdHash   []byte // HMAC-SHA512(password) keyed with PwdSalt
	PwdSalt   []byte // per-user random MAC key
	CreatedAt time.Time
}

// World is a named tile container owned by exactly one user.
// Names are unique per owner, 1..25 characters.
type World struct {
	ID        int64
	UserID    int64 // FK -> users.id
	Name      string
	CreatedAt time.Time
}

// Tile is a single cell of a world grid. The whole tile set of a world is
// replaced as a unit; duplicate coordinates are allowed.
type Tile struct {
	ID       int64
	WorldID  int64
	TileType string
	X        int
	Y        int
}
