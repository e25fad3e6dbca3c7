// Package service contains application services for authentication and world management.
package service

import (
	"context"
	"fmt"
	"time"

	pkgcrypto "github.com/avolkhin/worldforge/internal/crypto"
	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/model"
	"github.com/avolkhin/worldforge/internal/repository"
	"github.com/avolkhin/worldforge/internal/token"
)

// maxUsernameLen matches the column width of users.username.
const maxUsernameLen = 50

// AuthService defines credential management and token issuance.
type AuthService interface {
	// Register creates a new user with a per-user random MAC key.
	Register(ctx context.Context, username, password string) (userID int64, err error)
	// Login verifies credentials and issues a signed bearer token.
	Login(ctx context.Context, username, password string) (accessToken string, expiresAt time.Time, err error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens token.Config
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens token.Config) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens}
}

// Register validates the username and password policy, derives the stored
// digest and persists the new identity record.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || len(username) > maxUsernameLen {
		return 0, fmt.Errorf("%w: username must be 1..%d characters", errs.ErrInvalidInput, maxUsernameLen)
	}
	if !pkgcrypto.IsStrongPassword(password) {
		return 0, errs.ErrWeakPassword
	}

	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return 0, err
	}
	u := &model.User{
		Username: username,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		PwdSalt:  salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login recomputes the digest with the stored MAC key and compares it to the
// stored one. An unknown username surfaces as ErrNotFound, a digest mismatch
// as ErrUnauthorized; both read-only.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.PwdSalt, u.PwdHash) {
		return "", time.Time{}, errs.ErrUnauthorized
	}
	return token.Issue(s.tokens, u.ID, u.Username)
}
