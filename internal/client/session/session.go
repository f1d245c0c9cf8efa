// Package session owns the client's authentication state: the bearer token
// and the cached user profile. Both live in a metadata.Repository under the
// "token" and "user" keys and are always written and cleared together.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/atsscan/internal/common"
	"github.com/dmitrijs2005/atsscan/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("empty token")

// Claims is the subset of the token payload shown by whoami.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

type Session struct {
	repo metadata.Repository
	log  logging.Logger
}

func New(repo metadata.Repository, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{repo: repo, log: log}
}

// Token returns the stored token, or "" when there is none. Storage errors
// are logged and reported as no token.
func (s *Session) Token(ctx context.Context) string {
	v, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read token", "error", err)
		return ""
	}
	return string(v)
}

// IsAuthenticated reports whether a token is present. The token is not
// checked for shape or expiry; the backend is the judge of that.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// CurrentUser returns the cached profile, or nil when it is missing or unreadable.
func (s *Session) CurrentUser(ctx context.Context) *models.User {
	v, err := s.repo.Get(ctx, common.UserKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read user", "error", err)
		return nil
	}
	if len(v) == 0 {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "stored user is malformed", "error", err)
		return nil
	}
	return &u
}

// Save stores token and user in one write.
func (s *Session) Save(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return ErrEmptyToken
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := s.repo.SetMany(ctx, map[string][]byte{
		common.TokenKey: []byte(token),
		common.UserKey:  raw,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// UpdateUser replaces the cached profile and keeps the token as is.
// It is a no-op without a token, so a user is never stored alone.
func (s *Session) UpdateUser(ctx context.Context, user models.User) error {
	token := s.Token(ctx)
	if token == "" {
		return nil
	}
	return s.Save(ctx, token, user)
}

// Clear removes token and user in one write. Clearing an empty session is fine.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.DeleteMany(ctx, common.TokenKey, common.UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Claims decodes the token payload without verifying its signature.
// The result is for display only and must never gate a request.
func (s *Session) Claims(ctx context.Context) (*Claims, error) {
	token := s.Token(ctx)
	if token == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}
