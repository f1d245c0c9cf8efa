// Package services contains application services for the scan client.
// This file defines the authentication service: signup, login with session
// persistence, email verification, profile upkeep and logout.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/atsscan/internal/client/client"
	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/session"
	"github.com/dmitrijs2005/atsscan/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/VerifyEmail: obtain a token from the backend and persist token
//     and user together. Nothing is stored when the call fails.
//   - Logout: clear the session and land on the login view; safe to repeat.
//   - Refresh/UpdateProfile: replace the cached user, keeping the token.
//   - DeleteAccount: delete server-side, then log out locally.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	VerifyEmail(ctx context.Context, email, code string) (*models.User, error)
	ResendVerification(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.User
	Whoami(ctx context.Context) (*Identity, error)
	Refresh(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Identity is what whoami prints. Claims is nil when the token is not a
// decodable JWT.
type Identity struct {
	User   *models.User
	Claims *session.Claims
}

type authService struct {
	client  client.Client
	session *session.Session
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(c client.Client, s *session.Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: s, log: log}
}

func (a *authService) Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error) {
	return a.client.Signup(ctx, email, password, name)
}

// Login authenticates and stores the returned token and user in one write.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.persist(ctx, resp)
}

// VerifyEmail confirms the code; the backend logs the user in on success.
func (a *authService) VerifyEmail(ctx context.Context, email, code string) (*models.User, error) {
	resp, err := a.client.VerifyEmail(ctx, email, code)
	if err != nil {
		return nil, err
	}
	return a.persist(ctx, resp)
}

func (a *authService) persist(ctx context.Context, resp *models.LoginResponse) (*models.User, error) {
	if err := a.session.Save(ctx, resp.BearerToken(), resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	a.log.Info(ctx, "logged in", "email", resp.User.Email)

	u := resp.User
	return &u, nil
}

func (a *authService) ResendVerification(ctx context.Context, email string) (string, error) {
	resp, err := a.client.ResendVerification(ctx, email)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) *models.User {
	return a.session.CurrentUser(ctx)
}

func (a *authService) Whoami(ctx context.Context) (*Identity, error) {
	if !a.session.IsAuthenticated(ctx) {
		return nil, client.ErrUnauthenticated
	}

	id := &Identity{User: a.session.CurrentUser(ctx)}

	claims, err := a.session.Claims(ctx)
	if err != nil {
		a.log.Debug(ctx, "token is not a readable jwt", "error", err)
	} else {
		id.Claims = claims
	}
	return id, nil
}

// Refresh re-reads the profile from the backend and caches it.
func (a *authService) Refresh(ctx context.Context) (*models.User, error) {
	u, err := a.client.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.session.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	u, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if err := a.session.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.client.DeleteAccount(ctx); err != nil {
		return err
	}
	return a.Logout(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
