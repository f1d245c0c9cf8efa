package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
)

// Signup registers an account. Input is passed through unchecked; the
// backend validates it.
func (c *APIClient) Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/auth/signup",
		models.SignupRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, err
	}

	var out models.SignupResponse
	if err := c.call(ctx, req, false, "Signup failed", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. It does not touch the session;
// persisting the result is up to the caller.
func (c *APIClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/auth/login",
		models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := c.call(ctx, req, false, "Login failed", &out); err != nil {
		return nil, err
	}
	if out.BearerToken() == "" {
		return nil, decodeError(errMissingToken)
	}
	return &out, nil
}

// VerifyEmail confirms the emailed code and, like Login, returns a token
// without storing it.
func (c *APIClient) VerifyEmail(ctx context.Context, email, code string) (*models.LoginResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/auth/verify-email",
		models.VerifyEmailRequest{Email: email, VerificationCode: code})
	if err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := c.call(ctx, req, false, "Verification failed", &out); err != nil {
		return nil, err
	}
	if out.BearerToken() == "" {
		return nil, decodeError(errMissingToken)
	}
	return &out, nil
}

func (c *APIClient) ResendVerification(ctx context.Context, email string) (*models.MessageResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/auth/resend-verification",
		models.ResendVerificationRequest{Email: email})
	if err != nil {
		return nil, err
	}

	var out models.MessageResponse
	if err := c.call(ctx, req, false, "Could not resend verification code", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Me(ctx context.Context) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/me", nil, nil, "")
	if err != nil {
		return nil, err
	}

	var out models.User
	if err := c.call(ctx, req, true, "Failed to load profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/auth/profile", upd)
	if err != nil {
		return nil, err
	}

	var out models.User
	if err := c.call(ctx, req, true, "Failed to update profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the account server-side. The local session is left
// for the caller to clear.
func (c *APIClient) DeleteAccount(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/auth/account", nil, nil, "")
	if err != nil {
		return err
	}
	return c.call(ctx, req, true, "Failed to delete account", nil)
}
