package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
)

func (h *Handlers) Login(ctx context.Context, in LoginInput) Instruction {
	in.Email = strings.TrimSpace(in.Email)
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, err.Error(), "")
	}

	u, err := h.auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		return h.fail(ctx, "login", err, "Login failed")
	}
	return h.message(KindSuccess, fmt.Sprintf("Welcome back, %s!", u.DisplayName()), nav.ViewDashboard)
}

func (h *Handlers) Signup(ctx context.Context, in SignupInput) Instruction {
	in.Email = strings.TrimSpace(in.Email)
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, err.Error(), "")
	}

	var name *string
	if n := strings.TrimSpace(in.Name); n != "" {
		name = &n
	}

	resp, err := h.auth.Signup(ctx, in.Email, in.Password, name)
	if err != nil {
		return h.fail(ctx, "signup", err, "Signup failed")
	}

	msg := resp.Message
	if msg == "" {
		msg = "Account created."
	}
	return h.message(KindSuccess,
		fmt.Sprintf("%s Enter the code from your email with: verify %s <code>", msg, in.Email), "")
}

func (h *Handlers) VerifyEmail(ctx context.Context, in VerifyInput) Instruction {
	in.Email = strings.TrimSpace(in.Email)
	in.Code = strings.TrimSpace(in.Code)
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, err.Error(), "")
	}

	u, err := h.auth.VerifyEmail(ctx, in.Email, in.Code)
	if err != nil {
		return h.fail(ctx, "verify email", err, "Verification failed")
	}
	return h.message(KindSuccess, fmt.Sprintf("Email verified. Welcome, %s!", u.DisplayName()), nav.ViewDashboard)
}

func (h *Handlers) ResendVerification(ctx context.Context, email string) Instruction {
	email = strings.TrimSpace(email)
	if err := h.validate.v.Var(email, "required,email"); err != nil {
		return h.message(KindError, "email must be a valid email", "")
	}

	msg, err := h.auth.ResendVerification(ctx, email)
	if err != nil {
		return h.fail(ctx, "resend verification", err, "Could not resend verification code")
	}
	if msg == "" {
		msg = "Verification code sent."
	}
	return h.message(KindSuccess, msg, "")
}

func (h *Handlers) Logout(ctx context.Context) Instruction {
	if err := h.auth.Logout(ctx); err != nil {
		h.log.Error(ctx, "logout failed", "error", err)
		return h.message(KindError, "Logout failed: "+err.Error(), nav.ViewLogin)
	}
	return h.message(KindSuccess, "You have been logged out.", nav.ViewLogin)
}

func (h *Handlers) Whoami(ctx context.Context) Instruction {
	id, err := h.auth.Whoami(ctx)
	if err != nil {
		return h.message(KindInfo, "Not logged in.", "")
	}

	var sb strings.Builder
	if id.User != nil {
		fmt.Fprintf(&sb, "Logged in as %s <%s>", id.User.DisplayName(), id.User.Email)
		if !id.User.IsVerified {
			sb.WriteString(" (email not verified)")
		}
	} else {
		sb.WriteString("Logged in")
	}
	if id.Claims != nil && id.Claims.ExpiresAt != nil {
		exp := id.Claims.ExpiresAt.Time
		if exp.Before(h.now()) {
			fmt.Fprintf(&sb, ". Token expired at %s", exp.Local().Format(time.RFC1123))
		} else {
			fmt.Fprintf(&sb, ". Token expires at %s", exp.Local().Format(time.RFC1123))
		}
	}
	sb.WriteString(".")
	return h.message(KindInfo, sb.String(), "")
}

// UpdateProfile changes name and/or password; at least one must be given.
func (h *Handlers) UpdateProfile(ctx context.Context, in ProfileInput) Instruction {
	if in.Name == nil && in.Password == nil {
		return h.message(KindError, "Nothing to update.", "")
	}
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, err.Error(), "")
	}

	u, err := h.auth.UpdateProfile(ctx, models.ProfileUpdate{Name: in.Name, Password: in.Password})
	if err != nil {
		return h.fail(ctx, "update profile", err, "Failed to update profile")
	}
	return h.message(KindSuccess, fmt.Sprintf("Profile updated for %s.", u.DisplayName()), "")
}

// RefreshProfile reloads the cached user from the backend.
func (h *Handlers) RefreshProfile(ctx context.Context) Instruction {
	u, err := h.auth.Refresh(ctx)
	if err != nil {
		return h.fail(ctx, "refresh profile", err, "Failed to load profile")
	}
	return h.message(KindInfo, fmt.Sprintf("Profile: %s <%s>.", u.DisplayName(), u.Email), "")
}

func (h *Handlers) DeleteAccount(ctx context.Context) Instruction {
	if err := h.auth.DeleteAccount(ctx); err != nil {
		return h.fail(ctx, "delete account", err, "Failed to delete account")
	}
	return h.message(KindSuccess, "Your account has been deleted.", nav.ViewLogin)
}

func (h *Handlers) Ping(ctx context.Context) Instruction {
	start := h.now()
	if err := h.auth.Ping(ctx); err != nil {
		return h.fail(ctx, "ping", err, "Server is not responding")
	}
	return h.message(KindSuccess, fmt.Sprintf("Server is up (%s).", h.now().Sub(start).Round(time.Millisecond)), "")
}
