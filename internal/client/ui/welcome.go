package ui

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/dmitrijs2005/atsscan/internal/client/render"
	"github.com/dmitrijs2005/atsscan/internal/common"
)

// Greeting picks the salutation by the hour of now and addresses the user
// by name, else by the local part of the email, else as "there".
func Greeting(u *models.User, now time.Time) string {
	var salutation string
	switch h := now.Hour(); {
	case h < 12:
		salutation = "Good morning"
	case h < 18:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}
	return salutation + ", " + addressName(u) + "!"
}

func addressName(u *models.User) string {
	if u == nil {
		return "there"
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return *u.Name
	}
	if local, _, _ := strings.Cut(u.Email, "@"); local != "" {
		return local
	}
	return "there"
}

// Welcome renders the greeting banner, or nothing once it was dismissed in
// this process.
func (h *Handlers) Welcome(ctx context.Context) Instruction {
	v, err := h.transient.Get(ctx, common.WelcomeDismissedKey)
	if err != nil {
		h.log.Warn(ctx, "failed to read welcome state", "error", err)
	}
	if string(v) == "true" {
		return Instruction{Kind: KindInfo}
	}

	in := h.render(render.Welcome, render.WelcomeView{Greeting: Greeting(h.auth.CurrentUser(ctx), h.now())}, "")
	if in.Kind != KindError {
		in.Kind = KindInfo
	}
	return in
}

func (h *Handlers) DismissWelcome(ctx context.Context) error {
	return h.transient.Set(ctx, common.WelcomeDismissedKey, []byte("true"))
}

// AuthState describes the header: the user label and the actions on offer.
// A token without a cached user counts as logged out for display.
func (h *Handlers) AuthState(ctx context.Context) render.NavView {
	v := render.NavView{View: string(h.nav.Current())}

	u := h.auth.CurrentUser(ctx)
	if h.auth.IsAuthenticated(ctx) && u != nil {
		v.Authenticated = true
		v.UserLabel = u.DisplayName()
		v.Actions = []string{"analyze", "save", "dashboard", "logout"}
		return v
	}
	v.Actions = []string{"analyze", "login", "signup"}
	return v
}

func (h *Handlers) Nav(ctx context.Context) Instruction {
	in := h.render(render.Nav, h.AuthState(ctx), "")
	if in.Kind != KindError {
		in.Kind = KindInfo
	}
	return in
}

// Home is the landing view for a logged-in user; anonymous users go to login.
func (h *Handlers) Home(ctx context.Context) Instruction {
	if !h.auth.IsAuthenticated(ctx) {
		return h.message(KindInfo, "Please login or signup to continue.", nav.ViewLogin)
	}
	in := h.Nav(ctx)
	in.Navigate = nav.ViewHome
	return in
}
