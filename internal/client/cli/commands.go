package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/atsscan/internal/client/ui"
	"github.com/dmitrijs2005/atsscan/internal/common"
	"github.com/dmitrijs2005/atsscan/internal/filex"
)

// getPassword and ensureExportDir are indirections used to facilitate testing.
var (
	getPassword     = GetPassword
	ensureExportDir = func() (string, error) { return filex.EnsureSubdDir(ExportDir) }
)

type lockedWriter struct{ a *App }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.a.mu.Lock()
	defer w.a.mu.Unlock()
	return w.a.out.Write(p)
}

func (a *App) w() io.Writer { return lockedWriter{a} }

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.w())
}

// password reads without echo on a terminal and as a plain line otherwise,
// so the client can be scripted. The caller wipes the result.
func (a *App) password(prompt string) ([]byte, error) {
	if isTerminal(int(os.Stdin.Fd())) {
		return getPassword(a.w())
	}
	s, err := a.ask(prompt)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// argOrAsk returns args[i] if present, otherwise prompts for it.
func (a *App) argOrAsk(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return a.ask(prompt)
}

func (a *App) Signup(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	pw, err := a.password("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	name, err := a.ask("Enter name (optional)")
	if err != nil {
		return err
	}

	a.show(a.handlers.Signup(ctx, ui.SignupInput{Email: email, Password: string(pw), Name: name}))
	return nil
}

func (a *App) Verify(ctx context.Context, args []string) error {
	email, err := a.argOrAsk(args, 0, "Enter email")
	if err != nil {
		return err
	}
	code, err := a.argOrAsk(args, 1, "Enter the 6-digit code from your email")
	if err != nil {
		return err
	}
	a.show(a.handlers.VerifyEmail(ctx, ui.VerifyInput{Email: email, Code: code}))
	return nil
}

func (a *App) Resend(ctx context.Context, args []string) error {
	email, err := a.argOrAsk(args, 0, "Enter email")
	if err != nil {
		return err
	}
	a.show(a.handlers.ResendVerification(ctx, email))
	return nil
}

// Login prompts for credentials. On success the saved session survives
// restarts of the client.
func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	pw, err := a.password("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	a.show(a.handlers.Login(ctx, ui.LoginInput{Email: email, Password: string(pw)}))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.show(a.handlers.Logout(ctx))
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	a.show(a.handlers.Whoami(ctx))
	return nil
}

// Profile with "refresh" reloads the cached profile; otherwise it prompts
// for a new name and password, where an empty answer keeps the old value.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "refresh" {
		a.show(a.handlers.RefreshProfile(ctx))
		return nil
	}

	var in ui.ProfileInput
	name, err := a.ask("New name (empty to keep)")
	if err != nil {
		return err
	}
	if name != "" {
		in.Name = &name
	}

	pw, err := a.password("New password (empty to keep)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	if len(pw) > 0 {
		p := string(pw)
		in.Password = &p
	}

	a.show(a.handlers.UpdateProfile(ctx, in))
	return nil
}

// Analyze collects a job description and a resume path. With save set the
// result is stored in the user's history.
func (a *App) Analyze(ctx context.Context, save bool) error {
	jd, err := GetMultiline(a.reader, "Paste the job description", a.w())
	if err != nil {
		return err
	}
	path, err := a.ask("Path to resume PDF")
	if err != nil {
		return err
	}

	in := ui.AnalyzeInput{JobDescription: jd, ResumePath: path}
	a.println("Analyzing...")
	if save {
		a.show(a.handlers.AnalyzeAndSave(ctx, in))
	} else {
		a.show(a.handlers.Analyze(ctx, in))
	}
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	a.show(a.handlers.OpenDashboard(ctx, a.show))
	return nil
}

func (a *App) List(ctx context.Context) error {
	a.show(a.handlers.LoadScans(ctx, a.show))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Enter scan id to show")
	if err != nil {
		return err
	}
	a.show(a.handlers.ViewScan(ctx, id))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Enter scan id to delete")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete scan %s?", id), a.w())
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	a.show(a.handlers.DeleteScan(ctx, id))
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete ALL saved scans? This cannot be undone.", a.w())
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	a.show(a.handlers.DeleteAllScans(ctx))
	return nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	id, err := a.argOrAsk(args, 0, "Enter scan id to export")
	if err != nil {
		return err
	}
	dir, err := ensureExportDir()
	if err != nil {
		return err
	}
	a.show(a.handlers.ExportScan(ctx, id, dir))
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete your account and all scans? This cannot be undone.", a.w())
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}
	a.show(a.handlers.DeleteAccount(ctx))
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	if err := a.handlers.DismissWelcome(ctx); err != nil {
		return err
	}
	a.println("Welcome message hidden for this session.")
	return nil
}

func (a *App) Home(ctx context.Context) error {
	a.show(a.handlers.Home(ctx))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	a.show(a.handlers.Nav(ctx))
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	a.show(a.handlers.Ping(ctx))
	return nil
}

var _ execIface = (*App)(nil)
