package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/atsscan/internal/client/client"
	"github.com/dmitrijs2005/atsscan/internal/client/config"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/dmitrijs2005/atsscan/internal/client/render"
	"github.com/dmitrijs2005/atsscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/atsscan/internal/client/services"
	"github.com/dmitrijs2005/atsscan/internal/client/session"
	"github.com/dmitrijs2005/atsscan/internal/client/ui"
	"github.com/dmitrijs2005/atsscan/internal/logging"
)

// ExportDir is created under the working directory by the export command.
const ExportDir = "exports"

// handlers is the part of ui.Handlers the REPL drives.
type handlers interface {
	Signup(ctx context.Context, in ui.SignupInput) ui.Instruction
	VerifyEmail(ctx context.Context, in ui.VerifyInput) ui.Instruction
	ResendVerification(ctx context.Context, email string) ui.Instruction
	Login(ctx context.Context, in ui.LoginInput) ui.Instruction
	Logout(ctx context.Context) ui.Instruction
	Whoami(ctx context.Context) ui.Instruction
	UpdateProfile(ctx context.Context, in ui.ProfileInput) ui.Instruction
	RefreshProfile(ctx context.Context) ui.Instruction
	DeleteAccount(ctx context.Context) ui.Instruction
	Ping(ctx context.Context) ui.Instruction

	Analyze(ctx context.Context, in ui.AnalyzeInput) ui.Instruction
	AnalyzeAndSave(ctx context.Context, in ui.AnalyzeInput) ui.Instruction
	LoadScans(ctx context.Context, notify func(ui.Instruction)) ui.Instruction
	OpenDashboard(ctx context.Context, notify func(ui.Instruction)) ui.Instruction
	ViewScan(ctx context.Context, id string) ui.Instruction
	DeleteScan(ctx context.Context, id string) ui.Instruction
	DeleteAllScans(ctx context.Context) ui.Instruction
	ExportScan(ctx context.Context, id, dir string) ui.Instruction

	Home(ctx context.Context) ui.Instruction
	Nav(ctx context.Context) ui.Instruction
	DismissWelcome(ctx context.Context) error
	AuthState(ctx context.Context) render.NavView
}

var _ handlers = (*ui.Handlers)(nil)

type App struct {
	config   *config.Config
	handlers handlers
	router   *nav.Router
	reader   *bufio.Reader
	log      logging.Logger

	mu  sync.Mutex
	out io.Writer

	db *sql.DB
}

// NewApp opens the session database and wires the client stack described
// by c. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.New(metadata.NewSQLiteRepository(db), log)
	router := nav.NewRouter(nav.ViewHome)

	apiClient, err := client.NewAPIClient(c.ServerBaseURL, sess, router,
		client.WithTimeout(c.RequestTimeout), client.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	r, err := render.New(c.OutputFormat)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	h := ui.NewHandlers(
		services.NewAuthService(apiClient, sess, log),
		services.NewScanService(apiClient, log),
		metadata.NewMemoryRepository(),
		r, router,
		ui.WithLogger(log), ui.WithLoadTimeout(c.LoadTimeout),
	)

	a := newApp(h, router, bufio.NewReader(os.Stdin), os.Stdout)
	a.config, a.log, a.db = c, log, db
	return a, nil
}

func newApp(h handlers, router *nav.Router, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		handlers: h,
		router:   router,
		reader:   reader,
		out:      out,
		log:      logging.Nop(),
	}
	router.OnChange(func(from, to nav.View) {
		if to == nav.ViewLogin && from != nav.ViewLogin {
			a.println("Please log in: type 'login' (or 'signup' to create an account).")
		}
	})
	return a
}

// Run shows the landing view and blocks in the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to atsscan (type 'help' for commands)")
	_ = a.Home(ctx)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.handlers.AuthState(ctx).Authenticated
}

func (a *App) getStatus(ctx context.Context) string {
	st := a.handlers.AuthState(ctx)
	if st.Authenticated {
		return fmt.Sprintf("(%s %s)", st.UserLabel, st.View)
	}
	return fmt.Sprintf("(%s)", st.View)
}

// show prints an instruction body and then follows its navigation. It is
// safe to call from the stall notifier goroutine.
func (a *App) show(in ui.Instruction) {
	a.mu.Lock()
	_, _ = io.WriteString(a.out, in.Body)
	a.mu.Unlock()

	if in.Navigate != "" {
		a.router.Navigate(in.Navigate)
	}
}

func (a *App) println(args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintln(a.out, args...)
}
