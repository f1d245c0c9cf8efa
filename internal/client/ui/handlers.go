package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/client"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/dmitrijs2005/atsscan/internal/client/render"
	"github.com/dmitrijs2005/atsscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/atsscan/internal/client/services"
	"github.com/dmitrijs2005/atsscan/internal/filex"
	"github.com/dmitrijs2005/atsscan/internal/logging"
)

// User-facing messages.
const (
	MsgInvalidAnalyzeInput = "Please enter a job description and upload a PDF resume."
	MsgLoginToSave         = "Please login to save your scan results."
	MsgLoginForDashboard   = "Please login to view your dashboard."
	MsgSessionExpired      = "Your session has expired. Please login again."
	MsgCannotConnect       = "Cannot connect to server. Please check your internet connection."
	MsgLoadStalled         = "Request is taking too long. Please check your connection and try again."
	MsgLoadFailed          = "Failed to load scans. Please try again."
	MsgTimedOut            = "Request timed out."
)

// DefaultLoadTimeout is when a slow scan list triggers the stall notice.
const DefaultLoadTimeout = 30 * time.Second

type Handlers struct {
	auth        services.AuthService
	scans       services.ScanService
	transient   metadata.Repository
	renderer    render.Renderer
	nav         nav.Navigator
	validate    *Validator
	log         logging.Logger
	loadTimeout time.Duration
	now         func() time.Time
	readResume  func(path string) (*filex.Resume, error)
}

type Option func(*Handlers)

func WithLogger(l logging.Logger) Option {
	return func(h *Handlers) { h.log = l }
}

// WithLoadTimeout sets the stall notice delay; zero disables it.
func WithLoadTimeout(d time.Duration) Option {
	return func(h *Handlers) { h.loadTimeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(h *Handlers) { h.now = now }
}

// NewHandlers wires the handlers. transient is process-scoped storage for
// UI state that must not outlive the session, such as a dismissed banner.
func NewHandlers(auth services.AuthService, scans services.ScanService, transient metadata.Repository,
	r render.Renderer, navigator nav.Navigator, opts ...Option) *Handlers {
	h := &Handlers{
		auth:        auth,
		scans:       scans,
		transient:   transient,
		renderer:    r,
		nav:         navigator,
		validate:    NewValidator(),
		log:         logging.Nop(),
		loadTimeout: DefaultLoadTimeout,
		now:         time.Now,
		readResume:  filex.ReadResume,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handlers) render(name string, data any, to nav.View) Instruction {
	body, err := render.String(h.renderer, name, data)
	if err != nil {
		h.log.Error(context.Background(), "render failed", "template", name, "error", err)
		return Instruction{Body: "failed to render output", Kind: KindError}
	}
	return Instruction{Body: body, Navigate: to}
}

func (h *Handlers) message(kind Kind, text string, to nav.View) Instruction {
	in := h.render(render.Message, render.MessageView{Level: kind.String(), Text: text}, to)
	if in.Kind != KindError {
		in.Kind = kind
	}
	return in
}

// errorText is the message shown for a failed call. fallback is used when
// the error carries nothing readable.
// A classified *client.Error wins over whatever its cause wraps.
func errorText(err error, fallback string) string {
	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "Request cancelled."
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out."
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func (h *Handlers) fail(ctx context.Context, op string, err error, fallback string) Instruction {
	h.log.Warn(ctx, op+" failed", "error", err, "kind", client.KindOf(err).String())

	var to nav.View
	switch client.KindOf(err) {
	case client.KindUnauthenticated, client.KindSessionExpired:
		to = nav.ViewLogin
	}
	return h.message(KindError, errorText(err, fallback), to)
}

// Analyze runs a one-off analysis that is not stored.
func (h *Handlers) Analyze(ctx context.Context, in AnalyzeInput) Instruction {
	in = in.normalize()
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, MsgInvalidAnalyzeInput, "")
	}

	resume, err := h.loadResume(in.ResumePath)
	if err != nil {
		return h.fail(ctx, "analyze", err, "Analysis failed")
	}

	a, err := h.scans.Analyze(ctx, in.JobDescription, resume)
	if err != nil {
		return h.fail(ctx, "analyze", err, "Analysis failed")
	}
	return h.render(render.Result, render.NewResultView(a.Result()), "")
}

// AnalyzeAndSave analyzes and stores the scan for the logged-in user.
func (h *Handlers) AnalyzeAndSave(ctx context.Context, in AnalyzeInput) Instruction {
	if !h.auth.IsAuthenticated(ctx) {
		return h.message(KindError, MsgLoginToSave, nav.ViewLogin)
	}

	in = in.normalize()
	if err := h.validate.Validate(in); err != nil {
		return h.message(KindError, MsgInvalidAnalyzeInput, "")
	}

	resume, err := h.loadResume(in.ResumePath)
	if err != nil {
		return h.fail(ctx, "save scan", err, "Failed to analyze and save scan")
	}

	scan, err := h.scans.Upload(ctx, in.JobDescription, resume)
	if err != nil {
		return h.fail(ctx, "save scan", err, "Failed to analyze and save scan")
	}
	return h.render(render.Result, render.NewResultView(scan.Result()), "")
}

func (h *Handlers) loadResume(path string) (*filex.Resume, error) {
	r, err := h.readResume(path)
	if errors.Is(err, filex.ErrNotPDF) || errors.Is(err, filex.ErrEmptyFile) {
		return nil, errors.New(MsgInvalidAnalyzeInput)
	}
	return r, err
}

// LoadScans fetches the dashboard list. When the request is still running
// after the load timeout, notify receives a stall notice once; the request
// itself keeps going. notify may be called from another goroutine.
func (h *Handlers) LoadScans(ctx context.Context, notify func(Instruction)) Instruction {
	if notify != nil && h.loadTimeout > 0 {
		var once sync.Once
		t := time.AfterFunc(h.loadTimeout, func() {
			once.Do(func() { notify(h.message(KindError, MsgLoadStalled, "")) })
		})
		defer t.Stop()
	}

	list, err := h.scans.List(ctx, 0, 0)
	if err != nil {
		h.log.Warn(ctx, "load scans failed", "error", err, "kind", client.KindOf(err).String())
		switch client.KindOf(err) {
		case client.KindUnauthenticated, client.KindSessionExpired:
			return h.message(KindError, MsgSessionExpired, nav.ViewLogin)
		case client.KindNetwork:
			return h.message(KindError, MsgCannotConnect, "")
		case client.KindTimeout:
			return h.message(KindError, MsgTimedOut, "")
		default:
			return h.message(KindError, errorText(err, MsgLoadFailed), "")
		}
	}
	return h.render(render.ScanList, render.NewListView(list), "")
}

// OpenDashboard switches to the dashboard: greeting first, then the list.
// Without a session it sends the user to login instead.
func (h *Handlers) OpenDashboard(ctx context.Context, notify func(Instruction)) Instruction {
	if !h.auth.IsAuthenticated(ctx) {
		return h.message(KindInfo, MsgLoginForDashboard, nav.ViewLogin)
	}

	welcome := h.Welcome(ctx)
	list := h.LoadScans(ctx, notify)
	if list.Navigate == "" {
		list.Navigate = nav.ViewDashboard
	}
	list.Body = welcome.Body + list.Body
	return list
}

func (h *Handlers) ViewScan(ctx context.Context, id string) Instruction {
	scan, err := h.scans.Get(ctx, id)
	if err != nil {
		return h.fail(ctx, "view scan", err, "Failed to load scan details")
	}
	return h.render(render.ScanDetail, render.NewDetailView(scan), "")
}

// DeleteScan removes a scan and shows the refreshed list.
func (h *Handlers) DeleteScan(ctx context.Context, id string) Instruction {
	if err := h.scans.Delete(ctx, id); err != nil {
		return h.fail(ctx, "delete scan", err, "Failed to delete scan")
	}
	done := h.message(KindSuccess, "Scan deleted.", "")
	list := h.LoadScans(ctx, nil)
	list.Body = done.Body + list.Body
	return list
}

func (h *Handlers) DeleteAllScans(ctx context.Context) Instruction {
	if err := h.scans.DeleteAll(ctx); err != nil {
		return h.fail(ctx, "delete scans", err, "Failed to delete scans")
	}
	return h.message(KindSuccess, "All scans deleted.", "")
}
