package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/dmitrijs2005/atsscan/internal/client/session"
	"github.com/dmitrijs2005/atsscan/internal/common"
	"github.com/dmitrijs2005/atsscan/internal/logging"
	"github.com/dmitrijs2005/atsscan/internal/netx"
	"github.com/google/uuid"
)

// APIClient talks to the scan backend over HTTP and owns the session
// side effects of doing so.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	nav        nav.Navigator
	log        logging.Logger
	timeout    time.Duration
}

type Option func(*APIClient)

// WithHTTPClient uses a copy of hc, so later options never touch the
// caller's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		if hc == nil {
			return
		}
		cp := *hc
		c.httpClient = &cp
	}
}

// WithTimeout bounds each request. It applies after all other options,
// whatever their order.
func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *APIClient) { c.log = l }
}

// NewAPIClient validates baseURL and builds a client bound to the session
// and navigator. The navigator may be nil when no redirects are wanted.
func NewAPIClient(baseURL string, sess *session.Session, navigator nav.Navigator, opts ...Option) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		session:    sess,
		nav:        navigator,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	return c, nil
}

func (c *APIClient) BaseURL() string { return c.baseURL }

// AuthenticatedFetch sends req with the stored bearer token.
//
// Without a token it fails with ErrUnauthenticated before anything is sent.
// A 401 response clears the session and yields ErrSessionExpired. In both
// cases a protected view is redirected to login first. Transport failures
// become ErrNetwork. Any other response is returned as is with its body
// unread; the caller closes it.
func (c *APIClient) AuthenticatedFetch(ctx context.Context, req *http.Request) (*http.Response, error) {
	token := c.session.Token(ctx)
	if token == "" {
		c.redirectIfProtected()
		return nil, ErrUnauthenticated
	}

	req = req.Clone(ctx)
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()

		if err := c.session.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear expired session", "error", err)
		}
		c.redirectIfProtected()
		return nil, ErrSessionExpired
	}

	return resp, nil
}

// Logout clears the session and always lands on the login view.
func (c *APIClient) Logout(ctx context.Context) error {
	err := c.session.Clear(ctx)
	if c.nav != nil {
		c.nav.Navigate(nav.ViewLogin)
	}
	return err
}

func (c *APIClient) redirectIfProtected() {
	if c.nav != nil && c.nav.Current().RequiresAuth() {
		c.nav.Navigate(nav.ViewLogin)
	}
}

// do dispatches req with a request id and maps transport failures.
func (c *APIClient) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	reqID := req.Header.Get(common.RequestIDHeaderName)
	if reqID == "" {
		reqID = uuid.NewString()
		req.Header.Set(common.RequestIDHeaderName, reqID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.Warn(ctx, "request failed",
			"request_id", reqID, "method", req.Method, "path", req.URL.Path, "error", err)
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, networkError(c.baseURL, err)
	}

	c.log.Debug(ctx, "request done",
		"request_id", reqID, "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := netx.JoinURL(c.baseURL, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *APIClient) newJSONRequest(ctx context.Context, method, path string, v any) (*http.Request, error) {
	if v == nil {
		return c.newRequest(ctx, method, path, nil, nil, "")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return c.newRequest(ctx, method, path, nil, bytes.NewReader(b), "application/json")
}

// call sends req, through AuthenticatedFetch when auth is set, and decodes
// a successful body into out. fallback names the failed operation when the
// backend gives no message of its own.
func (c *APIClient) call(ctx context.Context, req *http.Request, auth bool, fallback string, out any) error {
	var (
		resp *http.Response
		err  error
	)
	if auth {
		resp, err = c.AuthenticatedFetch(ctx, req)
	} else {
		resp, err = c.do(req)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, fallback)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return decodeError(err)
	}
	return nil
}
