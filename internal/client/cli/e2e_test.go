package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/atsscan/internal/client/config"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/dmitrijs2005/atsscan/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	var revoked atomic.Bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "pw123456" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Incorrect email or password"}`)
				return
			}
			_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"bearer","user":{"id":"u1","email":"ann@example.com","name":"Ann","is_verified":true}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/scans":
			if revoked.Load() || r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `{"scans":[{"id":"s1","ats_score":82,"resume_filename":"cv.pdf","matched_keywords":["Go"],"timestamp":"2024-05-01T10:00:00"}],"total":1}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerBaseURL = srv.URL
	cfg.DatabasePath = filepath.Join(t.TempDir(), "session.db")

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	start := func(input string) (*App, *bytes.Buffer) {
		a, err := NewApp(ctx, cfg, logging.Nop())
		require.NoError(t, err)
		var out bytes.Buffer
		a.out = &out
		a.reader = bufio.NewReader(strings.NewReader(input))
		return a, &out
	}

	a, out := start("ann@example.com\nwrong\nann@example.com\npw123456\n")
	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Error: Incorrect email or password")
	assert.False(t, a.isLoggedIn(ctx))

	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Welcome back, Ann!")
	assert.Equal(t, "(Ann dashboard)", a.getStatus(ctx))
	require.NoError(t, a.Close())

	b, out := start("")
	t.Cleanup(func() { _ = b.Close() })
	require.True(t, b.isLoggedIn(ctx), "session is restored from the database")

	require.NoError(t, b.List(ctx))
	assert.Contains(t, out.String(), "[s1]")
	assert.Contains(t, out.String(), "82%")

	revoked.Store(true)
	out.Reset()
	require.NoError(t, b.List(ctx))
	assert.Contains(t, out.String(), "Your session has expired. Please login again.")
	assert.Equal(t, 1, strings.Count(out.String(), "Please log in"))
	assert.Equal(t, nav.ViewLogin, b.router.Current())
	assert.False(t, b.isLoggedIn(ctx))
}
