package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/atsscan/internal/client/client"
	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportScan_WritesHTML(t *testing.T) {
	dir := t.TempDir()
	scans := &fakeScans{GetRet: &models.Scan{
		ID: "s1", ATSScore: 91, JobDescription: "Go <dev>", MatchedKeywords: []string{"Go"},
	}}
	h, _, _ := newTestHandlers(t, &fakeAuth{authenticated: true}, scans)

	got := h.ExportScan(context.Background(), "s1", dir)
	require.Equal(t, KindSuccess, got.Kind, got.Body)

	path := filepath.Join(dir, "scan-s1.html")
	assert.Contains(t, got.Body, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-tier="green"`)
	assert.Contains(t, string(data), "Go &lt;dev&gt;")
}

func TestExportScan_Expired(t *testing.T) {
	scans := &fakeScans{GetErr: client.ErrSessionExpired}
	h, _, _ := newTestHandlers(t, &fakeAuth{}, scans)

	got := h.ExportScan(context.Background(), "s1", t.TempDir())
	assert.True(t, got.IsError())
	assert.Equal(t, nav.ViewLogin, got.Navigate)
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "scan-abc-1.html", exportName("abc-1"))
	assert.Equal(t, "scan-______etc.html", exportName("../../etc"))
	assert.Equal(t, "scan-scan.html", exportName(""))
}
