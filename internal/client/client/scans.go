package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/netx"
)

var errMissingToken = errors.New("response has no access token")

const resumeContentType = "application/pdf"

func (c *APIClient) ListScans(ctx context.Context, skip, limit int) (*models.ScanList, error) {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/scans", q, nil, "")
	if err != nil {
		return nil, err
	}

	var out models.ScanList
	if err := c.call(ctx, req, true, "Failed to load scans", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetScan(ctx context.Context, id string) (*models.Scan, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/scans/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return nil, err
	}

	var out models.Scan
	if err := c.call(ctx, req, true, "Failed to load scan details", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateScan analyzes already-extracted resume text and stores the result.
func (c *APIClient) CreateScan(ctx context.Context, in models.ScanCreate) (*models.Scan, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/scans", in)
	if err != nil {
		return nil, err
	}

	var out models.Scan
	if err := c.call(ctx, req, true, "Failed to create scan", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateScan changes a stored scan; the backend re-analyzes it.
func (c *APIClient) UpdateScan(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/scans/"+url.PathEscape(id), upd)
	if err != nil {
		return nil, err
	}

	var out models.Scan
	if err := c.call(ctx, req, true, "Failed to update scan", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) DeleteScan(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/scans/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return err
	}
	return c.call(ctx, req, true, "Failed to delete scan", nil)
}

func (c *APIClient) DeleteAllScans(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/scans", nil, nil, "")
	if err != nil {
		return err
	}
	return c.call(ctx, req, true, "Failed to delete scans", nil)
}

// UploadScan sends a PDF resume with a job description; the backend
// analyzes and stores it for the current user.
func (c *APIClient) UploadScan(ctx context.Context, jd, filename string, resume []byte) (*models.Scan, error) {
	req, err := c.newUploadRequest(ctx, "/api/scans/upload", jd, filename, resume)
	if err != nil {
		return nil, err
	}

	var out models.Scan
	if err := c.call(ctx, req, true, "Failed to save scan", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeResume runs an analysis without storing it. No session is needed.
// A backend-side failure comes back as an Analysis with Error set, not as
// an error.
func (c *APIClient) AnalyzeResume(ctx context.Context, jd, filename string, resume []byte) (*models.Analysis, error) {
	req, err := c.newUploadRequest(ctx, "/analyze-resume/", jd, filename, resume)
	if err != nil {
		return nil, err
	}

	var out models.Analysis
	if err := c.call(ctx, req, false, "Analysis failed", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the backend answers.
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/test/", nil, nil, "")
	if err != nil {
		return err
	}
	return c.call(ctx, req, false, "Server is not responding", nil)
}

func (c *APIClient) newUploadRequest(ctx context.Context, path, jd, filename string, resume []byte) (*http.Request, error) {
	body, ct, err := netx.NewMultipartBody(
		[]netx.Field{{Name: "jd", Value: jd}},
		netx.FilePart{Field: "resume", Filename: filename, ContentType: resumeContentType, Data: resume},
	)
	if err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodPost, path, nil, body, ct)
}
