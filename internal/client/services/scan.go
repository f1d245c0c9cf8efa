package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/atsscan/internal/client/client"
	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/filex"
	"github.com/dmitrijs2005/atsscan/internal/logging"
)

// DefaultPageSize matches the backend's own default.
const DefaultPageSize = 50

var ErrEmptyID = errors.New("scan id is empty")

// ScanService runs analyses and manages the user's stored scans.
type ScanService interface {
	List(ctx context.Context, skip, limit int) (*models.ScanList, error)
	Get(ctx context.Context, id string) (*models.Scan, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Upload(ctx context.Context, jd string, resume *filex.Resume) (*models.Scan, error)
	Analyze(ctx context.Context, jd string, resume *filex.Resume) (*models.Analysis, error)
	CreateFromText(ctx context.Context, in models.ScanCreate) (*models.Scan, error)
	Update(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error)
}

type scanService struct {
	client client.Client
	log    logging.Logger
}

func NewScanService(c client.Client, log logging.Logger) ScanService {
	if log == nil {
		log = logging.Nop()
	}
	return &scanService{client: c, log: log}
}

func (s *scanService) List(ctx context.Context, skip, limit int) (*models.ScanList, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return s.client.ListScans(ctx, max(skip, 0), limit)
}

func (s *scanService) Get(ctx context.Context, id string) (*models.Scan, error) {
	id, err := cleanID(id)
	if err != nil {
		return nil, err
	}
	return s.client.GetScan(ctx, id)
}

func (s *scanService) Delete(ctx context.Context, id string) error {
	id, err := cleanID(id)
	if err != nil {
		return err
	}
	if err := s.client.DeleteScan(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "scan deleted", "scan_id", id)
	return nil
}

func (s *scanService) DeleteAll(ctx context.Context) error {
	if err := s.client.DeleteAllScans(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "all scans deleted")
	return nil
}

func (s *scanService) Upload(ctx context.Context, jd string, resume *filex.Resume) (*models.Scan, error) {
	scan, err := s.client.UploadScan(ctx, jd, resume.Name, resume.Data)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "scan saved", "scan_id", scan.ID, "score", scan.ATSScore)
	return scan, nil
}

// Analyze returns an error when the backend reports a failed analysis
// in the payload instead of the status code.
func (s *scanService) Analyze(ctx context.Context, jd string, resume *filex.Resume) (*models.Analysis, error) {
	a, err := s.client.AnalyzeResume(ctx, jd, resume.Name, resume.Data)
	if err != nil {
		return nil, err
	}
	if a.Error != "" {
		return nil, &client.Error{Kind: client.KindApplication, Message: a.Error}
	}
	return a, nil
}

func (s *scanService) CreateFromText(ctx context.Context, in models.ScanCreate) (*models.Scan, error) {
	if strings.TrimSpace(in.ResumeText) == "" || strings.TrimSpace(in.JobDescription) == "" {
		return nil, fmt.Errorf("resume text and job description are required")
	}
	return s.client.CreateScan(ctx, in)
}

func (s *scanService) Update(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error) {
	id, err := cleanID(id)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateScan(ctx, id, upd)
}

func cleanID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyID
	}
	return id, nil
}
