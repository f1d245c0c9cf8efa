package client

import (
	"context"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
)

// Client is the backend API as seen by the services and UI handlers.
// APIClient is the HTTP implementation.
type Client interface {
	Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error)
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context, email, code string) (*models.LoginResponse, error)
	ResendVerification(ctx context.Context, email string) (*models.MessageResponse, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context) error

	ListScans(ctx context.Context, skip, limit int) (*models.ScanList, error)
	GetScan(ctx context.Context, id string) (*models.Scan, error)
	CreateScan(ctx context.Context, in models.ScanCreate) (*models.Scan, error)
	UpdateScan(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error)
	DeleteScan(ctx context.Context, id string) error
	DeleteAllScans(ctx context.Context) error
	UploadScan(ctx context.Context, jd, filename string, resume []byte) (*models.Scan, error)
	AnalyzeResume(ctx context.Context, jd, filename string, resume []byte) (*models.Analysis, error)

	Ping(ctx context.Context) error
}

var _ Client = (*APIClient)(nil)
