package services

import (
	"context"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/session"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	session *session.Session

	SignupRet *models.SignupResponse
	SignupErr error

	LoginRet *models.LoginResponse
	LoginErr error

	VerifyRet *models.LoginResponse
	VerifyErr error

	ResendRet *models.MessageResponse
	ResendErr error

	MeRet *models.User
	MeErr error

	UpdateProfileRet *models.User
	UpdateProfileErr error

	DeleteAccountErr error
	PingErr          error

	ListRet *models.ScanList
	ListErr error

	GetRet *models.Scan
	GetErr error

	CreateRet *models.Scan
	UpdateRet *models.Scan
	DeleteErr error

	UploadRet *models.Scan
	UploadErr error

	AnalyzeRet *models.Analysis
	AnalyzeErr error

	// captured arguments
	LastLoginEmail   string
	LastSignupName   *string
	LastSkip         int
	LastLimit        int
	LastID           string
	LastUploadName   string
	LastUploadData   []byte
	LogoutCalls      int
	DeleteAllCalls   int
	DeleteAcctCalls  int
	LastProfileInput models.ProfileUpdate
}

func (f *fakeClient) Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error) {
	f.LastSignupName = name
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.LastLoginEmail = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	if f.session != nil {
		return f.session.Clear(ctx)
	}
	return nil
}

func (f *fakeClient) VerifyEmail(ctx context.Context, email, code string) (*models.LoginResponse, error) {
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) ResendVerification(ctx context.Context, email string) (*models.MessageResponse, error) {
	return f.ResendRet, f.ResendErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) { return f.MeRet, f.MeErr }

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.LastProfileInput = upd
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context) error {
	f.DeleteAcctCalls++
	return f.DeleteAccountErr
}

func (f *fakeClient) ListScans(ctx context.Context, skip, limit int) (*models.ScanList, error) {
	f.LastSkip, f.LastLimit = skip, limit
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetScan(ctx context.Context, id string) (*models.Scan, error) {
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateScan(ctx context.Context, in models.ScanCreate) (*models.Scan, error) {
	return f.CreateRet, nil
}

func (f *fakeClient) UpdateScan(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error) {
	f.LastID = id
	return f.UpdateRet, nil
}

func (f *fakeClient) DeleteScan(ctx context.Context, id string) error {
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) DeleteAllScans(ctx context.Context) error {
	f.DeleteAllCalls++
	return f.DeleteErr
}

func (f *fakeClient) UploadScan(ctx context.Context, jd, filename string, resume []byte) (*models.Scan, error) {
	f.LastUploadName = filename
	f.LastUploadData = append([]byte(nil), resume...)
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) AnalyzeResume(ctx context.Context, jd, filename string, resume []byte) (*models.Analysis, error) {
	return f.AnalyzeRet, f.AnalyzeErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }
