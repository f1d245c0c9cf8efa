package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/atsscan/internal/client/models"
	"github.com/dmitrijs2005/atsscan/internal/client/services"
	"github.com/dmitrijs2005/atsscan/internal/filex"
)

type fakeAuth struct {
	authenticated bool
	user          *models.User

	LoginRet   *models.User
	LoginErr   error
	SignupRet  *models.SignupResponse
	SignupErr  error
	VerifyRet  *models.User
	VerifyErr  error
	ResendRet  string
	ResendErr  error
	LogoutErr  error
	WhoRet     *services.Identity
	WhoErr     error
	RefreshRet *models.User
	RefreshErr error
	UpdateRet  *models.User
	UpdateErr  error
	DeleteErr  error
	PingErr    error

	LastSignupName *string
	LastUpdate     models.ProfileUpdate
	LogoutCalls    int
}

func (f *fakeAuth) Signup(ctx context.Context, email, password string, name *string) (*models.SignupResponse, error) {
	f.LastSignupName = name
	return f.SignupRet, f.SignupErr
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	if f.LoginErr == nil {
		f.authenticated, f.user = true, f.LoginRet
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuth) VerifyEmail(ctx context.Context, email, code string) (*models.User, error) {
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeAuth) ResendVerification(ctx context.Context, email string) (string, error) {
	return f.ResendRet, f.ResendErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.LogoutCalls++
	f.authenticated, f.user = false, nil
	return f.LogoutErr
}

func (f *fakeAuth) IsAuthenticated(ctx context.Context) bool     { return f.authenticated }
func (f *fakeAuth) CurrentUser(ctx context.Context) *models.User { return f.user }

func (f *fakeAuth) Whoami(ctx context.Context) (*services.Identity, error) { return f.WhoRet, f.WhoErr }

func (f *fakeAuth) Refresh(ctx context.Context) (*models.User, error) {
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = upd
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeAuth) DeleteAccount(ctx context.Context) error { return f.DeleteErr }
func (f *fakeAuth) Ping(ctx context.Context) error          { return f.PingErr }

type fakeScans struct {
	mu sync.Mutex

	ListRet    *models.ScanList
	ListErr    error
	ListBlock  chan struct{}
	GetRet     *models.Scan
	GetErr     error
	DeleteErr  error
	UploadRet  *models.Scan
	UploadErr  error
	AnalyzeRet *models.Analysis
	AnalyzeErr error

	ListCalls  int
	Deleted    []string
	LastUpload *filex.Resume
	LastJD     string
}

func (f *fakeScans) List(ctx context.Context, skip, limit int) (*models.ScanList, error) {
	f.mu.Lock()
	f.ListCalls++
	block := f.ListBlock
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.ListRet, f.ListErr
}

func (f *fakeScans) Get(ctx context.Context, id string) (*models.Scan, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeScans) Delete(ctx context.Context, id string) error {
	if f.DeleteErr == nil {
		f.Deleted = append(f.Deleted, id)
	}
	return f.DeleteErr
}

func (f *fakeScans) DeleteAll(ctx context.Context) error { return f.DeleteErr }

func (f *fakeScans) Upload(ctx context.Context, jd string, resume *filex.Resume) (*models.Scan, error) {
	f.LastJD, f.LastUpload = jd, resume
	return f.UploadRet, f.UploadErr
}

func (f *fakeScans) Analyze(ctx context.Context, jd string, resume *filex.Resume) (*models.Analysis, error) {
	f.LastJD, f.LastUpload = jd, resume
	return f.AnalyzeRet, f.AnalyzeErr
}

func (f *fakeScans) CreateFromText(ctx context.Context, in models.ScanCreate) (*models.Scan, error) {
	return nil, nil
}

func (f *fakeScans) Update(ctx context.Context, id string, upd models.ScanUpdate) (*models.Scan, error) {
	return nil, nil
}
