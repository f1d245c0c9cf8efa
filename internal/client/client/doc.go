// Package client is the HTTP access layer for the resume-scan backend.
//
// # Overview
//
// APIClient wraps every backend endpoint. Calls that need a session go
// through AuthenticatedFetch, which attaches the stored bearer token,
// clears the session on a 401 and redirects protected views to login.
// Signup, Login, VerifyEmail, AnalyzeResume and Ping are sent without a
// token. Login and VerifyEmail return the token; storing it is the
// caller's job (see services.AuthService).
//
// The package also bootstraps the local sqlite database that backs the
// session (InitDatabase, RunMigrations).
//
// # Error Handling
//
// Failures are *Error values tagged with a Kind. Match them with errors.Is
// against ErrNetwork, ErrUnauthenticated, ErrSessionExpired, ErrApplication
// and ErrDecode, or read the kind with KindOf. Context cancellation is
// returned as the context's own error.
package client
