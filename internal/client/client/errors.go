package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failure at the place it happens so callers never have
// to inspect message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindUnauthenticated
	KindSessionExpired
	KindApplication
	KindDecode
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindSessionExpired:
		return "session_expired"
	case KindApplication:
		return "application"
	case KindDecode:
		return "decode"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is returned by every APIClient call that fails for a reason other
// than context cancellation.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message or status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNetwork         = &Error{Kind: KindNetwork, Message: "network error"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "Not authenticated"}
	ErrSessionExpired  = &Error{Kind: KindSessionExpired, Message: "Session expired. Please login again."}
	ErrApplication     = &Error{Kind: KindApplication, Message: "request failed"}
	ErrDecode          = &Error{Kind: KindDecode, Message: "invalid response"}
	ErrTimeout         = &Error{Kind: KindTimeout, Message: "Request timed out."}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func networkError(baseURL string, cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("Network error: Could not connect to server. Make sure the backend is running on %s", baseURL),
		Err:     cause,
	}
}

// timeoutError is a request the server accepted but did not answer within
// the client timeout.
func timeoutError(cause error) *Error {
	return &Error{Kind: KindTimeout, Message: "Request timed out.", Err: cause}
}

// isTimeout reports whether a transport error is the client timeout firing.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func decodeError(cause error) *Error {
	return &Error{Kind: KindDecode, Message: "invalid response from server", Err: cause}
}

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// errorFromResponse builds an application error from a non-2xx response.
// A JSON body contributes its "detail" or "message" field, falling back to
// the operation's own message; a non-JSON body yields the status text.
func errorFromResponse(resp *http.Response, fallback string) *Error {
	e := &Error{Kind: KindApplication, Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		e.Message = statusText(resp)
		return e
	}

	switch {
	case detailMessage(body.Detail) != "":
		e.Message = detailMessage(body.Detail)
	case body.Message != "":
		e.Message = body.Message
	case fallback != "":
		e.Message = fallback
	default:
		e.Message = statusText(resp)
	}
	return e
}

func statusText(resp *http.Response) string {
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return fmt.Sprintf("Server error (%d)", resp.StatusCode)
}

// detailMessage reads "detail" as either a string or a list of validation
// errors, joining the latter by their "msg" fields.
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
