// Package models defines the client-side view of backend payloads.
package models

// User is the cached profile stored next to the token.
type User struct {
	ID         string     `json:"id,omitempty"`
	Email      string     `json:"email"`
	Name       *string    `json:"name,omitempty"`
	IsVerified bool       `json:"is_verified,omitempty"`
	CreatedAt  *Timestamp `json:"created_at,omitempty"`
}

// DisplayName is what the nav shows: the name when set, otherwise the email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}

type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type SignupResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	UserID  string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by login and email verification. Older backends
// send the token as "token" instead of "access_token".
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token,omitempty"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// BearerToken returns whichever token field the backend filled in.
func (r *LoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

type VerifyEmailRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}
