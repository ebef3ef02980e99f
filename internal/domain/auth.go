package domain

import "context"

// Role gates access to the admin surface of the storefront.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
)

// Session is the pair of tokens identifying an authenticated user. It is
// created on login/register/refresh, persisted to the local store, and
// cleared on logout or irrecoverable refresh failure.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Valid reports whether the session carries an access token. Absence means
// unauthenticated.
func (s Session) Valid() bool {
	return s.AccessToken != ""
}

// User is the client-side view of the authenticated account, built from the
// auth response and persisted locally.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`
	Enabled   bool   `json:"enabled"`
}

// IsAdmin reports whether the user may access admin-only operations.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the user may access moderation operations.
// Admins implicitly hold moderator access.
func (u User) IsModerator() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}

// AuthResponse is the payload returned by the login and register endpoints.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         Role   `json:"role"`
}

// RefreshResponse is the payload returned by the token refresh endpoint.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// TokenStore is the port through which the HTTP client core reads and
// rotates the persisted session. Implementations must tolerate concurrent
// use: the single-flight refresh flow reads and writes tokens while other
// requests read them.
type TokenStore interface {
	// Session returns the currently stored session. A zero Session means
	// unauthenticated.
	Session(ctx context.Context) Session

	// SaveSession persists both tokens, replacing any previous session.
	SaveSession(ctx context.Context, session Session) error

	// ClearSession removes the stored tokens and any dependent state (such
	// as the persisted user profile).
	ClearSession(ctx context.Context) error
}
