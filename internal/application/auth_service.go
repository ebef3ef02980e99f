package application

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/internal/rest"
)

// AuthAPI is the slice of the auth endpoints the service needs; implemented
// by rest.AuthService, stubbed in tests.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.AuthResponse, error)
	Register(ctx context.Context, req rest.RegisterRequest) (domain.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ValidateResetToken(ctx context.Context, token string) (bool, error)
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (string, error)
}

// AuthService drives the login/register/logout flows: exchanges credentials
// for a session, persists it together with the user profile, and notifies
// the user of the outcome.
type AuthService struct {
	api      AuthAPI
	sessions *SessionManager
	logger   domain.Logger
	notifier domain.Notifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(api AuthAPI, sessions *SessionManager, logger domain.Logger, notifier domain.Notifier) *AuthService {
	if api == nil {
		panic("auth api cannot be nil in NewAuthService")
	}
	if sessions == nil {
		panic("session manager cannot be nil in NewAuthService")
	}
	return &AuthService{api: api, sessions: sessions, logger: logger, notifier: notifier}
}

// Login authenticates and persists the resulting session. On failure the
// mapped message is surfaced through the notifier and no state changes.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notifier.Error(ctx, domain.UserMessage(err))
		return domain.User{}, err
	}
	user, err := s.establishSession(ctx, resp)
	if err != nil {
		return domain.User{}, err
	}
	s.notifier.Success(ctx, fmt.Sprintf("Welcome back, %s!", user.FirstName))
	return user, nil
}

// Register creates an account and persists its session.
func (s *AuthService) Register(ctx context.Context, req rest.RegisterRequest) (domain.User, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.notifier.Error(ctx, domain.UserMessage(err))
		return domain.User{}, err
	}
	user, err := s.establishSession(ctx, resp)
	if err != nil {
		return domain.User{}, err
	}
	s.notifier.Success(ctx, fmt.Sprintf("Account created. Welcome, %s!", user.FirstName))
	return user, nil
}

func (s *AuthService) establishSession(ctx context.Context, resp domain.AuthResponse) (domain.User, error) {
	session := domain.Session{AccessToken: resp.Token, RefreshToken: resp.RefreshToken}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return domain.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	// The auth response carries no id; it is filled in once the profile
	// endpoint is consulted.
	user := domain.User{
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Role:      resp.Role,
		Enabled:   true,
	}
	if err := s.sessions.SetUser(ctx, user); err != nil {
		s.logger.Warn(ctx, "Failed to persist user profile", "error", err.Error())
	}
	return user, nil
}

// Logout revokes the refresh token best-effort and always clears the local
// session.
func (s *AuthService) Logout(ctx context.Context) error {
	session := s.sessions.Session(ctx)
	if session.RefreshToken != "" {
		if err := s.api.Logout(ctx, session.RefreshToken); err != nil {
			s.logger.Warn(ctx, "Server-side logout failed, clearing local session anyway", "error", err.Error())
		}
	}
	return s.sessions.ClearSession(ctx)
}

// ForgotPassword triggers the reset email flow.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.api.ForgotPassword(ctx, email)
}

// ValidateResetToken checks a reset token.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	return s.api.ValidateResetToken(ctx, token)
}

// ResetPassword completes the reset flow.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (string, error) {
	return s.api.ResetPassword(ctx, token, newPassword, confirmPassword)
}

// CurrentUser returns the logged-in user, or nil.
func (s *AuthService) CurrentUser() *domain.User {
	return s.sessions.CurrentUser()
}

// IsAuthenticated reports whether a session is present.
func (s *AuthService) IsAuthenticated() bool {
	return s.sessions.IsAuthenticated()
}

// IsAdmin reports whether the logged-in user may access the admin surface.
func (s *AuthService) IsAdmin() bool {
	user := s.sessions.CurrentUser()
	return user != nil && user.IsAdmin()
}
