package rest

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// AuthService wraps the authentication endpoints. Login and register are the
// entry points to obtaining tokens; token rotation itself is handled inside
// the HTTP client core.
type AuthService struct {
	client *httpclient.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *httpclient.Client) *AuthService {
	return &AuthService{client: client}
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// Login exchanges credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := s.client.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password}, &resp)
	return resp, err
}

// Register creates an account and returns its token pair.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := s.client.Post(ctx, "/auth/register", req, &resp)
	return resp, err
}

// Logout invalidates the refresh token server-side.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.client.Post(ctx, "/auth/logout", map[string]string{"refreshToken": refreshToken}, nil)
}

// ForgotPassword triggers the password reset email flow.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := s.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &resp)
	return resp.Message, err
}

// ValidateResetToken checks whether a password reset token is still usable.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	err := s.client.Get(ctx, fmt.Sprintf("/auth/validate-reset-token/%s", token), nil, &resp)
	return resp.Valid, err
}

// ResetPassword completes the password reset flow.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := s.client.Post(ctx, "/auth/reset-password", map[string]string{
		"token":           token,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}, &resp)
	return resp.Message, err
}
