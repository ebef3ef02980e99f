package rest

import (
	"context"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// UserService wraps the profile endpoints.
type UserService struct {
	client *httpclient.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *httpclient.Client) *UserService {
	return &UserService{client: client}
}

// Stats returns the account's purchase summary.
func (s *UserService) Stats(ctx context.Context) (domain.UserStats, error) {
	var resp domain.UserStats
	err := s.client.Get(ctx, "/users/stats", nil, &resp)
	return resp, err
}

// Profile returns the authenticated user's profile.
func (s *UserService) Profile(ctx context.Context) (domain.User, error) {
	var resp domain.User
	err := s.client.Get(ctx, "/users/profile", nil, &resp)
	return resp, err
}

// UpdateProfile updates the authenticated user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	var resp domain.User
	err := s.client.Put(ctx, "/users/profile", nil, update, &resp)
	return resp, err
}
