package rest

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// TestimonialService wraps the testimonial endpoints, public submission and
// admin moderation alike.
type TestimonialService struct {
	client *httpclient.Client
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(client *httpclient.Client) *TestimonialService {
	return &TestimonialService{client: client}
}

// Approved returns the approved testimonials.
func (s *TestimonialService) Approved(ctx context.Context) ([]domain.Testimonial, error) {
	var resp []domain.Testimonial
	err := s.client.Get(ctx, "/testimonials", nil, &resp)
	return resp, err
}

// Featured returns the featured testimonials.
func (s *TestimonialService) Featured(ctx context.Context) ([]domain.Testimonial, error) {
	var resp []domain.Testimonial
	err := s.client.Get(ctx, "/testimonials/featured", nil, &resp)
	return resp, err
}

// GetByID returns a single testimonial.
func (s *TestimonialService) GetByID(ctx context.Context, id int64) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Get(ctx, fmt.Sprintf("/testimonials/%d", id), nil, &resp)
	return resp, err
}

// Create submits a testimonial for moderation.
func (s *TestimonialService) Create(ctx context.Context, req domain.TestimonialRequest) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Post(ctx, "/testimonials", req, &resp)
	return resp, err
}

// All returns every testimonial, approved or not.
func (s *TestimonialService) All(ctx context.Context) ([]domain.Testimonial, error) {
	var resp []domain.Testimonial
	err := s.client.Get(ctx, "/testimonials/admin/all", nil, &resp)
	return resp, err
}

// AllPaged returns one page of every testimonial, for the admin list screen.
func (s *TestimonialService) AllPaged(ctx context.Context, page, size int) (domain.Page[domain.Testimonial], error) {
	var resp domain.Page[domain.Testimonial]
	err := s.client.Get(ctx, "/testimonials/admin/paged", pageQuery(page, size), &resp)
	return resp, err
}

// Pending returns the moderation queue.
func (s *TestimonialService) Pending(ctx context.Context) ([]domain.Testimonial, error) {
	var resp []domain.Testimonial
	err := s.client.Get(ctx, "/testimonials/admin/pending", nil, &resp)
	return resp, err
}

// Stats returns the moderation dashboard counters.
func (s *TestimonialService) Stats(ctx context.Context) (domain.TestimonialStats, error) {
	var resp domain.TestimonialStats
	err := s.client.Get(ctx, "/testimonials/admin/stats", nil, &resp)
	return resp, err
}

// Update edits a testimonial.
func (s *TestimonialService) Update(ctx context.Context, id int64, req domain.TestimonialRequest) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Put(ctx, fmt.Sprintf("/testimonials/admin/%d", id), nil, req, &resp)
	return resp, err
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/testimonials/admin/%d", id), nil)
}

// Approve approves a pending testimonial.
func (s *TestimonialService) Approve(ctx context.Context, id int64) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Post(ctx, fmt.Sprintf("/testimonials/admin/%d/approve", id), nil, &resp)
	return resp, err
}

// Reject rejects a pending testimonial.
func (s *TestimonialService) Reject(ctx context.Context, id int64) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Post(ctx, fmt.Sprintf("/testimonials/admin/%d/reject", id), nil, &resp)
	return resp, err
}

// ToggleFeatured flips the featured flag of a testimonial.
func (s *TestimonialService) ToggleFeatured(ctx context.Context, id int64) (domain.Testimonial, error) {
	var resp domain.Testimonial
	err := s.client.Post(ctx, fmt.Sprintf("/testimonials/admin/%d/toggle-featured", id), nil, &resp)
	return resp, err
}
