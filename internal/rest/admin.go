package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// AdminService wraps the back-office product and order management endpoints.
// Per-resource moderation (testimonials, comments) lives on the respective
// services; this one covers what only admins can touch.
type AdminService struct {
	client *httpclient.Client
}

// NewAdminService creates a new AdminService.
func NewAdminService(client *httpclient.Client) *AdminService {
	return &AdminService{client: client}
}

// CreateProduct adds a catalog entry.
func (s *AdminService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var resp domain.Product
	err := s.client.Post(ctx, "/admin/products", product, &resp)
	return resp, err
}

// UpdateProduct replaces a catalog entry.
func (s *AdminService) UpdateProduct(ctx context.Context, id int64, product domain.Product) (domain.Product, error) {
	var resp domain.Product
	err := s.client.Put(ctx, fmt.Sprintf("/admin/products/%d", id), nil, product, &resp)
	return resp, err
}

// DeleteProduct removes a catalog entry.
func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/products/%d", id), nil)
}

// ToggleProductFeatured flips the featured flag of a product.
func (s *AdminService) ToggleProductFeatured(ctx context.Context, id int64) (domain.Product, error) {
	var resp domain.Product
	err := s.client.Put(ctx, fmt.Sprintf("/admin/products/%d/toggle-featured", id), nil, nil, &resp)
	return resp, err
}

// Orders returns one page of every order.
func (s *AdminService) Orders(ctx context.Context, page, size int) (domain.Page[domain.Order], error) {
	var resp domain.Page[domain.Order]
	err := s.client.Get(ctx, "/admin/orders", pageQuery(page, size), &resp)
	return resp, err
}

// OrdersByStatus returns one page of orders in a given status.
func (s *AdminService) OrdersByStatus(ctx context.Context, status domain.OrderStatus, page, size int) (domain.Page[domain.Order], error) {
	q := pageQuery(page, size)
	q.Set("status", string(status))
	var resp domain.Page[domain.Order]
	err := s.client.Get(ctx, "/admin/orders", q, &resp)
	return resp, err
}

// UpdateOrderStatus advances an order through its lifecycle.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	q := url.Values{}
	q.Set("status", string(status))
	var resp domain.Order
	err := s.client.Put(ctx, fmt.Sprintf("/admin/orders/%d/status", id), q, nil, &resp)
	return resp, err
}

// OrderStats returns the order dashboard counters. The shape varies by
// backend version, so it is surfaced as raw JSON.
func (s *AdminService) OrderStats(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := s.client.Get(ctx, "/admin/orders/stats", nil, &resp)
	return resp, err
}
