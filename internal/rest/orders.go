package rest

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// OrderService wraps the customer-facing order endpoints.
type OrderService struct {
	client *httpclient.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(client *httpclient.Client) *OrderService {
	return &OrderService{client: client}
}

// Create places an order from the checkout payload.
func (s *OrderService) Create(ctx context.Context, order domain.NewOrder) (domain.Order, error) {
	var resp domain.Order
	err := s.client.Post(ctx, "/orders", order, &resp)
	return resp, err
}

// Mine returns the authenticated user's orders.
func (s *OrderService) Mine(ctx context.Context) (domain.Page[domain.Order], error) {
	var resp domain.Page[domain.Order]
	err := s.client.Get(ctx, "/orders", nil, &resp)
	return resp, err
}

// GetByID returns a single order.
func (s *OrderService) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	var resp domain.Order
	err := s.client.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &resp)
	return resp, err
}

// Cancel cancels a pending order.
func (s *OrderService) Cancel(ctx context.Context, id int64) (domain.Order, error) {
	var resp domain.Order
	err := s.client.Put(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &resp)
	return resp, err
}
