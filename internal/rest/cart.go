package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// CartService wraps the remote cart endpoints. The cart manager calls these
// best-effort; the client-side cart never blocks on them.
type CartService struct {
	client *httpclient.Client
}

// NewCartService creates a new CartService.
func NewCartService(client *httpclient.Client) *CartService {
	return &CartService{client: client}
}

// Get fetches the server-side cart of the authenticated user.
func (s *CartService) Get(ctx context.Context) (domain.RemoteCart, error) {
	var resp domain.RemoteCart
	err := s.client.Get(ctx, "/cart", nil, &resp)
	return resp, err
}

// AddItem adds quantity of a product to the remote cart.
func (s *CartService) AddItem(ctx context.Context, productID int64, quantity int) (domain.RemoteCart, error) {
	var resp domain.RemoteCart
	err := s.client.Post(ctx, "/cart/add", map[string]any{"productId": productID, "quantity": quantity}, &resp)
	return resp, err
}

// UpdateItem sets the quantity of a remote cart line.
func (s *CartService) UpdateItem(ctx context.Context, itemID int64, quantity int) (domain.RemoteCart, error) {
	q := url.Values{}
	q.Set("quantity", strconv.Itoa(quantity))
	var resp domain.RemoteCart
	err := s.client.Put(ctx, fmt.Sprintf("/cart/items/%d", itemID), q, nil, &resp)
	return resp, err
}

// RemoveItem removes a line from the remote cart.
func (s *CartService) RemoveItem(ctx context.Context, itemID int64) (domain.RemoteCart, error) {
	var resp domain.RemoteCart
	err := s.client.Delete(ctx, fmt.Sprintf("/cart/items/%d", itemID), &resp)
	return resp, err
}

// Clear empties the remote cart.
func (s *CartService) Clear(ctx context.Context) error {
	return s.client.Delete(ctx, "/cart/clear", nil)
}
