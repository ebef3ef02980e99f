package rest

import (
	"context"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// LoyaltyService wraps the loyalty program endpoints.
type LoyaltyService struct {
	client *httpclient.Client
}

// NewLoyaltyService creates a new LoyaltyService.
func NewLoyaltyService(client *httpclient.Client) *LoyaltyService {
	return &LoyaltyService{client: client}
}

// Points returns the account's loyalty balance.
func (s *LoyaltyService) Points(ctx context.Context) (domain.LoyaltyPoints, error) {
	var resp domain.LoyaltyPoints
	err := s.client.Get(ctx, "/loyalty/points", nil, &resp)
	return resp, err
}

// History returns one page of the loyalty ledger.
func (s *LoyaltyService) History(ctx context.Context, page, size int) (domain.Page[domain.LoyaltyTransaction], error) {
	var resp domain.Page[domain.LoyaltyTransaction]
	err := s.client.Get(ctx, "/loyalty/history", pageQuery(page, size), &resp)
	return resp, err
}

// Redeem exchanges points for a discount.
func (s *LoyaltyService) Redeem(ctx context.Context, points int64) error {
	return s.client.Post(ctx, "/loyalty/redeem", map[string]int64{"points": points}, nil)
}
