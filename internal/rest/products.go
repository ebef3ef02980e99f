package rest

import (
	"context"
	"fmt"
	"net/url"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// ProductService wraps the public catalog endpoints.
type ProductService struct {
	client *httpclient.Client
}

// NewProductService creates a new ProductService.
func NewProductService(client *httpclient.Client) *ProductService {
	return &ProductService{client: client}
}

// GetAll returns one page of the catalog.
func (s *ProductService) GetAll(ctx context.Context, page, size int) (domain.Page[domain.Product], error) {
	var resp domain.Page[domain.Product]
	err := s.client.Get(ctx, "/products", pageQuery(page, size), &resp)
	return resp, err
}

// GetByID returns a single product.
func (s *ProductService) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	var resp domain.Product
	err := s.client.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &resp)
	return resp, err
}

// GetByCategory returns the products of one category.
func (s *ProductService) GetByCategory(ctx context.Context, category string) (domain.Page[domain.Product], error) {
	var resp domain.Page[domain.Product]
	err := s.client.Get(ctx, "/products/category/"+url.PathEscape(category), nil, &resp)
	return resp, err
}

// GetFeatured returns the featured products.
func (s *ProductService) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	var resp []domain.Product
	err := s.client.Get(ctx, "/products/featured", nil, &resp)
	return resp, err
}

// Search searches the catalog by free text.
func (s *ProductService) Search(ctx context.Context, query string) (domain.Page[domain.Product], error) {
	q := url.Values{}
	q.Set("q", query)
	var resp domain.Page[domain.Product]
	err := s.client.Get(ctx, "/products/search", q, &resp)
	return resp, err
}
