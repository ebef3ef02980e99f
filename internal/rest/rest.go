// Package rest contains the typed per-resource wrappers over the HTTP
// client core. They do URL and shape mapping only; retry, auth attachment
// and token rotation live in the client underneath.
package rest

import (
	"net/url"
	"strconv"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
)

// Services bundles every per-resource wrapper over one shared client.
type Services struct {
	Auth         *AuthService
	Products     *ProductService
	Cart         *CartService
	Orders       *OrderService
	Users        *UserService
	Blog         *BlogService
	Comments     *CommentService
	Testimonials *TestimonialService
	Contact      *ContactService
	Loyalty      *LoyaltyService
	Admin        *AdminService
}

// NewServices creates the full wrapper set over client.
func NewServices(client *httpclient.Client) *Services {
	return &Services{
		Auth:         NewAuthService(client),
		Products:     NewProductService(client),
		Cart:         NewCartService(client),
		Orders:       NewOrderService(client),
		Users:        NewUserService(client),
		Blog:         NewBlogService(client),
		Comments:     NewCommentService(client),
		Testimonials: NewTestimonialService(client),
		Contact:      NewContactService(client),
		Loyalty:      NewLoyaltyService(client),
		Admin:        NewAdminService(client),
	}
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}
