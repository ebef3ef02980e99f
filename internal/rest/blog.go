package rest

import (
	"context"
	"fmt"
	"net/url"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// BlogService wraps the blog endpoints, public and authoring alike.
type BlogService struct {
	client *httpclient.Client
}

// NewBlogService creates a new BlogService.
func NewBlogService(client *httpclient.Client) *BlogService {
	return &BlogService{client: client}
}

// Posts returns one page of published posts.
func (s *BlogService) Posts(ctx context.Context, page, size int) (domain.Page[domain.BlogPost], error) {
	var resp domain.Page[domain.BlogPost]
	err := s.client.Get(ctx, "/blog", pageQuery(page, size), &resp)
	return resp, err
}

// AllPostsAdmin returns one page of every post, drafts included.
func (s *BlogService) AllPostsAdmin(ctx context.Context, page, size int) (domain.Page[domain.BlogPost], error) {
	var resp domain.Page[domain.BlogPost]
	err := s.client.Get(ctx, "/blog/admin/all", pageQuery(page, size), &resp)
	return resp, err
}

// PostByID returns a single post.
func (s *BlogService) PostByID(ctx context.Context, id int64) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Get(ctx, fmt.Sprintf("/blog/%d", id), nil, &resp)
	return resp, err
}

// PostBySlug returns a single post by slug.
func (s *BlogService) PostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Get(ctx, "/blog/slug/"+url.PathEscape(slug), nil, &resp)
	return resp, err
}

// FeaturedPosts returns the featured posts.
func (s *BlogService) FeaturedPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var resp []domain.BlogPost
	err := s.client.Get(ctx, "/blog/featured", nil, &resp)
	return resp, err
}

// SearchPosts searches posts by free text.
func (s *BlogService) SearchPosts(ctx context.Context, query string, page, size int) (domain.Page[domain.BlogPost], error) {
	q := pageQuery(page, size)
	q.Set("q", query)
	var resp domain.Page[domain.BlogPost]
	err := s.client.Get(ctx, "/blog/search", q, &resp)
	return resp, err
}

// PostsByTag returns the posts carrying a tag.
func (s *BlogService) PostsByTag(ctx context.Context, tag string, page, size int) (domain.Page[domain.BlogPost], error) {
	var resp domain.Page[domain.BlogPost]
	err := s.client.Get(ctx, "/blog/tag/"+url.PathEscape(tag), pageQuery(page, size), &resp)
	return resp, err
}

// MostViewedPosts returns the most viewed posts.
func (s *BlogService) MostViewedPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var resp []domain.BlogPost
	err := s.client.Get(ctx, "/blog/most-viewed", nil, &resp)
	return resp, err
}

// MyPosts returns the authenticated author's posts.
func (s *BlogService) MyPosts(ctx context.Context, page, size int) (domain.Page[domain.BlogPost], error) {
	var resp domain.Page[domain.BlogPost]
	err := s.client.Get(ctx, "/blog/author/me", pageQuery(page, size), &resp)
	return resp, err
}

// CreatePost creates a post.
func (s *BlogService) CreatePost(ctx context.Context, req domain.BlogPostRequest) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Post(ctx, "/blog", req, &resp)
	return resp, err
}

// UpdatePost updates a post.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, req domain.BlogPostRequest) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Put(ctx, fmt.Sprintf("/blog/%d", id), nil, req, &resp)
	return resp, err
}

// DeletePost deletes a post.
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/blog/%d", id), nil)
}

// PublishPost publishes a draft.
func (s *BlogService) PublishPost(ctx context.Context, id int64) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Put(ctx, fmt.Sprintf("/blog/%d/publish", id), nil, nil, &resp)
	return resp, err
}

// UnpublishPost reverts a post to draft.
func (s *BlogService) UnpublishPost(ctx context.Context, id int64) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Put(ctx, fmt.Sprintf("/blog/%d/unpublish", id), nil, nil, &resp)
	return resp, err
}

// ToggleFeatured flips the featured flag of a post.
func (s *BlogService) ToggleFeatured(ctx context.Context, id int64) (domain.BlogPost, error) {
	var resp domain.BlogPost
	err := s.client.Put(ctx, fmt.Sprintf("/blog/%d/toggle-featured", id), nil, nil, &resp)
	return resp, err
}
