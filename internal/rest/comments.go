package rest

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// CommentService wraps the blog comment endpoints.
type CommentService struct {
	client *httpclient.Client
}

// NewCommentService creates a new CommentService.
func NewCommentService(client *httpclient.Client) *CommentService {
	return &CommentService{client: client}
}

// ForPost returns the approved comment tree of a post.
func (s *CommentService) ForPost(ctx context.Context, postID int64) ([]domain.BlogComment, error) {
	var resp []domain.BlogComment
	err := s.client.Get(ctx, fmt.Sprintf("/blog/%d/comments", postID), nil, &resp)
	return resp, err
}

// CountForPost returns the comment count of a post.
func (s *CommentService) CountForPost(ctx context.Context, postID int64) (int64, error) {
	var resp int64
	err := s.client.Get(ctx, fmt.Sprintf("/blog/%d/comments/count", postID), nil, &resp)
	return resp, err
}

// Create posts a comment or a reply.
func (s *CommentService) Create(ctx context.Context, postID int64, req domain.CommentRequest) (domain.BlogComment, error) {
	var resp domain.BlogComment
	err := s.client.Post(ctx, fmt.Sprintf("/blog/%d/comments", postID), req, &resp)
	return resp, err
}

// Update edits an existing comment.
func (s *CommentService) Update(ctx context.Context, postID, commentID int64, req domain.CommentRequest) (domain.BlogComment, error) {
	var resp domain.BlogComment
	err := s.client.Put(ctx, fmt.Sprintf("/blog/%d/comments/%d", postID, commentID), nil, req, &resp)
	return resp, err
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, postID, commentID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/blog/%d/comments/%d", postID, commentID), nil)
}

// Approve approves a pending comment.
func (s *CommentService) Approve(ctx context.Context, postID, commentID int64) (domain.BlogComment, error) {
	var resp domain.BlogComment
	err := s.client.Post(ctx, fmt.Sprintf("/blog/%d/comments/%d/approve", postID, commentID), nil, &resp)
	return resp, err
}

// Pending returns the moderation queue.
func (s *CommentService) Pending(ctx context.Context) ([]domain.BlogComment, error) {
	var resp []domain.BlogComment
	err := s.client.Get(ctx, "/blog/admin/comments/pending", nil, &resp)
	return resp, err
}

// PendingCount returns the size of the moderation queue.
func (s *CommentService) PendingCount(ctx context.Context) (int64, error) {
	var resp int64
	err := s.client.Get(ctx, "/blog/admin/comments/pending/count", nil, &resp)
	return resp, err
}
