package rest

import (
	"context"
	"fmt"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// ContactService wraps the contact card endpoints and the contact message
// workflow used by the admin inbox.
type ContactService struct {
	client *httpclient.Client
}

// NewContactService creates a new ContactService.
func NewContactService(client *httpclient.Client) *ContactService {
	return &ContactService{client: client}
}

// Info returns the storefront's public contact card.
func (s *ContactService) Info(ctx context.Context) (domain.ContactInfo, error) {
	var resp domain.ContactInfo
	err := s.client.Get(ctx, "/contact-info", nil, &resp)
	return resp, err
}

// UpdateInfo replaces the contact card.
func (s *ContactService) UpdateInfo(ctx context.Context, info domain.ContactInfo) (domain.ContactInfo, error) {
	var resp domain.ContactInfo
	err := s.client.Put(ctx, "/contact-info", nil, info, &resp)
	return resp, err
}

// InfoConfigured reports whether a contact card has been set up.
func (s *ContactService) InfoConfigured(ctx context.Context) (bool, error) {
	var resp bool
	err := s.client.Get(ctx, "/contact-info/status", nil, &resp)
	return resp, err
}

// SendMessage submits the public contact form.
func (s *ContactService) SendMessage(ctx context.Context, req domain.ContactMessageRequest) (domain.ContactMessage, error) {
	var resp domain.ContactMessage
	err := s.client.Post(ctx, "/contact/send", req, &resp)
	return resp, err
}

// Messages returns every contact message.
func (s *ContactService) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	var resp []domain.ContactMessage
	err := s.client.Get(ctx, "/contact/admin/messages", nil, &resp)
	return resp, err
}

// MessagesPaged returns one page of contact messages, for the admin inbox.
func (s *ContactService) MessagesPaged(ctx context.Context, page, size int) (domain.Page[domain.ContactMessage], error) {
	var resp domain.Page[domain.ContactMessage]
	err := s.client.Get(ctx, "/contact/admin/messages/paged", pageQuery(page, size), &resp)
	return resp, err
}

// NewMessages returns the unread messages.
func (s *ContactService) NewMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var resp []domain.ContactMessage
	err := s.client.Get(ctx, "/contact/admin/messages/new", nil, &resp)
	return resp, err
}

// CountNewMessages returns the unread message count.
func (s *ContactService) CountNewMessages(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	err := s.client.Get(ctx, "/contact/admin/messages/new/count", nil, &resp)
	return resp.Count, err
}

// RecentMessages returns the latest messages.
func (s *ContactService) RecentMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var resp []domain.ContactMessage
	err := s.client.Get(ctx, "/contact/admin/messages/recent", nil, &resp)
	return resp, err
}

// MessageByID returns a single message.
func (s *ContactService) MessageByID(ctx context.Context, id int64) (domain.ContactMessage, error) {
	var resp domain.ContactMessage
	err := s.client.Get(ctx, fmt.Sprintf("/contact/admin/messages/%d", id), nil, &resp)
	return resp, err
}

// MarkRead marks a message read.
func (s *ContactService) MarkRead(ctx context.Context, id int64) (domain.ContactMessage, error) {
	var resp domain.ContactMessage
	err := s.client.Post(ctx, fmt.Sprintf("/contact/admin/messages/%d/read", id), nil, &resp)
	return resp, err
}

// MarkReplied marks a message replied, with optional admin notes.
func (s *ContactService) MarkReplied(ctx context.Context, id int64, adminNotes string) (domain.ContactMessage, error) {
	body := map[string]string{}
	if adminNotes != "" {
		body["adminNotes"] = adminNotes
	}
	var resp domain.ContactMessage
	err := s.client.Post(ctx, fmt.Sprintf("/contact/admin/messages/%d/reply", id), body, &resp)
	return resp, err
}

// Archive archives a message.
func (s *ContactService) Archive(ctx context.Context, id int64) (domain.ContactMessage, error) {
	var resp domain.ContactMessage
	err := s.client.Post(ctx, fmt.Sprintf("/contact/admin/messages/%d/archive", id), nil, &resp)
	return resp, err
}

// Unarchive restores an archived message.
func (s *ContactService) Unarchive(ctx context.Context, id int64) (domain.ContactMessage, error) {
	var resp domain.ContactMessage
	err := s.client.Post(ctx, fmt.Sprintf("/contact/admin/messages/%d/unarchive", id), nil, &resp)
	return resp, err
}

// DeleteMessage removes a message.
func (s *ContactService) DeleteMessage(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/contact/admin/messages/%d", id), nil)
}
