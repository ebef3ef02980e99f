package application

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// PagedFetcher fetches one page of a resource from the backend.
type PagedFetcher[T any] func(ctx context.Context, page, size int) (domain.Page[T], error)

// Deleter deletes one item of a resource by id.
type Deleter func(ctx context.Context, id int64) error

// FilterFunc narrows a fetched page client-side.
type FilterFunc[T any, F any] func(items []T, filter F) []T

// FilterBy lifts a per-item predicate into a FilterFunc.
func FilterBy[T any, F any](keep func(item T, filter F) bool) FilterFunc[T, F] {
	return func(items []T, filter F) []T {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if keep(item, filter) {
				out = append(out, item)
			}
		}
		return out
	}
}

// MatchesName reports whether name contains query, case-insensitively.
// An empty query matches everything.
func MatchesName(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// PagerOptions configures a Pager.
type PagerOptions[T any, F any] struct {
	Fetch         PagedFetcher[T]
	Delete        Deleter // optional
	PageSize      int     // default 10
	FilterFn      FilterFunc[T, F]
	DefaultFilter F
	ItemName      string // singular, for notifications ("product", "blog post")

	Logger    domain.Logger
	Notifier  domain.Notifier
	Confirmer domain.Confirmer
}

// Pager is the generic controller behind every admin list screen. Pagination
// is server-driven: one raw page per page change. Filtering is client-side
// and narrows only the already-fetched page; TotalElements keeps reflecting
// the server page, so count badges can disagree with the filtered view. That
// mirrors the storefront's historical behavior and is kept deliberately.
type Pager[T any, F any] struct {
	fetch     PagedFetcher[T]
	del       Deleter
	pageSize  int
	filterFn  FilterFunc[T, F]
	itemName  string
	logger    domain.Logger
	notifier  domain.Notifier
	confirmer domain.Confirmer

	mu            sync.Mutex
	allItems      []T
	filter        F
	page          int
	totalPages    int
	totalElements int64
	loading       bool
}

// NewPager creates a Pager. Call Load to fetch the first page.
func NewPager[T any, F any](opts PagerOptions[T, F]) *Pager[T, F] {
	if opts.Fetch == nil {
		panic("fetch cannot be nil in NewPager")
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Pager[T, F]{
		fetch:     opts.Fetch,
		del:       opts.Delete,
		pageSize:  pageSize,
		filterFn:  opts.FilterFn,
		filter:    opts.DefaultFilter,
		itemName:  opts.ItemName,
		logger:    opts.Logger,
		notifier:  opts.Notifier,
		confirmer: opts.Confirmer,
	}
}

// Load fetches the current page. Failures surface the mapped message through
// the notifier, except 403: permission errors on admin screens are logged
// only, matching the storefront.
func (p *Pager[T, F]) Load(ctx context.Context) error {
	p.mu.Lock()
	page := p.page
	p.loading = true
	p.mu.Unlock()

	resp, err := p.fetch(ctx, page, p.pageSize)

	p.mu.Lock()
	p.loading = false
	if err == nil {
		p.allItems = resp.Content
		p.totalPages = resp.TotalPages
		p.totalElements = resp.TotalElements
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Error(ctx, "Failed to load page", "item", p.itemName, "page", page, "error", err.Error())
		if domain.StatusOf(err) != http.StatusForbidden {
			p.notifier.Error(ctx, domain.UserMessage(err))
		}
		return err
	}

	p.logger.Debug(ctx, "Page loaded", "item", p.itemName, "page", page, "count", len(resp.Content))
	return nil
}

// Items returns the current page after client-side filtering.
func (p *Pager[T, F]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.filterFn == nil {
		items := make([]T, len(p.allItems))
		copy(items, p.allItems)
		return items
	}
	return p.filterFn(p.allItems, p.filter)
}

// SetFilter narrows the displayed items without refetching.
func (p *Pager[T, F]) SetFilter(filter F) {
	p.mu.Lock()
	p.filter = filter
	p.mu.Unlock()
}

// Filter returns the current filter value.
func (p *Pager[T, F]) Filter() F {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Page returns the current zero-based page index.
func (p *Pager[T, F]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// TotalPages returns the server-reported page count.
func (p *Pager[T, F]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// TotalElements returns the server-reported element count, pre-filter.
func (p *Pager[T, F]) TotalElements() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalElements
}

// Loading reports whether a fetch is in progress.
func (p *Pager[T, F]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// SetPage jumps to the given page (clamped) and reloads.
func (p *Pager[T, F]) SetPage(ctx context.Context, page int) error {
	p.mu.Lock()
	if page < 0 {
		page = 0
	}
	if p.totalPages > 0 && page > p.totalPages-1 {
		page = p.totalPages - 1
	}
	p.page = page
	p.mu.Unlock()
	return p.Load(ctx)
}

// NextPage advances one page when possible.
func (p *Pager[T, F]) NextPage(ctx context.Context) error {
	if !p.CanGoNext() {
		return nil
	}
	return p.SetPage(ctx, p.Page()+1)
}

// PreviousPage goes back one page when possible.
func (p *Pager[T, F]) PreviousPage(ctx context.Context) error {
	if !p.CanGoPrevious() {
		return nil
	}
	return p.SetPage(ctx, p.Page()-1)
}

// CanGoNext reports whether a further page exists.
func (p *Pager[T, F]) CanGoNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page < p.totalPages-1
}

// CanGoPrevious reports whether an earlier page exists.
func (p *Pager[T, F]) CanGoPrevious() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page > 0
}

// Delete removes an item after interactive confirmation. On success the
// current page is reloaded; on failure the mapped message is surfaced and
// nothing is reloaded.
func (p *Pager[T, F]) Delete(ctx context.Context, id int64) error {
	if p.del == nil {
		p.logger.Warn(ctx, "Delete requested but no delete operation configured", "item", p.itemName)
		return nil
	}

	prompt := fmt.Sprintf("Are you sure you want to delete this %s?", p.itemName)
	if !p.confirmer.Confirm(ctx, prompt) {
		return nil
	}

	if err := p.del(ctx, id); err != nil {
		p.logger.Error(ctx, "Failed to delete item", "item", p.itemName, "id", id, "error", err.Error())
		p.notifier.Error(ctx, domain.UserMessage(err))
		return err
	}

	p.notifier.Success(ctx, fmt.Sprintf("%s deleted", p.itemName))
	return p.Load(ctx)
}
