package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// pagerFixture serves a fixed product catalog in pages, tracking fetches and
// deletes.
type pagerFixture struct {
	products   []domain.Product
	fetchCalls int
	deleted    []int64
	fetchErr   error
	deleteErr  error
}

func newPagerFixture(n int) *pagerFixture {
	f := &pagerFixture{}
	for i := 1; i <= n; i++ {
		f.products = append(f.products, domain.Product{ID: int64(i), Name: fmt.Sprintf("Product %d", i)})
	}
	return f
}

func (f *pagerFixture) fetch(_ context.Context, page, size int) (domain.Page[domain.Product], error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return domain.Page[domain.Product]{}, f.fetchErr
	}
	start := page * size
	end := start + size
	if start > len(f.products) {
		start = len(f.products)
	}
	if end > len(f.products) {
		end = len(f.products)
	}
	totalPages := (len(f.products) + size - 1) / size
	return domain.Page[domain.Product]{
		Content:       f.products[start:end],
		TotalPages:    totalPages,
		TotalElements: int64(len(f.products)),
		Size:          size,
		Number:        page,
	}, nil
}

func (f *pagerFixture) delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}

func newProductsPager(f *pagerFixture, notifier *recordingNotifier, confirmer *stubConfirmer) *Pager[domain.Product, string] {
	return NewPager(PagerOptions[domain.Product, string]{
		Fetch:    f.fetch,
		Delete:   f.delete,
		PageSize: 10,
		FilterFn: FilterBy(func(p domain.Product, query string) bool {
			return MatchesName(p.Name, query)
		}),
		ItemName:  "Product",
		Logger:    nopLogger{},
		Notifier:  notifier,
		Confirmer: confirmer,
	})
}

func TestPagerLoadsFirstPage(t *testing.T) {
	f := newPagerFixture(25)
	pager := newProductsPager(f, &recordingNotifier{}, &stubConfirmer{})

	require.NoError(t, pager.Load(context.Background()))

	assert.Len(t, pager.Items(), 10)
	assert.Equal(t, 0, pager.Page())
	assert.Equal(t, 3, pager.TotalPages())
	assert.Equal(t, int64(25), pager.TotalElements())
	assert.True(t, pager.CanGoNext())
	assert.False(t, pager.CanGoPrevious())
}

func TestPagerNavigation(t *testing.T) {
	f := newPagerFixture(25)
	pager := newProductsPager(f, &recordingNotifier{}, &stubConfirmer{})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	require.NoError(t, pager.NextPage(ctx))
	require.NoError(t, pager.NextPage(ctx))
	assert.Equal(t, 2, pager.Page())
	assert.Len(t, pager.Items(), 5, "last page holds the remainder")
	assert.False(t, pager.CanGoNext())

	// Advancing past the end is a no-op, no extra fetch.
	fetches := f.fetchCalls
	require.NoError(t, pager.NextPage(ctx))
	assert.Equal(t, 2, pager.Page())
	assert.Equal(t, fetches, f.fetchCalls)

	require.NoError(t, pager.PreviousPage(ctx))
	assert.Equal(t, 1, pager.Page())
	assert.Len(t, pager.Items(), 10)
}

func TestPagerSetPageClamps(t *testing.T) {
	f := newPagerFixture(25)
	pager := newProductsPager(f, &recordingNotifier{}, &stubConfirmer{})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	require.NoError(t, pager.SetPage(ctx, 99))
	assert.Equal(t, 2, pager.Page())

	require.NoError(t, pager.SetPage(ctx, -5))
	assert.Equal(t, 0, pager.Page())
}

func TestPagerFilterNarrowsLoadedPageOnly(t *testing.T) {
	f := newPagerFixture(25)
	pager := newProductsPager(f, &recordingNotifier{}, &stubConfirmer{})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	fetches := f.fetchCalls
	pager.SetFilter("Product 1")

	// "Product 1" and "Product 10" match within the first page of ten.
	assert.Len(t, pager.Items(), 2)
	assert.Equal(t, fetches, f.fetchCalls, "filtering must not refetch")
	assert.Equal(t, int64(25), pager.TotalElements(), "totals keep reflecting the server page")

	pager.SetFilter("")
	assert.Len(t, pager.Items(), 10)
}

func TestPagerLoadFailureIsNotified(t *testing.T) {
	f := newPagerFixture(5)
	f.fetchErr = domain.NewAPIError(500, "")
	notifier := &recordingNotifier{}
	pager := newProductsPager(f, notifier, &stubConfirmer{})

	err := pager.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, notifier.errorCount())
	assert.Equal(t, "Server error. Please try again later", notifier.lastError())
}

func TestPagerForbiddenLoadIsSilent(t *testing.T) {
	f := newPagerFixture(5)
	f.fetchErr = domain.NewAPIError(403, "")
	notifier := &recordingNotifier{}
	pager := newProductsPager(f, notifier, &stubConfirmer{})

	err := pager.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, notifier.errorCount(), "permission errors on admin screens are logged only")
}

func TestPagerDeleteConfirmedReloads(t *testing.T) {
	f := newPagerFixture(11)
	notifier := &recordingNotifier{}
	confirmer := &stubConfirmer{answer: true}
	pager := newProductsPager(f, notifier, confirmer)
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	fetches := f.fetchCalls
	require.NoError(t, pager.Delete(ctx, 3))

	assert.Equal(t, []int64{3}, f.deleted)
	assert.Equal(t, fetches+1, f.fetchCalls, "successful delete reloads the page")
	assert.Equal(t, "Product deleted", notifier.lastSuccess())
	require.Len(t, confirmer.prompts, 1)
	assert.Contains(t, confirmer.prompts[0], "Product")
}

func TestPagerDeleteDeclinedDoesNothing(t *testing.T) {
	f := newPagerFixture(5)
	notifier := &recordingNotifier{}
	pager := newProductsPager(f, notifier, &stubConfirmer{answer: false})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	fetches := f.fetchCalls
	require.NoError(t, pager.Delete(ctx, 3))

	assert.Empty(t, f.deleted)
	assert.Equal(t, fetches, f.fetchCalls)
	assert.Equal(t, 0, notifier.successCount())
}

func TestPagerDeleteFailureDoesNotReload(t *testing.T) {
	f := newPagerFixture(5)
	f.deleteErr = domain.NewAPIError(409, "product has open orders")
	notifier := &recordingNotifier{}
	pager := newProductsPager(f, notifier, &stubConfirmer{answer: true})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	fetches := f.fetchCalls
	err := pager.Delete(ctx, 3)

	require.Error(t, err)
	assert.Equal(t, fetches, f.fetchCalls, "failed delete must not reload")
	assert.Equal(t, "product has open orders", notifier.lastError())
}

func TestPagerWithoutDeleterIgnoresDelete(t *testing.T) {
	f := newPagerFixture(5)
	pager := NewPager(PagerOptions[domain.Product, string]{
		Fetch:    f.fetch,
		ItemName: "Product",
		Logger:   nopLogger{},
		Notifier: &recordingNotifier{},
	})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	require.NoError(t, pager.Delete(ctx, 1))
	assert.Empty(t, f.deleted)
}

func TestPagerDeleteErrorVariants(t *testing.T) {
	f := newPagerFixture(5)
	f.deleteErr = errors.New("plain failure")
	notifier := &recordingNotifier{}
	pager := newProductsPager(f, notifier, &stubConfirmer{answer: true})
	ctx := context.Background()
	require.NoError(t, pager.Load(ctx))

	err := pager.Delete(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, "Unknown error", notifier.lastError())
}
