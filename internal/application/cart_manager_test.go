package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/storage"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/pkg/storagekeys"
)

// fakeCartAPI records remote calls on a channel so fire-and-forget syncs can
// be awaited deterministically.
type fakeCartAPI struct {
	calls chan string
	cart  domain.RemoteCart
	err   error
}

func newFakeCartAPI() *fakeCartAPI {
	return &fakeCartAPI{calls: make(chan string, 32)}
}

func (f *fakeCartAPI) Get(_ context.Context) (domain.RemoteCart, error) {
	f.calls <- "get"
	return f.cart, f.err
}

func (f *fakeCartAPI) AddItem(_ context.Context, productID int64, quantity int) (domain.RemoteCart, error) {
	f.calls <- "add"
	return f.cart, f.err
}

func (f *fakeCartAPI) UpdateItem(_ context.Context, itemID int64, quantity int) (domain.RemoteCart, error) {
	f.calls <- "update"
	return f.cart, f.err
}

func (f *fakeCartAPI) RemoveItem(_ context.Context, itemID int64) (domain.RemoteCart, error) {
	f.calls <- "remove"
	return f.cart, f.err
}

func (f *fakeCartAPI) Clear(_ context.Context) error {
	f.calls <- "clear"
	return f.err
}

func awaitCall(t *testing.T, api *fakeCartAPI, want string) {
	t.Helper()
	select {
	case got := <-api.calls:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for remote %q call", want)
	}
}

func assertNoCall(t *testing.T, api *fakeCartAPI) {
	t.Helper()
	select {
	case got := <-api.calls:
		t.Fatalf("unexpected remote %q call", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func newCartFixture(t *testing.T) (*CartManager, *fakeCartAPI, *recordingNotifier, *storage.MemoryStore, *SessionManager) {
	t.Helper()
	store := storage.NewMemoryStore()
	sessions := NewSessionManager(staticConfig(), store, nopLogger{})
	api := newFakeCartAPI()
	notifier := &recordingNotifier{}
	manager := NewCartManager(staticConfig(), store, api, sessions, nopLogger{}, notifier)
	return manager, api, notifier, store, sessions
}

func item(id, name string, price float64, qty int) domain.CartItem {
	return domain.CartItem{ID: id, Name: name, Price: price, Quantity: qty}
}

func TestAddToCartMergesQuantities(t *testing.T) {
	manager, _, _, _, _ := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	manager.AddToCart(ctx, item("2", "Bib", 4.50, 2))
	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 3))

	items := manager.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 6, manager.TotalItems())
	assert.InDelta(t, 9.99*4+4.50*2, manager.TotalPrice(), 0.001)
}

func TestAddToCartIgnoresNonPositiveQuantity(t *testing.T) {
	manager, _, notifier, _, _ := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 0))
	manager.AddToCart(ctx, item("1", "Rattle", 9.99, -2))

	assert.Empty(t, manager.Items())
	assert.Equal(t, 0, notifier.successCount())
}

func TestCartPersistsAcrossManagers(t *testing.T) {
	manager, _, _, store, sessions := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 2))
	manager.AddToCart(ctx, item("2", "Bib", 4.50, 1))

	fresh := NewCartManager(staticConfig(), store, newFakeCartAPI(), sessions, nopLogger{}, &recordingNotifier{})
	fresh.Load(ctx)

	items := fresh.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Rattle", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestEmptyCartRemovesSnapshot(t *testing.T) {
	manager, _, _, store, _ := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	_, err := store.Get(ctx, storagekeys.Cart)
	require.NoError(t, err)

	manager.RemoveFromCart(ctx, "1")
	_, err = store.Get(ctx, storagekeys.Cart)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound, "an emptied cart must not leave a snapshot behind")
}

func TestCorruptedSnapshotIsDiscarded(t *testing.T) {
	manager, _, _, store, _ := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storagekeys.Cart, "{not json"))
	manager.Load(ctx)

	assert.Empty(t, manager.Items())
	_, err := store.Get(ctx, storagekeys.Cart)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestAddNotificationsAreDebounced(t *testing.T) {
	manager, _, notifier, _, _ := newCartFixture(t)
	ctx := context.Background()

	current := time.Now()
	manager.now = func() time.Time { return current }

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	assert.Equal(t, 1, notifier.successCount())

	// Same item inside the window: suppressed.
	current = current.Add(100 * time.Millisecond)
	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	assert.Equal(t, 1, notifier.successCount())

	// Different item inside the window: notified.
	current = current.Add(100 * time.Millisecond)
	manager.AddToCart(ctx, item("2", "Bib", 4.50, 1))
	assert.Equal(t, 2, notifier.successCount())

	// Same item again after the window: notified.
	current = current.Add(600 * time.Millisecond)
	manager.AddToCart(ctx, item("2", "Bib", 4.50, 1))
	assert.Equal(t, 3, notifier.successCount())
	assert.Equal(t, "Bib added to cart", notifier.lastSuccess())
}

func TestRemoteSyncSkippedWhenLoggedOut(t *testing.T) {
	manager, api, _, _, _ := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	assertNoCall(t, api)
}

func TestRemoteSyncDispatchedWhenAuthenticated(t *testing.T) {
	manager, api, _, _, sessions := newCartFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 1))
	awaitCall(t, api, "add")

	manager.UpdateQuantity(ctx, "1", 5)
	awaitCall(t, api, "update")

	manager.RemoveFromCart(ctx, "1")
	awaitCall(t, api, "remove")
}

func TestRemoteSyncFailureDoesNotTouchLocalState(t *testing.T) {
	manager, api, notifier, _, sessions := newCartFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))
	api.err = errors.New("backend down")

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 2))
	awaitCall(t, api, "add")

	// The optimistic state stays; the failure is never surfaced to the user.
	items := manager.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 0, notifier.errorCount())
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	manager, _, notifier, _, _ := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 2))
	manager.UpdateQuantity(ctx, "1", 0)

	assert.Empty(t, manager.Items())
	assert.Equal(t, "Product removed from cart", notifier.lastSuccess())
}

func TestLoadPrefersRemoteCartWhenAuthenticated(t *testing.T) {
	manager, api, _, store, sessions := newCartFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))

	// Stale local snapshot that the remote cart should replace.
	manager.AddToCart(ctx, item("9", "Old Toy", 1.00, 1))
	awaitCall(t, api, "add")

	api.cart = domain.RemoteCart{Items: []domain.RemoteCartItem{
		{ProductID: 1, Quantity: 2, Product: &domain.Product{ID: 1, Name: "Rattle", Price: 9.99}},
		{ProductID: 2, Quantity: 1},
	}}

	manager.Load(ctx)
	awaitCall(t, api, "get")

	items := manager.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Rattle", items[0].Name)
	assert.InDelta(t, 9.99, items[0].Price, 0.001)
	assert.Equal(t, "Product", items[1].Name, "missing product detail falls back to a placeholder name")

	// The replacement is mirrored to the local snapshot.
	raw, err := store.Get(ctx, storagekeys.Cart)
	require.NoError(t, err)
	assert.Contains(t, raw, "Rattle")
}

func TestLoadFallsBackToSnapshotOnRemoteFailure(t *testing.T) {
	manager, api, _, _, sessions := newCartFixture(t)
	ctx := context.Background()

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 2))
	require.NoError(t, sessions.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))
	api.err = errors.New("backend down")

	fresh := NewCartManager(staticConfig(), manager.store, api, sessions, nopLogger{}, &recordingNotifier{})
	fresh.Load(ctx)
	awaitCall(t, api, "get")

	items := fresh.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Rattle", items[0].Name)
}

func TestClearEmptiesCartAndStore(t *testing.T) {
	manager, api, _, store, sessions := newCartFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))

	manager.AddToCart(ctx, item("1", "Rattle", 9.99, 2))
	awaitCall(t, api, "add")

	manager.Clear(ctx)
	awaitCall(t, api, "clear")

	assert.Empty(t, manager.Items())
	_, err := store.Get(ctx, storagekeys.Cart)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
