package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/config"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/metrics"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/pkg/safego"
	"gitlab.com/babycash/clients/storefront-client/pkg/storagekeys"
)

const defaultNotifyDebounce = 500 * time.Millisecond

// CartAPI is the slice of the remote cart endpoints the manager needs;
// implemented by rest.CartService, stubbed in tests.
type CartAPI interface {
	Get(ctx context.Context) (domain.RemoteCart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (domain.RemoteCart, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (domain.RemoteCart, error)
	RemoveItem(ctx context.Context, itemID int64) (domain.RemoteCart, error)
	Clear(ctx context.Context) error
}

// CartManager owns the client-side cart. Mutations apply to in-memory state
// synchronously in call order and mirror to the local store on every change;
// remote synchronization is strictly best-effort and fire-and-forget so cart
// interactions never wait on network latency. The local snapshot is the
// source of truth for unauthenticated users and the resilience fallback for
// authenticated ones.
type CartManager struct {
	store    domain.KVStore
	remote   CartAPI
	sessions *SessionManager
	logger   domain.Logger
	notifier domain.Notifier

	debounce time.Duration
	now      func() time.Time

	mu             sync.Mutex
	items          []domain.CartItem
	loading        bool
	lastNotifyTime time.Time
	lastNotifyItem string
}

// NewCartManager creates a CartManager. Call Load to populate it.
func NewCartManager(cfgProvider config.Provider, store domain.KVStore, remote CartAPI, sessions *SessionManager, logger domain.Logger, notifier domain.Notifier) *CartManager {
	if store == nil {
		panic("store cannot be nil in NewCartManager")
	}
	if remote == nil {
		panic("remote cart api cannot be nil in NewCartManager")
	}
	if sessions == nil {
		panic("session manager cannot be nil in NewCartManager")
	}

	debounce := defaultNotifyDebounce
	if ms := cfgProvider.Get().App.CartNotifyDebounceMs; ms > 0 {
		debounce = time.Duration(ms) * time.Millisecond
	}

	return &CartManager{
		store:    store,
		remote:   remote,
		sessions: sessions,
		logger:   logger,
		notifier: notifier,
		debounce: debounce,
		now:      time.Now,
	}
}

// Load populates the cart. Authenticated: fetch the remote cart and replace
// local state with it, falling back to the persisted snapshot on failure.
// Unauthenticated: load the persisted snapshot directly.
func (m *CartManager) Load(ctx context.Context) {
	if !m.sessions.IsAuthenticated() {
		m.loadFromStore(ctx)
		return
	}

	m.setLoading(true)
	defer m.setLoading(false)

	remoteCart, err := m.remote.Get(ctx)
	if err != nil {
		m.logger.Error(ctx, "Failed to load remote cart, falling back to local snapshot", "error", err.Error())
		m.loadFromStore(ctx)
		return
	}

	items := make([]domain.CartItem, 0, len(remoteCart.Items))
	for _, ri := range remoteCart.Items {
		item := domain.CartItem{
			ID:       strconv.FormatInt(ri.ProductID, 10),
			Name:     "Product",
			Quantity: ri.Quantity,
		}
		if ri.Product != nil {
			item.Name = ri.Product.Name
			item.Price = ri.Product.Price
			item.Image = ri.Product.ImageURL
			item.Category = ri.Product.Category
		}
		items = append(items, item)
	}

	m.mu.Lock()
	m.items = items
	m.persistLocked(ctx)
	m.mu.Unlock()
}

func (m *CartManager) loadFromStore(ctx context.Context) {
	raw, err := m.store.Get(ctx, storagekeys.Cart)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			m.logger.Warn(ctx, "Failed to read cart snapshot", "error", err.Error())
		}
		return
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		m.logger.Warn(ctx, "Cart snapshot is corrupted, deleting it", "error", err.Error())
		_ = m.store.Delete(ctx, storagekeys.Cart)
		return
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// AddToCart merges the item into the cart by product id (quantities add up)
// and confirms to the user, suppressing duplicate confirmations for the same
// item id inside the debounce window. The change is optimistic; when
// authenticated, a background add is dispatched and its failure is logged,
// never surfaced and never rolled back.
func (m *CartManager) AddToCart(ctx context.Context, item domain.CartItem) {
	if item.Quantity <= 0 {
		return
	}

	m.mu.Lock()
	merged := false
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, item)
	}
	m.persistLocked(ctx)

	now := m.now()
	notify := now.Sub(m.lastNotifyTime) > m.debounce || m.lastNotifyItem != item.ID
	if notify {
		m.lastNotifyTime = now
		m.lastNotifyItem = item.ID
	}
	m.mu.Unlock()

	if notify {
		m.notifier.Success(ctx, fmt.Sprintf("%s added to cart", item.Name))
	}

	m.syncInBackground(ctx, "CartAddSync", func(bgCtx context.Context) error {
		productID, err := strconv.ParseInt(item.ID, 10, 64)
		if err != nil {
			return err
		}
		_, err = m.remote.AddItem(bgCtx, productID, item.Quantity)
		return err
	})
}

// UpdateQuantity sets the quantity of an item; a non-positive quantity
// removes it instead.
func (m *CartManager) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(ctx, id)
		return
	}

	m.mu.Lock()
	found := false
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity = quantity
			found = true
			break
		}
	}
	if found {
		m.persistLocked(ctx)
	}
	m.mu.Unlock()

	if !found {
		return
	}

	m.syncInBackground(ctx, "CartUpdateSync", func(bgCtx context.Context) error {
		itemID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return err
		}
		_, err = m.remote.UpdateItem(bgCtx, itemID, quantity)
		return err
	})
}

// RemoveFromCart removes the item optimistically and notifies the user.
func (m *CartManager) RemoveFromCart(ctx context.Context, id string) {
	m.mu.Lock()
	kept := m.items[:0]
	removed := false
	for _, item := range m.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	if removed {
		m.persistLocked(ctx)
	}
	m.mu.Unlock()

	if !removed {
		return
	}

	m.notifier.Success(ctx, "Product removed from cart")

	m.syncInBackground(ctx, "CartRemoveSync", func(bgCtx context.Context) error {
		itemID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return err
		}
		_, err = m.remote.RemoveItem(bgCtx, itemID)
		return err
	})
}

// Clear empties the cart and the persisted snapshot immediately, then
// best-effort requests a remote clear.
func (m *CartManager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.items = nil
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.syncInBackground(ctx, "CartClearSync", func(bgCtx context.Context) error {
		return m.remote.Clear(bgCtx)
	})
}

// Items returns a copy of the current cart lines, in insertion order.
func (m *CartManager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]domain.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

// TotalPrice folds price×quantity over the current items.
func (m *CartManager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, item := range m.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems folds quantity over the current items.
func (m *CartManager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// Loading reports whether a remote cart fetch is in progress.
func (m *CartManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// persistLocked mirrors the cart to the local store. A non-empty cart is
// written as a JSON snapshot; an empty cart removes the key entirely.
// Callers must hold m.mu.
func (m *CartManager) persistLocked(ctx context.Context) {
	if len(m.items) == 0 {
		if err := m.store.Delete(ctx, storagekeys.Cart); err != nil {
			m.logger.Warn(ctx, "Failed to delete cart snapshot", "error", err.Error())
		}
		return
	}

	raw, err := json.Marshal(m.items)
	if err != nil {
		m.logger.Error(ctx, "Failed to marshal cart snapshot", "error", err.Error())
		return
	}
	if err := m.store.Set(ctx, storagekeys.Cart, string(raw)); err != nil {
		m.logger.Warn(ctx, "Failed to persist cart snapshot", "error", err.Error())
	}
}

// syncInBackground dispatches a remote sync when authenticated. The call is
// detached from the caller's cancellation: a caller that moves on must not
// abort an already dispatched sync. Failures are logged and counted, nothing
// more.
func (m *CartManager) syncInBackground(ctx context.Context, name string, fn func(context.Context) error) {
	if !m.sessions.IsAuthenticated() {
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	safego.Execute(bgCtx, m.logger, name, func() {
		if err := fn(bgCtx); err != nil {
			m.logger.Error(bgCtx, "Background cart sync failed", "operation", name, "error", err.Error())
			metrics.IncrementCartSyncFailures()
		}
	})
}

func (m *CartManager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
