package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/config"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/storage"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/pkg/storagekeys"
)

const testAESKey = "6368616e676520746869732070617373776f726420746f206120736563726574" // hex of a 32-byte key

func encryptedConfig() config.Provider {
	return &config.Static{Config: &config.Config{
		Auth: config.AuthConfig{TokenAESKey: testAESKey},
	}}
}

func TestSessionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	manager := NewSessionManager(staticConfig(), store, nopLogger{})
	ctx := context.Background()

	session := domain.Session{AccessToken: "tok", RefreshToken: "ref"}
	require.NoError(t, manager.SaveSession(ctx, session))
	require.NoError(t, manager.SetUser(ctx, domain.User{Email: "jo@example.com", Role: domain.RoleAdmin, Enabled: true}))

	fresh := NewSessionManager(staticConfig(), store, nopLogger{})
	fresh.Restore(ctx)

	assert.Equal(t, session, fresh.Session(ctx))
	assert.True(t, fresh.IsAuthenticated())
	user := fresh.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "jo@example.com", user.Email)
	assert.True(t, user.IsAdmin())
}

func TestRestoreWithEmptyStore(t *testing.T) {
	manager := NewSessionManager(staticConfig(), storage.NewMemoryStore(), nopLogger{})
	manager.Restore(context.Background())

	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.CurrentUser())
}

func TestRestoreDiscardsCorruptedUser(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storagekeys.AccessToken, "tok"))
	require.NoError(t, store.Set(ctx, storagekeys.User, "{broken"))

	manager := NewSessionManager(staticConfig(), store, nopLogger{})
	manager.Restore(ctx)

	assert.True(t, manager.IsAuthenticated(), "the token survives a corrupted profile")
	assert.Nil(t, manager.CurrentUser())
	_, err := store.Get(ctx, storagekeys.User)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound, "the corrupted value must be deleted")
}

func TestClearSessionRemovesEverything(t *testing.T) {
	store := storage.NewMemoryStore()
	manager := NewSessionManager(staticConfig(), store, nopLogger{})
	ctx := context.Background()

	require.NoError(t, manager.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))
	require.NoError(t, manager.SetUser(ctx, domain.User{Email: "jo@example.com"}))

	require.NoError(t, manager.ClearSession(ctx))

	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.CurrentUser())
	for _, key := range []string{storagekeys.AccessToken, storagekeys.RefreshToken, storagekeys.User} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, key)
	}
}

func TestTokensAreEncryptedAtRest(t *testing.T) {
	store := storage.NewMemoryStore()
	manager := NewSessionManager(encryptedConfig(), store, nopLogger{})
	ctx := context.Background()

	require.NoError(t, manager.SaveSession(ctx, domain.Session{AccessToken: "tok-secret", RefreshToken: "ref-secret"}))

	stored, err := store.Get(ctx, storagekeys.AccessToken)
	require.NoError(t, err)
	assert.NotContains(t, stored, "tok-secret")

	fresh := NewSessionManager(encryptedConfig(), store, nopLogger{})
	fresh.Restore(ctx)
	assert.Equal(t, "tok-secret", fresh.Session(ctx).AccessToken)
	assert.Equal(t, "ref-secret", fresh.Session(ctx).RefreshToken)
}

func TestTamperedTokenIsDiscardedOnRestore(t *testing.T) {
	store := storage.NewMemoryStore()
	manager := NewSessionManager(encryptedConfig(), store, nopLogger{})
	ctx := context.Background()
	require.NoError(t, manager.SaveSession(ctx, domain.Session{AccessToken: "tok", RefreshToken: "ref"}))

	require.NoError(t, store.Set(ctx, storagekeys.AccessToken, "not-a-ciphertext"))

	fresh := NewSessionManager(encryptedConfig(), store, nopLogger{})
	fresh.Restore(ctx)

	assert.Empty(t, fresh.Session(ctx).AccessToken)
	assert.Equal(t, "ref", fresh.Session(ctx).RefreshToken)
	_, err := store.Get(ctx, storagekeys.AccessToken)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestAccessTokenExpiresAt(t *testing.T) {
	manager := NewSessionManager(staticConfig(), storage.NewMemoryStore(), nopLogger{})
	ctx := context.Background()

	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jo@example.com",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, manager.SaveSession(ctx, domain.Session{AccessToken: token, RefreshToken: "ref"}))

	got, err := manager.AccessTokenExpiresAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "want %v, got %v", exp, got)
}

func TestAccessTokenExpiresAtWithoutToken(t *testing.T) {
	manager := NewSessionManager(staticConfig(), storage.NewMemoryStore(), nopLogger{})
	_, err := manager.AccessTokenExpiresAt()
	assert.Error(t, err)
}
