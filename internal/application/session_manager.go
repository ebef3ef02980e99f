package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/config"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/pkg/crypto"
	"gitlab.com/babycash/clients/storefront-client/pkg/storagekeys"
)

// SessionManager owns the client's session and user profile: the in-memory
// copy used on every request, mirrored to the local key-value store for
// durability. It implements domain.TokenStore for the HTTP client core.
//
// When auth.token_aes_key is configured, token values are AES-GCM encrypted
// at rest; a value that fails to decrypt is treated as corrupted and deleted.
type SessionManager struct {
	store     domain.KVStore
	logger    domain.Logger
	aesKeyHex string

	mu      sync.RWMutex
	session domain.Session
	user    *domain.User
}

// NewSessionManager creates a SessionManager over the given store.
func NewSessionManager(cfgProvider config.Provider, store domain.KVStore, logger domain.Logger) *SessionManager {
	if store == nil {
		panic("store cannot be nil in NewSessionManager")
	}
	if logger == nil {
		panic("logger cannot be nil in NewSessionManager")
	}
	return &SessionManager{
		store:     store,
		logger:    logger,
		aesKeyHex: cfgProvider.Get().Auth.TokenAESKey,
	}
}

// Restore loads the persisted session and user profile. Corrupted values are
// deleted and treated as absent; a partially restored session (access token
// without user, or vice versa) is fine.
func (m *SessionManager) Restore(ctx context.Context) {
	access := m.readValue(ctx, storagekeys.AccessToken)
	refresh := m.readValue(ctx, storagekeys.RefreshToken)

	var user *domain.User
	if raw := m.readValue(ctx, storagekeys.User); raw != "" {
		var u domain.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			m.logger.Warn(ctx, "Stored user profile is corrupted, deleting it", "error", err.Error())
			_ = m.store.Delete(ctx, storagekeys.User)
		} else {
			user = &u
		}
	}

	m.mu.Lock()
	m.session = domain.Session{AccessToken: access, RefreshToken: refresh}
	m.user = user
	m.mu.Unlock()

	if access != "" {
		m.logger.Info(ctx, "Session restored from local store")
	}
}

// Session returns the current session. A zero session means unauthenticated.
func (m *SessionManager) Session(_ context.Context) domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// SaveSession persists both tokens, replacing any previous session.
func (m *SessionManager) SaveSession(ctx context.Context, session domain.Session) error {
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()

	if err := m.writeValue(ctx, storagekeys.AccessToken, session.AccessToken); err != nil {
		return err
	}
	return m.writeValue(ctx, storagekeys.RefreshToken, session.RefreshToken)
}

// ClearSession removes the tokens and the persisted user profile. It is
// called on logout and on irrecoverable refresh failure.
func (m *SessionManager) ClearSession(ctx context.Context) error {
	m.mu.Lock()
	m.session = domain.Session{}
	m.user = nil
	m.mu.Unlock()

	var firstErr error
	for _, key := range []string{storagekeys.AccessToken, storagekeys.RefreshToken, storagekeys.User} {
		if err := m.store.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SetUser stores the user profile in memory and the local store.
func (m *SessionManager) SetUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storagekeys.User, string(raw))
}

// CurrentUser returns the stored user profile, or nil when logged out.
func (m *SessionManager) CurrentUser() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated reports whether a session is present. Presence of an
// access token is the canonical signal; expiry is discovered through 401s.
func (m *SessionManager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Valid()
}

// AccessTokenExpiresAt returns the exp claim of the stored access token.
// The signature is not verified; the client only introspects its own token
// for display and proactive logging, the backend remains the authority.
func (m *SessionManager) AccessTokenExpiresAt() (time.Time, error) {
	m.mu.RLock()
	token := m.session.AccessToken
	m.mu.RUnlock()

	if token == "" {
		return time.Time{}, errors.New("no access token stored")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("access token has no exp claim")
	}
	return exp.Time, nil
}

func (m *SessionManager) readValue(ctx context.Context, key string) string {
	raw, err := m.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			m.logger.Warn(ctx, "Failed to read key from local store", "key", key, "error", err.Error())
		}
		return ""
	}
	if m.aesKeyHex == "" || !isTokenKey(key) {
		return raw
	}
	plain, err := crypto.DecryptAESGCM(m.aesKeyHex, raw)
	if err != nil {
		m.logger.Warn(ctx, "Stored value failed to decrypt, deleting it", "key", key, "error", err.Error())
		_ = m.store.Delete(ctx, key)
		return ""
	}
	return string(plain)
}

func (m *SessionManager) writeValue(ctx context.Context, key, value string) error {
	if value == "" {
		return m.store.Delete(ctx, key)
	}
	if m.aesKeyHex != "" && isTokenKey(key) {
		encrypted, err := crypto.EncryptAESGCM(m.aesKeyHex, []byte(value))
		if err != nil {
			return err
		}
		value = encrypted
	}
	return m.store.Set(ctx, key, value)
}

func isTokenKey(key string) bool {
	return key == storagekeys.AccessToken || key == storagekeys.RefreshToken
}
