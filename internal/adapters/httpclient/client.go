package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/config"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/metrics"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultRetryMax  = 2
	defaultBaseDelay = 1 * time.Second
)

// Client is the single chokepoint for all backend calls. It attaches the
// bearer token from the TokenStore, retries network errors and 5xx responses
// with exponential backoff, and performs single-flight refresh-token
// rotation on 401 responses, queuing concurrent requests behind the one
// in-flight refresh.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     domain.TokenStore
	logger     domain.Logger
	retryMax   int
	baseDelay  time.Duration

	refreshMu  sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

type refreshResult struct {
	token string
	err   error
}

// New creates a Client from the api section of the configuration.
func New(cfgProvider config.Provider, tokens domain.TokenStore, logger domain.Logger) *Client {
	if tokens == nil {
		panic("token store cannot be nil in httpclient.New")
	}
	if logger == nil {
		panic("logger cannot be nil in httpclient.New")
	}
	apiCfg := cfgProvider.Get().API

	timeout := defaultTimeout
	if apiCfg.TimeoutSeconds > 0 {
		timeout = time.Duration(apiCfg.TimeoutSeconds) * time.Second
	}
	retryMax := defaultRetryMax
	if apiCfg.RetryMax > 0 {
		retryMax = apiCfg.RetryMax
	}
	baseDelay := defaultBaseDelay
	if apiCfg.RetryBaseDelayMs > 0 {
		baseDelay = time.Duration(apiCfg.RetryBaseDelayMs) * time.Millisecond
	}

	return &Client{
		baseURL:    strings.TrimRight(apiCfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
		retryMax:   retryMax,
		baseDelay:  baseDelay,
	}
}

// Get performs a GET request. out may be nil when the response body is not needed.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.Do(ctx, http.MethodPut, path, query, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one logical request through retry and refresh handling and
// decodes a successful JSON response into out.
//
// Failure semantics: network errors and 5xx responses are retried
// transparently and only surfaced once the retry budget is exhausted. A 401
// on a non-auth endpoint is recovered via the refresh flow when possible and
// replayed exactly once, otherwise surfaced as domain.ErrSessionExpired. All
// other 4xx are surfaced immediately.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, path, err)
		}
	}

	err := c.attemptWithRetries(ctx, method, path, query, bodyBytes, out, c.storedToken)
	if err == nil {
		return nil
	}

	if domain.StatusOf(err) == http.StatusUnauthorized && !isAuthEndpoint(path) {
		newToken, refreshErr := c.refreshToken(ctx)
		if refreshErr != nil {
			return refreshErr
		}
		// Replay once with the refreshed token. A second 401 here is
		// surfaced as-is; it must not trigger another refresh loop.
		return c.attemptWithRetries(ctx, method, path, query, bodyBytes, out, func(context.Context) string {
			return newToken
		})
	}

	return err
}

// isAuthEndpoint reports whether path is one of the endpoints that hand out
// tokens. They are the entry point to obtaining a session and are never
// subject to the 401-refresh flow.
func isAuthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/auth/login") ||
		strings.HasPrefix(path, "/auth/register") ||
		strings.HasPrefix(path, "/auth/refresh")
}

func (c *Client) storedToken(ctx context.Context) string {
	return c.tokens.Session(ctx).AccessToken
}

func (c *Client) attemptWithRetries(ctx context.Context, method, path string, query url.Values, body []byte, out any, token func(context.Context) string) error {
	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay << (attempt - 1)
			metrics.IncrementRetries()
			c.logger.Warn(ctx, "Retrying request", "method", method, "path", path, "attempt", attempt, "max", c.retryMax, "delay", delay.String(), "error", lastErr.Error())
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrNetwork, ctx.Err())
			}
		}

		err := c.attemptOnce(ctx, method, path, query, body, out, token(ctx))
		if err == nil {
			return nil
		}
		lastErr = err
		if !domain.IsRetryable(err) {
			return err
		}
	}
	return lastErr
}

func (c *Client) attemptOnce(ctx context.Context, method, path string, query url.Values, body []byte, out any, token string) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, "network")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveRequest(method, "network")
		return fmt.Errorf("%w: failed to read response body: %v", domain.ErrNetwork, err)
	}

	metrics.ObserveRequest(method, statusClass(resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.NewAPIError(resp.StatusCode, errorMessage(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
		}
	}
	return nil
}

// errorMessage extracts the backend's {"message": ...} from an error body,
// tolerating non-JSON payloads.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// refreshToken runs the single-flight refresh protocol. The first caller
// performs the rotation; everyone else queues and receives the shared
// result in arrival order. The in-flight flag is released in a defer so it
// is cleared on success, failure and panic alike.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	if c.refreshing {
		ch := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, ch)
		c.refreshMu.Unlock()
		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", domain.ErrNetwork, ctx.Err())
		}
	}
	c.refreshing = true
	c.refreshMu.Unlock()

	var res refreshResult
	defer func() {
		c.refreshMu.Lock()
		c.refreshing = false
		waiters := c.waiters
		c.waiters = nil
		c.refreshMu.Unlock()
		for _, ch := range waiters {
			ch <- res
		}
	}()

	res = c.doRefresh(ctx)
	return res.token, res.err
}

func (c *Client) doRefresh(ctx context.Context) refreshResult {
	session := c.tokens.Session(ctx)
	if session.RefreshToken == "" {
		c.logger.Warn(ctx, "Received 401 with no stored refresh token, clearing session")
		metrics.ObserveTokenRefresh("failure")
		if err := c.tokens.ClearSession(ctx); err != nil {
			c.logger.Error(ctx, "Failed to clear session", "error", err.Error())
		}
		return refreshResult{err: domain.ErrSessionExpired}
	}

	// The rotation call goes out bare: no bearer header, no retries, and
	// never through the 401 flow it is part of.
	payload, err := json.Marshal(map[string]string{"refreshToken": session.RefreshToken})
	if err != nil {
		return refreshResult{err: fmt.Errorf("failed to marshal refresh payload: %w", err)}
	}

	var resp domain.RefreshResponse
	if err := c.attemptOnce(ctx, http.MethodPost, "/auth/refresh", nil, payload, &resp, ""); err != nil {
		c.logger.Warn(ctx, "Token refresh failed, clearing session", "error", err.Error())
		metrics.ObserveTokenRefresh("failure")
		if clearErr := c.tokens.ClearSession(ctx); clearErr != nil {
			c.logger.Error(ctx, "Failed to clear session after refresh failure", "error", clearErr.Error())
		}
		return refreshResult{err: fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)}
	}

	newSession := domain.Session{AccessToken: resp.Token, RefreshToken: resp.RefreshToken}
	if err := c.tokens.SaveSession(ctx, newSession); err != nil {
		// The rotation succeeded server-side; keep going with the new token
		// even if persisting it failed.
		c.logger.Error(ctx, "Failed to persist rotated session", "error", err.Error())
	}

	metrics.ObserveTokenRefresh("success")
	c.logger.Info(ctx, "Access token refreshed")
	return refreshResult{token: resp.Token}
}
