package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	tokenEndpointPath = "/v1/generate-token"

	// MAIB tokens report expiresIn; we hand tokens out only while at least
	// this margin remains before real expiry.
	tokenSafetyMargin = 30 * time.Second

	defaultTokenExpiresIn = 300 * time.Second
)

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

// TokenManager caches the MAIB access token process-wide.
//
// The cache is read/written under a mutex, but a refresh is not exclusive:
// two concurrent misses may both call generate-token. The operation is
// idempotent and the last writer wins.
type TokenManager struct {
	cfg    Config
	client *http.Client

	mu    sync.RWMutex
	token *cachedToken

	now func() time.Time
}

func NewTokenManager(cfg Config, client *http.Client) *TokenManager {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &TokenManager{cfg: cfg, client: client, now: time.Now}
}

// AccessToken returns the cached token when still valid, refreshing it from
// the token endpoint otherwise. Every gateway operation goes through here, so
// a cache hit must cost no network call.
func (m *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if tok := m.cached(); tok != "" {
		return tok, nil
	}
	return m.refresh(ctx)
}

func (m *TokenManager) cached() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != nil && m.token.expiresAt.After(m.now()) {
		return m.token.accessToken
	}
	return ""
}

func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"projectId":     m.cfg.ProjectID,
		"projectSecret": m.cfg.ProjectSecret,
	})
	if err != nil {
		return "", &AuthError{Message: err.Error()}
	}

	url := m.cfg.baseURL() + tokenEndpointPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &AuthError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", wrapTransportError("generate-token", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessageFromBody(resp.StatusCode, body)
		log.Printf("[maib][token] generate-token failed status=%d message=%s", resp.StatusCode, msg)
		return "", &AuthError{StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed struct {
		Result struct {
			AccessToken string  `json:"accessToken"`
			ExpiresIn   float64 `json:"expiresIn"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &AuthError{StatusCode: resp.StatusCode, Message: "invalid generate-token response: " + err.Error()}
	}
	if parsed.Result.AccessToken == "" {
		return "", &AuthError{StatusCode: resp.StatusCode, Message: "access token missing in response"}
	}

	expiresIn := time.Duration(parsed.Result.ExpiresIn) * time.Second
	if expiresIn <= 0 {
		expiresIn = defaultTokenExpiresIn
	}
	ttl := expiresIn - tokenSafetyMargin
	if ttl < tokenSafetyMargin {
		ttl = tokenSafetyMargin
	}

	m.mu.Lock()
	m.token = &cachedToken{
		accessToken: parsed.Result.AccessToken,
		expiresAt:   m.now().Add(ttl),
	}
	m.mu.Unlock()
	log.Printf("[maib][token] token refreshed ttl=%s", ttl)

	return parsed.Result.AccessToken, nil
}
