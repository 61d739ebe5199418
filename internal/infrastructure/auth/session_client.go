package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ponsiv/backend/internal/domain/identity"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/infrastructure/config"
)

// HTTPSessionClient calls the external identity service over HTTP. All
// requests carry the service API key; session tokens are passed through
// as bearer tokens and never inspected locally.
type HTTPSessionClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSessionClient creates a session client from the identity config
func NewHTTPSessionClient(cfg config.IdentityConfig) *HTTPSessionClient {
	return &HTTPSessionClient{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type redirectURLResponse struct {
	URL string `json:"url"`
}

type exchangeCodeRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type exchangeCodeResponse struct {
	Token string `json:"token"`
}

// GetOAuthRedirectURL returns the provider's OAuth entry URL
func (c *HTTPSessionClient) GetOAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	path := "/oauth/" + url.PathEscape(provider) + "/redirect"
	var resp redirectURLResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// ExchangeCode trades an OAuth authorization code for a session token
func (c *HTTPSessionClient) ExchangeCode(ctx context.Context, provider, code string) (string, error) {
	var resp exchangeCodeResponse
	req := exchangeCodeRequest{Provider: provider, Code: code}
	if err := c.do(ctx, http.MethodPost, "/sessions", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetUser resolves a session token to its user
func (c *HTTPSessionClient) GetUser(ctx context.Context, token string) (*identity.User, error) {
	var user identity.User
	if err := c.do(ctx, http.MethodGet, "/sessions/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSession invalidates a session token remotely
func (c *HTTPSessionClient) DeleteSession(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/me", token, nil, nil)
}

func (c *HTTPSessionClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding identity request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building identity request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return shared.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return shared.ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding identity response: %w", err)
	}
	return nil
}
