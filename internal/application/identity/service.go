package identity

import (
	"context"
	"time"

	"github.com/ponsiv/backend/internal/domain/identity"
	"github.com/ponsiv/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SessionClient talks to the external identity service. Tokens are opaque
// to this service; only the identity service can mint or validate them.
type SessionClient interface {
	GetOAuthRedirectURL(ctx context.Context, provider string) (string, error)
	ExchangeCode(ctx context.Context, provider, code string) (string, error)
	GetUser(ctx context.Context, token string) (*identity.User, error)
	DeleteSession(ctx context.Context, token string) error
}

// SessionCache caches token-to-user lookups to keep the identity service
// off the hot path. A miss falls through to the client.
type SessionCache interface {
	Get(ctx context.Context, token string) (*identity.User, bool)
	Set(ctx context.Context, token string, user *identity.User, ttl time.Duration)
	Delete(ctx context.Context, token string)
}

const sessionCacheTTL = 5 * time.Minute

// Service brokers authentication against the external identity service
type Service struct {
	client SessionClient
	cache  SessionCache
	logger *zap.Logger
}

// NewService creates a new identity Service
func NewService(client SessionClient, cache SessionCache, logger *zap.Logger) *Service {
	return &Service{client: client, cache: cache, logger: logger}
}

// RedirectURL returns the OAuth entry URL for a provider
func (s *Service) RedirectURL(ctx context.Context, provider string) (string, error) {
	if provider == "" {
		return "", shared.NewDomainError("INVALID_PROVIDER", "Provider is required")
	}
	return s.client.GetOAuthRedirectURL(ctx, provider)
}

// CreateSession exchanges an OAuth authorization code for a session token
func (s *Service) CreateSession(ctx context.Context, provider, code string) (string, error) {
	if provider == "" || code == "" {
		return "", shared.NewDomainError("INVALID_CODE", "Provider and code are required")
	}
	return s.client.ExchangeCode(ctx, provider, code)
}

// ResolveUser maps a session token to its user, consulting the cache first
func (s *Service) ResolveUser(ctx context.Context, token string) (*identity.User, error) {
	if token == "" {
		return nil, shared.ErrUnauthorized
	}
	if user, ok := s.cache.Get(ctx, token); ok {
		return user, nil
	}
	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, token, user, sessionCacheTTL)
	return user, nil
}

// Logout invalidates the session remotely and drops it from the cache. A
// remote failure still clears the local cache entry.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	s.cache.Delete(ctx, token)
	if err := s.client.DeleteSession(ctx, token); err != nil {
		s.logger.Warn("remote session delete failed", zap.Error(err))
		return err
	}
	return nil
}
