package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ponsiv/backend/internal/domain/identity"
	"github.com/ponsiv/backend/internal/infrastructure/logger"
	"github.com/ponsiv/backend/internal/interfaces/http/dto"
)

const (
	// SessionUserKey is the gin context key holding the resolved user
	SessionUserKey = "session_user"
	// SessionTokenKey is the gin context key holding the raw session token
	SessionTokenKey = "session_token"
)

// UserResolver maps an opaque session token to a user. Implemented by the
// identity application service.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*identity.User, error)
}

// extractToken reads the session token from the cookie, falling back to
// a bearer Authorization header for non-browser clients
func extractToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return after
	}
	return ""
}

// RequireSession rejects requests without a valid session. On success the
// resolved user and token are stored in the gin context and the user ID
// is attached to the request logger context.
func RequireSession(resolver UserResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		user, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid or expired session"))
			return
		}

		c.Set(SessionUserKey, user)
		c.Set(SessionTokenKey, token)
		ctx, _ := logger.WithUserID(c.Request.Context(),
			logger.FromContext(c.Request.Context()), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalSession resolves the session when present but never rejects.
// Handlers can distinguish anonymous requests via GetSessionUser.
func OptionalSession(resolver UserResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token != "" {
			if user, err := resolver.ResolveUser(c.Request.Context(), token); err == nil {
				c.Set(SessionUserKey, user)
				c.Set(SessionTokenKey, token)
				ctx, _ := logger.WithUserID(c.Request.Context(),
					logger.FromContext(c.Request.Context()), user.ID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// GetSessionUser returns the resolved user for the current request, or
// nil for anonymous requests
func GetSessionUser(c *gin.Context) *identity.User {
	if v, ok := c.Get(SessionUserKey); ok {
		if user, ok := v.(*identity.User); ok {
			return user
		}
	}
	return nil
}

// GetSessionUserID returns the current user's ID, or "" when anonymous
func GetSessionUserID(c *gin.Context) string {
	if user := GetSessionUser(c); user != nil {
		return user.ID
	}
	return ""
}

// GetSessionToken returns the raw session token for the current request
func GetSessionToken(c *gin.Context) string {
	return c.GetString(SessionTokenKey)
}
