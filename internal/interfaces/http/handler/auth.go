package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/ponsiv/backend/internal/application/identity"
	"github.com/ponsiv/backend/internal/infrastructure/config"
	"github.com/ponsiv/backend/internal/interfaces/http/middleware"
)

// AuthHandler brokers login and session endpoints against the external
// identity service
type AuthHandler struct {
	BaseHandler
	identityService *identityapp.Service
	cookie          config.CookieConfig
	requireSession  gin.HandlerFunc
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityService *identityapp.Service, cookie config.CookieConfig, requireSession gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		cookie:          cookie,
		requireSession:  requireSession,
	}
}

// RegisterRoutes mounts session routes on the given group. Logout is open
// so a stale cookie can always be cleared.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/oauth/:provider/redirect_url", h.RedirectURL)
	rg.POST("/sessions", h.CreateSession)
	rg.GET("/logout", h.Logout)
	rg.GET("/users/me", h.requireSession, h.Me)
}

// RedirectURLResponse carries an OAuth entry URL
type RedirectURLResponse struct {
	URL string `json:"url"`
}

// RedirectURL returns the OAuth entry URL for a provider
func (h *AuthHandler) RedirectURL(c *gin.Context) {
	url, err := h.identityService.RedirectURL(c.Request.Context(), c.Param("provider"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, RedirectURLResponse{URL: url})
}

// CreateSessionRequest carries the OAuth callback payload
type CreateSessionRequest struct {
	Provider string `json:"provider" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// CreateSession exchanges an OAuth code for a session and sets the
// session cookie
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	token, err := h.identityService.CreateSession(c.Request.Context(), req.Provider, req.Code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cookie.MaxAge)
	h.Created(c, gin.H{"authenticated": true})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	h.Success(c, middleware.GetSessionUser(c))
}

// Logout invalidates the session and clears the cookie. The remote delete
// is best effort; the cookie is cleared regardless.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		_ = h.identityService.Logout(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)
	h.NoContent(c)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
