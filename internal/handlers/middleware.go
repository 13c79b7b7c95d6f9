package handlers

import (
	"net/http"
	"strings"

	"gonotes/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionUserKey holds the authenticated username, both in the signed
// session cookie and in the request context for API-key requests.
const sessionUserKey = "user_username"

// CurrentIdentity resolves the request to a username. The context value wins
// so API-key auth works without touching the cookie store.
func CurrentIdentity(c *gin.Context) (string, bool) {
	if v, ok := c.Get(sessionUserKey); ok {
		if username, ok := v.(string); ok && username != "" {
			return username, true
		}
	}

	session := sessions.Default(c)
	username, ok := session.Get(sessionUserKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// Authorize reports whether the session identity matches the resource owner.
func Authorize(c *gin.Context, target string) bool {
	username, ok := CurrentIdentity(c)
	return ok && username == target
}

func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if username, ok := session.Get(sessionUserKey).(string); ok && username != "" {
			c.Next()
			return
		}

		// Check for API Key if session is missing
		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			if user, err := h.users.GetByAPIKey(apiKey); err == nil {
				c.Set(sessionUserKey, user.Username)
				c.Next()
				return
			}
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	}
}

// deny rejects a request whose identity does not match the resource owner.
func (h *Handler) deny(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	} else {
		c.Redirect(http.StatusFound, "/login")
	}
	c.Abort()
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
