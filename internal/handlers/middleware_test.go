package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gonotes/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestMiddlewares(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("AuthRequired - Anonymous Redirect", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/alice", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("AuthRequired - Anonymous API", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/alice", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AuthRequired - API Key Success", func(t *testing.T) {
		user := registerTestUser(t, h, "keyauth", "password123", "keyauth@x.com")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/keyauth", nil)
		req.Header.Set("X-API-Key", user.APIKey)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("AuthRequired - Invalid API Key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/keyauth", nil)
		req.Header.Set("X-API-Key", "bogus")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AuthRequired - Session Success", func(t *testing.T) {
		registerTestUser(t, h, "sessauth", "password123", "sessauth@x.com")
		cookie := loginCookie(t, r, "sessauth", "password123")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/sessauth", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Authorize - Identity Mismatch HTML", func(t *testing.T) {
		registerTestUser(t, h, "usera", "password123", "usera@x.com")
		registerTestUser(t, h, "userb", "password123", "userb@x.com")
		cookie := loginCookie(t, r, "usera", "password123")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/userb", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("Authorize - Identity Mismatch API", func(t *testing.T) {
		user := registerTestUser(t, h, "userc", "password123", "userc@x.com")
		registerTestUser(t, h, "userd", "password123", "userd@x.com")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/userd", nil)
		req.Header.Set("X-API-Key", user.APIKey)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("CurrentIdentity", func(t *testing.T) {
		r.GET("/whoami", func(c *gin.Context) {
			username, ok := CurrentIdentity(c)
			if !ok {
				c.String(http.StatusOK, "anonymous")
				return
			}
			c.String(http.StatusOK, username)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, "anonymous", w.Body.String())

		registerTestUser(t, h, "whoami", "password123", "whoami@x.com")
		cookie := loginCookie(t, r, "whoami", "password123")

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/whoami", nil)
		req2.Header.Set("Cookie", cookie)
		r.ServeHTTP(w2, req2)
		assert.Equal(t, "whoami", w2.Body.String())
	})

	t.Run("RateLimitMiddleware", func(t *testing.T) {
		limiter := services.NewIPRateLimiter(rate.Limit(1), 1, h.logger)
		r.GET("/limited", h.RateLimitMiddleware(limiter), func(c *gin.Context) {
			c.Status(200)
		})

		// First request allowed
		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		// Second request blocked
		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	})
}
