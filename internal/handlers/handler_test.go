package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"gonotes/internal/config"
	"gonotes/internal/models"
	"gonotes/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.Note{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	users := repository.NewUserRepository(db)
	notes := repository.NewNoteRepository(db)

	h := NewHandler(cfg, logger, db, users, notes)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*", "../../web/static")
}

func registerTestUser(t *testing.T, h *Handler, username, password, email string) *models.User {
	t.Helper()
	user, err := h.users.Register(repository.RegisterInput{
		Username:  username,
		Password:  password,
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return user
}

// loginCookie logs in through the form and returns the session cookie.
func loginCookie(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("login as %s failed with status %d", username, w.Code)
	}
	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("login did not set a session cookie")
	}
	return cookie
}
