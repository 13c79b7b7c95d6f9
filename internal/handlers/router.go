package handlers

import (
	"net/http"

	"gonotes/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("gonotes_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowIndex)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.HandleLoginForm)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.HandleRegisterForm)
	r.POST("/logout", h.HandleLogoutForm)
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/api/logout", h.LogoutUser)

	// Protected Frontend Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/users/:username", h.ShowProfile)
		authorized.POST("/users/:username/delete", h.HandleDeleteUserForm)
		authorized.GET("/users/:username/notes/new", h.ShowNewNote)
		authorized.POST("/users/:username/notes/new", h.HandleNewNoteForm)
		authorized.GET("/notes/:id/update", h.ShowEditNote)
		authorized.POST("/notes/:id/update", h.HandleEditNoteForm)
		authorized.POST("/notes/:id/delete", h.HandleDeleteNoteForm)
	}

	// Protected API Routes
	api := r.Group("/api/v1")
	api.Use(h.AuthRequired())
	{
		api.GET("/users/:username", h.GetUser)
		api.DELETE("/users/:username", h.DeleteUser)
		api.GET("/users/:username/notes", h.ListNotes)
		api.POST("/users/:username/notes", h.CreateNote)
		api.PUT("/notes/:id", h.UpdateNote)
		api.DELETE("/notes/:id", h.DeleteNote)
		api.POST("/auth/apikey", h.RotateAPIKey)
	}

	return r
}
