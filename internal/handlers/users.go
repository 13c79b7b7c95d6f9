package handlers

import (
	"errors"
	"net/http"

	"gonotes/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetUser(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	user, err := h.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	if err := h.users.Delete(username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		}
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	h.logger.Info("account deleted", "username", username)

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
