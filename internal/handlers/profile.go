package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowIndex(c *gin.Context) {
	if username, ok := CurrentIdentity(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}
	c.Redirect(http.StatusFound, "/register")
}

func (h *Handler) ShowProfile(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	user, err := h.users.GetByUsername(username)
	if err != nil {
		// Session points at a user that no longer exists
		c.Redirect(http.StatusFound, "/login")
		return
	}

	notes, err := h.notes.ListByOwner(username)
	if err != nil {
		h.logger.Error("failed to list notes", "username", username, "error", err)
		notes = nil
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":  user,
		"Notes": notes,
	})
}

func (h *Handler) HandleDeleteUserForm(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	if err := h.users.Delete(username); err != nil {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	h.logger.Info("account deleted", "username", username)

	c.Redirect(http.StatusFound, "/")
}
