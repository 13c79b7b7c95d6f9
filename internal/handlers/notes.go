package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gonotes/internal/models"
	"gonotes/internal/repository"

	"github.com/gin-gonic/gin"
)

type NoteRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// ownedNote loads the note from the :id param and checks that the current
// identity owns it. On failure it writes the response and returns false.
func (h *Handler) ownedNote(c *gin.Context) (*models.Note, bool) {
	isAPI := strings.HasPrefix(c.Request.URL.Path, "/api/")

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		if isAPI {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		} else {
			c.String(http.StatusNotFound, "Note not found")
		}
		return nil, false
	}

	note, err := h.notes.GetByID(uint(id64))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if isAPI {
				c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			} else {
				c.String(http.StatusNotFound, "Note not found")
			}
		} else if isAPI {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		} else {
			c.String(http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	if !Authorize(c, note.Owner) {
		h.deny(c)
		return nil, false
	}

	return note, true
}

func (h *Handler) ListNotes(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	notes, err := h.notes.ListByOwner(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (h *Handler) CreateNote(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.notes.Create(username, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *Handler) UpdateNote(c *gin.Context) {
	note, ok := h.ownedNote(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.notes.Update(note.ID, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	note, ok := h.ownedNote(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(note.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
