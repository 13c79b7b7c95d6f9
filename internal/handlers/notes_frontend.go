package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowNewNote(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	c.HTML(http.StatusOK, "note_new.html", gin.H{"Owner": username})
}

func (h *Handler) HandleNewNoteForm(c *gin.Context) {
	username := c.Param("username")
	if !Authorize(c, username) {
		h.deny(c)
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.HTML(http.StatusBadRequest, "note_new.html", gin.H{
			"Owner": username,
			"Error": "Title and content are required",
		})
		return
	}

	if _, err := h.notes.Create(username, title, content); err != nil {
		c.HTML(http.StatusInternalServerError, "note_new.html", gin.H{
			"Owner": username,
			"Error": "Failed to create note",
		})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+username)
}

func (h *Handler) ShowEditNote(c *gin.Context) {
	note, ok := h.ownedNote(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "note_edit.html", gin.H{"Note": note})
}

func (h *Handler) HandleEditNoteForm(c *gin.Context) {
	note, ok := h.ownedNote(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.HTML(http.StatusBadRequest, "note_edit.html", gin.H{
			"Note":  note,
			"Error": "Title and content are required",
		})
		return
	}

	if _, err := h.notes.Update(note.ID, title, content); err != nil {
		c.HTML(http.StatusInternalServerError, "note_edit.html", gin.H{
			"Note":  note,
			"Error": "Failed to update note",
		})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+note.Owner)
}

func (h *Handler) HandleDeleteNoteForm(c *gin.Context) {
	note, ok := h.ownedNote(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(note.ID); err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete note")
		return
	}

	c.Redirect(http.StatusFound, "/users/"+note.Owner)
}
