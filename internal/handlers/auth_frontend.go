package handlers

import (
	"errors"
	"net/http"

	"gonotes/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *Handler) HandleLoginForm(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

func (h *Handler) HandleRegisterForm(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	email := c.PostForm("email")
	firstName := c.PostForm("first_name")
	lastName := c.PostForm("last_name")

	if username == "" || password == "" || email == "" || firstName == "" || lastName == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "All fields are required"})
		return
	}

	user, err := h.users.Register(repository.RegisterInput{
		Username:  username,
		Password:  password,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.HTML(http.StatusConflict, "register.html", gin.H{"Error": "Username or email already exists"})
		} else {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Failed to create user"})
		}
		return
	}

	// Registration logs the user in
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Failed to save session"})
		return
	}

	h.logger.Info("user registered", "username", user.Username)

	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

func (h *Handler) HandleLogoutForm(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to clear session"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}
