package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) loginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		h.renderError(c, "login", err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		h.renderError(c, "login", err)
		return
	}

	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	h.log.WithField("username", user.Username).Info("user logged in")
	c.Redirect(http.StatusSeeOther, "/admin-panel")
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			h.log.WithError(err).Warn("delete session")
		}
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) registerForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	passwordCheck := c.PostForm("password_check")

	user, err := h.users.Register(c.Request.Context(), username, password, passwordCheck)
	if err != nil {
		h.renderError(c, "register", err)
		return
	}

	h.log.WithField("username", user.Username).Info("user registered")
	c.Redirect(http.StatusSeeOther, "/login")
}
