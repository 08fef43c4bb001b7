package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"catalog-cms/internal/session"
)

const (
	sessionCookie = "catalog_session"
	ctxUserIDKey  = "userID"
)

// requireSession guards admin routes. Anonymous callers are redirected
// to the login page with the original URL as a return-path hint.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := h.sessionUserID(c); ok {
			c.Set(ctxUserIDKey, userID)
			c.Next()
			return
		}
		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, "/login?next="+next)
		c.Abort()
	}
}

// sessionUserID resolves the session cookie without aborting the
// request, so public pages can vary output for logged-in users.
func (h *Handler) sessionUserID(c *gin.Context) (int64, bool) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		return 0, false
	}

	userID, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			h.log.WithError(err).Warn("session lookup failed")
		}
		return 0, false
	}
	return userID, true
}
