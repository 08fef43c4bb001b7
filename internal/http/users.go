package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.renderError(c, "users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "users", "users": usersToResponse(users)})
}

func (h *Handler) confirmDeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "delete-user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "delete-user", "user": userToResponse(*user)})
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, "users", err)
		return
	}

	h.log.WithField("user_id", id).Info("user deleted")
	c.Redirect(http.StatusSeeOther, "/admin-panel/users")
}

func (h *Handler) editUserForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "edit-user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "edit-user", "user": userToResponse(*user)})
}

func (h *Handler) editUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.users.Update(
		c.Request.Context(),
		id,
		c.PostForm("username"),
		c.PostForm("password"),
		c.PostForm("password_check"),
		c.PostForm("old_password"),
	)
	if err != nil {
		h.renderError(c, "edit-user", err)
		return
	}

	h.log.WithField("user_id", id).Info("user updated")
	c.Redirect(http.StatusSeeOther, "/admin-panel/users")
}
