package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-cms/internal/domain"
	"catalog-cms/internal/service"
	"catalog-cms/internal/session"
)

// Handler wires HTTP routes to domain services. Responses are either a
// redirect (successful mutation) or a JSON page payload the frontend
// renders; recoverable failures carry an "error" message in the payload.
type Handler struct {
	users    service.UserService
	items    service.ItemService
	sessions session.Store
	log      *logrus.Logger
}

func NewHandler(users service.UserService, items service.ItemService, sessions session.Store, log *logrus.Logger) *Handler {
	return &Handler{
		users:    users,
		items:    items,
		sessions: sessions,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.catalog)
	router.GET("/about", h.about)
	router.GET("/contact", h.contact)
	router.GET("/item-detail/:id", h.itemDetail)
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/register", h.registerForm)
	router.POST("/register", h.register)

	authed := router.Group("/", h.requireSession())
	authed.GET("/logout", h.logout)
	authed.POST("/logout", h.logout)

	admin := router.Group("/admin-panel", h.requireSession())
	{
		admin.GET("", h.adminPanel)
		admin.GET("/users", h.listUsers)
		admin.GET("/users/:id/delete", h.confirmDeleteUser)
		admin.GET("/users/:id/delete/yes", h.deleteUser)
		admin.GET("/users/:id/edit", h.editUserForm)
		admin.POST("/users/:id/edit", h.editUser)
		admin.GET("/items", h.listItems)
		admin.GET("/items/add-item", h.addItemForm)
		admin.POST("/items/add-item", h.addItem)
		admin.GET("/items/:id/delete", h.confirmDeleteItem)
		admin.GET("/items/:id/delete/yes", h.deleteItem)
		admin.GET("/items/:id/edit", h.editItemForm)
		admin.POST("/items/:id/edit", h.editItem)
	}
}

// renderError maps service errors to the page payload re-rendered with a
// user-facing message. Unrecognized errors are store failures: logged,
// answered with a generic message.
func (h *Handler) renderError(c *gin.Context, page string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"page": page, "error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"page": page, "error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"page": page, "error": err.Error()})
	default:
		h.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"page": page, "error": "something went wrong, please try again"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

type UserResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

type ItemResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Intro    string `json:"intro"`
	Text     string `json:"text"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Status   bool   `json:"status"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		RegisteredAt: user.RegisteredAt.Format(time.RFC3339),
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	return resp
}

func itemToResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Title:    item.Title,
		Intro:    item.Intro,
		Text:     item.Text,
		Price:    item.Price,
		Category: item.Category,
		Status:   item.Status,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i := range items {
		resp[i] = itemToResponse(items[i])
	}
	return resp
}
