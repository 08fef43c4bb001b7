package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-cms/internal/domain"
	"catalog-cms/internal/service"
)

// catalog is the public item listing. Anonymous visitors only see
// items whose visibility flag is set; a logged-in admin sees everything.
func (h *Handler) catalog(c *gin.Context) {
	var (
		items []domain.Item
		err   error
	)
	if _, ok := h.sessionUserID(c); ok {
		items, err = h.items.List(c.Request.Context())
	} else {
		items, err = h.items.ListVisible(c.Request.Context())
	}
	if err != nil {
		h.renderError(c, "index", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "index", "items": itemsToResponse(items)})
}

func (h *Handler) itemDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "item-detail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "item-detail", "item": itemToResponse(*item)})
}

func (h *Handler) listItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		h.renderError(c, "items", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "items", "items": itemsToResponse(items)})
}

func (h *Handler) addItemForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "add-item"})
}

func (h *Handler) addItem(c *gin.Context) {
	in, ok := h.bindItemForm(c, "add-item")
	if !ok {
		return
	}

	item, err := h.items.Create(c.Request.Context(), in)
	if err != nil {
		h.renderError(c, "add-item", err)
		return
	}

	h.log.WithField("item_id", item.ID).Info("item created")
	c.Redirect(http.StatusSeeOther, "/admin-panel/items")
}

func (h *Handler) confirmDeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "delete-item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "delete-item", "item": itemToResponse(*item)})
}

func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, "items", err)
		return
	}

	h.log.WithField("item_id", id).Info("item deleted")
	c.Redirect(http.StatusSeeOther, "/admin-panel/items")
}

func (h *Handler) editItemForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "edit-item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "edit-item", "item": itemToResponse(*item)})
}

func (h *Handler) editItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in, ok := h.bindItemForm(c, "edit-item")
	if !ok {
		return
	}
	in.Status = parseStatusFlag(c.PostForm("status"))

	if err := h.items.Update(c.Request.Context(), id, in); err != nil {
		h.renderError(c, "edit-item", err)
		return
	}

	h.log.WithField("item_id", id).Info("item updated")
	c.Redirect(http.StatusSeeOther, "/admin-panel/items")
}

// bindItemForm reads the shared add/edit form fields. A non-integer
// price is a validation failure reported to the user, not a request
// error.
func (h *Handler) bindItemForm(c *gin.Context, page string) (service.ItemInput, bool) {
	price, err := strconv.Atoi(strings.TrimSpace(c.PostForm("price")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"page": page, "error": "price must be an integer"})
		return service.ItemInput{}, false
	}

	return service.ItemInput{
		Title:    c.PostForm("title"),
		Intro:    c.PostForm("intro"),
		Text:     c.PostForm("text"),
		Price:    price,
		Category: c.PostForm("category"),
	}, true
}

func parseStatusFlag(v string) bool {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	return err == nil && b
}
