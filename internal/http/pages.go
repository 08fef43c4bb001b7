package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) about(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "about"})
}

func (h *Handler) contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "contact"})
}

func (h *Handler) adminPanel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "admin-panel"})
}
