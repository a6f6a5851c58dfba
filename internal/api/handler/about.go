package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/models"
)

// GetAbout returns the singleton about record, or null when none exists yet.
func (h *Handler) GetAbout(c *gin.Context) {
	about, err := h.store.GetAbout(c.Request.Context())
	if err != nil {
		serverError(c, "get about", err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// UpsertAbout creates or replaces the about record.
func (h *Handler) UpsertAbout(c *gin.Context) {
	var req models.AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	about, err := h.store.UpsertAbout(c.Request.Context(), req.Params())
	if err != nil {
		serverError(c, "upsert about", err)
		return
	}
	c.JSON(http.StatusOK, about)
}
