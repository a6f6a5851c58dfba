package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/models"
)

func (h *Handler) ListHackathons(c *gin.Context) {
	hackathons, err := h.store.GetAllHackathons(c.Request.Context())
	if err != nil {
		serverError(c, "list hackathons", err)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

func (h *Handler) CreateHackathon(c *gin.Context) {
	var req models.HackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	hackathon, err := h.store.CreateHackathon(c.Request.Context(), req.Params())
	if err != nil {
		serverError(c, "create hackathon", err)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

func (h *Handler) UpdateHackathon(c *gin.Context) {
	var req models.HackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	hackathon, err := h.store.UpdateHackathon(c.Request.Context(), c.Param("id"), req.Params())
	if err != nil {
		serverError(c, "update hackathon", err)
		return
	}
	if hackathon == nil {
		notFound(c, "Hackathon")
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

func (h *Handler) DeleteHackathon(c *gin.Context) {
	deleted, err := h.store.DeleteHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, "delete hackathon", err)
		return
	}
	if !deleted {
		notFound(c, "Hackathon")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted"})
}
