package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/models"
)

func (h *Handler) ListCertifications(c *gin.Context) {
	certs, err := h.store.GetAllCertifications(c.Request.Context())
	if err != nil {
		serverError(c, "list certifications", err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *Handler) CreateCertification(c *gin.Context) {
	var req models.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.CertImageURL == nil || *req.CertImageURL == "" {
		badRequest(c, "Certificate image URL is required")
		return
	}
	cert, err := h.store.CreateCertification(c.Request.Context(), req.Params())
	if err != nil {
		serverError(c, "create certification", err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *Handler) UpdateCertification(c *gin.Context) {
	var req models.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	cert, err := h.store.UpdateCertification(c.Request.Context(), c.Param("id"), req.Params())
	if err != nil {
		serverError(c, "update certification", err)
		return
	}
	if cert == nil {
		notFound(c, "Certification")
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *Handler) DeleteCertification(c *gin.Context) {
	deleted, err := h.store.DeleteCertification(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, "delete certification", err)
		return
	}
	if !deleted {
		notFound(c, "Certification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted"})
}
