package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/models"
)

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.GetAllProjects(c.Request.Context())
	if err != nil {
		serverError(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !hasValue(req.Title) || !hasValue(req.Description) || !hasValue(req.ImageURL) ||
		!hasValue(req.Alt) || !hasValue(req.GithubURL) {
		badRequest(c, "Missing required fields: title, description, imageUrl, alt, and githubUrl are required")
		return
	}
	project, err := h.store.CreateProject(c.Request.Context(), req.Params())
	if err != nil {
		serverError(c, "create project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	project, err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), req.Params())
	if err != nil {
		serverError(c, "update project", err)
		return
	}
	if project == nil {
		notFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	deleted, err := h.store.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, "delete project", err)
		return
	}
	if !deleted {
		notFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
