package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"portfolio/internal/storage"
)

// Handler serves the content endpoints. Storage failures never leak details to
// the client; they are logged and mapped to a generic 500.
type Handler struct {
	store storage.Storage
}

func New(store storage.Storage) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func serverError(c *gin.Context, op string, err error) {
	log.Error("storage operation failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
}
