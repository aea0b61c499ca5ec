package handler

import (
	"context"
	"net/http"

	"access-compass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LevelHandler exposes the read-only accessibility level registry.
type LevelHandler struct {
	service LevelService
}

// LevelService interface for dependency injection.
type LevelService interface {
	List(ctx context.Context) ([]models.AccessibilityLevel, error)
	Get(ctx context.Context, id int) (*models.AccessibilityLevel, error)
}

// NewLevelHandler creates a new level handler.
func NewLevelHandler(svc LevelService) *LevelHandler {
	return &LevelHandler{service: svc}
}

func (h *LevelHandler) List(c *gin.Context) {
	levels, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "accessibility level not found")
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (h *LevelHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	level, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "accessibility level not found")
		return
	}
	c.JSON(http.StatusOK, level)
}
