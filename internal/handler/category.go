package handler

import (
	"context"
	"net/http"

	"access-compass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category reference requests.
type CategoryHandler struct {
	service CategoryService
}

// CategoryService interface for dependency injection.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id int, name string) (*models.Category, error)
	Delete(ctx context.Context, id int) error
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	category, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	category, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
