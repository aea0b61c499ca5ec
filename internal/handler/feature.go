package handler

import (
	"context"
	"net/http"

	"access-compass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// FeatureHandler handles accessibility feature reference requests.
type FeatureHandler struct {
	service FeatureService
}

// FeatureService interface for dependency injection.
type FeatureService interface {
	List(ctx context.Context) ([]models.AccessibilityFeature, error)
	Get(ctx context.Context, id int) (*models.AccessibilityFeature, error)
	Create(ctx context.Context, name string) (*models.AccessibilityFeature, error)
	Update(ctx context.Context, id int, name string) (*models.AccessibilityFeature, error)
	Delete(ctx context.Context, id int) error
}

// NewFeatureHandler creates a new feature handler.
func NewFeatureHandler(svc FeatureService) *FeatureHandler {
	return &FeatureHandler{service: svc}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *FeatureHandler) List(c *gin.Context) {
	features, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "feature not found")
		return
	}
	c.JSON(http.StatusOK, features)
}

func (h *FeatureHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	feature, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "feature not found")
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (h *FeatureHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	feature, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err, "feature not found")
		return
	}
	c.JSON(http.StatusCreated, feature)
}

func (h *FeatureHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	feature, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err, "feature not found")
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (h *FeatureHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "feature not found")
		return
	}
	c.Status(http.StatusNoContent)
}
