package handler

import (
	"context"
	"net/http"
	"strconv"

	"access-compass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles catalog requests.
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection.
type LocationService interface {
	Create(ctx context.Context, params models.LocationParams) (*models.Location, error)
	Update(ctx context.Context, id int, params models.LocationParams) (*models.Location, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*models.Location, error)
	List(ctx context.Context, filter models.LocationFilter) ([]models.Location, error)
	AddFeature(ctx context.Context, locationID, featureID int) (*models.Location, error)
	RemoveFeature(ctx context.Context, locationID, featureID int) (*models.Location, error)
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

type featureIDRequest struct {
	FeatureID int `json:"feature_id"`
}

// List handles GET /locations requests.
// @Summary List locations
// @Description Lists the catalog, optionally filtered by category names, feature names and a minimum rating.
// @Param categories query []string false "category names (repeat for multiple)"
// @Param accessibility_features query []string false "feature names (repeat for multiple)"
// @Param min_rating query number false "inclusive rating lower bound"
// @Produce json
// @Success 200 {array} models.Location
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	filter := models.LocationFilter{
		Categories: dedup(c.QueryArray("categories")),
		Features:   dedup(c.QueryArray("accessibility_features")),
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		filter.MinRating = &minRating
	}

	locations, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusOK, locations)
}

// Get handles GET /locations/:id requests.
// @Summary Get one location in full shape
// @Produce json
// @Success 200 {object} models.Location
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	location, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusOK, location)
}

// Create handles POST /locations requests.
// @Summary Register a location
// @Description Creates a location and derives its accessibility level and rating from the supplied associations.
// @Accept json
// @Produce json
// @Success 201 {object} models.Location
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var params models.LocationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, err := h.service.Create(c.Request.Context(), params)
	if err != nil {
		writeError(c, err, "referenced entity not found")
		return
	}
	c.JSON(http.StatusCreated, location)
}

// Update handles PUT and PATCH /locations/:id requests. Omitted fields
// keep their current values; any change re-syncs the classification.
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var params models.LocationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, err := h.service.Update(c.Request.Context(), id, params)
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusOK, location)
}

// Delete handles DELETE /locations/:id requests.
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFeature handles POST /locations/:id/add_feature requests.
// @Summary Attach an accessibility feature
// @Description Idempotently attaches a feature and re-syncs the location's level and rating.
// @Accept json
// @Produce json
// @Success 200 {object} models.Location
// @Router /locations/{id}/add_feature [post]
func (h *LocationHandler) AddFeature(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req featureIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, err := h.service.AddFeature(c.Request.Context(), id, req.FeatureID)
	if err != nil {
		writeError(c, err, "location or feature not found")
		return
	}
	c.JSON(http.StatusOK, location)
}

// RemoveFeature handles POST /locations/:id/remove_feature requests.
func (h *LocationHandler) RemoveFeature(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req featureIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, err := h.service.RemoveFeature(c.Request.Context(), id, req.FeatureID)
	if err != nil {
		writeError(c, err, "location or feature not found")
		return
	}
	c.JSON(http.StatusOK, location)
}

// pathID parses the :id path parameter, answering 400 itself on failure.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// dedup drops repeated filter values while keeping order.
func dedup(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
