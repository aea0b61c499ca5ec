package handler

import (
	"context"
	"net/http"

	"access-compass-api/internal/models"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles per-location reviews and change propositions.
type FeedbackHandler struct {
	service FeedbackService
}

// FeedbackService interface for dependency injection.
type FeedbackService interface {
	ListReviews(ctx context.Context, locationID int) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
	ListPropositions(ctx context.Context, locationID int) ([]models.Proposition, error)
	CreateProposition(ctx context.Context, prop models.Proposition) (*models.Proposition, error)
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

type reviewRequest struct {
	UserID  int    `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type propositionRequest struct {
	UserID int    `json:"user_id"`
	Text   string `json:"text"`
}

func (h *FeedbackHandler) ListReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := h.service.ListReviews(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *FeedbackHandler) CreateReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), models.Review{
		LocationID: id,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *FeedbackHandler) ListPropositions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	propositions, err := h.service.ListPropositions(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusOK, propositions)
}

func (h *FeedbackHandler) CreateProposition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req propositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prop, err := h.service.CreateProposition(c.Request.Context(), models.Proposition{
		LocationID: id,
		UserID:     req.UserID,
		Text:       req.Text,
	})
	if err != nil {
		writeError(c, err, "location not found")
		return
	}
	c.JSON(http.StatusCreated, prop)
}
