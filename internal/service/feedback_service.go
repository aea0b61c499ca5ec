package service

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// FeedbackService stores reviews and change propositions. Both are
// append-only per location and never touch the location's derived state.
type FeedbackService struct {
	repo FeedbackRepository
}

// FeedbackRepository interface for dependency injection.
type FeedbackRepository interface {
	ListReviews(ctx context.Context, locationID int) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
	ListPropositions(ctx context.Context, locationID int) ([]models.Proposition, error)
	CreateProposition(ctx context.Context, prop models.Proposition) (*models.Proposition, error)
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) ListReviews(ctx context.Context, locationID int) ([]models.Review, error) {
	if locationID <= 0 {
		return nil, invalidf("invalid location id: %d", locationID)
	}
	reviews, err := s.repo.ListReviews(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *FeedbackService) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	if review.LocationID <= 0 {
		return nil, invalidf("invalid location id: %d", review.LocationID)
	}
	if review.UserID <= 0 {
		return nil, invalidf("invalid user id: %d", review.UserID)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create review: %w", err)
	}
	return created, nil
}

func (s *FeedbackService) ListPropositions(ctx context.Context, locationID int) ([]models.Proposition, error) {
	if locationID <= 0 {
		return nil, invalidf("invalid location id: %d", locationID)
	}
	propositions, err := s.repo.ListPropositions(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list propositions: %w", err)
	}
	return propositions, nil
}

func (s *FeedbackService) CreateProposition(ctx context.Context, prop models.Proposition) (*models.Proposition, error) {
	if prop.LocationID <= 0 {
		return nil, invalidf("invalid location id: %d", prop.LocationID)
	}
	if prop.UserID <= 0 {
		return nil, invalidf("invalid user id: %d", prop.UserID)
	}
	if prop.Text == "" {
		return nil, invalidf("text is required")
	}

	created, err := s.repo.CreateProposition(ctx, prop)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create proposition: %w", err)
	}
	return created, nil
}
