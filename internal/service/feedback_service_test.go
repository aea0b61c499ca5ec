package service

import (
	"context"
	"errors"
	"testing"

	"access-compass-api/internal/models"
	"access-compass-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository is a mock implementation of the FeedbackRepository interface
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) ListReviews(ctx context.Context, locationID int) ([]models.Review, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockFeedbackRepository) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockFeedbackRepository) ListPropositions(ctx context.Context, locationID int) ([]models.Proposition, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Proposition), args.Error(1)
}

func (m *MockFeedbackRepository) CreateProposition(ctx context.Context, prop models.Proposition) (*models.Proposition, error) {
	args := m.Called(ctx, prop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposition), args.Error(1)
}

func TestFeedbackService_CreateReview(t *testing.T) {
	tests := []struct {
		name        string
		review      models.Review
		callsRepo   bool
		repoError   error
		expectError bool
		validation  bool
	}{
		{
			name:        "rating below range",
			review:      models.Review{LocationID: 1, UserID: 1, Rating: 0},
			expectError: true,
			validation:  true,
		},
		{
			name:        "rating above range",
			review:      models.Review{LocationID: 1, UserID: 1, Rating: 6},
			expectError: true,
			validation:  true,
		},
		{
			name:        "missing user",
			review:      models.Review{LocationID: 1, Rating: 3},
			expectError: true,
			validation:  true,
		},
		{
			name:      "boundary ratings accepted",
			review:    models.Review{LocationID: 1, UserID: 1, Rating: 1},
			callsRepo: true,
		},
		{
			name:        "unknown location propagates not found",
			review:      models.Review{LocationID: 42, UserID: 1, Rating: 5},
			callsRepo:   true,
			repoError:   repository.ErrNotFound,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFeedbackRepository)
			service := NewFeedbackService(mockRepo)

			if tt.callsRepo {
				var result *models.Review
				if tt.repoError == nil {
					stored := tt.review
					stored.ID = 10
					result = &stored
				}
				mockRepo.On("CreateReview", mock.Anything, tt.review).Return(result, tt.repoError)
			}

			created, err := service.CreateReview(context.Background(), tt.review)

			if tt.expectError {
				assert.Error(t, err)
				if tt.validation {
					var vErr *ValidationError
					assert.True(t, errors.As(err, &vErr))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, created.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_CreateProposition(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	service := NewFeedbackService(mockRepo)

	_, err := service.CreateProposition(context.Background(), models.Proposition{LocationID: 1, UserID: 1})
	assert.Error(t, err, "empty text must be rejected")

	prop := models.Proposition{LocationID: 1, UserID: 1, Text: "add a ramp at the side entrance"}
	stored := prop
	stored.ID = 7
	mockRepo.On("CreateProposition", mock.Anything, prop).Return(&stored, nil)

	created, err := service.CreateProposition(context.Background(), prop)
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	mockRepo.AssertExpectations(t)
}
