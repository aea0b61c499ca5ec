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

// MockLocationRepository is a mock implementation of the LocationRepository interface
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) CreateLocation(ctx context.Context, params models.LocationParams) (*models.Location, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, id int, params models.LocationParams) (*models.Location, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) DeleteLocation(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) GetLocation(ctx context.Context, id int) (*models.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationRepository) AddLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	args := m.Called(ctx, locationID, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) RemoveLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	args := m.Called(ctx, locationID, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func strPtr(s string) *string   { return &s }
func fltPtr(f float64) *float64 { return &f }

func TestLocationService_Create(t *testing.T) {
	stored := &models.Location{ID: 1, Name: "Central Cafe", Address: "1 Main St"}

	tests := []struct {
		name        string
		params      models.LocationParams
		callsRepo   bool
		repoResult  *models.Location
		repoError   error
		expectError bool
		validation  bool
	}{
		{
			name:        "missing name",
			params:      models.LocationParams{Address: strPtr("1 Main St")},
			expectError: true,
			validation:  true,
		},
		{
			name:        "empty name",
			params:      models.LocationParams{Name: strPtr(""), Address: strPtr("1 Main St")},
			expectError: true,
			validation:  true,
		},
		{
			name:        "missing address",
			params:      models.LocationParams{Name: strPtr("Central Cafe")},
			expectError: true,
			validation:  true,
		},
		{
			name: "latitude out of range",
			params: models.LocationParams{
				Name:     strPtr("Central Cafe"),
				Address:  strPtr("1 Main St"),
				Latitude: fltPtr(91),
			},
			expectError: true,
			validation:  true,
		},
		{
			name: "longitude out of range",
			params: models.LocationParams{
				Name:      strPtr("Central Cafe"),
				Address:   strPtr("1 Main St"),
				Longitude: fltPtr(-181),
			},
			expectError: true,
			validation:  true,
		},
		{
			name: "non-positive feature id",
			params: models.LocationParams{
				Name:       strPtr("Central Cafe"),
				Address:    strPtr("1 Main St"),
				FeatureIDs: []int{1, 0},
			},
			expectError: true,
			validation:  true,
		},
		{
			name: "successful create",
			params: models.LocationParams{
				Name:        strPtr("Central Cafe"),
				Address:     strPtr("1 Main St"),
				FeatureIDs:  []int{1, 2},
				CategoryIDs: []int{3},
			},
			callsRepo:  true,
			repoResult: stored,
		},
		{
			name: "repository error",
			params: models.LocationParams{
				Name:    strPtr("Central Cafe"),
				Address: strPtr("1 Main St"),
			},
			callsRepo:   true,
			repoError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLocationRepository)
			service := NewLocationService(mockRepo)

			if tt.callsRepo {
				mockRepo.On("CreateLocation", mock.Anything, tt.params).Return(tt.repoResult, tt.repoError)
			}

			result, err := service.Create(context.Background(), tt.params)

			if tt.expectError {
				assert.Error(t, err)
				if tt.validation {
					var vErr *ValidationError
					assert.True(t, errors.As(err, &vErr), "expected a validation error, got %v", err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.repoResult, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_List(t *testing.T) {
	catalog := []models.Location{
		{ID: 1, Name: "Central Cafe", Rating: 4.0},
		{ID: 2, Name: "City Museum", Rating: 2.0},
	}

	tests := []struct {
		name        string
		filter      models.LocationFilter
		callsRepo   bool
		repoResult  []models.Location
		expectError bool
	}{
		{
			name:       "no filters returns full catalog",
			filter:     models.LocationFilter{},
			callsRepo:  true,
			repoResult: catalog,
		},
		{
			name:       "category filter passed through",
			filter:     models.LocationFilter{Categories: []string{"Cafe"}},
			callsRepo:  true,
			repoResult: catalog[:1],
		},
		{
			name:        "negative min_rating rejected",
			filter:      models.LocationFilter{MinRating: fltPtr(-1)},
			expectError: true,
		},
		{
			name:        "min_rating above scale rejected",
			filter:      models.LocationFilter{MinRating: fltPtr(5.5)},
			expectError: true,
		},
		{
			name:       "min_rating at bounds accepted",
			filter:     models.LocationFilter{MinRating: fltPtr(5)},
			callsRepo:  true,
			repoResult: []models.Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLocationRepository)
			service := NewLocationService(mockRepo)

			if tt.callsRepo {
				mockRepo.On("ListLocations", mock.Anything, tt.filter).Return(tt.repoResult, nil)
			}

			result, err := service.List(context.Background(), tt.filter)

			if tt.expectError {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.repoResult, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_AddFeature(t *testing.T) {
	stored := &models.Location{ID: 1, Name: "Central Cafe"}

	tests := []struct {
		name        string
		locationID  int
		featureID   int
		callsRepo   bool
		repoResult  *models.Location
		repoError   error
		expectError bool
		notFound    bool
	}{
		{
			name:        "invalid location id",
			locationID:  0,
			featureID:   1,
			expectError: true,
		},
		{
			name:        "invalid feature id",
			locationID:  1,
			featureID:   -2,
			expectError: true,
		},
		{
			name:       "successful add",
			locationID: 1,
			featureID:  2,
			callsRepo:  true,
			repoResult: stored,
		},
		{
			name:        "missing feature surfaces not found",
			locationID:  1,
			featureID:   99,
			callsRepo:   true,
			repoError:   repository.ErrNotFound,
			expectError: true,
			notFound:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLocationRepository)
			service := NewLocationService(mockRepo)

			if tt.callsRepo {
				mockRepo.On("AddLocationFeature", mock.Anything, tt.locationID, tt.featureID).Return(tt.repoResult, tt.repoError)
			}

			result, err := service.AddFeature(context.Background(), tt.locationID, tt.featureID)

			if tt.expectError {
				assert.Error(t, err)
				if tt.notFound {
					// The sentinel must survive the service's wrapping.
					assert.True(t, errors.Is(err, repository.ErrNotFound))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.repoResult, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLocationService_RemoveFeature_Validation(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	service := NewLocationService(mockRepo)

	_, err := service.RemoveFeature(context.Background(), -1, 2)
	assert.Error(t, err)

	_, err = service.RemoveFeature(context.Background(), 1, 0)
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "RemoveLocationFeature")
}

func TestLocationService_Update_PartialValidation(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	service := NewLocationService(mockRepo)

	// A nil name is "keep current" and must pass validation.
	stored := &models.Location{ID: 1, Name: "Central Cafe"}
	params := models.LocationParams{Description: strPtr("step-free entrance")}
	mockRepo.On("UpdateLocation", mock.Anything, 1, params).Return(stored, nil)

	result, err := service.Update(context.Background(), 1, params)
	assert.NoError(t, err)
	assert.Equal(t, stored, result)

	// An explicitly empty name is rejected.
	_, err = service.Update(context.Background(), 1, models.LocationParams{Name: strPtr("")})
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}
