package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"access-compass-api/internal/models"
	"access-compass-api/internal/repository"
	"access-compass-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Create(ctx context.Context, params models.LocationParams) (*models.Location, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationService) Update(ctx context.Context, id int, params models.LocationParams) (*models.Location, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationService) Get(ctx context.Context, id int) (*models.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationService) List(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockLocationService) AddFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	args := m.Called(ctx, locationID, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationService) RemoveFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	args := m.Called(ctx, locationID, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func TestLocationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	minRating := 3.0
	tests := []struct {
		name           string
		rawQuery       string
		expectedFilter *models.LocationFilter
		serviceResult  []models.Location
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "no filters",
			rawQuery:       "",
			expectedFilter: &models.LocationFilter{},
			serviceResult:  []models.Location{},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "repeated and duplicated category values",
			rawQuery: "categories=Cafe&categories=Museum&categories=Cafe",
			expectedFilter: &models.LocationFilter{
				Categories: []string{"Cafe", "Museum"},
			},
			serviceResult:  []models.Location{{ID: 1, Name: "Central Cafe"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "combined filter dimensions",
			rawQuery: "categories=Cafe&accessibility_features=Ramp&min_rating=3",
			expectedFilter: &models.LocationFilter{
				Categories: []string{"Cafe"},
				Features:   []string{"Ramp"},
				MinRating:  &minRating,
			},
			serviceResult:  []models.Location{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed min_rating",
			rawQuery:       "min_rating=high",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			rawQuery:       "",
			expectedFilter: &models.LocationFilter{},
			serviceError:   assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.expectedFilter != nil {
				mockSvc.On("List", mock.Anything, *tt.expectedFilter).Return(tt.serviceResult, tt.serviceError)
			}

			req := httptest.NewRequest(http.MethodGet, "/locations?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.List(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body []models.Location
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, len(tt.serviceResult))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		serviceResult  *models.Location
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "found",
			id:             "1",
			serviceResult:  &models.Location{ID: 1, Name: "Central Cafe"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			id:             "99",
			serviceError:   fmt.Errorf("service: %w", repository.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.serviceResult != nil || tt.serviceError != nil {
				mockSvc.On("Get", mock.Anything, mock.AnythingOfType("int")).Return(tt.serviceResult, tt.serviceError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/locations/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.Get(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestLocationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		callsService   bool
		serviceResult  *models.Location
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "malformed body",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure from service",
			body:           `{"address":"1 Main St"}`,
			callsService:   true,
			serviceError:   &service.ValidationError{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful create",
			body:           `{"name":"Central Cafe","address":"1 Main St","accessibility_features":[1,2],"categories":[3]}`,
			callsService:   true,
			serviceResult:  &models.Location{ID: 1, Name: "Central Cafe"},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("Create", mock.Anything, mock.AnythingOfType("models.LocationParams")).Return(tt.serviceResult, tt.serviceError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/locations", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_AddFeature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		serviceResult  *models.Location
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "successful add",
			body:           `{"feature_id":2}`,
			serviceResult:  &models.Location{ID: 1},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown feature",
			body:           `{"feature_id":99}`,
			serviceError:   fmt.Errorf("service: %w", repository.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)
			mockSvc.On("AddFeature", mock.Anything, 1, mock.AnythingOfType("int")).Return(tt.serviceResult, tt.serviceError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/locations/1/add_feature", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "1"}}

			handler.AddFeature(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
