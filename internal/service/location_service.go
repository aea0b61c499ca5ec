package service

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// LocationService contains the catalog's core business logic. Every
// mutation it performs leaves the location with exactly one level
// association, kept in sync by the repository's transactional save.
type LocationService struct {
	repo LocationRepository
}

// LocationRepository interface for dependency injection.
type LocationRepository interface {
	CreateLocation(ctx context.Context, params models.LocationParams) (*models.Location, error)
	UpdateLocation(ctx context.Context, id int, params models.LocationParams) (*models.Location, error)
	DeleteLocation(ctx context.Context, id int) error
	GetLocation(ctx context.Context, id int) (*models.Location, error)
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error)
	AddLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error)
	RemoveLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error)
}

// NewLocationService creates a new location service.
func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Create registers a location and classifies it from its initial
// associations.
func (s *LocationService) Create(ctx context.Context, params models.LocationParams) (*models.Location, error) {
	if params.Name == nil || *params.Name == "" {
		return nil, invalidf("name is required")
	}
	if params.Address == nil || *params.Address == "" {
		return nil, invalidf("address is required")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	location, err := s.repo.CreateLocation(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create location: %w", err)
	}
	return location, nil
}

// Update applies a partial update and re-syncs the classification.
func (s *LocationService) Update(ctx context.Context, id int, params models.LocationParams) (*models.Location, error) {
	if id <= 0 {
		return nil, invalidf("invalid location id: %d", id)
	}
	if params.Name != nil && *params.Name == "" {
		return nil, invalidf("name cannot be empty")
	}
	if params.Address != nil && *params.Address == "" {
		return nil, invalidf("address cannot be empty")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	location, err := s.repo.UpdateLocation(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update location: %w", err)
	}
	return location, nil
}

// Delete removes a location and its associations.
func (s *LocationService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid location id: %d", id)
	}
	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete location: %w", err)
	}
	return nil
}

// Get loads one location in full shape.
func (s *LocationService) Get(ctx context.Context, id int) (*models.Location, error) {
	if id <= 0 {
		return nil, invalidf("invalid location id: %d", id)
	}
	location, err := s.repo.GetLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load location: %w", err)
	}
	return location, nil
}

// List returns the catalog narrowed by the filter.
func (s *LocationService) List(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > 5) {
		return nil, invalidf("min_rating must be between 0 and 5")
	}

	locations, err := s.repo.ListLocations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}
	return locations, nil
}

// AddFeature attaches a feature to a location. Adding an already-present
// feature succeeds without change.
func (s *LocationService) AddFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	if locationID <= 0 {
		return nil, invalidf("invalid location id: %d", locationID)
	}
	if featureID <= 0 {
		return nil, invalidf("invalid feature id: %d", featureID)
	}

	location, err := s.repo.AddLocationFeature(ctx, locationID, featureID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to add feature: %w", err)
	}
	return location, nil
}

// RemoveFeature detaches a feature from a location. Removing an absent
// feature succeeds without change.
func (s *LocationService) RemoveFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	if locationID <= 0 {
		return nil, invalidf("invalid location id: %d", locationID)
	}
	if featureID <= 0 {
		return nil, invalidf("invalid feature id: %d", featureID)
	}

	location, err := s.repo.RemoveLocationFeature(ctx, locationID, featureID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to remove feature: %w", err)
	}
	return location, nil
}

func validateParams(params models.LocationParams) error {
	if params.Latitude != nil && (*params.Latitude < -90 || *params.Latitude > 90) {
		return invalidf("invalid latitude: %f", *params.Latitude)
	}
	if params.Longitude != nil && (*params.Longitude < -180 || *params.Longitude > 180) {
		return invalidf("invalid longitude: %f", *params.Longitude)
	}
	for _, id := range params.FeatureIDs {
		if id <= 0 {
			return invalidf("invalid feature id: %d", id)
		}
	}
	for _, id := range params.CategoryIDs {
		if id <= 0 {
			return invalidf("invalid category id: %d", id)
		}
	}
	return nil
}
