package service

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// FeatureService handles accessibility feature reference data.
type FeatureService struct {
	repo FeatureRepository
}

// FeatureRepository interface for dependency injection.
type FeatureRepository interface {
	ListFeatures(ctx context.Context) ([]models.AccessibilityFeature, error)
	GetFeature(ctx context.Context, id int) (*models.AccessibilityFeature, error)
	CreateFeature(ctx context.Context, name string) (*models.AccessibilityFeature, error)
	UpdateFeature(ctx context.Context, id int, name string) (*models.AccessibilityFeature, error)
	DeleteFeature(ctx context.Context, id int) error
}

// NewFeatureService creates a new feature service.
func NewFeatureService(repo FeatureRepository) *FeatureService {
	return &FeatureService{repo: repo}
}

func (s *FeatureService) List(ctx context.Context) ([]models.AccessibilityFeature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list features: %w", err)
	}
	return features, nil
}

func (s *FeatureService) Get(ctx context.Context, id int) (*models.AccessibilityFeature, error) {
	if id <= 0 {
		return nil, invalidf("invalid feature id: %d", id)
	}
	feature, err := s.repo.GetFeature(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load feature: %w", err)
	}
	return feature, nil
}

func (s *FeatureService) Create(ctx context.Context, name string) (*models.AccessibilityFeature, error) {
	if name == "" {
		return nil, invalidf("name is required")
	}
	feature, err := s.repo.CreateFeature(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create feature: %w", err)
	}
	return feature, nil
}

func (s *FeatureService) Update(ctx context.Context, id int, name string) (*models.AccessibilityFeature, error) {
	if id <= 0 {
		return nil, invalidf("invalid feature id: %d", id)
	}
	if name == "" {
		return nil, invalidf("name is required")
	}
	feature, err := s.repo.UpdateFeature(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update feature: %w", err)
	}
	return feature, nil
}

func (s *FeatureService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid feature id: %d", id)
	}
	if err := s.repo.DeleteFeature(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete feature: %w", err)
	}
	return nil
}
