package service

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// LevelService exposes read access to the accessibility level registry.
// Rows are created and recolored by the classification sync, so there is
// no write surface here.
type LevelService struct {
	repo LevelRepository
}

// LevelRepository interface for dependency injection.
type LevelRepository interface {
	ListLevels(ctx context.Context) ([]models.AccessibilityLevel, error)
	GetLevel(ctx context.Context, id int) (*models.AccessibilityLevel, error)
}

// NewLevelService creates a new level service.
func NewLevelService(repo LevelRepository) *LevelService {
	return &LevelService{repo: repo}
}

func (s *LevelService) List(ctx context.Context) ([]models.AccessibilityLevel, error) {
	levels, err := s.repo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list levels: %w", err)
	}
	return levels, nil
}

func (s *LevelService) Get(ctx context.Context, id int) (*models.AccessibilityLevel, error) {
	if id <= 0 {
		return nil, invalidf("invalid level id: %d", id)
	}
	level, err := s.repo.GetLevel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load level: %w", err)
	}
	return level, nil
}
