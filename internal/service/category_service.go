package service

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// CategoryService handles category reference data.
type CategoryService struct {
	repo CategoryRepository
}

// CategoryRepository interface for dependency injection.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	if id <= 0 {
		return nil, invalidf("invalid category id: %d", id)
	}
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, invalidf("name is required")
	}
	category, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) (*models.Category, error) {
	if id <= 0 {
		return nil, invalidf("invalid category id: %d", id)
	}
	if name == "" {
		return nil, invalidf("name is required")
	}
	category, err := s.repo.UpdateCategory(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid category id: %d", id)
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete category: %w", err)
	}
	return nil
}
