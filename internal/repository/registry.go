package repository

import (
	"context"
	"errors"
	"fmt"

	"access-compass-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// ListFeatures returns all accessibility features ordered by id.
func (r *Repository) ListFeatures(ctx context.Context) ([]models.AccessibilityFeature, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM accessibility_features ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list features: %w", err)
	}
	defer rows.Close()

	features := []models.AccessibilityFeature{}
	for rows.Next() {
		var f models.AccessibilityFeature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return features, nil
}

func (r *Repository) GetFeature(ctx context.Context, id int) (*models.AccessibilityFeature, error) {
	var f models.AccessibilityFeature
	err := r.db.QueryRow(ctx, `SELECT id, name FROM accessibility_features WHERE id = $1`, id).Scan(&f.ID, &f.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: accessibility feature %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load feature: %w", err)
	}
	return &f, nil
}

func (r *Repository) CreateFeature(ctx context.Context, name string) (*models.AccessibilityFeature, error) {
	var f models.AccessibilityFeature
	err := r.db.QueryRow(ctx, `
		INSERT INTO accessibility_features (name) VALUES ($1) RETURNING id, name
	`, name).Scan(&f.ID, &f.Name)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create feature: %w", err)
	}
	return &f, nil
}

func (r *Repository) UpdateFeature(ctx context.Context, id int, name string) (*models.AccessibilityFeature, error) {
	var f models.AccessibilityFeature
	err := r.db.QueryRow(ctx, `
		UPDATE accessibility_features SET name = $2 WHERE id = $1 RETURNING id, name
	`, id, name).Scan(&f.ID, &f.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: accessibility feature %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update feature: %w", err)
	}
	return &f, nil
}

func (r *Repository) DeleteFeature(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accessibility_features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: accessibility feature %d: %w", id, ErrNotFound)
	}
	return nil
}

// EnsureFeature resolves a feature id by name, creating the row if absent.
func (r *Repository) EnsureFeature(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO accessibility_features (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to ensure feature: %w", err)
	}
	return id, nil
}

// ListCategories returns all categories ordered by id.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return categories, nil
}

func (r *Repository) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load category: %w", err)
	}
	return &c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1) RETURNING id, name
	`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create category: %w", err)
	}
	return &c, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, id int, name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET name = $2 WHERE id = $1 RETURNING id, name
	`, id, name).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update category: %w", err)
	}
	return &c, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: category %d: %w", id, ErrNotFound)
	}
	return nil
}

// EnsureCategory resolves a category id by name, creating the row if absent.
func (r *Repository) EnsureCategory(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to ensure category: %w", err)
	}
	return id, nil
}

// ListLevels returns all accessibility levels ordered by id. Rows only
// come into existence through the classification sync.
func (r *Repository) ListLevels(ctx context.Context) ([]models.AccessibilityLevel, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color FROM accessibility_levels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list levels: %w", err)
	}
	defer rows.Close()

	levels := []models.AccessibilityLevel{}
	for rows.Next() {
		var l models.AccessibilityLevel
		if err := rows.Scan(&l.ID, &l.Name, &l.Color); err != nil {
			return nil, fmt.Errorf("repository: failed to scan level: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return levels, nil
}

func (r *Repository) GetLevel(ctx context.Context, id int) (*models.AccessibilityLevel, error) {
	var l models.AccessibilityLevel
	err := r.db.QueryRow(ctx, `SELECT id, name, color FROM accessibility_levels WHERE id = $1`, id).Scan(&l.ID, &l.Name, &l.Color)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: accessibility level %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load level: %w", err)
	}
	return &l, nil
}
