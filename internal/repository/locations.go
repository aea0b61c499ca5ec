package repository

import (
	"context"
	"errors"
	"fmt"

	"access-compass-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreateLocation inserts a location with its association edges, runs the
// level sync and returns the stored entity. Name and Address must be set
// by the caller.
func (r *Repository) CreateLocation(ctx context.Context, params models.LocationParams) (*models.Location, error) {
	var id int
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO locations (name, description, address, latitude, longitude, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, deref(params.Name), deref(params.Description), deref(params.Address),
			derefFloat(params.Latitude), derefFloat(params.Longitude), deref(params.ImageURL),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("repository: failed to insert location: %w", err)
		}

		if err := insertFeatureEdges(ctx, tx, id, params.FeatureIDs); err != nil {
			return err
		}
		if err := insertCategoryEdges(ctx, tx, id, params.CategoryIDs); err != nil {
			return err
		}
		return syncLevel(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return r.GetLocation(ctx, id)
}

// UpdateLocation applies the non-nil fields of params, replaces the
// association edges for any non-nil id list and re-syncs the level.
func (r *Repository) UpdateLocation(ctx context.Context, id int, params models.LocationParams) (*models.Location, error) {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var loc models.Location
		err := tx.QueryRow(ctx, `
			SELECT id, name, description, address, latitude, longitude, image_url
			FROM locations WHERE id = $1
			FOR UPDATE
		`, id).Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Address,
			&loc.Latitude, &loc.Longitude, &loc.ImageURL)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("repository: location %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("repository: failed to load location: %w", err)
		}

		if params.Name != nil {
			loc.Name = *params.Name
		}
		if params.Description != nil {
			loc.Description = *params.Description
		}
		if params.Address != nil {
			loc.Address = *params.Address
		}
		if params.Latitude != nil {
			loc.Latitude = *params.Latitude
		}
		if params.Longitude != nil {
			loc.Longitude = *params.Longitude
		}
		if params.ImageURL != nil {
			loc.ImageURL = *params.ImageURL
		}

		_, err = tx.Exec(ctx, `
			UPDATE locations
			SET name = $2, description = $3, address = $4, latitude = $5, longitude = $6, image_url = $7
			WHERE id = $1
		`, id, loc.Name, loc.Description, loc.Address, loc.Latitude, loc.Longitude, loc.ImageURL)
		if err != nil {
			return fmt.Errorf("repository: failed to update location: %w", err)
		}

		if params.FeatureIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM location_features WHERE location_id = $1`, id); err != nil {
				return fmt.Errorf("repository: failed to clear feature associations: %w", err)
			}
			if err := insertFeatureEdges(ctx, tx, id, params.FeatureIDs); err != nil {
				return err
			}
		}
		if params.CategoryIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM location_categories WHERE location_id = $1`, id); err != nil {
				return fmt.Errorf("repository: failed to clear category associations: %w", err)
			}
			if err := insertCategoryEdges(ctx, tx, id, params.CategoryIDs); err != nil {
				return err
			}
		}
		return syncLevel(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return r.GetLocation(ctx, id)
}

// DeleteLocation removes a location; edge rows cascade.
func (r *Repository) DeleteLocation(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: location %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetLocation loads a location in full shape, including reviews.
func (r *Repository) GetLocation(ctx context.Context, id int) (*models.Location, error) {
	loc := models.Location{Reviews: []models.Review{}}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, address, latitude, longitude, rating, image_url
		FROM locations WHERE id = $1
	`, id).Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Address,
		&loc.Latitude, &loc.Longitude, &loc.Rating, &loc.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: location %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load location: %w", err)
	}

	locs := []models.Location{loc}
	if err := r.loadAssociations(ctx, locs); err != nil {
		return nil, err
	}

	reviews, err := r.ListReviews(ctx, id)
	if err != nil {
		return nil, err
	}
	locs[0].Reviews = reviews
	return &locs[0], nil
}

// ListLocations returns the catalog narrowed by the filter. Name filters
// use OR semantics within a dimension and AND across dimensions.
func (r *Repository) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	sql := `
		SELECT id, name, description, address, latitude, longitude, rating, image_url
		FROM locations l
	`
	var conditions []string
	var args []interface{}

	if len(filter.Categories) > 0 {
		args = append(args, filter.Categories)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM location_categories lc
			JOIN categories c ON c.id = lc.category_id
			WHERE lc.location_id = l.id AND c.name = ANY($%d))`, len(args)))
	}
	if len(filter.Features) > 0 {
		args = append(args, filter.Features)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM location_features lf
			JOIN accessibility_features f ON f.id = lf.feature_id
			WHERE lf.location_id = l.id AND f.name = ANY($%d))`, len(args)))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conditions = append(conditions, fmt.Sprintf("l.rating >= $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY l.id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		err := rows.Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Address,
			&loc.Latitude, &loc.Longitude, &loc.Rating, &loc.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	if err := r.loadAssociations(ctx, locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// AddLocationFeature attaches a feature to a location and re-syncs the
// level. Attaching an already-present feature is a no-op.
func (r *Repository) AddLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkLocationExists(ctx, tx, locationID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO location_features (location_id, feature_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, locationID, featureID)
		if isFKViolation(err) {
			return fmt.Errorf("repository: accessibility feature %d: %w", featureID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("repository: failed to add feature association: %w", err)
		}
		return syncLevel(ctx, tx, locationID)
	})
	if err != nil {
		return nil, err
	}
	return r.GetLocation(ctx, locationID)
}

// RemoveLocationFeature detaches a feature and re-syncs the level.
// Detaching an absent feature is a no-op, but an unknown feature id is
// still NotFound.
func (r *Repository) RemoveLocationFeature(ctx context.Context, locationID, featureID int) (*models.Location, error) {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := checkLocationExists(ctx, tx, locationID); err != nil {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM accessibility_features WHERE id = $1)
		`, featureID).Scan(&exists); err != nil {
			return fmt.Errorf("repository: failed to check feature: %w", err)
		}
		if !exists {
			return fmt.Errorf("repository: accessibility feature %d: %w", featureID, ErrNotFound)
		}
		_, err := tx.Exec(ctx, `
			DELETE FROM location_features WHERE location_id = $1 AND feature_id = $2
		`, locationID, featureID)
		if err != nil {
			return fmt.Errorf("repository: failed to remove feature association: %w", err)
		}
		return syncLevel(ctx, tx, locationID)
	})
	if err != nil {
		return nil, err
	}
	return r.GetLocation(ctx, locationID)
}

// loadAssociations fills the feature, category and level lists for the
// given locations in place.
func (r *Repository) loadAssociations(ctx context.Context, locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}
	ids := make([]int, len(locations))
	index := make(map[int]*models.Location, len(locations))
	for i := range locations {
		ids[i] = locations[i].ID
		locations[i].AccessibilityFeatures = []models.Ref{}
		locations[i].Categories = []models.Ref{}
		locations[i].AccessibilityLevels = []models.AccessibilityLevel{}
		index[locations[i].ID] = &locations[i]
	}

	err := r.forEachEdge(ctx, `
		SELECT lf.location_id, f.id, f.name
		FROM location_features lf
		JOIN accessibility_features f ON f.id = lf.feature_id
		WHERE lf.location_id = ANY($1)
	`, ids, func(locID int, ref models.Ref) {
		loc := index[locID]
		loc.AccessibilityFeatures = append(loc.AccessibilityFeatures, ref)
	})
	if err != nil {
		return err
	}

	err = r.forEachEdge(ctx, `
		SELECT lc.location_id, c.id, c.name
		FROM location_categories lc
		JOIN categories c ON c.id = lc.category_id
		WHERE lc.location_id = ANY($1)
	`, ids, func(locID int, ref models.Ref) {
		loc := index[locID]
		loc.Categories = append(loc.Categories, ref)
	})
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ll.location_id, al.id, al.name, al.color
		FROM location_levels ll
		JOIN accessibility_levels al ON al.id = ll.level_id
		WHERE ll.location_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("repository: failed to load level associations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var locID int
		var level models.AccessibilityLevel
		if err := rows.Scan(&locID, &level.ID, &level.Name, &level.Color); err != nil {
			return fmt.Errorf("repository: failed to scan level association: %w", err)
		}
		loc := index[locID]
		loc.AccessibilityLevels = append(loc.AccessibilityLevels, level)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return nil
}

func (r *Repository) forEachEdge(ctx context.Context, sql string, ids []int, fn func(locID int, ref models.Ref)) error {
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return fmt.Errorf("repository: failed to load associations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var locID int
		var ref models.Ref
		if err := rows.Scan(&locID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("repository: failed to scan association: %w", err)
		}
		fn(locID, ref)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return nil
}

func insertFeatureEdges(ctx context.Context, tx pgx.Tx, locationID int, featureIDs []int) error {
	for _, fid := range featureIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO location_features (location_id, feature_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, locationID, fid)
		if isFKViolation(err) {
			return fmt.Errorf("repository: accessibility feature %d: %w", fid, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("repository: failed to add feature association: %w", err)
		}
	}
	return nil
}

func insertCategoryEdges(ctx context.Context, tx pgx.Tx, locationID int, categoryIDs []int) error {
	for _, cid := range categoryIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO location_categories (location_id, category_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, locationID, cid)
		if isFKViolation(err) {
			return fmt.Errorf("repository: category %d: %w", cid, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("repository: failed to add category association: %w", err)
		}
	}
	return nil
}

func checkLocationExists(ctx context.Context, tx pgx.Tx, id int) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM locations WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("repository: failed to check location: %w", err)
	}
	if !exists {
		return fmt.Errorf("repository: location %d: %w", id, ErrNotFound)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
