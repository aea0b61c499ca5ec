package repository

import (
	"context"
	"fmt"

	"access-compass-api/internal/models"
)

// ListReviews returns a location's reviews, newest first.
func (r *Repository) ListReviews(ctx context.Context, locationID int) ([]models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, location_id, user_id, rating, comment, created_at
		FROM reviews WHERE location_id = $1
		ORDER BY created_at DESC
	`, locationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.LocationID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return reviews, nil
}

// CreateReview stores a review against an existing location. The
// location's derived rating is untouched.
func (r *Repository) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (location_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, review.LocationID, review.UserID, review.Rating, review.Comment).Scan(&review.ID, &review.CreatedAt)
	if isFKViolation(err) {
		return nil, fmt.Errorf("repository: location %d: %w", review.LocationID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create review: %w", err)
	}
	return &review, nil
}

// ListPropositions returns a location's change proposals, newest first.
func (r *Repository) ListPropositions(ctx context.Context, locationID int) ([]models.Proposition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, location_id, user_id, text, created_at
		FROM propositions WHERE location_id = $1
		ORDER BY created_at DESC
	`, locationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list propositions: %w", err)
	}
	defer rows.Close()

	propositions := []models.Proposition{}
	for rows.Next() {
		var p models.Proposition
		if err := rows.Scan(&p.ID, &p.LocationID, &p.UserID, &p.Text, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan proposition: %w", err)
		}
		propositions = append(propositions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return propositions, nil
}

// CreateProposition stores a change proposal. Proposals are never applied
// automatically.
func (r *Repository) CreateProposition(ctx context.Context, prop models.Proposition) (*models.Proposition, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO propositions (location_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, prop.LocationID, prop.UserID, prop.Text).Scan(&prop.ID, &prop.CreatedAt)
	if isFKViolation(err) {
		return nil, fmt.Errorf("repository: location %d: %w", prop.LocationID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create proposition: %w", err)
	}
	return &prop, nil
}
