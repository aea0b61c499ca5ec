// Package repository implements PostgreSQL persistence for the catalog.
// Every location-mutating method runs the level sync inside the same
// transaction as the write, so a committed location always carries
// exactly one level edge and a rating matching its association counts.
package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"access-compass-api/internal/classify"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned when a referenced row does not exist. Callers
// check it with errors.Is; handlers map it to 404.
var ErrNotFound = errors.New("not found")

const pgFKViolation = "23503"

// Repository implements the repository interfaces for PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InitSchema creates the catalog tables if they do not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to initialize schema: %w", err)
	}
	return nil
}

// inTx runs fn inside a transaction, committing on success.
func (r *Repository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return nil
}

// syncLevel recomputes the location's level and rating from its current
// association counts and replaces the level edge, all on the caller's
// transaction. The upsert also refreshes a stale stored color.
func syncLevel(ctx context.Context, tx pgx.Tx, locationID int) error {
	var featureCount, categoryCount int
	err := tx.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM location_features WHERE location_id = $1),
			(SELECT count(*) FROM location_categories WHERE location_id = $1)
	`, locationID).Scan(&featureCount, &categoryCount)
	if err != nil {
		return fmt.Errorf("repository: failed to count associations: %w", err)
	}

	level := classify.Classify(featureCount, categoryCount)
	rating := classify.Rating(featureCount, categoryCount)

	var levelID int
	err = tx.QueryRow(ctx, `
		INSERT INTO accessibility_levels (name, color) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET color = EXCLUDED.color
		RETURNING id
	`, level.Name, level.Color).Scan(&levelID)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert accessibility level: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM location_levels WHERE location_id = $1`, locationID); err != nil {
		return fmt.Errorf("repository: failed to clear level association: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO location_levels (location_id, level_id) VALUES ($1, $2)
	`, locationID, levelID); err != nil {
		return fmt.Errorf("repository: failed to set level association: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE locations SET rating = $2 WHERE id = $1`, locationID, rating); err != nil {
		return fmt.Errorf("repository: failed to update rating: %w", err)
	}
	return nil
}

// isFKViolation reports whether err is a foreign key violation, which the
// catalog surfaces as a missing referenced entity.
func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}
