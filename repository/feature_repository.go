package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"

	"github.com/jackc/pgx/v5"
)

// FeatureRepository implements feature catalog data access
type FeatureRepository struct {
	q queryable
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *database.DB) *FeatureRepository {
	return &FeatureRepository{q: db.Pool}
}

// newFeatureRepositoryWithTx creates a new feature repository with a transaction
func newFeatureRepositoryWithTx(tx queryable) *FeatureRepository {
	return &FeatureRepository{q: tx}
}

// Create inserts a new feature into the catalog
func (r *FeatureRepository) Create(ctx context.Context, feature *models.Feature) error {
	query := `
		INSERT INTO features (code, name, module, target_sla_hours)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.Exec(ctx, query,
		feature.Code,
		feature.Name,
		feature.Module,
		feature.TargetSLAHours,
	)
	if err != nil {
		return fmt.Errorf("failed to create feature %s: %w", feature.Code, err)
	}

	return nil
}

// GetByCode retrieves a feature by its unique code, returning nil when
// no such feature exists
func (r *FeatureRepository) GetByCode(ctx context.Context, code string) (*models.Feature, error) {
	query := `
		SELECT code, name, module, target_sla_hours
		FROM features
		WHERE code = $1
	`

	var feature models.Feature
	err := r.q.QueryRow(ctx, query, code).Scan(
		&feature.Code,
		&feature.Name,
		&feature.Module,
		&feature.TargetSLAHours,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feature by code %s: %w", code, err)
	}

	return &feature, nil
}

// GetAll returns all features ordered by code
func (r *FeatureRepository) GetAll(ctx context.Context) ([]*models.Feature, error) {
	query := `
		SELECT code, name, module, target_sla_hours
		FROM features
		ORDER BY code
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all features: %w", err)
	}
	defer rows.Close()

	var features []*models.Feature
	for rows.Next() {
		var feature models.Feature
		err := rows.Scan(
			&feature.Code,
			&feature.Name,
			&feature.Module,
			&feature.TargetSLAHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, &feature)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate features: %w", err)
	}

	return features, nil
}
