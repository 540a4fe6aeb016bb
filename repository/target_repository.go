package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"

	"github.com/jackc/pgx/v5"
)

// TargetRepository implements monthly KPI target data access
type TargetRepository struct {
	q queryable
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db *database.DB) *TargetRepository {
	return &TargetRepository{q: db.Pool}
}

// newTargetRepositoryWithTx creates a new target repository with a transaction
func newTargetRepositoryWithTx(tx queryable) *TargetRepository {
	return &TargetRepository{q: tx}
}

// Create inserts the KPI targets for one month. The month primary key
// rejects a second row for the same month.
func (r *TargetRepository) Create(ctx context.Context, target *models.Target) error {
	query := `
		INSERT INTO targets (month, target_avg_cycle_hours, target_error_rate_pct, target_cost_per_txn)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.Exec(ctx, query,
		target.Month,
		target.TargetAvgCycleHours,
		target.TargetErrorRatePct,
		target.TargetCostPerTxn,
	)
	if err != nil {
		return fmt.Errorf("failed to create target for %s: %w", target.Month, err)
	}

	return nil
}

// GetByMonth retrieves the target row for a month ("YYYY-MM"),
// returning nil when no row exists
func (r *TargetRepository) GetByMonth(ctx context.Context, month string) (*models.Target, error) {
	query := `
		SELECT month, target_avg_cycle_hours, target_error_rate_pct, target_cost_per_txn
		FROM targets
		WHERE month = $1
	`

	var target models.Target
	err := r.q.QueryRow(ctx, query, month).Scan(
		&target.Month,
		&target.TargetAvgCycleHours,
		&target.TargetErrorRatePct,
		&target.TargetCostPerTxn,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get target for %s: %w", month, err)
	}

	return &target, nil
}

// GetAll returns all target rows in ascending month order
func (r *TargetRepository) GetAll(ctx context.Context) ([]*models.Target, error) {
	query := `
		SELECT month, target_avg_cycle_hours, target_error_rate_pct, target_cost_per_txn
		FROM targets
		ORDER BY month
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all targets: %w", err)
	}
	defer rows.Close()

	var targets []*models.Target
	for rows.Next() {
		var target models.Target
		err := rows.Scan(
			&target.Month,
			&target.TargetAvgCycleHours,
			&target.TargetErrorRatePct,
			&target.TargetCostPerTxn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, &target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate targets: %w", err)
	}

	return targets, nil
}
