package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"

	"github.com/jackc/pgx/v5"
)

// MonthlyCostRepository implements monthly cost data access
type MonthlyCostRepository struct {
	q queryable
}

// NewMonthlyCostRepository creates a new monthly cost repository
func NewMonthlyCostRepository(db *database.DB) *MonthlyCostRepository {
	return &MonthlyCostRepository{q: db.Pool}
}

// newMonthlyCostRepositoryWithTx creates a new monthly cost repository with a transaction
func newMonthlyCostRepositoryWithTx(tx queryable) *MonthlyCostRepository {
	return &MonthlyCostRepository{q: tx}
}

// Create inserts the cost breakdown for one month. The month primary
// key rejects a second row for the same month.
func (r *MonthlyCostRepository) Create(ctx context.Context, cost *models.MonthlyCost) error {
	query := `
		INSERT INTO costs_monthly (month, infra_cost, support_cost, dev_cost, other_cost)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.Exec(ctx, query,
		cost.Month,
		cost.InfraCost,
		cost.SupportCost,
		cost.DevCost,
		cost.OtherCost,
	)
	if err != nil {
		return fmt.Errorf("failed to create monthly cost for %s: %w", cost.Month, err)
	}

	return nil
}

// GetByMonth retrieves the cost row for a month ("YYYY-MM"), returning
// nil when no row exists
func (r *MonthlyCostRepository) GetByMonth(ctx context.Context, month string) (*models.MonthlyCost, error) {
	query := `
		SELECT month, infra_cost, support_cost, dev_cost, other_cost
		FROM costs_monthly
		WHERE month = $1
	`

	var cost models.MonthlyCost
	err := r.q.QueryRow(ctx, query, month).Scan(
		&cost.Month,
		&cost.InfraCost,
		&cost.SupportCost,
		&cost.DevCost,
		&cost.OtherCost,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly cost for %s: %w", month, err)
	}

	return &cost, nil
}

// GetAll returns all monthly cost rows in ascending month order
func (r *MonthlyCostRepository) GetAll(ctx context.Context) ([]*models.MonthlyCost, error) {
	query := `
		SELECT month, infra_cost, support_cost, dev_cost, other_cost
		FROM costs_monthly
		ORDER BY month
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all monthly costs: %w", err)
	}
	defer rows.Close()

	var costs []*models.MonthlyCost
	for rows.Next() {
		var cost models.MonthlyCost
		err := rows.Scan(
			&cost.Month,
			&cost.InfraCost,
			&cost.SupportCost,
			&cost.DevCost,
			&cost.OtherCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly cost: %w", err)
		}
		costs = append(costs, &cost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly costs: %w", err)
	}

	return costs, nil
}
