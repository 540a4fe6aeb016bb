package repository

import (
	"context"
	"fmt"

	"opsmetrics/database"
	"opsmetrics/models"
)

// monthExpr buckets a transaction timestamp into its calendar month in
// UTC, keyed the same way costs_monthly and targets key their months.
const monthExpr = `to_char(date_trunc('month', t.start_time AT TIME ZONE 'UTC'), 'YYYY-MM')`

// ReportRepository computes the KPI reports. Every query is a pure
// read: missing groups are omitted and unknowable ratios come back as
// NULL, never as an error.
type ReportRepository struct {
	q queryable
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{q: db.Pool}
}

// newReportRepositoryWithTx creates a new report repository with a transaction
func newReportRepositoryWithTx(tx queryable) *ReportRepository {
	return &ReportRepository{q: tx}
}

// MonthlyVolume returns the transaction count per calendar month of
// start_time, ascending by month
func (r *ReportRepository) MonthlyVolume(ctx context.Context) ([]*models.MonthlyVolumeRow, error) {
	query := `
		SELECT ` + monthExpr + ` AS month, COUNT(*) AS txn_count
		FROM transactions t
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly volume: %w", err)
	}
	defer rows.Close()

	var result []*models.MonthlyVolumeRow
	for rows.Next() {
		var row models.MonthlyVolumeRow
		if err := rows.Scan(&row.Month, &row.TxnCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly volume row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly volume rows: %w", err)
	}

	return result, nil
}

// MonthlyAvgCycleHours returns the mean cycle time per month over
// Completed and Reprocessed transactions with a recorded cycle time,
// ascending by month. Months with no qualifying transactions are
// omitted.
func (r *ReportRepository) MonthlyAvgCycleHours(ctx context.Context) ([]*models.MonthlyCycleRow, error) {
	query := `
		SELECT ` + monthExpr + ` AS month,
		       AVG(t.cycle_hours)::double precision AS avg_cycle_hours
		FROM transactions t
		WHERE t.status IN ('Completed', 'Reprocessed')
		  AND t.cycle_hours IS NOT NULL
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly avg cycle hours: %w", err)
	}
	defer rows.Close()

	var result []*models.MonthlyCycleRow
	for rows.Next() {
		var row models.MonthlyCycleRow
		if err := rows.Scan(&row.Month, &row.AvgCycleHours); err != nil {
			return nil, fmt.Errorf("failed to scan monthly cycle row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly cycle rows: %w", err)
	}

	return result, nil
}

// MonthlyErrorRatePct returns the percentage of Failed transactions
// per month on a 0-100 scale, ascending by month. The denominator is
// the month's full transaction count, so grouping guarantees it is
// never zero.
func (r *ReportRepository) MonthlyErrorRatePct(ctx context.Context) ([]*models.MonthlyErrorRateRow, error) {
	query := `
		SELECT ` + monthExpr + ` AS month,
		       (100.0 * COUNT(*) FILTER (WHERE t.status = 'Failed') / COUNT(*))::double precision AS error_rate_pct
		FROM transactions t
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly error rate: %w", err)
	}
	defer rows.Close()

	var result []*models.MonthlyErrorRateRow
	for rows.Next() {
		var row models.MonthlyErrorRateRow
		if err := rows.Scan(&row.Month, &row.ErrorRatePct); err != nil {
			return nil, fmt.Errorf("failed to scan monthly error rate row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly error rate rows: %w", err)
	}

	return result, nil
}

// FeatureUtilization returns per-feature transaction counts and each
// feature's share of the total, descending by count. The join is
// inner both ways: features without transactions and transactions
// whose feature_code is not in the catalog are excluded. The share is
// a window sum over the grouped counts, so the grand total is computed
// once rather than per row.
func (r *ReportRepository) FeatureUtilization(ctx context.Context) ([]*models.FeatureUtilizationRow, error) {
	query := `
		SELECT f.code,
		       f.name,
		       f.module,
		       COUNT(*) AS txn_count,
		       (100.0 * COUNT(*) / SUM(COUNT(*)) OVER ())::double precision AS share_pct
		FROM transactions t
		JOIN features f ON f.code = t.feature_code
		GROUP BY f.code, f.name, f.module
		ORDER BY txn_count DESC, f.code
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feature utilization: %w", err)
	}
	defer rows.Close()

	var result []*models.FeatureUtilizationRow
	for rows.Next() {
		var row models.FeatureUtilizationRow
		err := rows.Scan(
			&row.FeatureCode,
			&row.FeatureName,
			&row.Module,
			&row.TxnCount,
			&row.SharePct,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feature utilization row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feature utilization rows: %w", err)
	}

	return result, nil
}

// MonthlyCostPerTxn returns total cost and cost-per-transaction per
// month, ascending by month. Cost months are the driving side of the
// left join: a month with a cost row but no transactions is returned
// with a nil CostPerTxn rather than omitted.
func (r *ReportRepository) MonthlyCostPerTxn(ctx context.Context) ([]*models.MonthlyCostRow, error) {
	query := `
		WITH volume AS (
			SELECT ` + monthExpr + ` AS month, COUNT(*) AS txn_count
			FROM transactions t
			GROUP BY 1
		)
		SELECT c.month,
		       (c.infra_cost + c.support_cost + c.dev_cost + c.other_cost)::double precision AS total_cost,
		       COALESCE(v.txn_count, 0) AS txn_count,
		       CASE WHEN COALESCE(v.txn_count, 0) = 0 THEN NULL
		            ELSE ((c.infra_cost + c.support_cost + c.dev_cost + c.other_cost) / v.txn_count)::double precision
		       END AS cost_per_txn
		FROM costs_monthly c
		LEFT JOIN volume v ON v.month = c.month
		ORDER BY c.month
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly cost per txn: %w", err)
	}
	defer rows.Close()

	var result []*models.MonthlyCostRow
	for rows.Next() {
		var row models.MonthlyCostRow
		err := rows.Scan(
			&row.Month,
			&row.TotalCost,
			&row.TxnCount,
			&row.CostPerTxn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly cost row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly cost rows: %w", err)
	}

	return result, nil
}

// MonthlyVsTargets joins the monthly cycle-time, error-rate, and
// cost-per-transaction actuals with the targets table, ascending by
// month. All joins are inner: a month appears only when present in
// every one of the four inputs.
func (r *ReportRepository) MonthlyVsTargets(ctx context.Context) ([]*models.TargetComparisonRow, error) {
	query := `
		WITH cycle AS (
			SELECT ` + monthExpr + ` AS month,
			       AVG(t.cycle_hours)::double precision AS avg_cycle_hours
			FROM transactions t
			WHERE t.status IN ('Completed', 'Reprocessed')
			  AND t.cycle_hours IS NOT NULL
			GROUP BY 1
		),
		errors AS (
			SELECT ` + monthExpr + ` AS month,
			       (100.0 * COUNT(*) FILTER (WHERE t.status = 'Failed') / COUNT(*))::double precision AS error_rate_pct
			FROM transactions t
			GROUP BY 1
		),
		costs AS (
			SELECT c.month,
			       CASE WHEN COALESCE(v.txn_count, 0) = 0 THEN NULL
			            ELSE ((c.infra_cost + c.support_cost + c.dev_cost + c.other_cost) / v.txn_count)::double precision
			       END AS cost_per_txn
			FROM costs_monthly c
			LEFT JOIN (
				SELECT ` + monthExpr + ` AS month, COUNT(*) AS txn_count
				FROM transactions t
				GROUP BY 1
			) v ON v.month = c.month
		)
		SELECT cy.month,
		       cy.avg_cycle_hours,
		       tg.target_avg_cycle_hours,
		       er.error_rate_pct,
		       tg.target_error_rate_pct,
		       co.cost_per_txn,
		       tg.target_cost_per_txn
		FROM cycle cy
		JOIN errors er ON er.month = cy.month
		JOIN costs co ON co.month = cy.month
		JOIN targets tg ON tg.month = cy.month
		ORDER BY cy.month
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly vs targets: %w", err)
	}
	defer rows.Close()

	var result []*models.TargetComparisonRow
	for rows.Next() {
		var row models.TargetComparisonRow
		err := rows.Scan(
			&row.Month,
			&row.ActualAvgCycleHours,
			&row.TargetAvgCycleHours,
			&row.ActualErrorRatePct,
			&row.TargetErrorRatePct,
			&row.ActualCostPerTxn,
			&row.TargetCostPerTxn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target comparison row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate target comparison rows: %w", err)
	}

	return result, nil
}

// RegionDepartmentSnapshot returns volume, mean cycle time, and error
// rate grouped by the executing user's region and department, ordered
// by region then department. The user join is inner, so every
// transaction lands in exactly one cell.
func (r *ReportRepository) RegionDepartmentSnapshot(ctx context.Context) ([]*models.RegionDepartmentRow, error) {
	query := `
		SELECT u.region,
		       u.department,
		       COUNT(*) AS txn_count,
		       (AVG(t.cycle_hours) FILTER (WHERE t.status IN ('Completed', 'Reprocessed')))::double precision AS avg_cycle_hours,
		       (100.0 * COUNT(*) FILTER (WHERE t.status = 'Failed') / COUNT(*))::double precision AS error_rate_pct
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		GROUP BY u.region, u.department
		ORDER BY u.region, u.department
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query region department snapshot: %w", err)
	}
	defer rows.Close()

	var result []*models.RegionDepartmentRow
	for rows.Next() {
		var row models.RegionDepartmentRow
		err := rows.Scan(
			&row.Region,
			&row.Department,
			&row.TxnCount,
			&row.AvgCycleHours,
			&row.ErrorRatePct,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan region department row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate region department rows: %w", err)
	}

	return result, nil
}
